package id3v2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/audiotag/internal/types"
)

// fieldRef is a key resolved against the tag's table.
type fieldRef struct {
	key   types.FieldKey
	m     Mapping
	total bool // the "total" half of an n/total frame
	role  bool // stored in an involved people list
}

func (t *Tag) unsupported(key types.FieldKey, reason string) error {
	return &types.UnsupportedFieldError{Key: key.String(), Format: t.Format(), Reason: reason}
}

func (t *Tag) resolve(key types.FieldKey) (fieldRef, error) {
	if key == types.CoverArt {
		return fieldRef{}, t.unsupported(key, "use the artwork methods")
	}
	ref := fieldRef{key: key}
	lookup := key
	if base, ok := partKeys[key]; ok {
		lookup, ref.total = base, true
	}
	id, sub, ok := t.table.ToFrame(lookup)
	if !ok {
		return fieldRef{}, t.unsupported(key, "")
	}
	ref.m = Mapping{Key: lookup, FrameID: id, SubID: sub}
	ref.role = kindOf(id, t.version) == kindPairedText
	return ref, nil
}

// matches reports whether f holds the field r. A mapping without a sub-id
// matches frames whose sub-id no other key claims, so COMMENT picks up
// comments with arbitrary descriptions.
func (t *Tag) matches(f *Frame, r fieldRef) bool {
	if f.ID() != r.m.FrameID {
		return false
	}
	if r.m.SubID == "" {
		return !t.table.claimsSub(r.m.FrameID, f.SubID())
	}
	return f.SubID() == r.m.SubID
}

func (t *Tag) matching(r fieldRef) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if t.matches(f, r) {
			out = append(out, f)
		}
	}
	return out
}

// GetAll returns every value of key in tag order.
func (t *Tag) GetAll(key types.FieldKey) ([]string, error) {
	r, err := t.resolve(key)
	if err != nil {
		return nil, err
	}
	if r.role {
		return t.roleNames(r), nil
	}
	var out []string
	for _, f := range t.matching(r) {
		out = append(out, frameValues(f, r)...)
	}
	return out, nil
}

// GetFirst returns the first value of key, or "" when the tag has none.
func (t *Tag) GetFirst(key types.FieldKey) (string, error) {
	values, err := t.GetAll(key)
	if err != nil || len(values) == 0 {
		return "", err
	}
	return values[0], nil
}

// HasField reports whether key has at least one value. For CoverArt it
// reports whether the tag has an attached picture.
func (t *Tag) HasField(key types.FieldKey) bool {
	if key == types.CoverArt {
		return len(t.FramesByID(t.pictureID())) > 0
	}
	values, err := t.GetAll(key)
	return err == nil && len(values) > 0
}

// SetField makes value the only value of key. The first frame holding key
// is updated in place and any later ones are removed.
func (t *Tag) SetField(key types.FieldKey, value string) error {
	r, err := t.resolve(key)
	if err != nil {
		return err
	}
	if r.role {
		t.setRole(r, value)
		return nil
	}

	existing := t.matching(r)
	if len(existing) == 0 {
		f, err := t.newFieldFrame(r, value)
		if err != nil {
			return err
		}
		t.AddFrame(f)
		return nil
	}

	first := existing[0]
	if err := t.setFrameValue(first, r, value); err != nil {
		return err
	}
	t.replaceMatches(func(f *Frame) bool { return t.matches(f, r) }, first)
	return nil
}

// AddField adds value to key. Keys stored in frames that may repeat get a
// new frame; roles are added to the existing involved people list. Adding
// to a single-valued frame that already holds a value for key fails; an
// empty half of an "n/total" frame is filled in.
func (t *Tag) AddField(key types.FieldKey, value string) error {
	r, err := t.resolve(key)
	if err != nil {
		return err
	}
	if r.role {
		t.addRole(r, value)
		return nil
	}
	if existing := t.matching(r); !t.table.IsMultiValued(r.m.FrameID) && len(existing) > 0 {
		if len(frameValues(existing[0], r)) == 0 {
			return t.setFrameValue(existing[0], r, value)
		}
		return t.unsupported(key, "single-valued frame already present")
	}
	f, err := t.newFieldFrame(r, value)
	if err != nil {
		return err
	}
	t.AddFrame(f)
	return nil
}

// DeleteField removes every value of key. Deleting a total clears only the
// total half of its frame.
func (t *Tag) DeleteField(key types.FieldKey) error {
	if key == types.CoverArt {
		t.DeleteArtwork()
		return nil
	}
	r, err := t.resolve(key)
	if err != nil {
		return err
	}
	if r.role {
		t.deleteRole(r)
		return nil
	}
	if r.total {
		for _, f := range t.matching(r) {
			if b, ok := f.Body.(*TextBody); ok {
				num, _ := splitPart(b.Text)
				b.Text = num
			}
		}
		t.dropEmptyText(r)
		return nil
	}
	t.frames = deleteFrames(t.frames, func(f *Frame) bool { return t.matches(f, r) })
	return nil
}

func deleteFrames(frames []*Frame, del func(*Frame) bool) []*Frame {
	out := frames[:0]
	for _, f := range frames {
		if !del(f) {
			out = append(out, f)
		}
	}
	clear(frames[len(out):])
	return out
}

func (t *Tag) dropEmptyText(r fieldRef) {
	t.frames = deleteFrames(t.frames, func(f *Frame) bool {
		b, ok := f.Body.(*TextBody)
		return ok && t.matches(f, r) && b.Text == ""
	})
}

// frameValues extracts the values of r from a matching frame.
func frameValues(f *Frame, r fieldRef) []string {
	switch b := f.Body.(type) {
	case *TextBody:
		if _, isPart := totalOf(r.key); isPart || r.total {
			num, total := splitPart(b.Text)
			if r.total {
				return nonEmpty(total)
			}
			return nonEmpty(num)
		}
		return b.Values()
	case *UserTextBody:
		return strings.Split(b.Value, valueSep)
	case *URLBody:
		return []string{b.URL}
	case *UserURLBody:
		return []string{b.URL}
	case *CommentBody:
		return []string{b.Text}
	case *UniqueFileIDBody:
		return []string{string(b.Identifier)}
	case *PopularimeterBody:
		return []string{strconv.Itoa(int(b.Rating))}
	default:
		return nil
	}
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// totalOf returns the total key stored alongside k, if any.
func totalOf(k types.FieldKey) (types.FieldKey, bool) {
	for total, base := range partKeys {
		if base == k {
			return total, true
		}
	}
	return types.FieldUnknown, false
}

// splitPart splits an "n/total" value.
func splitPart(s string) (num, total string) {
	num, total, _ = strings.Cut(s, "/")
	return num, total
}

func joinPart(num, total string) string {
	if total == "" {
		return num
	}
	if num == "" {
		num = "0"
	}
	return num + "/" + total
}

// newFieldFrame builds a frame holding value for r.
func (t *Tag) newFieldFrame(r fieldRef, value string) (*Frame, error) {
	b := newBody(r.m.FrameID, t.version)
	if b == nil {
		return nil, t.unsupported(r.key, "frame "+r.m.FrameID+" has no field representation")
	}
	switch b := b.(type) {
	case *UserTextBody:
		b.Description = r.m.SubID
	case *UserURLBody:
		b.Description = r.m.SubID
	case *CommentBody:
		b.Description = r.m.SubID
	case *UniqueFileIDBody:
		b.Owner = r.m.SubID
	}
	f := NewFrame(b)
	if err := t.setFrameValue(f, r, value); err != nil {
		return nil, err
	}
	return f, nil
}

// setFrameValue stores value in f's body, keeping the parts of the body
// value does not cover.
func (t *Tag) setFrameValue(f *Frame, r fieldRef, value string) error {
	v := t.version
	switch b := f.Body.(type) {
	case *TextBody:
		if _, isPart := totalOf(r.key); isPart && !strings.Contains(value, "/") {
			_, total := splitPart(b.Text)
			value = joinPart(value, total)
		} else if r.total {
			num, _ := splitPart(b.Text)
			value = joinPart(num, value)
		}
		b.Text = value
		b.Encoding = fitEncoding(b.Encoding, value, v)
	case *UserTextBody:
		b.Value = value
		b.Encoding = fitEncoding(b.Encoding, b.Description+value, v)
	case *URLBody:
		b.URL = value
	case *UserURLBody:
		b.URL = value
		b.Encoding = fitEncoding(b.Encoding, b.Description, v)
	case *CommentBody:
		b.Text = value
		if b.Language == "" {
			b.Language = DefaultLanguage
		}
		b.Encoding = fitEncoding(b.Encoding, b.Description+value, v)
	case *UniqueFileIDBody:
		b.Identifier = []byte(value)
	case *PopularimeterBody:
		rating, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("rating %q: %w", value, err)
		}
		b.Rating = byte(rating)
	default:
		return t.unsupported(r.key, fmt.Sprintf("frame %s holds a %T", f.ID(), f.Body))
	}
	return nil
}

// fitEncoding keeps enc if it can hold s, and otherwise picks one that can.
func fitEncoding(enc byte, s string, v Version) byte {
	if enc == EncodingISO88591 && !isLatin1(s) {
		return preferredEncoding(s, v)
	}
	return enc
}

func (t *Tag) pairedFrames(r fieldRef) []*PairedTextBody {
	var out []*PairedTextBody
	for _, f := range t.FramesByID(r.m.FrameID) {
		if b, ok := f.Body.(*PairedTextBody); ok {
			out = append(out, b)
		}
	}
	return out
}

// pairMatches reports whether p belongs to r. A role key matches its role;
// the key without a role matches every pair whose role no key claims.
func (t *Tag) pairMatches(r fieldRef, p Pair) bool {
	if r.m.SubID != "" {
		return strings.EqualFold(p.Role, r.m.SubID)
	}
	return !t.table.claimsRole(r.m.FrameID, p.Role)
}

// pairFor parses value into a pair for r. Without a role key the value is
// "role\x00name", or just a name.
func pairFor(r fieldRef, value string) Pair {
	if r.m.SubID != "" {
		return Pair{Role: r.m.SubID, Name: value}
	}
	role, name, ok := strings.Cut(value, valueSep)
	if !ok {
		return Pair{Name: value}
	}
	return Pair{Role: role, Name: name}
}

// pairValue is the inverse of pairFor.
func pairValue(r fieldRef, p Pair) string {
	if r.m.SubID != "" || p.Role == "" {
		return p.Name
	}
	return p.Role + valueSep + p.Name
}

func (t *Tag) roleNames(r fieldRef) []string {
	var out []string
	for _, b := range t.pairedFrames(r) {
		for _, p := range b.Pairs {
			if t.pairMatches(r, p) {
				out = append(out, pairValue(r, p))
			}
		}
	}
	return out
}

func (t *Tag) addRole(r fieldRef, value string) {
	pair := pairFor(r, value)
	if bodies := t.pairedFrames(r); len(bodies) > 0 {
		b := bodies[0]
		b.Pairs = append(b.Pairs, pair)
		b.Encoding = fitEncoding(b.Encoding, pair.Role+pair.Name, t.version)
		return
	}
	t.AddFrame(NewFrame(&PairedTextBody{
		FrameID:  r.m.FrameID,
		Encoding: preferredEncoding(pair.Role+pair.Name, t.version),
		Pairs:    []Pair{pair},
	}))
}

func (t *Tag) setRole(r fieldRef, value string) {
	bodies := t.pairedFrames(r)
	if len(bodies) == 0 {
		t.addRole(r, value)
		return
	}
	pair := pairFor(r, value)
	var target *PairedTextBody
	for _, b := range bodies {
		pairs := b.Pairs[:0]
		for _, p := range b.Pairs {
			if !t.pairMatches(r, p) {
				pairs = append(pairs, p)
				continue
			}
			if target == nil {
				replacement := pair
				if r.m.SubID != "" {
					replacement.Role = p.Role
				}
				pairs = append(pairs, replacement)
				target = b
			}
		}
		b.Pairs = pairs
	}
	if target == nil {
		target = bodies[0]
		target.Pairs = append(target.Pairs, pair)
	}
	target.Encoding = fitEncoding(target.Encoding, pair.Role+pair.Name, t.version)
	t.dropEmptyPaired(r)
}

func (t *Tag) deleteRole(r fieldRef) {
	for _, b := range t.pairedFrames(r) {
		pairs := b.Pairs[:0]
		for _, p := range b.Pairs {
			if !t.pairMatches(r, p) {
				pairs = append(pairs, p)
			}
		}
		b.Pairs = pairs
	}
	t.dropEmptyPaired(r)
}

func (t *Tag) dropEmptyPaired(r fieldRef) {
	t.frames = deleteFrames(t.frames, func(f *Frame) bool {
		b, ok := f.Body.(*PairedTextBody)
		return ok && f.ID() == r.m.FrameID && len(b.Pairs) == 0
	})
}
