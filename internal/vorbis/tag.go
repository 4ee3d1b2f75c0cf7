// Package vorbis implements the Vorbis comment container.
//
// Vorbis comments are used by both FLAC and Ogg Vorbis/Opus. The format is
// identical: a vendor string followed by UTF-8 "NAME=value" comments, in
// order. Names are case-insensitive and may repeat.
package vorbis

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"

	"github.com/simonhull/audiotag/internal/picture"
	"github.com/simonhull/audiotag/internal/types"
)

// DefaultVendor is the vendor string of new tags.
const DefaultVendor = "audiotag"

// Field is one decoded comment.
type Field struct {
	Name  string
	Value string
}

// Tag is an ordered list of Vorbis comments.
type Tag struct {
	format   types.Format
	block    flacvorbis.MetaDataBlockVorbisComment
	extra    []byte // trailing OpusTags data
	warnings []types.Warning
}

// NewTag returns an empty tag that encodes to format: FormatFLAC,
// FormatOggVorbis or FormatOpus.
func NewTag(format types.Format) *Tag {
	return &Tag{
		format: format,
		block:  flacvorbis.MetaDataBlockVorbisComment{Vendor: DefaultVendor, Comments: []string{}},
	}
}

func (t *Tag) Format() types.Format { return t.format }

// Vendor returns the vendor string.
func (t *Tag) Vendor() string { return t.block.Vendor }

func (t *Tag) SetVendor(v string) { t.block.Vendor = v }

// Comments returns a copy of the raw comments.
func (t *Tag) Comments() []string {
	return append([]string(nil), t.block.Comments...)
}

// Fields returns the comments split into name and value.
func (t *Tag) Fields() []Field {
	out := make([]Field, 0, len(t.block.Comments))
	for _, c := range t.block.Comments {
		name, value, _ := strings.Cut(c, "=")
		out = append(out, Field{Name: name, Value: value})
	}
	return out
}

func (t *Tag) FieldCount() int { return len(t.block.Comments) }

func (t *Tag) IsEmpty() bool { return len(t.block.Comments) == 0 }

func (t *Tag) Warnings() []types.Warning { return t.warnings }

func commentName(c string) string {
	name, _, _ := strings.Cut(c, "=")
	return name
}

func hasName(c string, names []string) bool {
	name := commentName(c)
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

// GetAllByName returns every value stored under name, in order.
func (t *Tag) GetAllByName(name string) []string {
	return t.values([]string{name})
}

func (t *Tag) values(names []string) []string {
	var out []string
	for _, c := range t.block.Comments {
		if hasName(c, names) {
			_, value, _ := strings.Cut(c, "=")
			out = append(out, value)
		}
	}
	return out
}

// GetFirstByName returns the first value stored under name.
func (t *Tag) GetFirstByName(name string) string {
	if values := t.GetAllByName(name); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (t *Tag) HasFieldByName(name string) bool {
	return len(t.GetAllByName(name)) > 0
}

// AddFieldByName appends a comment.
func (t *Tag) AddFieldByName(name, value string) error {
	if err := t.block.Add(name, value); err != nil {
		return fmt.Errorf("vorbis: field name %q: %w", name, err)
	}
	return nil
}

// SetFieldByName makes value the only value of name. The first comment
// under name keeps its position; later ones are removed.
func (t *Tag) SetFieldByName(name, value string) error {
	return t.set([]string{name}, name, value)
}

// set replaces the first comment named any of names with name=value and
// drops the other matches.
func (t *Tag) set(names []string, name, value string) error {
	scratch := flacvorbis.MetaDataBlockVorbisComment{}
	if err := scratch.Add(name, value); err != nil {
		return fmt.Errorf("vorbis: field name %q: %w", name, err)
	}
	comment := scratch.Comments[0]

	out := t.block.Comments[:0]
	placed := false
	for _, c := range t.block.Comments {
		if !hasName(c, names) {
			out = append(out, c)
			continue
		}
		if !placed {
			out = append(out, comment)
			placed = true
		}
	}
	clear(t.block.Comments[len(out):])
	t.block.Comments = out
	if !placed {
		t.block.Comments = append(t.block.Comments, comment)
	}
	return nil
}

// DeleteFieldByName removes every comment under name and reports how many
// were removed.
func (t *Tag) DeleteFieldByName(name string) int {
	return t.delete([]string{name})
}

func (t *Tag) delete(names []string) int {
	out := t.block.Comments[:0]
	for _, c := range t.block.Comments {
		if !hasName(c, names) {
			out = append(out, c)
		}
	}
	removed := len(t.block.Comments) - len(out)
	clear(t.block.Comments[len(out):])
	t.block.Comments = out
	return removed
}

func (t *Tag) unsupported(key types.FieldKey, reason string) error {
	return &types.UnsupportedFieldError{Key: key.String(), Format: t.format, Reason: reason}
}

func (t *Tag) resolve(key types.FieldKey) ([]string, error) {
	if key == types.CoverArt {
		return nil, t.unsupported(key, "use the artwork methods")
	}
	if _, ok := keyNames[key]; !ok {
		return nil, t.unsupported(key, "")
	}
	return namesFor(key), nil
}

func (t *Tag) GetAll(key types.FieldKey) ([]string, error) {
	names, err := t.resolve(key)
	if err != nil {
		return nil, err
	}
	return t.values(names), nil
}

func (t *Tag) GetFirst(key types.FieldKey) (string, error) {
	values, err := t.GetAll(key)
	if err != nil || len(values) == 0 {
		return "", err
	}
	return values[0], nil
}

// SetField makes value the only value of key, keeping the position of the
// first existing value.
func (t *Tag) SetField(key types.FieldKey, value string) error {
	names, err := t.resolve(key)
	if err != nil {
		return err
	}
	return t.set(names, names[0], value)
}

func (t *Tag) AddField(key types.FieldKey, value string) error {
	names, err := t.resolve(key)
	if err != nil {
		return err
	}
	return t.AddFieldByName(names[0], value)
}

// DeleteField removes every value of key. Deleting CoverArt removes the
// artwork.
func (t *Tag) DeleteField(key types.FieldKey) error {
	if key == types.CoverArt {
		t.DeleteArtwork()
		return nil
	}
	names, err := t.resolve(key)
	if err != nil {
		return err
	}
	t.delete(names)
	return nil
}

// HasField reports whether key has a value. For CoverArt it reports whether
// the tag holds a picture comment.
func (t *Tag) HasField(key types.FieldKey) bool {
	if key == types.CoverArt {
		return len(t.values([]string{PictureName, LegacyPictureName})) > 0
	}
	values, err := t.GetAll(key)
	return err == nil && len(values) > 0
}

// Pictures decodes the METADATA_BLOCK_PICTURE comments. Values that do not
// decode are skipped.
func (t *Tag) Pictures() []*picture.Block {
	var out []*picture.Block
	for _, v := range t.values([]string{PictureName}) {
		b, err := picture.ParseBase64(v)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (t *Tag) Artwork() []types.Artwork {
	var out []types.Artwork
	for _, b := range t.Pictures() {
		out = append(out, b.Artwork())
	}
	return out
}

// SetArtwork replaces the first picture and removes the others.
func (t *Tag) SetArtwork(a types.Artwork) error {
	b, err := picture.FromArtwork(a)
	if err != nil {
		return err
	}
	return t.set([]string{PictureName, LegacyPictureName}, PictureName, b.Base64())
}

func (t *Tag) AddArtwork(a types.Artwork) error {
	b, err := picture.FromArtwork(a)
	if err != nil {
		return err
	}
	return t.AddFieldByName(PictureName, b.Base64())
}

func (t *Tag) DeleteArtwork() {
	t.delete([]string{PictureName, LegacyPictureName})
}
