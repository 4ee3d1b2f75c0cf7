package id3v2

import (
	"slices"

	"github.com/simonhull/audiotag/internal/types"
)

// Tag is an ID3v2 tag of one version: an ordered list of frames plus the
// warnings collected while decoding it.
type Tag struct {
	version  Version
	table    *Table
	frames   []*Frame
	warnings []types.Warning
}

// NewTag returns an empty tag of version v. It panics if v is not 2, 3
// or 4.
func NewTag(v Version) *Tag {
	if !v.Valid() {
		panic("id3v2: invalid version " + v.String())
	}
	return &Tag{version: v, table: TableFor(v)}
}

// Version returns the tag's major version.
func (t *Tag) Version() Version { return t.version }

// Format returns the tag format for the tag's version.
func (t *Tag) Format() types.Format { return t.version.Format() }

// Table returns the key table the field API resolves keys through.
func (t *Tag) Table() *Table { return t.table }

// Frames returns the frames in tag order. The slice is a copy; the frames
// are not.
func (t *Tag) Frames() []*Frame {
	return slices.Clone(t.frames)
}

// FramesByID returns the frames with the given identifier in tag order.
func (t *Tag) FramesByID(id string) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if f.ID() == id {
			out = append(out, f)
		}
	}
	return out
}

// AddFrame appends f.
func (t *Tag) AddFrame(f *Frame) {
	t.frames = append(t.frames, f)
}

// SetFrame replaces the first frame with f's identifier and sub-id, or
// appends f if there is none.
func (t *Tag) SetFrame(f *Frame) {
	id, sub := f.ID(), f.SubID()
	for i, old := range t.frames {
		if old.ID() == id && old.SubID() == sub {
			t.frames[i] = f
			return
		}
	}
	t.frames = append(t.frames, f)
}

// RemoveFrames removes every frame with the given identifier and returns
// how many were removed.
func (t *Tag) RemoveFrames(id string) int {
	before := len(t.frames)
	t.frames = slices.DeleteFunc(t.frames, func(f *Frame) bool { return f.ID() == id })
	return before - len(t.frames)
}

// FieldCount returns the number of frames.
func (t *Tag) FieldCount() int { return len(t.frames) }

// IsEmpty reports whether the tag has no frames.
func (t *Tag) IsEmpty() bool { return len(t.frames) == 0 }

// Warnings returns the non-fatal issues collected while decoding or
// converting the tag.
func (t *Tag) Warnings() []types.Warning { return t.warnings }

// pictureID returns the attached picture identifier of the tag's version.
func (t *Tag) pictureID() string {
	if t.version == V22 {
		return "PIC"
	}
	return "APIC"
}

// Artwork returns every attached picture in tag order.
func (t *Tag) Artwork() []types.Artwork {
	var out []types.Artwork
	for _, f := range t.FramesByID(t.pictureID()) {
		if b, ok := f.Body.(*PictureBody); ok {
			out = append(out, b.Artwork())
		}
	}
	return out
}

// FirstArtwork returns the first attached picture.
func (t *Tag) FirstArtwork() (types.Artwork, bool) {
	art := t.Artwork()
	if len(art) == 0 {
		return types.Artwork{}, false
	}
	return art[0], true
}

// SetArtwork replaces the first attached picture with a and removes the
// others.
func (t *Tag) SetArtwork(a types.Artwork) error {
	f := NewFrame(pictureBodyFromArtwork(t.pictureID(), a, t.version))
	t.replaceMatches(func(old *Frame) bool { return old.ID() == f.ID() }, f)
	return nil
}

// AddArtwork appends a as a new attached picture.
func (t *Tag) AddArtwork(a types.Artwork) error {
	t.AddFrame(NewFrame(pictureBodyFromArtwork(t.pictureID(), a, t.version)))
	return nil
}

// DeleteArtwork removes every attached picture.
func (t *Tag) DeleteArtwork() {
	t.RemoveFrames(t.pictureID())
}

// replaceMatches puts f in place of the first frame match accepts and
// drops the rest. f is appended when nothing matches.
func (t *Tag) replaceMatches(match func(*Frame) bool, f *Frame) {
	n := len(t.frames)
	out := t.frames[:0]
	placed := false
	for _, old := range t.frames {
		if !match(old) {
			out = append(out, old)
			continue
		}
		if !placed {
			out = append(out, f)
			placed = true
		}
	}
	if !placed {
		out = append(out, f)
	}
	if len(out) < n {
		clear(t.frames[len(out):n])
	}
	t.frames = out
}

func (t *Tag) warn(o *types.Options, w types.Warning) {
	o.Warn(&t.warnings, w)
}
