// Package flac implements FLAC metadata tags: one Vorbis comment block for
// text fields plus any number of PICTURE blocks for artwork.
package flac

import (
	"strings"

	flac "github.com/go-flac/go-flac"

	"github.com/simonhull/audiotag/internal/picture"
	"github.com/simonhull/audiotag/internal/types"
	"github.com/simonhull/audiotag/internal/vorbis"
)

// Tag routes CoverArt to the picture blocks and every other field to the
// Vorbis comments.
type Tag struct {
	comments *vorbis.Tag
	images   []*picture.Block
	skipped  []flac.BlockType
	warnings []types.Warning
}

// NewTag returns an empty tag.
func NewTag() *Tag {
	return NewTagFrom(nil, nil)
}

// NewTagFrom wraps existing comments and pictures. A nil comments tag is
// replaced by an empty one.
func NewTagFrom(comments *vorbis.Tag, images []*picture.Block) *Tag {
	if comments == nil {
		comments = vorbis.NewTag(types.FormatFLAC)
	}
	return &Tag{comments: comments, images: images}
}

func (t *Tag) Format() types.Format { return types.FormatFLAC }

// VorbisComment returns the wrapped comment container.
func (t *Tag) VorbisComment() *vorbis.Tag { return t.comments }

// Images returns the picture blocks in order.
func (t *Tag) Images() []*picture.Block { return t.images }

// Skipped returns the types of the metadata blocks Decode passed over.
func (t *Tag) Skipped() []flac.BlockType { return t.skipped }

func (t *Tag) Warnings() []types.Warning { return t.warnings }

func (t *Tag) FieldCount() int { return t.comments.FieldCount() + len(t.images) }

func (t *Tag) IsEmpty() bool { return t.comments.IsEmpty() && len(t.images) == 0 }

// isCoverArtName reports whether a raw field name addresses the pictures.
func isCoverArtName(name string) bool {
	return strings.EqualFold(name, types.CoverArt.String()) || vorbis.IsPictureName(name)
}

func coverArtError(name string) error {
	return &types.UnsupportedFieldError{Key: name, Format: types.FormatFLAC, Reason: "use the artwork methods"}
}

func (t *Tag) SetField(key types.FieldKey, value string) error {
	if key == types.CoverArt {
		return coverArtError(key.String())
	}
	return t.comments.SetField(key, value)
}

func (t *Tag) AddField(key types.FieldKey, value string) error {
	if key == types.CoverArt {
		return coverArtError(key.String())
	}
	return t.comments.AddField(key, value)
}

func (t *Tag) GetFirst(key types.FieldKey) (string, error) {
	if key == types.CoverArt {
		return "", coverArtError(key.String())
	}
	return t.comments.GetFirst(key)
}

func (t *Tag) GetAll(key types.FieldKey) ([]string, error) {
	if key == types.CoverArt {
		return nil, coverArtError(key.String())
	}
	return t.comments.GetAll(key)
}

// DeleteField removes every value of key. Deleting CoverArt removes every
// picture block.
func (t *Tag) DeleteField(key types.FieldKey) error {
	if key == types.CoverArt {
		t.DeleteArtwork()
		return nil
	}
	return t.comments.DeleteField(key)
}

// HasField reports whether key has a value; for CoverArt, whether the tag
// has a picture block.
func (t *Tag) HasField(key types.FieldKey) bool {
	if key == types.CoverArt {
		return len(t.images) > 0
	}
	return t.comments.HasField(key)
}

// SetFieldByName sets a raw comment. The cover art names COVER_ART, COVERART
// and METADATA_BLOCK_PICTURE are rejected.
func (t *Tag) SetFieldByName(name, value string) error {
	if isCoverArtName(name) {
		return coverArtError(name)
	}
	return t.comments.SetFieldByName(name, value)
}

func (t *Tag) AddFieldByName(name, value string) error {
	if isCoverArtName(name) {
		return coverArtError(name)
	}
	return t.comments.AddFieldByName(name, value)
}

func (t *Tag) GetAllByName(name string) ([]string, error) {
	if isCoverArtName(name) {
		return nil, coverArtError(name)
	}
	return t.comments.GetAllByName(name), nil
}

func (t *Tag) GetFirstByName(name string) (string, error) {
	if isCoverArtName(name) {
		return "", coverArtError(name)
	}
	return t.comments.GetFirstByName(name), nil
}

func (t *Tag) HasFieldByName(name string) bool {
	if isCoverArtName(name) {
		return len(t.images) > 0
	}
	return t.comments.HasFieldByName(name)
}

// DeleteFieldByName removes a raw comment, or every picture for a cover
// art name.
func (t *Tag) DeleteFieldByName(name string) {
	if isCoverArtName(name) {
		t.DeleteArtwork()
		return
	}
	t.comments.DeleteFieldByName(name)
}

func (t *Tag) Artwork() []types.Artwork {
	out := make([]types.Artwork, 0, len(t.images))
	for _, b := range t.images {
		out = append(out, b.Artwork())
	}
	return out
}

// SetArtwork replaces the first picture, or adds one to an empty list.
func (t *Tag) SetArtwork(a types.Artwork) error {
	b, err := t.CreateArtworkField(a)
	if err != nil {
		return err
	}
	t.SetImage(b)
	return nil
}

func (t *Tag) AddArtwork(a types.Artwork) error {
	b, err := t.CreateArtworkField(a)
	if err != nil {
		return err
	}
	t.AddImage(b)
	return nil
}

func (t *Tag) DeleteArtwork() {
	clear(t.images)
	t.images = t.images[:0]
}

// SetImage replaces the first picture block, or appends b to an empty list.
func (t *Tag) SetImage(b *picture.Block) {
	if len(t.images) == 0 {
		t.images = append(t.images, b)
		return
	}
	t.images[0] = b
}

func (t *Tag) AddImage(b *picture.Block) {
	t.images = append(t.images, b)
}

// CreateArtworkField builds a picture block from a. Linked artwork stores
// its URL as Latin-1 bytes under the "-->" MIME type.
func (t *Tag) CreateArtworkField(a types.Artwork) (*picture.Block, error) {
	return picture.FromArtwork(a)
}

// CreateLinkedArtworkField builds a front cover block pointing at url.
func (t *Tag) CreateLinkedArtworkField(url string) (*picture.Block, error) {
	return picture.NewLinked(url)
}
