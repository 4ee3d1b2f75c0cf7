// Package picture handles FLAC PICTURE metadata blocks.
//
// The same block layout carries cover art in FLAC files (as a metadata
// block) and in Ogg Vorbis and Opus files (base64 encoded inside a
// METADATA_BLOCK_PICTURE comment). The block is:
//   - 4 bytes: picture type (uint32 BE)
//   - 4 bytes: MIME type length, then the MIME type
//   - 4 bytes: description length, then the description (UTF-8)
//   - 4 bytes each: width, height, color depth, indexed color count
//   - 4 bytes: image data length, then the image data
package picture

import (
	"encoding/base64"
	"fmt"

	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacpicture"
	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// LinkedMIMEType marks a block whose image data is a Latin-1 URL.
const LinkedMIMEType = flacpicture.MIMEURL

// Block is one picture block.
type Block struct {
	flacpicture.MetadataBlockPicture
}

// IsLinked reports whether the block points at an external image.
func (b *Block) IsLinked() bool { return b.MIME == LinkedMIMEType }

// URL returns the image URL of a linked block, or "" for embedded images.
func (b *Block) URL() string {
	if !b.IsLinked() {
		return ""
	}
	url, err := charmap.ISO8859_1.NewDecoder().Bytes(b.ImageData)
	if err != nil {
		return string(b.ImageData)
	}
	return string(url)
}

// Parse decodes the body of a PICTURE metadata block.
func Parse(data []byte) (*Block, error) {
	return FromMetaDataBlock(flac.MetaDataBlock{Type: flac.Picture, Data: data})
}

// FromMetaDataBlock decodes a go-flac metadata block.
func FromMetaDataBlock(m flac.MetaDataBlock) (*Block, error) {
	if m.Type != flac.Picture {
		return nil, fmt.Errorf("picture: %w", flacpicture.ErrorNotPictureMetadataBlock)
	}
	// flacpicture allocates each declared length before reading it.
	if err := checkLengths(m.Data); err != nil {
		return nil, fmt.Errorf("picture: %w", err)
	}
	p, err := flacpicture.ParseFromMetaDataBlock(m)
	if err != nil {
		return nil, fmt.Errorf("picture: %w", err)
	}
	return &Block{MetadataBlockPicture: *p}, nil
}

func checkLengths(data []byte) error {
	c := binutil.NewCursor(data)
	if err := c.Skip(4, "picture type"); err != nil {
		return err
	}
	for _, what := range []string{"MIME type", "description"} {
		n, err := c.Uint32(what + " length")
		if err != nil {
			return err
		}
		if err := c.Skip(int(n), what); err != nil {
			return err
		}
	}
	if err := c.Skip(16, "picture dimensions"); err != nil {
		return err
	}
	n, err := c.Uint32("image data length")
	if err != nil {
		return err
	}
	return c.Skip(int(n), "image data")
}

// MetaDataBlock returns the block as a go-flac metadata block.
func (b *Block) MetaDataBlock() flac.MetaDataBlock {
	return b.MetadataBlockPicture.Marshal()
}

// Bytes encodes the block body.
func (b *Block) Bytes() []byte {
	return b.MetaDataBlock().Data
}

// Len returns the encoded body size.
func (b *Block) Len() int {
	return 32 + len(b.MIME) + len(b.Description) + len(b.ImageData)
}

// ParseBase64 decodes a METADATA_BLOCK_PICTURE comment value.
func ParseBase64(s string) (*Block, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("picture: invalid base64: %w", err)
	}
	return Parse(data)
}

// Base64 encodes the block as a METADATA_BLOCK_PICTURE comment value.
func (b *Block) Base64() string {
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

// FromArtwork builds a block from generic artwork.
//
// Linked artwork stores its URL as Latin-1 image data under the "-->" MIME
// type. Embedded artwork must carry image data. A missing MIME type is
// sniffed from the data, and missing dimensions of JPEG
// and PNG images are read from the image itself.
func FromArtwork(a types.Artwork) (*Block, error) {
	if a.Linked {
		b, err := NewLinked(a.URL)
		if err != nil {
			return nil, err
		}
		b.PictureType = flacpicture.PictureType(a.Type)
		return b, nil
	}
	if len(a.Data) == 0 {
		return nil, fmt.Errorf("picture: artwork has no image data")
	}

	b := &Block{MetadataBlockPicture: flacpicture.MetadataBlockPicture{
		PictureType:       flacpicture.PictureType(a.Type),
		MIME:              a.MIME(),
		Description:       a.Description,
		Width:             uint32(a.Width),
		Height:            uint32(a.Height),
		ColorDepth:        uint32(a.ColorDepth),
		IndexedColorCount: uint32(a.IndexedColorCount),
		ImageData:         a.Data,
	}}
	if b.Width == 0 || b.Height == 0 {
		parsed := b.MetadataBlockPicture
		if parsed.ParsePicture() == nil {
			b.Width, b.Height, b.ColorDepth = parsed.Width, parsed.Height, parsed.ColorDepth
		}
	}
	return b, nil
}

// NewLinked builds a front cover block that points at url.
func NewLinked(url string) (*Block, error) {
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(url))
	if err != nil {
		return nil, fmt.Errorf("picture: url %q is not Latin-1: %w", url, err)
	}
	return &Block{MetadataBlockPicture: flacpicture.MetadataBlockPicture{
		PictureType: flacpicture.PictureTypeFrontCover,
		MIME:        LinkedMIMEType,
		ImageData:   data,
	}}, nil
}

// Artwork returns the block as generic artwork.
func (b *Block) Artwork() types.Artwork {
	a := types.Artwork{
		Type:              types.ArtworkType(b.PictureType),
		MIMEType:          b.MIME,
		Description:       b.Description,
		Width:             int(b.Width),
		Height:            int(b.Height),
		ColorDepth:        int(b.ColorDepth),
		IndexedColorCount: int(b.IndexedColorCount),
		Data:              b.ImageData,
	}
	if b.IsLinked() {
		a.Linked = true
		a.URL = b.URL()
		a.Data = nil
	}
	return a
}
