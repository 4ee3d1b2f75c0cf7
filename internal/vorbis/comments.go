package vorbis

import (
	"fmt"
	"strings"

	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// ParseBlock decodes a Vorbis comment block: the body of a FLAC
// VORBIS_COMMENT metadata block, or a comment packet without its prefix.
//
// Comments without a '=' separator are dropped with a warning, or fail the
// decode in strict mode. Bytes after the last comment are ignored.
func ParseBlock(data []byte, format types.Format, o *types.Options) (*Tag, error) {
	t, _, err := parseBlock(data, format, o)
	return t, err
}

func parseBlock(data []byte, format types.Format, o *types.Options) (*Tag, int, error) {
	if o == nil {
		o = types.DefaultOptions()
	}
	// flacvorbis allocates the declared comment count before reading.
	end, err := blockLength(data)
	if err != nil {
		return nil, 0, &types.CorruptedTagError{Reason: err.Error()}
	}
	block, err := flacvorbis.ParseFromMetaDataBlock(flac.MetaDataBlock{Type: flac.VorbisComment, Data: data[:end]})
	if err != nil {
		return nil, 0, &types.CorruptedTagError{Reason: err.Error()}
	}

	t := &Tag{format: format, block: flacvorbis.MetaDataBlockVorbisComment{Vendor: block.Vendor}}
	t.block.Comments = make([]string, 0, len(block.Comments))
	for i, c := range block.Comments {
		if err := checkComment(c); err != nil {
			if o.Strict {
				return nil, 0, &types.CorruptedTagError{Reason: err.Error()}
			}
			o.Warn(&t.warnings, types.Warning{
				Stage:   "comments",
				Message: fmt.Sprintf("comment %d: %v", i, err),
			})
			continue
		}
		t.block.Comments = append(t.block.Comments, c)
	}
	o.Logger.Debug().Str("vendor", t.block.Vendor).Int("comments", len(t.block.Comments)).Msg("vorbis comments decoded")
	return t, end, nil
}

func checkComment(c string) error {
	if !strings.Contains(c, "=") {
		return fmt.Errorf("missing '=' in comment: %q", c)
	}
	return nil
}

// blockLength walks the length prefixes of a comment block and returns the
// offset just past the last comment.
func blockLength(data []byte) (int, error) {
	c := binutil.NewCursor(data)
	n, err := c.Uint32LE("vendor length")
	if err != nil {
		return 0, err
	}
	if err := c.Skip(int(n), "vendor string"); err != nil {
		return 0, err
	}
	count, err := c.Uint32LE("comment count")
	if err != nil {
		return 0, err
	}
	if int64(count)*4 > int64(c.Remaining()) {
		return 0, fmt.Errorf("%d comments declared in %d bytes", count, c.Remaining())
	}
	for i := range count {
		n, err := c.Uint32LE("comment length")
		if err != nil {
			return 0, err
		}
		if err := c.Skip(int(n), fmt.Sprintf("comment %d", i)); err != nil {
			return 0, err
		}
	}
	return c.Offset(), nil
}

// MetaDataBlock returns the comments as a FLAC VORBIS_COMMENT block.
func (t *Tag) MetaDataBlock() flac.MetaDataBlock {
	return t.block.Marshal()
}

// Bytes encodes the comment block without any packet prefix.
func (t *Tag) Bytes() []byte {
	return t.MetaDataBlock().Data
}
