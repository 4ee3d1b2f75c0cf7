package flac

import (
	"bytes"
	"fmt"
	"io"

	flac "github.com/go-flac/go-flac"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/picture"
	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
	"github.com/simonhull/audiotag/internal/vorbis"
)

// Magic starts every FLAC stream.
const Magic = "fLaC"

var blockNames = map[flac.BlockType]string{
	flac.StreamInfo:    "STREAMINFO",
	flac.Padding:       "PADDING",
	flac.Application:   "APPLICATION",
	flac.SeekTable:     "SEEKTABLE",
	flac.VorbisComment: "VORBIS_COMMENT",
	flac.CueSheet:      "CUESHEET",
	flac.Picture:       "PICTURE",
}

// BlockName returns the name of a metadata block type.
func BlockName(bt flac.BlockType) string {
	if name, ok := blockNames[bt]; ok {
		return name
	}
	if bt == flac.Invalid {
		return "INVALID"
	}
	return fmt.Sprintf("RESERVED(%d)", int(bt))
}

func init() {
	registry.Register(types.FormatFLAC, codec{})
	registry.RegisterEncoder(types.FormatFLAC, codec{})
}

// Decode decodes the metadata blocks of an in-memory FLAC stream.
func Decode(data []byte, o *types.Options) (*Tag, error) {
	return Read(bytes.NewReader(data), int64(len(data)), "", o)
}

// Read walks the metadata blocks at the start of a FLAC stream. The comment
// block and picture blocks become the tag; other block types are recorded
// in Skipped. Blocks that fail to decode are dropped with a warning, or fail
// the read in strict mode. Audio frames after the last block are never read.
func Read(r io.ReaderAt, size int64, path string, o *types.Options) (*Tag, error) {
	if o == nil {
		o = types.DefaultOptions()
	}
	sr := binutil.NewSafeReader(r, size, path)

	magic := make([]byte, len(Magic))
	if err := sr.ReadAt(magic, 0, "FLAC magic bytes"); err != nil || string(magic) != Magic {
		return nil, &types.UnsupportedFormatError{Path: path, Reason: "invalid FLAC magic bytes"}
	}

	t := NewTag()
	fail := func(w types.Warning) error {
		if o.Strict {
			return &types.CorruptedTagError{Path: path, Reason: w.Message, Offset: w.Offset}
		}
		o.Warn(&t.warnings, w)
		return nil
	}

	haveComments := false
	offset := int64(len(Magic))
	for offset < size {
		header, err := binutil.Read[uint32](sr, offset, "metadata block header")
		if err != nil {
			if err := fail(types.Warning{Stage: "metadata", Message: err.Error(), Offset: offset}); err != nil {
				return nil, err
			}
			break
		}
		isLast := header>>31 == 1
		blockType := flac.BlockType(header >> 24 & 0x7F)
		length := int64(header & binutil.MaxUint24)
		offset += 4

		data := make([]byte, length)
		if length > 0 {
			if err := sr.ReadAt(data, offset, BlockName(blockType)+" block"); err != nil {
				if err := fail(types.Warning{Stage: "metadata", Message: err.Error(), Offset: offset}); err != nil {
					return nil, err
				}
				break
			}
		}

		switch blockType {
		case flac.VorbisComment:
			if haveComments {
				if err := fail(types.Warning{Stage: "comments", Message: "extra VORBIS_COMMENT block", Offset: offset}); err != nil {
					return nil, err
				}
				break
			}
			c, err := vorbis.ParseBlock(data, types.FormatFLAC, o)
			if err != nil {
				if err := fail(types.Warning{Stage: "comments", Message: err.Error(), Offset: offset}); err != nil {
					return nil, err
				}
				break
			}
			t.comments, haveComments = c, true
			t.warnings = append(t.warnings, c.Warnings()...)

		case flac.Picture:
			b, err := picture.Parse(data)
			if err != nil {
				if err := fail(types.Warning{Stage: "pictures", Message: err.Error(), Offset: offset}); err != nil {
					return nil, err
				}
				break
			}
			t.images = append(t.images, b)

		default:
			t.skipped = append(t.skipped, blockType)
			o.Logger.Debug().Str("block", BlockName(blockType)).Int64("length", length).Msg("skipped metadata block")
		}

		offset += length
		if isLast {
			break
		}
	}
	return t, nil
}

// Encode writes the tag as a FLAC metadata region: the stream marker, the
// comment block, the picture blocks and, when padding is positive, a
// PADDING block. The last block carries the last-block flag.
func Encode(t *Tag, padding int) ([]byte, error) {
	blocks, err := t.blocks(padding)
	if err != nil {
		return nil, err
	}
	f := &flac.File{Meta: blocks}
	return f.Marshal(), nil
}

// Rewrite replaces the comment, picture and padding blocks of a complete
// FLAC stream with those of t. STREAMINFO and the other blocks keep their
// order, and the audio frames are copied unchanged.
func Rewrite(data []byte, t *Tag, padding int) ([]byte, error) {
	f, err := flac.ParseMetadata(bytes.NewReader(data))
	if err != nil {
		return nil, &types.CorruptedTagError{Reason: fmt.Sprintf("flac metadata: %v", err)}
	}

	end := len(Magic)
	kept := make([]*flac.MetaDataBlock, 0, len(f.Meta))
	for _, m := range f.Meta {
		end += 4 + len(m.Data)
		switch m.Type {
		case flac.VorbisComment, flac.Picture, flac.Padding:
		default:
			kept = append(kept, m)
		}
	}

	blocks, err := t.blocks(padding)
	if err != nil {
		return nil, err
	}
	f.Meta = append(kept, blocks...)
	f.Frames = data[end:]
	return f.Marshal(), nil
}

func (t *Tag) blocks(padding int) ([]*flac.MetaDataBlock, error) {
	comments := t.comments.MetaDataBlock()
	out := []*flac.MetaDataBlock{&comments}
	for _, img := range t.images {
		m := img.MetaDataBlock()
		out = append(out, &m)
	}
	if padding > 0 {
		out = append(out, &flac.MetaDataBlock{Type: flac.Padding, Data: make([]byte, padding)})
	}
	for _, m := range out {
		if len(m.Data) > binutil.MaxUint24 {
			return nil, fmt.Errorf("flac: %s block is %d bytes: %w", BlockName(m.Type), len(m.Data), types.ErrFrameTooLarge)
		}
	}
	return out, nil
}

// codec adapts FLAC metadata to the format registry.
type codec struct{}

func (codec) Decode(data []byte, o *types.Options) (types.Tag, error) {
	return codec{}.Read(bytes.NewReader(data), int64(len(data)), "", o)
}

func (codec) Read(r io.ReaderAt, size int64, path string, o *types.Options) (types.Tag, error) {
	t, err := Read(r, size, path, o)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (codec) Encode(t types.Tag, o *types.Options) ([]byte, error) {
	tag, ok := t.(*Tag)
	if !ok {
		return nil, fmt.Errorf("flac: cannot encode %T", t)
	}
	if o == nil {
		o = types.DefaultOptions()
	}
	return Encode(tag, o.Padding)
}
