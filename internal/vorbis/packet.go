package vorbis

import (
	"bytes"
	"fmt"

	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
)

// Comment header packet prefixes.
const (
	VorbisPrefix = "\x03vorbis"
	OpusPrefix   = "OpusTags"
)

func init() {
	for _, f := range []types.Format{types.FormatOggVorbis, types.FormatOpus} {
		registry.Register(f, packetCodec{})
		registry.RegisterEncoder(f, packetCodec{})
	}
}

// DecodePacket decodes a Vorbis or Opus comment header packet.
//
// A Vorbis packet ends with a framing bit; a missing one is reported as a
// warning. Data after the comments of an Opus packet is kept and written
// back by EncodePacket.
func DecodePacket(data []byte, o *types.Options) (*Tag, error) {
	if o == nil {
		o = types.DefaultOptions()
	}
	var format types.Format
	switch {
	case bytes.HasPrefix(data, []byte(VorbisPrefix)):
		format = types.FormatOggVorbis
		data = data[len(VorbisPrefix):]
	case bytes.HasPrefix(data, []byte(OpusPrefix)):
		format = types.FormatOpus
		data = data[len(OpusPrefix):]
	default:
		return nil, &types.UnsupportedFormatError{Reason: "not a Vorbis or Opus comment packet"}
	}

	t, end, err := parseBlock(data, format, o)
	if err != nil {
		return nil, err
	}
	rest := data[end:]
	switch format {
	case types.FormatOggVorbis:
		if len(rest) == 0 || rest[0]&1 == 0 {
			if o.Strict {
				return nil, &types.CorruptedTagError{Reason: "missing framing bit", Offset: int64(len(VorbisPrefix) + end)}
			}
			o.Warn(&t.warnings, types.Warning{
				Stage:   "comments",
				Message: "missing framing bit",
				Offset:  int64(len(VorbisPrefix) + end),
			})
		}
	case types.FormatOpus:
		if len(rest) > 0 {
			t.extra = bytes.Clone(rest)
		}
	}
	return t, nil
}

// EncodePacket encodes t as a comment header packet of its format.
func EncodePacket(t *Tag) ([]byte, error) {
	var buf bytes.Buffer
	switch t.format {
	case types.FormatOggVorbis:
		buf.WriteString(VorbisPrefix)
		buf.Write(t.Bytes())
		buf.WriteByte(1)
	case types.FormatOpus:
		buf.WriteString(OpusPrefix)
		buf.Write(t.Bytes())
		buf.Write(t.extra)
	default:
		return nil, fmt.Errorf("vorbis: no comment packet for %s", t.format)
	}
	return buf.Bytes(), nil
}

// packetCodec adapts comment packets to the format registry.
type packetCodec struct{}

func (packetCodec) Decode(data []byte, o *types.Options) (types.Tag, error) {
	t, err := DecodePacket(data, o)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (packetCodec) Encode(t types.Tag, _ *types.Options) ([]byte, error) {
	tag, ok := t.(*Tag)
	if !ok {
		return nil, fmt.Errorf("vorbis: cannot encode %T", t)
	}
	return EncodePacket(tag)
}
