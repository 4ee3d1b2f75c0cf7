package vorbis

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
)

// rawComments builds a comment block the way encoders lay it out.
func rawComments(vendor string, comments ...string) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	binary.Write(&buf, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(&buf, binary.LittleEndian, uint32(len(c)))
		buf.WriteString(c)
	}
	return buf.Bytes()
}

func TestParseBlock(t *testing.T) {
	data := rawComments("reference libFLAC 1.4.3", "TITLE=Song", "ARTIST=Band", "ARTIST=Guest")

	tag, err := ParseBlock(data, types.FormatFLAC, nil)
	if err != nil {
		t.Fatalf("ParseBlock() error = %v", err)
	}
	if tag.Vendor() != "reference libFLAC 1.4.3" {
		t.Errorf("Vendor() = %q", tag.Vendor())
	}
	if got, _ := tag.GetAll(types.Artist); !slices.Equal(got, []string{"Band", "Guest"}) {
		t.Errorf("GetAll(Artist) = %q", got)
	}
	if !bytes.Equal(tag.Bytes(), data) {
		t.Errorf("Bytes() = % x, want % x", tag.Bytes(), data)
	}
}

func TestParseBlock_MissingSeparator(t *testing.T) {
	data := rawComments("v", "TITLE=ok", "garbage", "ARTIST=fine")

	tag, err := ParseBlock(data, types.FormatFLAC, nil)
	if err != nil {
		t.Fatalf("ParseBlock() error = %v", err)
	}
	if got := tag.Comments(); !slices.Equal(got, []string{"TITLE=ok", "ARTIST=fine"}) {
		t.Errorf("Comments() = %q", got)
	}
	w := tag.Warnings()
	if len(w) != 1 || w[0].Stage != "comments" || !strings.Contains(w[0].Message, "missing '='") {
		t.Errorf("Warnings() = %v, want one comments warning", w)
	}

	strict := types.DefaultOptions()
	strict.Strict = true
	if _, err := ParseBlock(data, types.FormatFLAC, strict); err == nil {
		t.Error("ParseBlock(strict) error = nil, want error")
	}

	quiet := types.DefaultOptions()
	quiet.IgnoreWarnings = true
	tag, _ = ParseBlock(data, types.FormatFLAC, quiet)
	if len(tag.Warnings()) != 0 {
		t.Errorf("Warnings() with IgnoreWarnings = %v", tag.Warnings())
	}
}

func TestParseBlock_Corrupt(t *testing.T) {
	valid := rawComments("vendor", "TITLE=x")

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"vendor past end", []byte{0xFF, 0, 0, 0, 'v'}},
		{"count too large", append(rawComments("v")[:5], 0xFF, 0xFF, 0xFF, 0x0F)},
		{"comment past end", valid[:len(valid)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(tt.data, types.FormatFLAC, nil)
			var ce *types.CorruptedTagError
			if !errors.As(err, &ce) {
				t.Errorf("ParseBlock() error = %v, want *CorruptedTagError", err)
			}
		})
	}
}

func TestDecodePacket(t *testing.T) {
	block := rawComments("Xiph.Org libVorbis I 20200704", "TITLE=Ogg", "ENCODER=x")

	tests := []struct {
		name       string
		data       []byte
		format     types.Format
		warnings   int
		wantEncode []byte
	}{
		{
			name:   "vorbis",
			data:   slices.Concat([]byte(VorbisPrefix), block, []byte{1}),
			format: types.FormatOggVorbis,
		},
		{
			name:       "vorbis without framing bit",
			data:       slices.Concat([]byte(VorbisPrefix), block),
			format:     types.FormatOggVorbis,
			warnings:   1,
			wantEncode: slices.Concat([]byte(VorbisPrefix), block, []byte{1}),
		},
		{
			name:   "opus",
			data:   slices.Concat([]byte(OpusPrefix), block),
			format: types.FormatOpus,
		},
		{
			name:   "opus with extra data",
			data:   slices.Concat([]byte(OpusPrefix), block, []byte{0x01, 0xAA, 0xBB}),
			format: types.FormatOpus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := DecodePacket(tt.data, nil)
			if err != nil {
				t.Fatalf("DecodePacket() error = %v", err)
			}
			if tag.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", tag.Format(), tt.format)
			}
			if got, _ := tag.GetFirst(types.Title); got != "Ogg" {
				t.Errorf("GetFirst(Title) = %q, want Ogg", got)
			}
			if len(tag.Warnings()) != tt.warnings {
				t.Errorf("Warnings() = %v, want %d", tag.Warnings(), tt.warnings)
			}

			want := tt.wantEncode
			if want == nil {
				want = tt.data
			}
			got, err := EncodePacket(tag)
			if err != nil {
				t.Fatalf("EncodePacket() error = %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("EncodePacket() = % x, want % x", got, want)
			}
		})
	}
}

func TestDecodePacket_Errors(t *testing.T) {
	if _, err := DecodePacket([]byte("fLaC\x00\x00"), nil); err == nil {
		t.Error("DecodePacket(FLAC) error = nil, want error")
	}

	strict := types.DefaultOptions()
	strict.Strict = true
	noFraming := slices.Concat([]byte(VorbisPrefix), rawComments("v"))
	if _, err := DecodePacket(noFraming, strict); err == nil {
		t.Error("DecodePacket(strict, no framing bit) error = nil, want error")
	}

	if _, err := EncodePacket(NewTag(types.FormatFLAC)); err == nil {
		t.Error("EncodePacket(FLAC tag) error = nil, want error")
	}
}

func TestPacketCodec_Registered(t *testing.T) {
	for _, f := range []types.Format{types.FormatOggVorbis, types.FormatOpus} {
		t.Run(f.String(), func(t *testing.T) {
			dec, enc := registry.Get(f), registry.GetEncoder(f)
			if dec == nil || enc == nil {
				t.Fatalf("codec for %s not registered", f)
			}
			tag := NewTag(f)
			tag.SetField(types.Album, "Registered")
			data, err := enc.Encode(tag, nil)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if detected, _ := types.DetectBytes(data); detected != f {
				t.Errorf("DetectBytes() = %v, want %v", detected, f)
			}
			got, err := dec.Decode(data, nil)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !types.Equal(got, tag) {
				t.Error("decoded tag differs from the encoded one")
			}
		})
	}
}
