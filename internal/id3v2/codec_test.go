package id3v2

import (
	"testing"

	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
)

var _ types.Tag = (*Tag)(nil)

func TestCodec_Registered(t *testing.T) {
	for _, v := range allVersions {
		t.Run(v.String(), func(t *testing.T) {
			dec := registry.Get(v.Format())
			enc := registry.GetEncoder(v.Format())
			if dec == nil || enc == nil {
				t.Fatalf("codec for %s not registered", v.Format())
			}
			if _, ok := dec.(registry.Reader); !ok {
				t.Error("ID3v2 decoder should implement registry.Reader")
			}

			tag := NewTag(v)
			tag.SetField(types.Title, "Registered")
			data, err := enc.Encode(tag, nil)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if len(data) != TagHeaderSize+tag.Frames()[0].Body.Size(v)+v.HeaderLen()+types.DefaultPadding {
				t.Errorf("Encode() length = %d, want frames plus default padding", len(data))
			}

			got, err := dec.Decode(data, nil)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Format() != v.Format() {
				t.Errorf("Format() = %v, want %v", got.Format(), v.Format())
			}
			if !types.Equal(got, tag) {
				t.Error("decoded tag differs from the encoded one")
			}
		})
	}
}

func TestCodec_EncodeWrongType(t *testing.T) {
	enc := registry.GetEncoder(types.FormatID3v24)
	if _, err := enc.Encode(nil, nil); err == nil {
		t.Error("Encode(nil) should fail")
	}
}

func TestCopyAcrossVersions(t *testing.T) {
	src := NewTag(V24)
	src.SetField(types.Title, "Copied")
	src.SetField(types.Mood, "bright")
	src.SetField(types.Track, "4/9")
	src.AddField(types.Engineer, "Eng")
	src.AddArtwork(types.Artwork{Type: types.ArtworkFrontCover, MIMEType: "image/png", Data: []byte{1, 2}})

	dst := NewTag(V22)
	warnings, err := types.Copy(dst, src)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Copy() warnings = %v, want none", warnings)
	}
	if !types.Equal(dst, src) {
		t.Error("Equal() = false after Copy()")
	}
	if mood := first(t, dst, types.Mood); mood != "bright" {
		t.Errorf("GetFirst(Mood) = %q, want bright", mood)
	}
}
