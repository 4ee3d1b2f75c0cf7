package vorbis

import (
	"testing"

	"github.com/simonhull/audiotag/internal/types"
)

func TestFieldNames_Bijection(t *testing.T) {
	seen := map[string]types.FieldKey{}
	for _, k := range types.AllFieldKeys() {
		name, ok := FieldName(k)
		if k == types.CoverArt {
			if ok {
				t.Errorf("FieldName(CoverArt) = %q, want no text name", name)
			}
			continue
		}
		if !ok {
			t.Errorf("FieldName(%s) not mapped", k)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("%s and %s both map to %q", prev, k, name)
		}
		seen[name] = k
		if back, ok := KeyForName(name); !ok || back != k {
			t.Errorf("KeyForName(%q) = %s, %v, want %s", name, back, ok, k)
		}
	}
}

func TestKeyForName(t *testing.T) {
	tests := []struct {
		name string
		want types.FieldKey
		ok   bool
	}{
		{"tracknumber", types.Track, true},
		{"TotalTracks", types.TrackTotal, true},
		{"TOTALDISCS", types.DiscTotal, true},
		{"date", types.Year, true},
		{"lang", types.Language, true},
		{"METADATA_BLOCK_PICTURE", types.FieldUnknown, false},
		{"REPLAYGAIN_TRACK_GAIN", types.FieldUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyForName(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyForName(%q) = %s, %v, want %s, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsPictureName(t *testing.T) {
	for _, name := range []string{"METADATA_BLOCK_PICTURE", "metadata_block_picture", "COVERART", "CoverArt"} {
		if !IsPictureName(name) {
			t.Errorf("IsPictureName(%q) = false, want true", name)
		}
	}
	if IsPictureName("COVER_ART_MIME") {
		t.Error("IsPictureName(COVER_ART_MIME) = true, want false")
	}
}
