package id3v2

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/simonhull/audiotag/internal/types"
)

func addText(tag *Tag, id, text string) {
	tag.AddFrame(NewFrame(&TextBody{FrameID: id, Text: text}))
}

func textOf(t *testing.T, tag *Tag, id string) string {
	t.Helper()
	fs := tag.FramesByID(id)
	if len(fs) != 1 {
		t.Fatalf("%s frames = %d, want 1 (have %v)", id, len(fs), frameStrings(tag))
	}
	b, ok := fs[0].Body.(*TextBody)
	if !ok {
		t.Fatalf("%s body = %T, want *TextBody", id, fs[0].Body)
	}
	return b.Text
}

func TestConvertBody(t *testing.T) {
	tests := []struct {
		name   string
		target string
		src    Body
		want   Body
	}{
		{
			name:   "year to recording time",
			target: "TDRC",
			src:    &TextBody{FrameID: "TYER", Text: "1999 "},
			want:   &TextBody{FrameID: "TDRC", Text: "1999"},
		},
		{
			name:   "recording time to year",
			target: "TYER",
			src:    &TextBody{FrameID: "TDRC", Encoding: EncodingUTF8, Text: "2001-02-03T04:05"},
			want:   &TextBody{FrameID: "TYER", Encoding: EncodingUTF8, Text: "2001"},
		},
		{
			name:   "original release time to year",
			target: "TORY",
			src:    &TextBody{FrameID: "TDOR", Text: "1971-06"},
			want:   &TextBody{FrameID: "TORY", Text: "1971"},
		},
		{
			name:   "mood to user text",
			target: "TXXX",
			src:    &TextBody{FrameID: "TMOO", Text: "calm"},
			want:   &UserTextBody{FrameID: "TXXX", Description: "MOOD", Value: "calm"},
		},
		{
			name:   "user text to mood",
			target: "TMOO",
			src:    &UserTextBody{FrameID: "TXXX", Description: "MOOD", Value: "calm"},
			want:   &TextBody{FrameID: "TMOO", Text: "calm"},
		},
		{
			name:   "ID3v2.2 picture",
			target: "APIC",
			src:    &PictureBody{FrameID: "PIC", MIMEType: "image/png", PictureType: 3, Data: []byte{1, 2}},
			want:   &PictureBody{FrameID: "APIC", MIMEType: "image/png", PictureType: 3, Data: []byte{1, 2}},
		},
		{
			name:   "involved people",
			target: "TIPL",
			src:    &PairedTextBody{FrameID: "IPLS", Pairs: []Pair{{"mix", "Bo"}}},
			want:   &PairedTextBody{FrameID: "TIPL", Pairs: []Pair{{"mix", "Bo"}}},
		},
		{
			name:   "unmodelled frame",
			target: "GEOB",
			src:    &UnsupportedBody{FrameID: "GEO", Data: []byte{9}},
			want:   &UnsupportedBody{FrameID: "GEOB", Data: []byte{9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertBody(tt.target, tt.src)
			if err != nil {
				t.Fatalf("ConvertBody() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConvertBody() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertBody_NoConversion(t *testing.T) {
	tests := []struct {
		name   string
		target string
		src    Body
	}{
		{"unrelated identifiers", "TDRC", &TextBody{FrameID: "TIT2"}},
		{"ID3v2.4 only frame", "TDEN", &TextBody{FrameID: "TDEN"}},
		{"user text that is not mood", "TMOO", &UserTextBody{FrameID: "TXXX", Description: "BARCODE"}},
		{"encrypted", "TIT2", &EncryptedBody{FrameID: "TIT2", FormatFlags: 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertBody(tt.target, tt.src)
			if !errors.Is(err, types.ErrNoConversionDefined) {
				t.Fatalf("ConvertBody() error = %v, want ErrNoConversionDefined", err)
			}
			var ne *types.NoConversionDefinedError
			if errors.As(err, &ne) && (ne.From != tt.src.ID() || ne.To != tt.target) {
				t.Errorf("error = %s to %s, want %s to %s", ne.From, ne.To, tt.src.ID(), tt.target)
			}
		})
	}
}

func TestConvertBody_CopiesSource(t *testing.T) {
	src := &UniqueFileIDBody{FrameID: "UFI", Owner: "o", Identifier: []byte("id")}
	got, err := ConvertBody("UFID", src)
	if err != nil {
		t.Fatal(err)
	}
	got.(*UniqueFileIDBody).Identifier[0] = 'X'
	if string(src.Identifier) != "id" {
		t.Errorf("source Identifier = %q after editing the copy", src.Identifier)
	}
}

func TestConvertTag_V23ToV24(t *testing.T) {
	src := NewTag(V23)
	addText(src, "TYER", "2004")
	addText(src, "TDAT", "1503")
	addText(src, "TIME", "1230")
	addText(src, "TIT2", "Title")
	src.AddFrame(NewFrame(&UserTextBody{FrameID: "TXXX", Description: "MOOD", Value: "calm"}))
	src.AddFrame(NewFrame(&PairedTextBody{FrameID: "IPLS", Pairs: []Pair{{"producer", "Ann"}}}))

	got, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatalf("ConvertTag() error = %v", err)
	}
	want := []string{"TDRC", "TIT2", "TMOO", "TIPL:producer"}
	if frames := frameStrings(got); !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	if year := first(t, got, types.Year); year != "2004-03-15T12:30" {
		t.Errorf("GetFirst(Year) = %q, want 2004-03-15T12:30", year)
	}
	if mood := first(t, got, types.Mood); mood != "calm" {
		t.Errorf("GetFirst(Mood) = %q, want calm", mood)
	}
	if producer := first(t, got, types.Producer); producer != "Ann" {
		t.Errorf("GetFirst(Producer) = %q, want Ann", producer)
	}
	if len(got.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", got.Warnings())
	}
	if got.Version() != V24 || got.Table().Version() != V24 {
		t.Errorf("Version() = %v, want %v", got.Version(), V24)
	}
}

func TestConvertTag_YearOnly(t *testing.T) {
	src := NewTag(V23)
	addText(src, "TYER", "1987")
	got, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if year := textOf(t, got, "TDRC"); year != "1987" {
		t.Errorf("TDRC = %q, want 1987", year)
	}
}

func TestConvertTag_DateWithoutYear(t *testing.T) {
	src := NewTag(V23)
	addText(src, "TDAT", "0101")
	got, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("frames = %v, want none", frameStrings(got))
	}
	if len(got.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want one", got.Warnings())
	}
}

func TestConvertTag_V24ToV23(t *testing.T) {
	src := NewTag(V24)
	addText(src, "TDRC", "2004-03-15T12:30")
	addText(src, "TMOO", "calm")
	addText(src, "TDEN", "2004")
	src.AddFrame(NewFrame(&PairedTextBody{FrameID: "TMCL", Pairs: []Pair{{"guitar", "Jo"}}}))

	got, err := ConvertTag(src, V23, nil)
	if err != nil {
		t.Fatalf("ConvertTag() error = %v", err)
	}
	want := []string{"TYER", "TDAT", "TIME", "TXXX:MOOD", "IPLS:guitar"}
	if frames := frameStrings(got); !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	if s := textOf(t, got, "TYER"); s != "2004" {
		t.Errorf("TYER = %q, want 2004", s)
	}
	if s := textOf(t, got, "TDAT"); s != "1503" {
		t.Errorf("TDAT = %q, want 1503", s)
	}
	if s := textOf(t, got, "TIME"); s != "1230" {
		t.Errorf("TIME = %q, want 1230", s)
	}

	warnings := got.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want one", warnings)
	}
	if warnings[0].Stage != "convert" || !strings.Contains(warnings[0].Message, "TDEN") {
		t.Errorf("warning = %v, want convert warning about TDEN", warnings[0])
	}
}

func TestConvertTag_AcrossTwoVersions(t *testing.T) {
	src := NewTag(V22)
	addText(src, "TT2", "Title")
	addText(src, "TYE", "1999")
	src.AddFrame(NewFrame(&PictureBody{FrameID: "PIC", MIMEType: "image/jpeg", PictureType: 3, Data: []byte{1}}))

	up, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"TIT2", "TDRC", "APIC"}
	if frames := frameStrings(up); !reflect.DeepEqual(frames, want) {
		t.Errorf("frames = %v, want %v", frames, want)
	}

	down, err := ConvertTag(up, V22, nil)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"TT2", "TYE", "PIC"}
	if frames := frameStrings(down); !reflect.DeepEqual(frames, want) {
		t.Errorf("frames = %v, want %v", frames, want)
	}
	if a, _ := down.FirstArtwork(); a.MIMEType != "image/jpeg" {
		t.Errorf("MIMEType = %q, want image/jpeg", a.MIMEType)
	}
}

func TestConvertTag_StatusFlags(t *testing.T) {
	src := NewTag(V23)
	src.AddFrame(&Frame{StatusFlags: 0x80 | 0x20, Body: &TextBody{FrameID: "TIT2", Text: "x"}})

	got, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := got.Frames()[0].StatusFlags; s != 0x40|0x10 {
		t.Errorf("StatusFlags = %#x, want %#x", s, 0x40|0x10)
	}
}

func TestConvertTag_DropsEncrypted(t *testing.T) {
	src := NewTag(V23)
	src.AddFrame(&Frame{FormatFlags: 0x40, Body: &EncryptedBody{FrameID: "TIT2", FormatFlags: 0x40, Data: []byte{1}}})

	got, err := ConvertTag(src, V24, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() || len(got.Warnings()) != 1 {
		t.Errorf("frames = %v, warnings = %v, want the encrypted frame dropped with a warning",
			frameStrings(got), got.Warnings())
	}
}

func TestConvertTag_LeavesSourceAlone(t *testing.T) {
	src := NewTag(V23)
	src.SetField(types.Title, "Original")
	src.SetField(types.Year, "2000")

	for _, target := range []Version{V23, V24} {
		got, err := ConvertTag(src, target, nil)
		if err != nil {
			t.Fatal(err)
		}
		got.SetField(types.Title, "Changed")
		if title := first(t, src, types.Title); title != "Original" {
			t.Errorf("source title = %q after editing a %v copy", title, target)
		}
	}
	if frames := frameStrings(src); !reflect.DeepEqual(frames, []string{"TIT2", "TYER"}) {
		t.Errorf("source frames = %v, want [TIT2 TYER]", frames)
	}
}

func TestConvertTag_InvalidTarget(t *testing.T) {
	if _, err := ConvertTag(NewTag(V23), Version(7), nil); err == nil {
		t.Error("ConvertTag() to version 7 should fail")
	}
}

func TestConvertStatusFlags(t *testing.T) {
	tests := []struct {
		status   byte
		from, to Version
		want     byte
	}{
		{0x80, V23, V24, 0x40},
		{0x40, V23, V24, 0x20},
		{0x20, V23, V24, 0x10},
		{0x70, V24, V23, 0xE0},
		{0xE0, V23, V22, 0},
		{0x1F, V23, V24, 0},
	}

	for _, tt := range tests {
		if got := convertStatusFlags(tt.status, tt.from, tt.to); got != tt.want {
			t.Errorf("convertStatusFlags(%#x, %v, %v) = %#x, want %#x", tt.status, tt.from, tt.to, got, tt.want)
		}
	}
}
