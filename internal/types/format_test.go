package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"ID3v2.2", []byte("ID3\x02\x00\x00\x00\x00\x00\x00"), FormatID3v22},
		{"ID3v2.3", []byte("ID3\x03\x00\x00\x00\x00\x00\x00"), FormatID3v23},
		{"ID3v2.4", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), FormatID3v24},
		{"FLAC", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC},
		{"Vorbis comment packet", []byte("\x03vorbis\x00\x00\x00\x00"), FormatOggVorbis},
		{"OpusTags packet", []byte("OpusTags\x00\x00\x00\x00"), FormatOpus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := DetectFormat(r, int64(len(tt.data)), "test")
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", []byte("ID3")},
		{"ID3v2.5", []byte("ID3\x05\x00\x00\x00\x00\x00\x00")},
		{"Ogg page", []byte("OggS\x00\x02\x00\x00")},
		{"garbage", []byte("RIFF\x00\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectBytes(tt.data)
			if err == nil {
				t.Fatalf("DetectBytes() = %v, want error", got)
			}
			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) {
				t.Errorf("DetectBytes() error = %T, want *UnsupportedFormatError", err)
			}
			if got != FormatUnknown {
				t.Errorf("DetectBytes() = %v, want %v", got, FormatUnknown)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatID3v23, "ID3v2.3"},
		{FormatFLAC, "FLAC"},
		{FormatOpus, "Opus"},
		{Format(99), "Format(99)"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"truncated", &TruncatedError{What: "frame header"}, ErrTruncated},
		{"invalid body", &InvalidFrameBodyError{ID: "TIT2", Reason: "empty"}, ErrInvalidFrameBody},
		{"unsupported field", &UnsupportedFieldError{Key: "COVER_ART", Format: FormatFLAC}, ErrUnsupportedField},
		{"no conversion", &NoConversionDefinedError{From: "EQUA", To: "EQU2"}, ErrNoConversionDefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.target)
			}
		})
	}
}

func TestArtwork_String(t *testing.T) {
	a := Artwork{Type: ArtworkFrontCover, MIMEType: "image/jpeg", Data: make([]byte, 2048), Width: 500, Height: 500}
	if got, want := a.String(), "Front cover (500x500 JPEG, 2KB)"; got != want {
		t.Errorf("Artwork.String() = %q, want %q", got, want)
	}

	linked := Artwork{Type: ArtworkBackCover, Linked: true, URL: "http://example.com/a.jpg"}
	if got, want := linked.String(), "Back cover (linked: http://example.com/a.jpg)"; got != want {
		t.Errorf("Artwork.String() = %q, want %q", got, want)
	}
}

func TestMIMEToImageFormat(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "JPG"},
		{"image/png", "PNG"},
		{"-->", "-->"},
		{"image/x", "x  "},
		{"", "   "},
	}

	for _, tt := range tests {
		if got := MIMEToImageFormat(tt.mime); got != tt.want {
			t.Errorf("MIMEToImageFormat(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
	if got := ImageFormatToMIME("JPG"); got != "image/jpeg" {
		t.Errorf("ImageFormatToMIME(JPG) = %q, want image/jpeg", got)
	}
}

func TestArtwork_MIME(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	tests := []struct {
		name    string
		artwork Artwork
		want    string
	}{
		{"explicit", Artwork{MIMEType: "image/gif", Data: png}, "image/gif"},
		{"sniffed png", Artwork{Data: png}, "image/png"},
		{"sniffed jpeg", Artwork{Data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}}, "image/jpeg"},
		{"not an image", Artwork{Data: []byte("plain text")}, ""},
		{"linked", Artwork{Linked: true, URL: "http://example.com/a.png"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.artwork.MIME(); got != tt.want {
				t.Errorf("Artwork.MIME() = %q, want %q", got, tt.want)
			}
		})
	}
}
