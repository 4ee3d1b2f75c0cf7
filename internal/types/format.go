package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/simonhull/audiotag/internal/binary"
)

// Format identifies a tag format (not a container format).
type Format int

const (
	// FormatUnknown represents an unknown or unsupported tag.
	FormatUnknown Format = iota // Unknown
	// FormatID3v22 represents an ID3v2.2 tag.
	FormatID3v22 // ID3v2.2
	// FormatID3v23 represents an ID3v2.3 tag.
	FormatID3v23 // ID3v2.3
	// FormatID3v24 represents an ID3v2.4 tag.
	FormatID3v24 // ID3v2.4
	// FormatFLAC represents FLAC metadata: a Vorbis comment block plus
	// PICTURE blocks.
	FormatFLAC // FLAC
	// FormatOggVorbis represents a Vorbis comment header packet.
	FormatOggVorbis // Ogg Vorbis
	// FormatOpus represents an OpusTags packet.
	FormatOpus // Opus
)

var formatNames = map[Format]string{
	FormatUnknown:   "Unknown",
	FormatID3v22:    "ID3v2.2",
	FormatID3v23:    "ID3v2.3",
	FormatID3v24:    "ID3v2.4",
	FormatFLAC:      "FLAC",
	FormatOggVorbis: "Ogg Vorbis",
	FormatOpus:      "Opus",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// IsID3v2 reports whether f is one of the ID3v2 versions.
func (f Format) IsID3v2() bool {
	return f == FormatID3v22 || f == FormatID3v23 || f == FormatID3v24
}

// Extensions returns common file extensions carrying this tag format.
func (f Format) Extensions() []string {
	switch f {
	case FormatID3v22, FormatID3v23, FormatID3v24:
		return []string{".mp3", ".aiff", ".wav"}
	case FormatFLAC:
		return []string{".flac"}
	case FormatOggVorbis:
		return []string{".ogg", ".oga"}
	case FormatOpus:
		return []string{".opus"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// DetectFormat determines the tag format by examining magic bytes at the
// start of a tag region.
//
// Recognized signatures:
//   - "ID3" followed by major version 2, 3 or 4
//   - "fLaC" (FLAC stream marker followed by metadata blocks)
//   - "\x03vorbis" (Vorbis comment header packet)
//   - "OpusTags" (Opus comment header packet)
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "input too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	n := min(size, 8)
	magic := make([]byte, n)
	if err := sr.ReadAt(magic, 0, "tag magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read tag header",
		}
	}

	switch {
	case bytes.HasPrefix(magic, []byte("ID3")):
		switch magic[3] {
		case 2:
			return FormatID3v22, nil
		case 3:
			return FormatID3v23, nil
		case 4:
			return FormatID3v24, nil
		}
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported ID3v2 version: 2.%d", magic[3]),
		}
	case bytes.HasPrefix(magic, []byte("fLaC")):
		return FormatFLAC, nil
	case bytes.HasPrefix(magic, []byte("\x03vorbis")):
		return FormatOggVorbis, nil
	case bytes.HasPrefix(magic, []byte("OpusTags")):
		return FormatOpus, nil
	case bytes.HasPrefix(magic, []byte("OggS")):
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "Ogg page data: pass the comment header packet instead",
		}
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "no tag signature found",
	}
}

// DetectBytes is DetectFormat over an in-memory tag.
func DetectBytes(data []byte) (Format, error) {
	return DetectFormat(bytes.NewReader(data), int64(len(data)), "")
}
