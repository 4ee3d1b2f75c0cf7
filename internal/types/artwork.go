package types

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// Artwork represents embedded artwork (cover art, images).
//
// Artwork is the format-agnostic view of an ID3v2 attached picture, a FLAC
// PICTURE block, or an Ogg METADATA_BLOCK_PICTURE comment.
type Artwork struct {
	// Type of artwork (front cover, back cover, artist photo, etc.)
	Type ArtworkType

	// MIME type of the image data
	MIMEType string // "image/jpeg", "image/png", "image/gif"

	// Description of the artwork (optional)
	Description string

	// Image binary data. Empty for linked artwork.
	Data []byte

	// Dimensions (if available in metadata, otherwise 0)
	Width  int // Pixels
	Height int // Pixels

	ColorDepth        int
	IndexedColorCount int

	// Linked artwork points at an external image instead of embedding it.
	Linked bool
	URL    string
}

// ArtworkType categorizes the purpose/content of artwork.
//
// Types are based on ID3v2 APIC frame picture types and FLAC picture types.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type ArtworkType int

const (
	ArtworkOther             ArtworkType = iota // Other
	ArtworkIcon                                 // File icon (32x32 PNG)
	ArtworkOtherIcon                            // Other file icon
	ArtworkFrontCover                           // Front cover
	ArtworkBackCover                            // Back cover
	ArtworkLeaflet                              // Leaflet page
	ArtworkMedia                                // Media (CD/vinyl label)
	ArtworkLeadArtist                           // Lead artist/performer/soloist
	ArtworkArtist                               // Artist/performer
	ArtworkConductor                            // Conductor
	ArtworkBand                                 // Band/orchestra
	ArtworkComposer                             // Composer
	ArtworkLyricist                             // Lyricist/text writer
	ArtworkRecordingLocation                    // Recording location
	ArtworkDuringRecording                      // During recording
	ArtworkDuringPerformance                    // During performance
	ArtworkVideoCapture                         // Movie/video screen capture
	ArtworkBrightFish                           // A bright colored fish
	ArtworkIllustration                         // Illustration
	ArtworkBandLogotype                         // Band/artist logotype
	ArtworkPublisherLogotype                    // Publisher/studio logotype
)

var artworkTypeNames = [...]string{
	"Other", "File icon", "Other file icon", "Front cover", "Back cover",
	"Leaflet page", "Media", "Lead artist", "Artist", "Conductor", "Band",
	"Composer", "Lyricist", "Recording location", "During recording",
	"During performance", "Video capture", "Bright colored fish",
	"Illustration", "Band logotype", "Publisher logotype",
}

func (t ArtworkType) String() string {
	if t < 0 || int(t) >= len(artworkTypeNames) {
		return fmt.Sprintf("ArtworkType(%d)", int(t))
	}
	return artworkTypeNames[t]
}

// LinkedMIMEType is the MIME type written for artwork that stores a URL
// instead of image data. Other readers rely on this exact value.
const LinkedMIMEType = "-->"

// String returns a human-readable description of the artwork.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (a Artwork) String() string {
	if a.Linked {
		return fmt.Sprintf("%s (linked: %s)", a.Type, a.URL)
	}

	dims := ""
	if a.Width > 0 && a.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", a.Width, a.Height)
	}

	return fmt.Sprintf("%s (%s%s, %s)", a.Type, dims, mimeToFormat(a.MIMEType), formatSize(len(a.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}

// ImageFormatToMIME converts an ID3v2.2 three-letter image format to a MIME type.
func ImageFormatToMIME(format string) string {
	switch format {
	case "JPG", "jpg":
		return "image/jpeg"
	case "PNG", "png":
		return "image/png"
	case "GIF", "gif":
		return "image/gif"
	case "BMP", "bmp":
		return "image/bmp"
	case LinkedMIMEType:
		return LinkedMIMEType
	default:
		if format == "" {
			return ""
		}
		return "image/" + format
	}
}

// MIMEToImageFormat is the inverse of ImageFormatToMIME. The result is always
// three characters, padded with spaces where needed.
func MIMEToImageFormat(mime string) string {
	var f string
	switch mime {
	case "image/jpeg", "image/jpg":
		f = "JPG"
	case "image/png":
		f = "PNG"
	case "image/gif":
		f = "GIF"
	case "image/bmp":
		f = "BMP"
	case LinkedMIMEType:
		f = LinkedMIMEType
	default:
		f = "   "
		if len(mime) > len("image/") && mime[:6] == "image/" {
			f = mime[6:]
		}
	}
	if len(f) > 3 {
		f = f[:3]
	}
	for len(f) < 3 {
		f += " "
	}
	return f
}

// DetectMIME sniffs the MIME type of image data. It returns "" when the data
// is not a recognized image.
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	m := mimetype.Detect(data)
	for ; m != nil; m = m.Parent() {
		if len(m.String()) > len("image/") && m.String()[:6] == "image/" {
			return m.String()
		}
	}
	return ""
}

// MIME returns the artwork MIME type, sniffed from the data when unset.
func (a Artwork) MIME() string {
	if a.MIMEType != "" || a.Linked {
		return a.MIMEType
	}
	return DetectMIME(a.Data)
}
