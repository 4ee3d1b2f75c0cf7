package audiotag

import (
	"github.com/simonhull/audiotag/internal/types"
)

// Artwork is an embedded or linked picture: an ID3v2 APIC/PIC frame, a
// FLAC PICTURE block or a METADATA_BLOCK_PICTURE comment.
type Artwork = types.Artwork

// ArtworkType is the picture type shared by ID3v2 and FLAC.
type ArtworkType = types.ArtworkType

// Picture types
const (
	ArtworkOther             = types.ArtworkOther
	ArtworkIcon              = types.ArtworkIcon
	ArtworkOtherIcon         = types.ArtworkOtherIcon
	ArtworkFrontCover        = types.ArtworkFrontCover
	ArtworkBackCover         = types.ArtworkBackCover
	ArtworkLeaflet           = types.ArtworkLeaflet
	ArtworkMedia             = types.ArtworkMedia
	ArtworkLeadArtist        = types.ArtworkLeadArtist
	ArtworkArtist            = types.ArtworkArtist
	ArtworkConductor         = types.ArtworkConductor
	ArtworkBand              = types.ArtworkBand
	ArtworkComposer          = types.ArtworkComposer
	ArtworkLyricist          = types.ArtworkLyricist
	ArtworkRecordingLocation = types.ArtworkRecordingLocation
	ArtworkDuringRecording   = types.ArtworkDuringRecording
	ArtworkDuringPerformance = types.ArtworkDuringPerformance
	ArtworkVideoCapture      = types.ArtworkVideoCapture
	ArtworkBrightFish        = types.ArtworkBrightFish
	ArtworkIllustration      = types.ArtworkIllustration
	ArtworkBandLogotype      = types.ArtworkBandLogotype
	ArtworkPublisherLogotype = types.ArtworkPublisherLogotype
)

// LinkedMIMEType marks artwork that stores a URL instead of image data.
const LinkedMIMEType = types.LinkedMIMEType

// ImageFormatToMIME converts an ID3v2.2 three-letter image format such as
// "PNG" to a MIME type.
func ImageFormatToMIME(format string) string {
	return types.ImageFormatToMIME(format)
}

// MIMEToImageFormat is the inverse of ImageFormatToMIME.
func MIMEToImageFormat(mime string) string {
	return types.MIMEToImageFormat(mime)
}
