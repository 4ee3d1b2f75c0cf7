package audiotag

import (
	"io"

	"github.com/simonhull/audiotag/internal/types"
)

// Format identifies a tag format.
type Format = types.Format

// Tag formats.
const (
	FormatUnknown   = types.FormatUnknown
	FormatID3v22    = types.FormatID3v22
	FormatID3v23    = types.FormatID3v23
	FormatID3v24    = types.FormatID3v24
	FormatFLAC      = types.FormatFLAC
	FormatOggVorbis = types.FormatOggVorbis
	FormatOpus      = types.FormatOpus
)

// DetectFormat determines the tag format from the magic bytes at the start
// of r.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}

// DetectBytes is DetectFormat for an in-memory tag.
func DetectBytes(data []byte) (Format, error) {
	return types.DetectBytes(data)
}
