// Package registry manages the format-specific codecs for tag formats.
package registry

import (
	"io"
	"sync"

	"github.com/simonhull/audiotag/internal/types"
)

// Decoder is the interface all tag decoders implement.
type Decoder interface {
	// Decode decodes a complete tag: an ID3v2 tag with its header, a FLAC
	// metadata region, or a Vorbis comment packet.
	Decode(data []byte, o *types.Options) (types.Tag, error)
}

// Encoder is the interface tag encoders implement.
type Encoder interface {
	// Encode is the inverse of the matching Decoder.
	Encode(t types.Tag, o *types.Options) ([]byte, error)
}

// Reader is an optional interface for decoders that can read a tag from
// the start of a file without loading the rest of it.
type Reader interface {
	Read(r io.ReaderAt, size int64, path string, o *types.Options) (types.Tag, error)
}

var (
	mu       sync.RWMutex
	decoders = make(map[types.Format]Decoder)
	encoders = make(map[types.Format]Encoder)
)

// Register registers a decoder for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, d Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[format] = d
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.Format) Decoder {
	mu.RLock()
	defer mu.RUnlock()
	return decoders[format]
}

// RegisterEncoder registers an encoder for a format.
// This is called by format packages during initialization (init functions).
func RegisterEncoder(format types.Format, e Encoder) {
	mu.Lock()
	defer mu.Unlock()
	encoders[format] = e
}

// GetEncoder returns the encoder for a given format.
// Returns nil if no encoder is registered for the format.
func GetEncoder(format types.Format) Encoder {
	mu.RLock()
	defer mu.RUnlock()
	return encoders[format]
}
