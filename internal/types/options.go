package types

import "github.com/rs/zerolog"

// DefaultMaxDecompressedSize caps the inflated size of a compressed frame.
const DefaultMaxDecompressedSize = 16 << 20

// DefaultPadding is the padding written after the frames of a new ID3v2 tag.
const DefaultPadding = 1024

// Decrypter decrypts the body of an encrypted ID3v2 frame. method is the
// frame's encryption method symbol (see the ENCR frame).
type Decrypter interface {
	Decrypt(frameID string, method byte, data []byte) ([]byte, error)
}

// Options configures decoding and encoding. The root package builds it from
// functional options.
type Options struct {
	Logger zerolog.Logger

	// Strict turns the first frame-level failure into an error instead of
	// a warning.
	Strict bool

	// IgnoreWarnings drops collected warnings.
	IgnoreWarnings bool

	MaxDecompressedSize int
	Decrypter           Decrypter

	// Padding is the number of zero bytes written after ID3v2 frames.
	Padding int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Logger:              zerolog.Nop(),
		MaxDecompressedSize: DefaultMaxDecompressedSize,
		Padding:             DefaultPadding,
	}
}

// Warn records w unless warnings are ignored.
func (o *Options) Warn(list *[]Warning, w Warning) {
	o.Logger.Debug().Str("stage", w.Stage).Int64("offset", w.Offset).Msg(w.Message)
	if o.IgnoreWarnings {
		return
	}
	*list = append(*list, w)
}
