package audiotag

import (
	"github.com/rs/zerolog"

	"github.com/simonhull/audiotag/internal/types"
)

// Option configures decoding and encoding.
//
// Example:
//
//	tag, err := audiotag.Decode(data,
//	    audiotag.WithStrictParsing(),
//	    audiotag.WithLogger(logger),
//	)
type Option func(*decodeOptions)

type decodeOptions = types.Options

// Decrypter decrypts the body of an encrypted ID3v2 frame.
type Decrypter = types.Decrypter

func newOptions(opts []Option) *decodeOptions {
	o := types.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStrictParsing turns the first frame-level failure into an error.
//
// By default a frame whose body fails to decode is dropped and reported
// through Tag.Warnings. With strict parsing the decode fails instead with
// a *CorruptedTagError.
func WithStrictParsing() Option {
	return func(o *decodeOptions) {
		o.Strict = true
	}
}

// WithIgnoreWarnings discards warnings instead of collecting them.
func WithIgnoreWarnings() Option {
	return func(o *decodeOptions) {
		o.IgnoreWarnings = true
	}
}

// WithLogger sends decode diagnostics to logger. Events are logged at debug
// level; the default logger discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *decodeOptions) {
		o.Logger = logger
	}
}

// WithMaxDecompressedSize caps the inflated size of a compressed ID3v2
// frame. Frames over the limit are dropped with a warning. Values of zero
// or less keep the default of 16 MiB.
func WithMaxDecompressedSize(n int) Option {
	return func(o *decodeOptions) {
		if n > 0 {
			o.MaxDecompressedSize = n
		}
	}
}

// WithDecrypter decrypts encrypted ID3v2 frames while decoding. Without
// one, encrypted frames are kept opaque and written back unchanged.
func WithDecrypter(d Decrypter) Option {
	return func(o *decodeOptions) {
		o.Decrypter = d
	}
}

// WithPadding sets the number of zero bytes written after ID3v2 frames or
// as a FLAC PADDING block. Negative values mean no padding.
func WithPadding(n int) Option {
	return func(o *decodeOptions) {
		o.Padding = max(n, 0)
	}
}
