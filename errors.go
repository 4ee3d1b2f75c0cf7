package audiotag

import (
	"github.com/simonhull/audiotag/internal/types"
)

// Errors returned by the codecs. Match the sentinels with errors.Is and the
// typed errors with errors.As.
var (
	ErrTruncated           = types.ErrTruncated
	ErrInvalidFrameID      = types.ErrInvalidFrameID
	ErrInvalidFrameBody    = types.ErrInvalidFrameBody
	ErrUnsupportedField    = types.ErrUnsupportedField
	ErrNoConversionDefined = types.ErrNoConversionDefined
	ErrFrameTooLarge       = types.ErrFrameTooLarge
)

type TruncatedError = types.TruncatedError

type InvalidFrameBodyError = types.InvalidFrameBodyError

// UnsupportedFieldError is returned for a key the tag format cannot hold.
type UnsupportedFieldError = types.UnsupportedFieldError

type NoConversionDefinedError = types.NoConversionDefinedError

// UnsupportedFormatError is returned when the input is not a known tag.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedTagError is returned when a tag structure is invalid, and for
// any frame-level failure under WithStrictParsing.
type CorruptedTagError = types.CorruptedTagError

// Warning is a non-fatal issue found while decoding.
type Warning = types.Warning
