package types

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match these with errors.Is.
var (
	// ErrPaddingReached is not a failure: the frame region continues with
	// padding and iteration should stop.
	ErrPaddingReached = errors.New("padding reached")

	ErrTruncated           = errors.New("truncated")
	ErrInvalidFrameID      = errors.New("invalid frame identifier")
	ErrInvalidFrameBody    = errors.New("invalid frame body")
	ErrUnsupportedField    = errors.New("unsupported field")
	ErrNoConversionDefined = errors.New("no conversion defined")
	ErrFrameTooLarge       = errors.New("frame too large")
)

// TruncatedError is returned when fewer bytes remain than a structure declares.
type TruncatedError struct {
	What      string
	Offset    int64
	Need      int
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated %s at offset %d: need %d bytes, have %d",
		e.What, e.Offset, e.Need, e.Available)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// InvalidFrameBodyError is returned when a recognized frame fails to decode.
type InvalidFrameBodyError struct {
	ID     string
	Reason string
	Err    error
}

func (e *InvalidFrameBodyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s frame body: %s: %v", e.ID, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s frame body: %s", e.ID, e.Reason)
}

func (e *InvalidFrameBodyError) Is(target error) bool { return target == ErrInvalidFrameBody }

func (e *InvalidFrameBodyError) Unwrap() error { return e.Err }

// UnsupportedFieldError is returned when a field operation has no mapping
// for the tag it was applied to.
type UnsupportedFieldError struct {
	Key    string
	Format Format
	Reason string
}

func (e *UnsupportedFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %s not supported by %s: %s", e.Key, e.Format, e.Reason)
	}
	return fmt.Sprintf("field %s not supported by %s", e.Key, e.Format)
}

func (e *UnsupportedFieldError) Is(target error) bool { return target == ErrUnsupportedField }

// NoConversionDefinedError is returned when a frame body cannot be converted
// to the requested identifier.
type NoConversionDefinedError struct {
	From string
	To   string
}

func (e *NoConversionDefinedError) Error() string {
	return fmt.Sprintf("no conversion defined from %s to %s", e.From, e.To)
}

func (e *NoConversionDefinedError) Is(target error) bool { return target == ErrNoConversionDefined }

// UnsupportedFormatError is returned when the input is not a tag this
// package understands.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return "unsupported format: " + e.Reason
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedTagError is returned when the tag structure itself is invalid.
type CorruptedTagError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupted tag at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue encountered while decoding.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A frame whose body failed to decode (the frame is dropped)
//   - A frame header that ran past the end of the tag
//   - A comment without a '=' separator
//   - A frame dropped during version conversion
type Warning struct {
	// Stage where the warning occurred
	Stage string // "frames", "comments", "pictures", "convert"

	// Warning message
	Message string

	// Offset inside the tag where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
