package types

import (
	"iter"
	"slices"
)

// Tag is the field-oriented API shared by every tag format.
//
// Field values are strings. Keys a format cannot represent fail with
// *UnsupportedFieldError. CoverArt is never a text field: use the artwork
// methods instead.
type Tag interface {
	// Format reports the tag format the tag encodes to.
	Format() Format

	// SetField makes value the only value of key.
	SetField(key FieldKey, value string) error
	// AddField appends value to key.
	AddField(key FieldKey, value string) error
	// GetFirst returns the earliest value of key, or "" if there is none.
	GetFirst(key FieldKey) (string, error)
	// GetAll returns every value of key in insertion order.
	GetAll(key FieldKey) ([]string, error)
	// DeleteField removes every value of key.
	DeleteField(key FieldKey) error
	HasField(key FieldKey) bool

	FieldCount() int
	IsEmpty() bool

	Artwork() []Artwork
	SetArtwork(a Artwork) error
	AddArtwork(a Artwork) error
	DeleteArtwork()

	// Warnings returns the non-fatal issues collected while decoding.
	Warnings() []Warning
}

// All returns an iterator over every key t holds a value for.
//
// Keys are yielded in FieldKey declaration order; values in insertion
// order. CoverArt is skipped.
//
// Example:
//
//	for key, values := range types.All(tag) {
//		fmt.Printf("%s: %v\n", key, values)
//	}
func All(t Tag) iter.Seq2[FieldKey, []string] {
	return func(yield func(FieldKey, []string) bool) {
		for _, key := range AllFieldKeys() {
			if key == CoverArt {
				continue
			}
			values, err := t.GetAll(key)
			if err != nil || len(values) == 0 {
				continue
			}
			if !yield(key, values) {
				return
			}
		}
	}
}

// Filter returns an iterator over the fields of t whose key satisfies predicate.
func Filter(t Tag, predicate func(FieldKey) bool) iter.Seq2[FieldKey, []string] {
	return func(yield func(FieldKey, []string) bool) {
		for key, values := range All(t) {
			if predicate(key) && !yield(key, values) {
				return
			}
		}
	}
}

// Copy copies every text field and artwork from src to dst. Keys dst cannot
// represent are returned as warnings rather than errors.
func Copy(dst, src Tag) ([]Warning, error) {
	var warnings []Warning
	for key, values := range All(src) {
		if err := dst.DeleteField(key); err != nil {
			warnings = append(warnings, Warning{Stage: "copy", Message: err.Error()})
			continue
		}
		for _, v := range values {
			if err := dst.AddField(key, v); err != nil {
				warnings = append(warnings, Warning{Stage: "copy", Message: err.Error()})
				break
			}
		}
	}

	dst.DeleteArtwork()
	for _, a := range src.Artwork() {
		if err := dst.AddArtwork(a); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

// Equal reports whether a and b hold the same text fields and artwork.
func Equal(a, b Tag) bool {
	seen := 0
	for key, va := range All(a) {
		vb, err := b.GetAll(key)
		if err != nil || !slices.Equal(va, vb) {
			return false
		}
		seen++
	}
	for range All(b) {
		seen--
	}
	if seen != 0 {
		return false
	}

	aa, ab := a.Artwork(), b.Artwork()
	return slices.EqualFunc(aa, ab, func(x, y Artwork) bool {
		return x.Type == y.Type && x.MIMEType == y.MIMEType &&
			x.Description == y.Description && slices.Equal(x.Data, y.Data) &&
			x.Linked == y.Linked && x.URL == y.URL
	})
}
