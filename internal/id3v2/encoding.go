package id3v2

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encodings, as stored in the first byte of text-bearing bodies.
const (
	EncodingISO88591 byte = 0
	EncodingUTF16    byte = 1 // UTF-16 with byte order mark
	EncodingUTF16BE  byte = 2 // ID3v2.4 only
	EncodingUTF8     byte = 3 // ID3v2.4 only
)

var (
	latin1    = charmap.ISO8859_1
	utf16LE   = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE   = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	bomLE     = []byte{0xFF, 0xFE}
	bomBE     = []byte{0xFE, 0xFF}
	valueSep  = "\x00"
	errBadEnc = errors.New("unknown text encoding")
)

// terminatorSize returns the length of a string terminator in enc.
func terminatorSize(enc byte) int {
	if enc == EncodingUTF16 || enc == EncodingUTF16BE {
		return 2
	}
	return 1
}

// findNullTerminator returns the index of the first terminator in data,
// or -1. UTF-16 terminators must be aligned to a code unit.
func findNullTerminator(data []byte, enc byte) int {
	if terminatorSize(enc) == 1 {
		for i, b := range data {
			if b == 0 {
				return i
			}
		}
		return -1
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}

// splitTerminated splits data at the first terminator. When there is no
// terminator, all of data is the head.
func splitTerminated(data []byte, enc byte) (head, rest []byte, found bool) {
	idx := findNullTerminator(data, enc)
	if idx < 0 {
		return data, nil, false
	}
	return data[:idx], data[idx+terminatorSize(enc):], true
}

// decodeText decodes one string (no terminators) in the given encoding.
func decodeText(data []byte, enc byte) (string, error) {
	switch enc {
	case EncodingISO88591:
		b, err := latin1.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(b), nil

	case EncodingUTF16:
		dec := utf16BE
		switch {
		case len(data) >= 2 && data[0] == bomLE[0] && data[1] == bomLE[1]:
			dec, data = utf16LE, data[2:]
		case len(data) >= 2 && data[0] == bomBE[0] && data[1] == bomBE[1]:
			data = data[2:]
		}
		b, err := dec.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(b), nil

	case EncodingUTF16BE:
		b, err := utf16BE.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(b), nil

	case EncodingUTF8:
		return string(data), nil

	default:
		return "", fmt.Errorf("%w %d", errBadEnc, enc)
	}
}

// encodeText encodes s without a terminator. UTF-16 output always carries
// a little-endian byte order mark.
func encodeText(s string, enc byte) ([]byte, error) {
	switch enc {
	case EncodingISO88591:
		return latin1.NewEncoder().Bytes([]byte(s))
	case EncodingUTF16:
		b, err := utf16LE.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, err
		}
		return append(append([]byte{}, bomLE...), b...), nil
	case EncodingUTF16BE:
		return utf16BE.NewEncoder().Bytes([]byte(s))
	case EncodingUTF8:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("%w %d", errBadEnc, enc)
	}
}

// decodeValues decodes terminator-separated strings and joins them with
// NUL. A single trailing terminator is ignored.
func decodeValues(data []byte, enc byte) (string, error) {
	var values []string
	for {
		head, rest, found := splitTerminated(data, enc)
		s, err := decodeText(head, enc)
		if err != nil {
			return "", err
		}
		values = append(values, s)
		if !found {
			break
		}
		if len(rest) == 0 {
			break
		}
		data = rest
	}
	return strings.Join(values, valueSep), nil
}

// encodeValues is the inverse of decodeValues. A list ending in an empty
// value gets one extra terminator, which decodeValues strips again.
func encodeValues(joined string, enc byte) ([]byte, error) {
	var out []byte
	values := strings.Split(joined, valueSep)
	for i, v := range values {
		if i > 0 {
			out = append(out, make([]byte, terminatorSize(enc))...)
		}
		b, err := encodeText(v, enc)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if len(values) > 1 && values[len(values)-1] == "" {
		out = append(out, make([]byte, terminatorSize(enc))...)
	}
	return out, nil
}

// encodeTerminated encodes s followed by a terminator.
func encodeTerminated(s string, enc byte) ([]byte, error) {
	b, err := encodeText(s, enc)
	if err != nil {
		return nil, err
	}
	return append(b, make([]byte, terminatorSize(enc))...), nil
}

// isLatin1 reports whether s can be stored as ISO-8859-1.
func isLatin1(s string) bool {
	_, err := latin1.NewEncoder().String(s)
	return err == nil
}

// writableEncoding returns the encoding actually written for enc in v.
// ID3v2.2 and ID3v2.3 only know ISO-8859-1 and UTF-16.
func writableEncoding(enc byte, v Version) byte {
	if enc > EncodingUTF8 {
		return EncodingUTF16
	}
	if v != V24 && enc > EncodingUTF16 {
		return EncodingUTF16
	}
	return enc
}

// preferredEncoding picks the encoding for a newly created text field.
func preferredEncoding(s string, v Version) byte {
	if isLatin1(s) {
		return EncodingISO88591
	}
	if v == V24 {
		return EncodingUTF8
	}
	return EncodingUTF16
}
