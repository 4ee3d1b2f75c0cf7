package id3v2

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// rawFrame builds one frame with the header layout of v. The declared size
// is always the real body length.
func rawFrame(v Version, id string, status, format byte, body []byte) []byte {
	var out []byte
	out = append(out, id...)
	switch v {
	case V22:
		out = append(out, binutil.EncodeUint24(uint32(len(body)))...)
		return append(out, body...)
	case V23:
		out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	case V24:
		out = append(out, binutil.EncodeSynchsafe(uint32(len(body)))...)
	}
	out = append(out, status, format)
	return append(out, body...)
}

// textFrame builds an ISO-8859-1 text frame.
func textFrame(v Version, id, text string) []byte {
	return rawFrame(v, id, 0, 0, append([]byte{EncodingISO88591}, text...))
}

// rawTag wraps a frame region in an ID3 tag header.
func rawTag(v Version, flags byte, region []byte) []byte {
	out := []byte{'I', 'D', '3', byte(v), 0, flags}
	out = append(out, binutil.EncodeSynchsafe(uint32(len(region)))...)
	return append(out, region...)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func deflate(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// decodeRegion decodes a frame region with default options.
func decodeRegion(t testing.TB, v Version, region []byte) *Tag {
	t.Helper()
	tag, err := Decode(region, v, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return tag
}

// first returns the first value of key, failing the test on error.
func first(t testing.TB, tag *Tag, key types.FieldKey) string {
	t.Helper()
	s, err := tag.GetFirst(key)
	if err != nil {
		t.Fatalf("GetFirst(%s) error = %v", key, err)
	}
	return s
}
