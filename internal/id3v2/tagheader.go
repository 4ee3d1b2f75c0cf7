package id3v2

import (
	"bytes"
	"fmt"
	"io"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// TagHeaderSize is the size of the "ID3" tag header.
const TagHeaderSize = 10

// Tag header flags.
const (
	flagUnsync         = 0x80
	flagExtendedHeader = 0x40 // compression in ID3v2.2
	flagFooter         = 0x10 // ID3v2.4 only
)

// TagHeader is the fixed header in front of an ID3v2 tag.
type TagHeader struct {
	Version  Version
	Revision byte
	Flags    byte
	Size     uint32 // tag size excluding this header
}

// Unsynchronised reports whether the whole tag is unsynchronised.
func (h TagHeader) Unsynchronised() bool { return h.Flags&flagUnsync != 0 }

// ReadTagHeader reads the tag header at the start of r.
func ReadTagHeader(sr *binutil.SafeReader) (TagHeader, error) {
	cr := binutil.NewChainReader(binutil.NewReader(sr, 0))
	magic := cr.String(3, "ID3 magic")
	major := binutil.ReadChained[uint8](cr, "ID3 major version")
	revision := binutil.ReadChained[uint8](cr, "ID3 revision")
	flags := binutil.ReadChained[uint8](cr, "ID3 flags")
	size := cr.Bytes(4, "ID3 size")
	if err := cr.Error(); err != nil {
		return TagHeader{}, &types.UnsupportedFormatError{Path: sr.Path(), Reason: "failed to read ID3v2 header"}
	}

	if magic != "ID3" {
		return TagHeader{}, &types.UnsupportedFormatError{Path: sr.Path(), Reason: "not an ID3v2 tag (missing ID3 header)"}
	}
	h := TagHeader{
		Version:  Version(major),
		Revision: revision,
		Flags:    flags,
		Size:     binutil.DecodeSynchsafe(size),
	}
	if !h.Version.Valid() {
		return TagHeader{}, &types.UnsupportedFormatError{
			Path:   sr.Path(),
			Reason: fmt.Sprintf("unsupported ID3v2 version: 2.%d", major),
		}
	}
	if h.Version == V22 && flags&flagExtendedHeader != 0 {
		return TagHeader{}, &types.UnsupportedFormatError{Path: sr.Path(), Reason: "ID3v2.2 tag compression is not supported"}
	}
	return h, nil
}

// ReadTag reads a complete ID3v2 tag from the start of r: the tag header,
// the extended header if any, and the frames.
func ReadTag(r io.ReaderAt, size int64, path string, o *types.Options) (*Tag, error) {
	if o == nil {
		o = types.DefaultOptions()
	}
	sr := binutil.NewSafeReader(r, size, path)
	h, err := ReadTagHeader(sr)
	if err != nil {
		return nil, err
	}

	truncated := false
	body := make([]byte, h.Size)
	if err := readFrames(sr, body); err != nil {
		if o.Strict {
			return nil, &types.CorruptedTagError{Path: path, Reason: err.Error(), Offset: TagHeaderSize}
		}
		// Decode whatever the file holds.
		avail := max(size-TagHeaderSize, 0)
		body = make([]byte, min(int64(h.Size), avail))
		if err := readFrames(sr, body); err != nil {
			return nil, err
		}
		o.Logger.Debug().Str("path", path).Uint32("declared", h.Size).Int("read", len(body)).Msg("tag truncated")
		truncated = true
	}

	// ID3v2.4 unsynchronises frame bodies only; the frame headers are
	// synchsafe and stay as written.
	if h.Unsynchronised() && h.Version != V24 {
		body = binutil.RemoveUnsync(body)
	}

	if h.Flags&flagExtendedHeader != 0 {
		skip, err := extendedHeaderSize(body, h.Version)
		if err != nil {
			return nil, &types.CorruptedTagError{Path: path, Reason: err.Error(), Offset: TagHeaderSize}
		}
		body = body[skip:]
	}

	t, err := decodeFrames(body, h.Version, h.Unsynchronised(), o)
	if err != nil {
		return nil, err
	}
	if truncated {
		t.warn(o, types.Warning{
			Stage:   "frames",
			Message: fmt.Sprintf("tag declares %d bytes, file holds %d", h.Size, size-TagHeaderSize),
			Offset:  TagHeaderSize,
		})
	}
	return t, nil
}

func readFrames(sr *binutil.SafeReader, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	return sr.ReadAt(body, TagHeaderSize, "ID3v2 frames")
}

// extendedHeaderSize returns the number of bytes the extended header
// occupies at the start of body.
func extendedHeaderSize(body []byte, v Version) (int, error) {
	c := binutil.NewCursor(body)
	var n int
	switch v {
	case V23:
		size, err := c.Uint32("extended header size")
		if err != nil {
			return 0, err
		}
		n = int(size) + 4
	case V24:
		size, err := c.Synchsafe("extended header size")
		if err != nil {
			return 0, err
		}
		n = int(size)
	}
	if n < 4 || n > len(body) {
		return 0, fmt.Errorf("extended header size %d out of range", n)
	}
	return n, nil
}

// WriteTag writes t as a complete tag: header, frames and padding zero
// bytes. The tag is never unsynchronised and has no extended header.
func WriteTag(w io.Writer, t *Tag, padding int) error {
	frames, err := Encode(t)
	if err != nil {
		return err
	}
	padding = max(padding, 0)

	size := len(frames) + padding
	if size > binutil.MaxSynchsafe {
		return fmt.Errorf("%w: tag is %d bytes", types.ErrFrameTooLarge, size)
	}

	sw := binutil.NewSafeWriter(w)
	if err := sw.WriteString("ID3"); err != nil {
		return err
	}
	if err := sw.WriteBytes([]byte{byte(t.version), 0, 0}); err != nil {
		return err
	}
	if err := sw.WriteSynchsafe(uint32(size)); err != nil {
		return err
	}
	if err := sw.WriteBytes(frames); err != nil {
		return err
	}
	return sw.WriteZeros(padding)
}

// Marshal returns t as a complete tag with padding bytes of padding.
func Marshal(t *Tag, padding int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTag(&buf, t, padding); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Splice replaces the tag at the start of data with t. Data without a
// leading tag gets t prepended. The bytes after the old tag are kept.
func Splice(data []byte, t *Tag, padding int) ([]byte, error) {
	rest := data
	if bytes.HasPrefix(data, []byte("ID3")) {
		h, err := ReadTagHeader(binutil.NewSafeReader(bytes.NewReader(data), int64(len(data)), ""))
		if err != nil {
			return nil, err
		}
		end := int64(TagHeaderSize) + int64(h.Size)
		if h.Version == V24 && h.Flags&flagFooter != 0 {
			end += TagHeaderSize
		}
		if end > int64(len(data)) {
			return nil, &types.CorruptedTagError{Reason: fmt.Sprintf("tag declares %d bytes, input holds %d", end, len(data))}
		}
		rest = data[end:]
	}

	tag, err := Marshal(t, padding)
	if err != nil {
		return nil, err
	}
	return append(tag, rest...), nil
}
