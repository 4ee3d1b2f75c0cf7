package id3v2

import (
	"encoding/binary"
	"errors"
	"fmt"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// FrameHeader is the fixed-size header in front of every frame body.
type FrameHeader struct {
	ID          string
	Size        uint32
	StatusFlags byte
	FormatFlags byte
}

// ReadHeader reads one frame header at the cursor.
//
// It returns types.ErrPaddingReached without advancing when the identifier
// is all zero bytes, an error matching types.ErrTruncated when the header or
// the declared body does not fit in the remaining bytes, and an error
// matching types.ErrInvalidFrameID for identifiers outside [A-Z0-9].
func ReadHeader(c *binutil.Cursor, v Version) (FrameHeader, error) {
	idLen, hdrLen := v.IDLen(), v.HeaderLen()

	if isPadding(c, idLen) {
		return FrameHeader{}, types.ErrPaddingReached
	}

	raw, err := c.Peek(hdrLen, "frame header")
	if err != nil {
		return FrameHeader{}, &types.TruncatedError{
			What:      "frame header",
			Offset:    int64(c.Offset()),
			Need:      hdrLen,
			Available: c.Remaining(),
		}
	}

	id := string(raw[:idLen])
	if !validFrameID(raw[:idLen]) {
		return FrameHeader{}, fmt.Errorf("%w: %q at offset %d", types.ErrInvalidFrameID, id, c.Offset())
	}

	h := FrameHeader{ID: id}
	switch v {
	case V22:
		h.Size = binutil.DecodeUint24(raw[3:6])
	case V23:
		h.Size = binary.BigEndian.Uint32(raw[4:8])
		h.StatusFlags, h.FormatFlags = raw[8], raw[9]
	case V24:
		all, _ := c.Peek(c.Remaining(), "frame region")
		h.Size = v24FrameSize(raw[4:8], all[hdrLen:])
		h.StatusFlags, h.FormatFlags = raw[8], raw[9]
	default:
		return FrameHeader{}, fmt.Errorf("unsupported ID3v2 version %d", v)
	}

	offset := c.Offset()
	_ = c.Skip(hdrLen, "frame header")

	if int64(h.Size) > int64(c.Remaining()) {
		return h, &types.TruncatedError{
			What:      "frame " + id + " body",
			Offset:    int64(offset),
			Need:      int(h.Size),
			Available: c.Remaining(),
		}
	}

	return h, nil
}

// isPadding reports whether the next identifier (or whatever is left of the
// region, if shorter) is all zero bytes.
func isPadding(c *binutil.Cursor, idLen int) bool {
	n := min(idLen, c.Remaining())
	if n == 0 {
		return false
	}
	b, _ := c.Peek(n, "padding")
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func validFrameID(id []byte) bool {
	for _, b := range id {
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return false
		}
	}
	return len(id) > 0
}

// v24FrameSize decodes a v2.4 frame size. Some writers (notably older
// iTunes) store plain big-endian sizes in v2.4 tags. A size byte with its
// high bit set can only be plain; otherwise the plain reading wins only when
// the synchsafe reading does not land on a frame boundary and the plain one
// does.
func v24FrameSize(size []byte, after []byte) uint32 {
	plain := binary.BigEndian.Uint32(size)
	for _, b := range size {
		if b&0x80 != 0 {
			return plain
		}
	}

	synchsafe := binutil.DecodeSynchsafe(size)
	if synchsafe == plain || frameBoundary(after, synchsafe) {
		return synchsafe
	}
	if frameBoundary(after, plain) {
		return plain
	}
	return synchsafe
}

// frameBoundary reports whether a frame body of n bytes ends where another
// frame, padding, or the region itself ends.
func frameBoundary(after []byte, n uint32) bool {
	if int64(n) > int64(len(after)) {
		return false
	}
	rest := after[n:]
	if len(rest) == 0 || rest[0] == 0 {
		return true
	}
	return len(rest) >= 4 && validFrameID(rest[:4])
}

// WriteHeader writes a frame header for a body of size bytes.
func WriteHeader(sw *binutil.SafeWriter, v Version, id string, size uint32, status, format byte) error {
	if len(id) != v.IDLen() {
		return fmt.Errorf("frame identifier %q has wrong length for %s", id, v)
	}
	if size > v.MaxFrameSize() {
		return fmt.Errorf("%w: %s body is %d bytes, %s allows %d", types.ErrFrameTooLarge, id, size, v, v.MaxFrameSize())
	}

	if err := sw.WriteString(id); err != nil {
		return err
	}

	var err error
	switch v {
	case V22:
		return sw.WriteUint24(size)
	case V23:
		err = binutil.Write[uint32](sw, size)
	case V24:
		err = sw.WriteSynchsafe(size)
	default:
		return fmt.Errorf("unsupported ID3v2 version %d", v)
	}
	if err != nil {
		return err
	}

	if err := binutil.Write[uint8](sw, status); err != nil {
		return err
	}
	return binutil.Write[uint8](sw, format)
}

// isTerminal reports whether err ends frame iteration.
func isTerminal(err error) bool {
	return errors.Is(err, types.ErrPaddingReached) ||
		errors.Is(err, types.ErrTruncated) ||
		errors.Is(err, types.ErrInvalidFrameID)
}
