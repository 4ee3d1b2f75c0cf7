package binary

import "encoding/binary"

// Cursor reads forward through an in-memory buffer.
//
// A Cursor never panics: reads past the end return a *BoundsError and leave
// the position unchanged.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n int, what string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &BoundsError{What: what, Offset: int64(c.off), Length: n, Size: int64(len(c.buf))}
	}
	return c.buf[c.off : c.off+n], nil
}

// Next returns the next n bytes and advances past them. The returned slice
// aliases the cursor's buffer.
func (c *Cursor) Next(n int, what string) ([]byte, error) {
	b, err := c.Peek(n, what)
	if err != nil {
		return nil, err
	}
	c.off += n
	return b, nil
}

// Skip advances by n bytes.
func (c *Cursor) Skip(n int, what string) error {
	_, err := c.Next(n, what)
	return err
}

// Rest returns every unread byte and moves to the end.
func (c *Cursor) Rest() []byte {
	b := c.buf[c.off:]
	c.off = len(c.buf)
	return b
}

// Uint8 reads one byte.
func (c *Cursor) Uint8(what string) (byte, error) {
	b, err := c.Next(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint32 reads a big-endian uint32.
func (c *Cursor) Uint32(what string) (uint32, error) {
	b, err := c.Next(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Synchsafe reads a 4-byte synchsafe integer.
func (c *Cursor) Synchsafe(what string) (uint32, error) {
	b, err := c.Next(4, what)
	if err != nil {
		return 0, err
	}
	return DecodeSynchsafe(b), nil
}

// Uint32LE reads a little-endian uint32, as used by Vorbis comment lengths.
func (c *Cursor) Uint32LE(what string) (uint32, error) {
	b, err := c.Next(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
