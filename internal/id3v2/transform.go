package id3v2

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// payload is a frame body with its format flag prefixes removed.
type payload struct {
	data      []byte
	group     byte
	grouped   bool
	encrypted *EncryptedBody
}

// unwrap strips the format flag prefixes from raw and undoes per-frame
// unsynchronisation, decryption and compression, in that order.
//
// An encrypted frame with no Decrypter comes back as an EncryptedBody
// carrying raw unchanged.
func unwrap(h FrameHeader, raw []byte, v Version, o *types.Options) (payload, error) {
	f := flagsFor(v)
	if f == (flagBits{}) || h.FormatFlags == 0 {
		return payload{data: raw}, nil
	}

	flags := h.FormatFlags
	data := raw
	if f.unsync != 0 && flags&f.unsync != 0 {
		data = binutil.RemoveUnsync(data)
	}

	c := binutil.NewCursor(data)
	var (
		p          payload
		method     byte
		declared   uint32
		hasDeclare bool
		err        error
	)

	readPrefix := func(what string) byte {
		if err != nil {
			return 0
		}
		var b byte
		b, err = c.Uint8(what)
		return b
	}

	switch v {
	case V23:
		if flags&f.compression != 0 {
			declared, err = c.Uint32("decompressed size")
			hasDeclare = true
		}
		if flags&f.encryption != 0 {
			method = readPrefix("encryption method")
		}
		if flags&f.grouping != 0 {
			p.group, p.grouped = readPrefix("group identifier"), true
		}
	case V24:
		if flags&f.grouping != 0 {
			p.group, p.grouped = readPrefix("group identifier"), true
		}
		if flags&f.encryption != 0 {
			method = readPrefix("encryption method")
		}
		if flags&f.dataLengthIndicator != 0 && err == nil {
			declared, err = c.Synchsafe("data length indicator")
			hasDeclare = true
		}
	}
	if err != nil {
		return payload{}, invalidBody(h.ID, "frame flag prefix", err)
	}

	body := c.Rest()

	if flags&f.encryption != 0 {
		if o.Decrypter == nil {
			p.encrypted = &EncryptedBody{
				FrameID:     h.ID,
				FormatFlags: h.FormatFlags,
				Method:      method,
				Data:        cloneBytes(raw),
			}
			return p, nil
		}
		body, err = o.Decrypter.Decrypt(h.ID, method, body)
		if err != nil {
			return payload{}, invalidBody(h.ID, "decrypt", err)
		}
	}

	if flags&f.compression != 0 {
		body, err = inflate(body, o.MaxDecompressedSize)
		if err != nil {
			return payload{}, invalidBody(h.ID, "decompress", err)
		}
		if hasDeclare && uint32(len(body)) != declared {
			return payload{}, invalidBody(h.ID,
				fmt.Sprintf("decompressed to %d bytes, header declares %d", len(body), declared), nil)
		}
	}

	p.data = body
	return p, nil
}

// inflate decompresses a zlib stream, falling back to a raw deflate stream
// for writers that omit the zlib header. Output beyond limit bytes is an error.
func inflate(data []byte, limit int) ([]byte, error) {
	if limit <= 0 {
		limit = types.DefaultMaxDecompressedSize
	}

	var r io.ReadCloser
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err == nil {
		r = zr
	} else {
		r = flate.NewReader(bytes.NewReader(data))
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, fmt.Errorf("%w: exceeds %d byte limit", types.ErrFrameTooLarge, limit)
	}
	return out, nil
}
