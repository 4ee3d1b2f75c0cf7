package id3v2

import (
	"bytes"
	"errors"
	"fmt"

	binutil "github.com/simonhull/audiotag/internal/binary"
	"github.com/simonhull/audiotag/internal/types"
)

// Decode decodes a frame region: the bytes between the tag header (and
// extended header) and the end of the tag, with whole-tag
// unsynchronisation already removed.
//
// Frame-level failures become warnings and decoding goes on with the next
// frame. A truncated or invalid header ends the region. With o.Strict the
// first failure is returned instead.
func Decode(data []byte, v Version, o *types.Options) (*Tag, error) {
	return decodeFrames(data, v, false, o)
}

// decodeFrames decodes a frame region. unsynced marks an ID3v2.4 tag whose
// header sets unsynchronisation: there the flag applies to every frame
// body, so it is folded into each frame's own format flag and undone once.
func decodeFrames(data []byte, v Version, unsynced bool, o *types.Options) (*Tag, error) {
	if !v.Valid() {
		return nil, &types.UnsupportedFormatError{Reason: fmt.Sprintf("unsupported ID3v2 version 2.%d", byte(v))}
	}
	if o == nil {
		o = types.DefaultOptions()
	}

	t := NewTag(v)
	c := binutil.NewCursor(data)
	log := o.Logger.With().Str("version", v.String()).Logger()

	for c.Remaining() > 0 {
		start := c.Offset()
		h, err := ReadHeader(c, v)
		if errors.Is(err, types.ErrPaddingReached) {
			log.Debug().Int("offset", start).Msg("padding reached")
			break
		}
		if err != nil {
			if o.Strict {
				return nil, err
			}
			t.warn(o, types.Warning{Stage: "frames", Message: err.Error(), Offset: int64(start)})
			if isTerminal(err) {
				break
			}
			continue
		}

		raw, _ := c.Next(int(h.Size), "frame body")
		format := h.FormatFlags
		if unsynced && v == V24 {
			h.FormatFlags |= flagsFor(v).unsync
		}
		body, err := BuildBody(h, raw, v, o)
		if err != nil {
			if o.Strict {
				return nil, err
			}
			log.Debug().Str("frame", h.ID).Err(err).Msg("dropping frame")
			t.warn(o, types.Warning{Stage: "frames", Message: err.Error(), Offset: int64(start)})
			continue
		}

		t.frames = append(t.frames, &Frame{
			StatusFlags: h.StatusFlags,
			FormatFlags: format,
			Body:        body,
		})
	}

	return t, nil
}

// Encode encodes the frames of t as a frame region, without tag header or
// padding.
//
// Every frame is written uncompressed with a header size equal to its
// encoded body. An EncryptedBody is written with its original format flags.
func Encode(t *Tag) ([]byte, error) {
	var buf bytes.Buffer
	sw := binutil.NewSafeWriter(&buf)
	for _, f := range t.frames {
		if err := writeFrame(sw, t.version, f); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writeFrame(sw *binutil.SafeWriter, v Version, f *Frame) error {
	data, err := f.Body.Encode(v)
	if err != nil {
		return err
	}

	var format byte
	if eb, ok := f.Body.(*EncryptedBody); ok {
		format = eb.FormatFlags
	}
	if v == V22 {
		format = 0
	}

	if err := WriteHeader(sw, v, f.ID(), uint32(len(data)), f.StatusFlags, format); err != nil {
		return fmt.Errorf("writing frame %s: %w", f.ID(), err)
	}
	return sw.WriteBytes(data)
}
