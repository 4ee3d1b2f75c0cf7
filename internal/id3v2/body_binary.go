package id3v2

import (
	"encoding/binary"
	"math"

	"github.com/simonhull/audiotag/internal/types"
)

// PictureBody is an APIC (PIC) attached picture frame. ID3v2.2 stores a
// three character image format instead of a MIME type; MIMEType always
// holds the MIME form.
type PictureBody struct {
	FrameID     string
	Encoding    byte
	MIMEType    string
	PictureType byte
	Description string
	Data        []byte
}

func (b *PictureBody) ID() string         { return b.FrameID }
func (b *PictureBody) Size(v Version) int { return encodedSize(b, v) }

func (b *PictureBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	out := []byte{enc}

	if len(b.FrameID) == 3 {
		out = append(out, types.MIMEToImageFormat(b.MIMEType)...)
	} else {
		mime, err := encodeTerminated(b.MIMEType, EncodingISO88591)
		if err != nil {
			return nil, invalidBody(b.FrameID, "encode MIME type", err)
		}
		out = append(out, mime...)
	}

	out = append(out, b.PictureType)
	desc, err := encodeTerminated(b.Description, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode description", err)
	}
	out = append(out, desc...)
	return append(out, b.Data...), nil
}

// Artwork returns the picture as generic artwork.
func (b *PictureBody) Artwork() types.Artwork {
	a := types.Artwork{
		Type:        types.ArtworkType(b.PictureType),
		MIMEType:    b.MIMEType,
		Description: b.Description,
		Data:        b.Data,
	}
	if b.MIMEType == types.LinkedMIMEType {
		a.Linked = true
		a.URL = string(b.Data)
		a.Data = nil
	}
	return a
}

func pictureBodyFromArtwork(id string, a types.Artwork, v Version) *PictureBody {
	b := &PictureBody{
		FrameID:     id,
		Encoding:    preferredEncoding(a.Description, v),
		MIMEType:    a.MIME(),
		PictureType: byte(a.Type),
		Description: a.Description,
		Data:        a.Data,
	}
	if a.Linked {
		b.MIMEType = types.LinkedMIMEType
		b.Data = []byte(a.URL)
	}
	return b
}

func parsePictureBody(id string, data []byte) (Body, error) {
	if len(data) < 1 {
		return nil, invalidBody(id, "missing text encoding", nil)
	}
	enc, rest := data[0], data[1:]
	body := &PictureBody{FrameID: id, Encoding: enc}

	if len(id) == 3 {
		if len(rest) < 3 {
			return nil, invalidBody(id, "missing image format", nil)
		}
		body.MIMEType = types.ImageFormatToMIME(string(rest[:3]))
		rest = rest[3:]
	} else {
		mime, tail, found := splitTerminated(rest, EncodingISO88591)
		if !found {
			return nil, invalidBody(id, "unterminated MIME type", nil)
		}
		body.MIMEType = string(mime)
		rest = tail
	}

	if len(rest) < 1 {
		return nil, invalidBody(id, "missing picture type", nil)
	}
	body.PictureType, rest = rest[0], rest[1:]

	head, tail, found := splitTerminated(rest, enc)
	if !found {
		return nil, invalidBody(id, "unterminated description", nil)
	}
	desc, err := decodeText(head, enc)
	if err != nil {
		return nil, invalidBody(id, "decode description", err)
	}
	body.Description = desc
	body.Data = cloneBytes(tail)
	return body, nil
}

// UniqueFileIDBody is a UFID (UFI) unique file identifier frame.
type UniqueFileIDBody struct {
	FrameID    string
	Owner      string
	Identifier []byte
}

func (b *UniqueFileIDBody) ID() string         { return b.FrameID }
func (b *UniqueFileIDBody) Size(v Version) int { return encodedSize(b, v) }

func (b *UniqueFileIDBody) Encode(Version) ([]byte, error) {
	owner, err := encodeTerminated(b.Owner, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode owner", err)
	}
	return append(owner, b.Identifier...), nil
}

func parseUniqueFileIDBody(id string, data []byte) (Body, error) {
	head, rest, found := splitTerminated(data, EncodingISO88591)
	if !found {
		return nil, invalidBody(id, "unterminated owner", nil)
	}
	owner, err := decodeText(head, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(id, "decode owner", err)
	}
	return &UniqueFileIDBody{FrameID: id, Owner: owner, Identifier: cloneBytes(rest)}, nil
}

// PopularimeterBody is a POPM (POP) popularimeter frame.
type PopularimeterBody struct {
	FrameID string
	Email   string
	Rating  byte
	Counter uint64
}

func (b *PopularimeterBody) ID() string         { return b.FrameID }
func (b *PopularimeterBody) Size(v Version) int { return encodedSize(b, v) }

// Encode writes the play counter with four bytes when it fits and eight
// otherwise.
func (b *PopularimeterBody) Encode(Version) ([]byte, error) {
	email, err := encodeTerminated(b.Email, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode email", err)
	}
	out := append(email, b.Rating)
	if b.Counter <= math.MaxUint32 {
		return binary.BigEndian.AppendUint32(out, uint32(b.Counter)), nil
	}
	return binary.BigEndian.AppendUint64(out, b.Counter), nil
}

func parsePopularimeterBody(id string, data []byte) (Body, error) {
	head, rest, found := splitTerminated(data, EncodingISO88591)
	if !found {
		return nil, invalidBody(id, "unterminated email", nil)
	}
	email, err := decodeText(head, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(id, "decode email", err)
	}
	body := &PopularimeterBody{FrameID: id, Email: email}
	if len(rest) == 0 {
		return body, nil
	}
	body.Rating, rest = rest[0], rest[1:]

	// The counter is optional and may be longer than four bytes.
	if len(rest) > 8 {
		return nil, invalidBody(id, "play counter longer than eight bytes", nil)
	}
	for _, c := range rest {
		body.Counter = body.Counter<<8 | uint64(c)
	}
	return body, nil
}
