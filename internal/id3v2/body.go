package id3v2

import (
	"bytes"
	"strings"

	"github.com/simonhull/audiotag/internal/types"
)

// Body is a decoded frame body. Every body knows the identifier it is
// written under and its own encoded length.
type Body interface {
	ID() string
	Encode(v Version) ([]byte, error)
	Size(v Version) int
}

func encodedSize(b Body, v Version) int {
	data, err := b.Encode(v)
	if err != nil {
		return 0
	}
	return len(data)
}

func invalidBody(id, reason string, err error) error {
	return &types.InvalidFrameBodyError{ID: id, Reason: reason, Err: err}
}

// TextBody is a T*** text information frame. Multiple values are joined
// with NUL.
type TextBody struct {
	FrameID  string
	Encoding byte
	Text     string
}

func (b *TextBody) ID() string             { return b.FrameID }
func (b *TextBody) Size(v Version) int     { return encodedSize(b, v) }
func (b *TextBody) Values() []string       { return strings.Split(b.Text, valueSep) }
func (b *TextBody) SetValues(vs ...string) { b.Text = strings.Join(vs, valueSep) }

func (b *TextBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	text, err := encodeValues(b.Text, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode text", err)
	}
	return append([]byte{enc}, text...), nil
}

func parseTextBody(id string, data []byte) (Body, error) {
	if len(data) < 1 {
		return nil, invalidBody(id, "missing text encoding", nil)
	}
	text, err := decodeValues(data[1:], data[0])
	if err != nil {
		return nil, invalidBody(id, "decode text", err)
	}
	return &TextBody{FrameID: id, Encoding: data[0], Text: text}, nil
}

// UserTextBody is a TXXX (TXX) user-defined text frame. The description
// is the frame's sub-id.
type UserTextBody struct {
	FrameID     string
	Encoding    byte
	Description string
	Value       string
}

func (b *UserTextBody) ID() string         { return b.FrameID }
func (b *UserTextBody) Size(v Version) int { return encodedSize(b, v) }

func (b *UserTextBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	desc, err := encodeTerminated(b.Description, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode description", err)
	}
	value, err := encodeValues(b.Value, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode value", err)
	}
	return append(append([]byte{enc}, desc...), value...), nil
}

func parseUserTextBody(id string, data []byte) (Body, error) {
	if len(data) < 1 {
		return nil, invalidBody(id, "missing text encoding", nil)
	}
	enc := data[0]
	head, rest, _ := splitTerminated(data[1:], enc)
	desc, err := decodeText(head, enc)
	if err != nil {
		return nil, invalidBody(id, "decode description", err)
	}
	value, err := decodeValues(rest, enc)
	if err != nil {
		return nil, invalidBody(id, "decode value", err)
	}
	return &UserTextBody{FrameID: id, Encoding: enc, Description: desc, Value: value}, nil
}

// URLBody is a W*** URL link frame. URLs are always ISO-8859-1.
type URLBody struct {
	FrameID string
	URL     string
}

func (b *URLBody) ID() string         { return b.FrameID }
func (b *URLBody) Size(v Version) int { return encodedSize(b, v) }

func (b *URLBody) Encode(Version) ([]byte, error) {
	data, err := encodeText(b.URL, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode URL", err)
	}
	return data, nil
}

func parseURLBody(id string, data []byte) (Body, error) {
	head, _, _ := splitTerminated(data, EncodingISO88591)
	url, err := decodeText(head, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(id, "decode URL", err)
	}
	return &URLBody{FrameID: id, URL: url}, nil
}

// UserURLBody is a WXXX (WXX) user-defined URL frame.
type UserURLBody struct {
	FrameID     string
	Encoding    byte
	Description string
	URL         string
}

func (b *UserURLBody) ID() string         { return b.FrameID }
func (b *UserURLBody) Size(v Version) int { return encodedSize(b, v) }

func (b *UserURLBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	desc, err := encodeTerminated(b.Description, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode description", err)
	}
	url, err := encodeText(b.URL, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode URL", err)
	}
	return append(append([]byte{enc}, desc...), url...), nil
}

func parseUserURLBody(id string, data []byte) (Body, error) {
	if len(data) < 1 {
		return nil, invalidBody(id, "missing text encoding", nil)
	}
	enc := data[0]
	head, rest, _ := splitTerminated(data[1:], enc)
	desc, err := decodeText(head, enc)
	if err != nil {
		return nil, invalidBody(id, "decode description", err)
	}
	urlBytes, _, _ := splitTerminated(rest, EncodingISO88591)
	url, err := decodeText(urlBytes, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(id, "decode URL", err)
	}
	return &UserURLBody{FrameID: id, Encoding: enc, Description: desc, URL: url}, nil
}

// CommentBody is a COMM (COM) comment or USLT (ULT) unsynchronised lyrics
// frame. Both share the same layout.
type CommentBody struct {
	FrameID     string
	Encoding    byte
	Language    string
	Description string
	Text        string
}

// DefaultLanguage is written when a comment has no language.
const DefaultLanguage = "eng"

func (b *CommentBody) ID() string         { return b.FrameID }
func (b *CommentBody) Size(v Version) int { return encodedSize(b, v) }

func (b *CommentBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	lang := b.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	langBytes, err := encodeText(lang, EncodingISO88591)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode language", err)
	}
	if len(langBytes) > 3 {
		return nil, invalidBody(b.FrameID, "language longer than three bytes", nil)
	}
	// Short codes are padded with spaces.
	langBytes = append(langBytes, "   "[len(langBytes):]...)

	desc, err := encodeTerminated(b.Description, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode description", err)
	}
	text, err := encodeText(b.Text, enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode text", err)
	}

	out := make([]byte, 0, 4+len(desc)+len(text))
	out = append(out, enc)
	out = append(out, langBytes...)
	out = append(out, desc...)
	return append(out, text...), nil
}

func parseCommentBody(id string, data []byte) (Body, error) {
	if len(data) < 4 {
		return nil, invalidBody(id, "shorter than encoding and language", nil)
	}
	enc := data[0]
	lang, err := decodeText(data[1:4], EncodingISO88591)
	if err != nil {
		return nil, invalidBody(id, "decode language", err)
	}
	head, rest, _ := splitTerminated(data[4:], enc)
	desc, err := decodeText(head, enc)
	if err != nil {
		return nil, invalidBody(id, "decode description", err)
	}
	textBytes, _, _ := splitTerminated(rest, enc)
	text, err := decodeText(textBytes, enc)
	if err != nil {
		return nil, invalidBody(id, "decode text", err)
	}
	return &CommentBody{FrameID: id, Encoding: enc, Language: lang, Description: desc, Text: text}, nil
}

// Pair is one entry of an involved people list.
type Pair struct {
	Role string
	Name string
}

// PairedTextBody is a TIPL/TMCL (IPLS, IPL) involved people list.
type PairedTextBody struct {
	FrameID  string
	Encoding byte
	Pairs    []Pair
}

func (b *PairedTextBody) ID() string         { return b.FrameID }
func (b *PairedTextBody) Size(v Version) int { return encodedSize(b, v) }

func (b *PairedTextBody) Encode(v Version) ([]byte, error) {
	enc := writableEncoding(b.Encoding, v)
	values := make([]string, 0, 2*len(b.Pairs))
	for _, p := range b.Pairs {
		values = append(values, p.Role, p.Name)
	}
	out := []byte{enc}
	if len(values) == 0 {
		return out, nil
	}
	data, err := encodeValues(strings.Join(values, valueSep), enc)
	if err != nil {
		return nil, invalidBody(b.FrameID, "encode pairs", err)
	}
	return append(out, data...), nil
}

func parsePairedTextBody(id string, data []byte) (Body, error) {
	if len(data) < 1 {
		return nil, invalidBody(id, "missing text encoding", nil)
	}
	body := &PairedTextBody{FrameID: id, Encoding: data[0]}
	if len(data) == 1 {
		return body, nil
	}
	joined, err := decodeValues(data[1:], data[0])
	if err != nil {
		return nil, invalidBody(id, "decode pairs", err)
	}
	values := strings.Split(joined, valueSep)
	for i := 0; i < len(values); i += 2 {
		p := Pair{Role: values[i]}
		if i+1 < len(values) {
			p.Name = values[i+1]
		}
		body.Pairs = append(body.Pairs, p)
	}
	return body, nil
}

// UnsupportedBody holds a frame this package does not model. It is
// written back byte for byte.
type UnsupportedBody struct {
	FrameID string
	Data    []byte
}

func (b *UnsupportedBody) ID() string                     { return b.FrameID }
func (b *UnsupportedBody) Size(Version) int               { return len(b.Data) }
func (b *UnsupportedBody) Encode(Version) ([]byte, error) { return b.Data, nil }

// EncryptedBody holds an encrypted frame that could not be decrypted. The
// original format flags and payload are written back unchanged.
type EncryptedBody struct {
	FrameID     string
	FormatFlags byte
	Method      byte
	Data        []byte
}

func (b *EncryptedBody) ID() string                     { return b.FrameID }
func (b *EncryptedBody) Size(Version) int               { return len(b.Data) }
func (b *EncryptedBody) Encode(Version) ([]byte, error) { return b.Data, nil }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}
