package id3v2

// Frame is one frame of a tag: the header flags and the decoded body.
//
// StatusFlags are written back as stored. FormatFlags record what the
// frame was read with; the encoder writes them back only for an
// EncryptedBody, since every other body is written uncompressed and in the
// clear.
type Frame struct {
	StatusFlags byte
	FormatFlags byte
	Body        Body
}

// NewFrame returns a frame with no flags set.
func NewFrame(b Body) *Frame {
	return &Frame{Body: b}
}

// ID returns the frame identifier.
func (f *Frame) ID() string { return f.Body.ID() }

// SubID returns the part of the body that tells apart frames sharing an
// identifier: the description of user-defined text, URL and comment
// frames, the owner of a unique file identifier, and the first role of an
// involved people list. Other frames have no sub-id.
func (f *Frame) SubID() string {
	switch b := f.Body.(type) {
	case *UserTextBody:
		return b.Description
	case *UserURLBody:
		return b.Description
	case *CommentBody:
		if b.FrameID == "USLT" || b.FrameID == "ULT" {
			return ""
		}
		return b.Description
	case *UniqueFileIDBody:
		return b.Owner
	case *PairedTextBody:
		if len(b.Pairs) == 0 {
			return ""
		}
		return b.Pairs[0].Role
	default:
		return ""
	}
}

func (f *Frame) String() string {
	if sub := f.SubID(); sub != "" {
		return f.ID() + ":" + sub
	}
	return f.ID()
}
