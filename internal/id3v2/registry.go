package id3v2

import (
	"slices"

	"github.com/simonhull/audiotag/internal/types"
)

type bodyKind int

const (
	kindText bodyKind = iota + 1
	kindUserText
	kindURL
	kindUserURL
	kindComment
	kindPicture
	kindUniqueFileID
	kindPopularimeter
	kindPairedText
)

type bodyParser func(id string, data []byte) (Body, error)

var parsers = map[bodyKind]bodyParser{
	kindText:          parseTextBody,
	kindUserText:      parseUserTextBody,
	kindURL:           parseURLBody,
	kindUserURL:       parseUserURLBody,
	kindComment:       parseCommentBody,
	kindPicture:       parsePictureBody,
	kindUniqueFileID:  parseUniqueFileIDBody,
	kindPopularimeter: parsePopularimeterBody,
	kindPairedText:    parsePairedTextBody,
}

// Frame identifiers with a modelled body, per identifier length. Anything
// else decodes to an UnsupportedBody.
var (
	kinds4 = map[string]bodyKind{
		"TXXX": kindUserText,
		"WXXX": kindUserURL,
		"COMM": kindComment,
		"USLT": kindComment,
		"APIC": kindPicture,
		"UFID": kindUniqueFileID,
		"POPM": kindPopularimeter,
		"TIPL": kindPairedText,
		"TMCL": kindPairedText,
		"IPLS": kindPairedText,
	}

	kinds3 = map[string]bodyKind{
		"TXX": kindUserText,
		"WXX": kindUserURL,
		"COM": kindComment,
		"ULT": kindComment,
		"PIC": kindPicture,
		"UFI": kindUniqueFileID,
		"POP": kindPopularimeter,
		"IPL": kindPairedText,
	}

	// Text frames valid in ID3v2.4. ID3v2.3 adds the v23Only set.
	text4 = []string{
		"TALB", "TBPM", "TCOM", "TCON", "TCOP", "TDEN", "TDLY", "TDOR", "TDRC",
		"TDRL", "TDTG", "TENC", "TEXT", "TFLT", "TIT1", "TIT2", "TIT3", "TKEY",
		"TLAN", "TLEN", "TMED", "TMOO", "TOAL", "TOFN", "TOLY", "TOPE", "TOWN",
		"TPE1", "TPE2", "TPE3", "TPE4", "TPOS", "TPRO", "TPUB", "TRCK", "TRSN",
		"TRSO", "TSOA", "TSOP", "TSOT", "TSRC", "TSSE", "TSST", "TSO2", "TSOC",
		"TCMP", "GRP1", "MVNM", "MVIN",
	}
	v23Only = []string{"TDAT", "TIME", "TORY", "TRDA", "TSIZ", "TYER"}

	text3 = []string{
		"TAL", "TBP", "TCM", "TCO", "TCR", "TDA", "TDY", "TEN", "TFT", "TIM",
		"TKE", "TLA", "TLE", "TMT", "TOA", "TOF", "TOL", "TOR", "TOT", "TP1",
		"TP2", "TP3", "TP4", "TPA", "TPB", "TRC", "TRD", "TRK", "TSI", "TSS",
		"TT1", "TT2", "TT3", "TXT", "TYE", "TCP", "TST", "TSP", "TSA", "TS2",
		"TSC", "TPS", "GP1", "MVN", "MVI",
	}

	url4 = []string{"WCOM", "WCOP", "WOAF", "WOAR", "WOAS", "WORS", "WPAY", "WPUB"}
	url3 = []string{"WAF", "WAR", "WAS", "WCM", "WCP", "WPB"}
)

func init() {
	for _, id := range text4 {
		kinds4[id] = kindText
	}
	for _, id := range v23Only {
		kinds4[id] = kindText
	}
	for _, id := range url4 {
		kinds4[id] = kindURL
	}
	for _, id := range text3 {
		kinds3[id] = kindText
	}
	for _, id := range url3 {
		kinds3[id] = kindURL
	}
}

// kindOf returns the body kind registered for id in v, or 0.
func kindOf(id string, v Version) bodyKind {
	if v == V22 {
		return kinds3[id]
	}
	if v == V24 && slices.Contains(v23Only, id) {
		return 0
	}
	if v == V23 && (id == "TIPL" || id == "TMCL") {
		return 0
	}
	if v == V24 && id == "IPLS" {
		return 0
	}
	return kinds4[id]
}

// SupportedIDs returns the identifiers with a modelled body in v, sorted.
func SupportedIDs(v Version) []string {
	src := kinds4
	if v == V22 {
		src = kinds3
	}
	var ids []string
	for id := range src {
		if kindOf(id, v) != 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// BuildBody decodes the body of the frame described by h from raw, the
// body bytes exactly as stored in the tag.
//
// Frames this package does not model decode to an UnsupportedBody and
// encrypted frames without a Decrypter to an EncryptedBody. A modelled
// frame that fails to decode returns an error matching
// types.ErrInvalidFrameBody.
func BuildBody(h FrameHeader, raw []byte, v Version, o *types.Options) (Body, error) {
	if o == nil {
		o = types.DefaultOptions()
	}

	p, err := unwrap(h, raw, v, o)
	if err != nil {
		return nil, err
	}
	if p.encrypted != nil {
		return p.encrypted, nil
	}

	parse, ok := parsers[kindOf(h.ID, v)]
	if !ok {
		return &UnsupportedBody{FrameID: h.ID, Data: cloneBytes(p.data)}, nil
	}
	return parse(h.ID, p.data)
}

// newBody returns an empty body of the kind registered for id, or nil.
func newBody(id string, v Version) Body {
	switch kindOf(id, v) {
	case kindText:
		return &TextBody{FrameID: id}
	case kindUserText:
		return &UserTextBody{FrameID: id}
	case kindURL:
		return &URLBody{FrameID: id}
	case kindUserURL:
		return &UserURLBody{FrameID: id}
	case kindComment:
		return &CommentBody{FrameID: id, Language: DefaultLanguage}
	case kindPicture:
		return &PictureBody{FrameID: id}
	case kindUniqueFileID:
		return &UniqueFileIDBody{FrameID: id}
	case kindPopularimeter:
		return &PopularimeterBody{FrameID: id}
	case kindPairedText:
		return &PairedTextBody{FrameID: id}
	default:
		return nil
	}
}
