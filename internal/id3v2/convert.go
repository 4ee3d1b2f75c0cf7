package id3v2

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simonhull/audiotag/internal/types"
)

// ID3v2.2 identifiers and their ID3v2.3 counterparts.
var v22To23 = map[string]string{
	"BUF": "RBUF", "CNT": "PCNT", "COM": "COMM", "EQU": "EQUA", "ETC": "ETCO",
	"GEO": "GEOB", "GP1": "GRP1", "IPL": "IPLS", "MCI": "MCDI", "MLL": "MLLT",
	"MVI": "MVIN", "MVN": "MVNM", "PIC": "APIC", "POP": "POPM", "REV": "RVRB",
	"RVA": "RVAD", "SLT": "SYLT", "STC": "SYTC", "TAL": "TALB", "TBP": "TBPM",
	"TCM": "TCOM", "TCO": "TCON", "TCP": "TCMP", "TCR": "TCOP", "TDA": "TDAT",
	"TDY": "TDLY", "TEN": "TENC", "TFT": "TFLT", "TIM": "TIME", "TKE": "TKEY",
	"TLA": "TLAN", "TLE": "TLEN", "TMT": "TMED", "TOA": "TOPE", "TOF": "TOFN",
	"TOL": "TOLY", "TOR": "TORY", "TOT": "TOAL", "TP1": "TPE1", "TP2": "TPE2",
	"TP3": "TPE3", "TP4": "TPE4", "TPA": "TPOS", "TPB": "TPUB", "TPS": "TSST",
	"TRC": "TSRC", "TRD": "TRDA", "TRK": "TRCK", "TS2": "TSO2", "TSA": "TSOA",
	"TSC": "TSOC", "TSI": "TSIZ", "TSP": "TSOP", "TSS": "TSSE", "TST": "TSOT",
	"TT1": "TIT1", "TT2": "TIT2", "TT3": "TIT3", "TXT": "TEXT", "TXX": "TXXX",
	"TYE": "TYER", "UFI": "UFID", "ULT": "USLT", "WAF": "WOAF", "WAR": "WOAR",
	"WAS": "WOAS", "WCM": "WCOM", "WCP": "WCOP", "WPB": "WPUB", "WXX": "WXXX",
}

var v23To22 = func() map[string]string {
	m := make(map[string]string, len(v22To23))
	for k, v := range v22To23 {
		m[v] = k
	}
	return m
}()

// Identifiers that mean the same thing in ID3v2.3 and ID3v2.4.
var shared34 = []string{
	"AENC", "APIC", "COMM", "COMR", "ENCR", "ETCO", "GEOB", "GRID", "GRP1",
	"LINK", "MCDI", "MLLT", "MVIN", "MVNM", "OWNE", "PCNT", "POPM", "POSS",
	"PRIV", "RBUF", "RVRB", "SYLT", "SYTC", "TALB", "TBPM", "TCMP", "TCOM",
	"TCON", "TCOP", "TDLY", "TENC", "TEXT", "TFLT", "TIT1", "TIT2", "TIT3",
	"TKEY", "TLAN", "TLEN", "TMED", "TOAL", "TOFN", "TOLY", "TOPE", "TOWN",
	"TPE1", "TPE2", "TPE3", "TPE4", "TPOS", "TPUB", "TRCK", "TRSN", "TRSO",
	"TSO2", "TSOA", "TSOC", "TSOP", "TSOT", "TSRC", "TSSE", "TSST", "TXXX",
	"UFID", "USER", "USLT", "WCOM", "WCOP", "WOAF", "WOAR", "WOAS", "WORS",
	"WPAY", "WPUB", "WXXX",
}

// moodDescription is the TXXX description that carries mood before ID3v2.4.
const moodDescription = "MOOD"

type converter func(target string, src Body) (Body, error)

type conversionKey struct {
	from, to string
}

var conversions = func() map[conversionKey]converter {
	m := make(map[conversionKey]converter)
	for v22, v23 := range v22To23 {
		m[conversionKey{v22, v23}] = relabel
		m[conversionKey{v23, v22}] = relabel
	}
	for _, id := range shared34 {
		m[conversionKey{id, id}] = relabel
	}
	m[conversionKey{"TYER", "TDRC"}] = yearToTimestamp
	m[conversionKey{"TORY", "TDOR"}] = yearToTimestamp
	m[conversionKey{"TDRC", "TYER"}] = timestampToYear
	m[conversionKey{"TDOR", "TORY"}] = timestampToYear
	m[conversionKey{"IPLS", "TIPL"}] = relabel
	m[conversionKey{"TIPL", "IPLS"}] = relabel
	m[conversionKey{"TMCL", "IPLS"}] = relabel
	m[conversionKey{"TMOO", "TXXX"}] = moodToUserText
	m[conversionKey{"TXXX", "TMOO"}] = userTextToMood
	return m
}()

// ConvertBody builds a body for targetID from src. Only identifier pairs
// with a defined meaning in both versions convert; every other pair fails
// with a *types.NoConversionDefinedError. Encrypted bodies never convert
// because their flags are version-specific.
//
// The source body is not modified.
func ConvertBody(targetID string, src Body) (Body, error) {
	fail := &types.NoConversionDefinedError{From: src.ID(), To: targetID}
	if _, ok := src.(*EncryptedBody); ok {
		return nil, fail
	}
	conv, ok := conversions[conversionKey{src.ID(), targetID}]
	if !ok {
		return nil, fail
	}
	return conv(targetID, src)
}

// relabel copies src under a new identifier.
func relabel(target string, src Body) (Body, error) {
	switch b := src.(type) {
	case *TextBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *UserTextBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *URLBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *UserURLBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *CommentBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *PictureBody:
		c := *b
		c.FrameID = target
		c.Data = cloneBytes(b.Data)
		return &c, nil
	case *UniqueFileIDBody:
		c := *b
		c.FrameID = target
		c.Identifier = cloneBytes(b.Identifier)
		return &c, nil
	case *PopularimeterBody:
		c := *b
		c.FrameID = target
		return &c, nil
	case *PairedTextBody:
		c := *b
		c.FrameID = target
		c.Pairs = slices.Clone(b.Pairs)
		return &c, nil
	case *UnsupportedBody:
		return &UnsupportedBody{FrameID: target, Data: cloneBytes(b.Data)}, nil
	default:
		return nil, &types.NoConversionDefinedError{From: src.ID(), To: target}
	}
}

func yearToTimestamp(target string, src Body) (Body, error) {
	b, ok := src.(*TextBody)
	if !ok {
		return nil, &types.NoConversionDefinedError{From: src.ID(), To: target}
	}
	return &TextBody{FrameID: target, Encoding: b.Encoding, Text: strings.TrimSpace(b.Text)}, nil
}

func timestampToYear(target string, src Body) (Body, error) {
	b, ok := src.(*TextBody)
	if !ok {
		return nil, &types.NoConversionDefinedError{From: src.ID(), To: target}
	}
	return &TextBody{FrameID: target, Encoding: b.Encoding, Text: parseTimestamp(b.Text).year}, nil
}

func moodToUserText(target string, src Body) (Body, error) {
	b, ok := src.(*TextBody)
	if !ok {
		return nil, &types.NoConversionDefinedError{From: src.ID(), To: target}
	}
	return &UserTextBody{FrameID: target, Encoding: b.Encoding, Description: moodDescription, Value: b.Text}, nil
}

func userTextToMood(target string, src Body) (Body, error) {
	b, ok := src.(*UserTextBody)
	if !ok || b.Description != moodDescription {
		return nil, &types.NoConversionDefinedError{From: src.ID(), To: target}
	}
	return &TextBody{FrameID: target, Encoding: b.Encoding, Text: b.Value}, nil
}

// timestamp is an ID3v2.4 timestamp split into the parts ID3v2.3 stores
// in separate frames. Missing parts are empty.
type timestamp struct {
	year, month, day, hour, minute string
}

// parseTimestamp parses yyyy[-MM[-dd[THH[:mm[:ss]]]]].
func parseTimestamp(s string) timestamp {
	s = strings.TrimSpace(s)
	var ts timestamp
	date, clock, _ := strings.Cut(s, "T")
	parts := strings.Split(date, "-")
	ts.year = parts[0]
	if len(parts) > 1 {
		ts.month = parts[1]
	}
	if len(parts) > 2 {
		ts.day = parts[2]
	}
	if clock != "" {
		hm := strings.Split(clock, ":")
		ts.hour = hm[0]
		if len(hm) > 1 {
			ts.minute = hm[1]
		}
	}
	return ts
}

// String formats ts as an ID3v2.4 timestamp, stopping at the first
// missing part.
func (ts timestamp) String() string {
	var sb strings.Builder
	sb.WriteString(ts.year)
	if ts.month == "" {
		return sb.String()
	}
	sb.WriteString("-" + ts.month)
	if ts.day == "" {
		return sb.String()
	}
	sb.WriteString("-" + ts.day)
	if ts.hour == "" {
		return sb.String()
	}
	sb.WriteString("T" + ts.hour)
	if ts.minute != "" {
		sb.WriteString(":" + ts.minute)
	}
	return sb.String()
}

// ConvertTag returns a copy of t migrated to target, one major version at
// a time. Frames with no counterpart in the next version are dropped with
// a warning on the returned tag. t itself is not modified.
func ConvertTag(t *Tag, target Version, o *types.Options) (*Tag, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unsupported ID3v2 version %d", target)
	}
	if o == nil {
		o = types.DefaultOptions()
	}

	cur := t
	if cur.version == target {
		out := NewTag(target)
		for _, f := range t.frames {
			body, err := relabel(f.ID(), f.Body)
			if err != nil {
				// Encrypted frames stay shared; they are never edited in place.
				body = f.Body
			}
			out.frames = append(out.frames, &Frame{StatusFlags: f.StatusFlags, FormatFlags: f.FormatFlags, Body: body})
		}
		out.warnings = slices.Clone(t.warnings)
		return out, nil
	}

	for cur.version != target {
		next := cur.version + 1
		if target < cur.version {
			next = cur.version - 1
		}
		cur = convertStep(cur, next, o)
	}
	return cur, nil
}

func convertStep(src *Tag, to Version, o *types.Options) *Tag {
	from := src.version
	out := NewTag(to)
	out.warnings = slices.Clone(src.warnings)

	var dates dateFrames
	if from == V23 && to == V24 {
		dates = collectDates(src)
	}

	for _, f := range src.frames {
		if dates.consumed(f) {
			continue
		}

		if from == V24 && to == V23 && f.ID() == "TDRC" {
			out.frames = append(out.frames, splitTimestamp(f, o, out)...)
			continue
		}

		body, err := ConvertBody(targetFrameID(f, from, to), f.Body)
		if err != nil {
			o.Logger.Debug().Str("frame", f.ID()).Str("to", to.String()).Err(err).Msg("dropping frame")
			out.warn(o, types.Warning{
				Stage:   "convert",
				Message: fmt.Sprintf("dropped %s frame converting %s to %s", f, from, to),
			})
			continue
		}

		if dates.year == f {
			body = &TextBody{FrameID: "TDRC", Encoding: dates.encoding(), Text: dates.timestamp()}
		}

		out.frames = append(out.frames, &Frame{
			StatusFlags: convertStatusFlags(f.StatusFlags, from, to),
			Body:        body,
		})
	}
	return out
}

// targetFrameID returns the identifier f becomes in the adjacent version
// to, or "" if it has none.
func targetFrameID(f *Frame, from, to Version) string {
	id := f.ID()
	switch {
	case from == V22 && to == V23:
		return v22To23[id]
	case from == V23 && to == V22:
		return v23To22[id]
	case from == V23 && to == V24:
		switch id {
		case "TYER":
			return "TDRC"
		case "TORY":
			return "TDOR"
		case "IPLS":
			return "TIPL"
		case "TXXX":
			if f.SubID() == moodDescription {
				return "TMOO"
			}
		}
	case from == V24 && to == V23:
		switch id {
		case "TDRC":
			return "TYER"
		case "TDOR":
			return "TORY"
		case "TIPL", "TMCL":
			return "IPLS"
		case "TMOO":
			return "TXXX"
		}
	}
	return id
}

// dateFrames are the ID3v2.3 frames that together make up the ID3v2.4
// recording time.
type dateFrames struct {
	year, date, time *Frame
}

func collectDates(t *Tag) dateFrames {
	var d dateFrames
	for _, f := range t.frames {
		if _, ok := f.Body.(*TextBody); !ok {
			continue
		}
		switch f.ID() {
		case "TYER":
			if d.year == nil {
				d.year = f
			}
		case "TDAT":
			if d.date == nil {
				d.date = f
			}
		case "TIME":
			if d.time == nil {
				d.time = f
			}
		}
	}
	if d.year == nil {
		return dateFrames{}
	}
	return d
}

// consumed reports whether f is folded into the recording time.
func (d dateFrames) consumed(f *Frame) bool {
	return d.year != nil && (f == d.date || f == d.time)
}

func (d dateFrames) encoding() byte {
	return d.year.Body.(*TextBody).Encoding
}

// timestamp combines year (yyyy), date (DDMM) and time (HHMM).
func (d dateFrames) timestamp() string {
	ts := timestamp{year: strings.TrimSpace(d.year.Body.(*TextBody).Text)}
	if d.date != nil {
		if s := strings.TrimSpace(d.date.Body.(*TextBody).Text); len(s) == 4 {
			ts.day, ts.month = s[:2], s[2:]
		}
	}
	if d.time != nil && ts.day != "" {
		if s := strings.TrimSpace(d.time.Body.(*TextBody).Text); len(s) == 4 {
			ts.hour, ts.minute = s[:2], s[2:]
		}
	}
	return ts.String()
}

// splitTimestamp turns a TDRC frame into TYER, TDAT and TIME frames.
func splitTimestamp(f *Frame, o *types.Options, out *Tag) []*Frame {
	b, ok := f.Body.(*TextBody)
	if !ok {
		out.warn(o, types.Warning{Stage: "convert", Message: "dropped TDRC frame without text body"})
		return nil
	}
	status := convertStatusFlags(f.StatusFlags, V24, V23)
	ts := parseTimestamp(b.Text)

	frames := []*Frame{{StatusFlags: status, Body: &TextBody{FrameID: "TYER", Encoding: b.Encoding, Text: ts.year}}}
	if ts.month != "" && ts.day != "" {
		frames = append(frames, &Frame{StatusFlags: status, Body: &TextBody{FrameID: "TDAT", Encoding: b.Encoding, Text: ts.day + ts.month}})
	}
	if ts.hour != "" {
		minute := ts.minute
		if minute == "" {
			minute = "00"
		}
		frames = append(frames, &Frame{StatusFlags: status, Body: &TextBody{FrameID: "TIME", Encoding: b.Encoding, Text: ts.hour + minute}})
	}
	return frames
}
