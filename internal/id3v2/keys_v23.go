package id3v2

import (
	"maps"

	"github.com/simonhull/audiotag/internal/types"
)

// ID3v2.3 has no mood, recording time or original release time frames.
// Mood moves to a user-defined text frame.
var v23Frames = func() map[types.FieldKey]string {
	m := maps.Clone(v24Frames)
	delete(m, types.Mood)
	m[types.Year] = "TYER"
	m[types.OriginalYear] = "TORY"
	return m
}()

func v23Mappings() []Mapping {
	ms := standard(v23Frames)
	ms = append(ms, Mapping{Key: types.Mood, FrameID: "TXXX", SubID: "MOOD"})
	ms = append(ms, subIDMappings(frameIDs{
		userText: "TXXX",
		userURL:  "WXXX",
		comment:  "COMM",
		paired:   "IPLS",
		ufid:     "UFID",
	})...)
	return sortMappings(ms)
}
