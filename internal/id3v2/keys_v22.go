package id3v2

import "github.com/simonhull/audiotag/internal/types"

var v22Frames = map[types.FieldKey]string{
	types.Album:                 "TAL",
	types.AlbumArtist:           "TP2",
	types.AlbumArtistSort:       "TS2",
	types.AlbumSort:             "TSA",
	types.Artist:                "TP1",
	types.ArtistSort:            "TSP",
	types.BPM:                   "TBP",
	types.Composer:              "TCM",
	types.ComposerSort:          "TSC",
	types.Conductor:             "TP3",
	types.DiscNo:                "TPA",
	types.DiscSubtitle:          "TPS",
	types.Encoder:               "TEN",
	types.Genre:                 "TCO",
	types.Grouping:              "TT1",
	types.ISRC:                  "TRC",
	types.IsCompilation:         "TCP",
	types.ITunesGrouping:        "GP1",
	types.Key:                   "TKE",
	types.Language:              "TLA",
	types.Lyricist:              "TXT",
	types.Lyrics:                "ULT",
	types.Media:                 "TMT",
	types.Movement:              "MVN",
	types.MovementNo:            "MVI",
	types.OriginalAlbum:         "TOT",
	types.OriginalArtist:        "TOA",
	types.OriginalLyricist:      "TOL",
	types.OriginalYear:          "TOR",
	types.Rating:                "POP",
	types.RecordLabel:           "TPB",
	types.Remixer:               "TP4",
	types.Subtitle:              "TT3",
	types.Title:                 "TT2",
	types.TitleSort:             "TST",
	types.Track:                 "TRK",
	types.URLOfficialArtistSite: "WAR",
	types.Year:                  "TYE",
}

func v22Mappings() []Mapping {
	ms := standard(v22Frames)
	ms = append(ms, Mapping{Key: types.Mood, FrameID: "TXX", SubID: "MOOD"})
	ms = append(ms, subIDMappings(frameIDs{
		userText: "TXX",
		userURL:  "WXX",
		comment:  "COM",
		paired:   "IPL",
		ufid:     "UFI",
	})...)
	return sortMappings(ms)
}
