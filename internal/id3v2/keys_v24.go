package id3v2

import "github.com/simonhull/audiotag/internal/types"

var v24Frames = map[types.FieldKey]string{
	types.Album:                 "TALB",
	types.AlbumArtist:           "TPE2",
	types.AlbumArtistSort:       "TSO2",
	types.AlbumSort:             "TSOA",
	types.Artist:                "TPE1",
	types.ArtistSort:            "TSOP",
	types.BPM:                   "TBPM",
	types.Composer:              "TCOM",
	types.ComposerSort:          "TSOC",
	types.Conductor:             "TPE3",
	types.DiscNo:                "TPOS",
	types.DiscSubtitle:          "TSST",
	types.Encoder:               "TENC",
	types.Genre:                 "TCON",
	types.Grouping:              "TIT1",
	types.ISRC:                  "TSRC",
	types.IsCompilation:         "TCMP",
	types.ITunesGrouping:        "GRP1",
	types.Key:                   "TKEY",
	types.Language:              "TLAN",
	types.Lyricist:              "TEXT",
	types.Lyrics:                "USLT",
	types.Media:                 "TMED",
	types.Mood:                  "TMOO",
	types.Movement:              "MVNM",
	types.MovementNo:            "MVIN",
	types.OriginalAlbum:         "TOAL",
	types.OriginalArtist:        "TOPE",
	types.OriginalLyricist:      "TOLY",
	types.OriginalYear:          "TDOR",
	types.Performer:             "TMCL",
	types.Rating:                "POPM",
	types.RecordLabel:           "TPUB",
	types.Remixer:               "TPE4",
	types.Subtitle:              "TIT3",
	types.Title:                 "TIT2",
	types.TitleSort:             "TSOT",
	types.Track:                 "TRCK",
	types.URLOfficialArtistSite: "WOAR",
	types.Year:                  "TDRC",
}

func v24Mappings() []Mapping {
	ms := standard(v24Frames)
	ms = append(ms, subIDMappings(frameIDs{
		userText: "TXXX",
		userURL:  "WXXX",
		comment:  "COMM",
		paired:   "TIPL",
		ufid:     "UFID",
	})...)
	return sortMappings(ms)
}
