package vorbis

import (
	"strings"

	"github.com/simonhull/audiotag/internal/types"
)

// Comment names with a meaning outside the text field API.
const (
	PictureName       = "METADATA_BLOCK_PICTURE"
	LegacyPictureName = "COVERART"
)

// Keys are written under their FieldKey name unless listed here.
var nameOverrides = map[types.FieldKey]string{
	types.AlbumArtist:                  "ALBUMARTIST",
	types.AlbumArtistSort:              "ALBUMARTISTSORT",
	types.AlbumArtistsSort:             "ALBUMARTISTSSORT",
	types.AlbumSort:                    "ALBUMSORT",
	types.AmazonID:                     "ASIN",
	types.ArtistSort:                   "ARTISTSORT",
	types.CatalogNo:                    "CATALOGNUMBER",
	types.ComposerSort:                 "COMPOSERSORT",
	types.DiscNo:                       "DISCNUMBER",
	types.DiscSubtitle:                 "DISCSUBTITLE",
	types.DiscTotal:                    "DISCTOTAL",
	types.InvolvedPerson:               "INVOLVEDPEOPLE",
	types.IsCompilation:                "COMPILATION",
	types.ITunesGrouping:               "ITUNESGROUPING",
	types.MusicBrainzDiscID:            "MUSICBRAINZ_DISCID",
	types.MusicBrainzOriginalReleaseID: "MUSICBRAINZ_ORIGINAL_ALBUMID",
	types.MusicBrainzReleaseArtistID:   "MUSICBRAINZ_ALBUMARTISTID",
	types.MusicBrainzReleaseCountry:    "RELEASECOUNTRY",
	types.MusicBrainzReleaseGroupID:    "MUSICBRAINZ_RELEASEGROUPID",
	types.MusicBrainzReleaseID:         "MUSICBRAINZ_ALBUMID",
	types.MusicBrainzReleaseStatus:     "RELEASESTATUS",
	types.MusicBrainzReleaseTrackID:    "MUSICBRAINZ_RELEASETRACKID",
	types.MusicBrainzReleaseType:       "RELEASETYPE",
	types.MusicBrainzTrackID:           "MUSICBRAINZ_TRACKID",
	types.MusicBrainzWorkID:            "MUSICBRAINZ_WORKID",
	types.MusicIPID:                    "MUSICIP_PUID",
	types.OriginalYear:                 "ORIGINALDATE",
	types.PartNumber:                   "PARTNUMBER",
	types.RecordLabel:                  "LABEL",
	types.TitleSort:                    "TITLESORT",
	types.Track:                        "TRACKNUMBER",
	types.TrackTotal:                   "TRACKTOTAL",
	types.Year:                         "DATE",
}

// Other spellings accepted when reading. Writes use the canonical name and
// clear these.
var readAliases = map[types.FieldKey][]string{
	types.AmazonID:   {"AUDIBLE_ASIN"},
	types.DiscTotal:  {"TOTALDISCS"},
	types.Language:   {"LANG"},
	types.TrackTotal: {"TOTALTRACKS"},
}

var (
	keyNames   = map[types.FieldKey]string{}
	keysByName = map[string]types.FieldKey{}
)

func init() {
	for _, k := range types.AllFieldKeys() {
		if k == types.CoverArt {
			continue
		}
		name, ok := nameOverrides[k]
		if !ok {
			name = k.String()
		}
		keyNames[k] = name
		keysByName[name] = k
		for _, alias := range readAliases[k] {
			keysByName[alias] = k
		}
	}
}

// FieldName returns the comment name key is written under.
func FieldName(key types.FieldKey) (string, bool) {
	name, ok := keyNames[key]
	return name, ok
}

// KeyForName returns the key a comment name holds. Names are matched
// case-insensitively.
func KeyForName(name string) (types.FieldKey, bool) {
	k, ok := keysByName[strings.ToUpper(name)]
	return k, ok
}

// IsPictureName reports whether name is one of the cover art comment names.
func IsPictureName(name string) bool {
	return strings.EqualFold(name, PictureName) || strings.EqualFold(name, LegacyPictureName)
}

func namesFor(key types.FieldKey) []string {
	return append([]string{keyNames[key]}, readAliases[key]...)
}
