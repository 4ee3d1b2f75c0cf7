package types

import "fmt"

// FieldKey is a format-agnostic metadata field. Each tag format maps the
// keys it supports onto its own frame identifiers or comment names.
type FieldKey int

const (
	FieldUnknown FieldKey = iota
	AcoustIDFingerprint
	AcoustIDID
	Album
	AlbumArtist
	AlbumArtistSort
	AlbumArtists
	AlbumArtistsSort
	AlbumSort
	AmazonID
	Arranger
	ArrangerSort
	Artist
	Artists
	ArtistsSort
	ArtistSort
	Barcode
	BPM
	CatalogNo
	Choir
	ChoirSort
	ClassicalCatalog
	ClassicalNickname
	Comment
	Composer
	ComposerSort
	Conductor
	ConductorSort
	Country
	CoverArt
	Custom1
	Custom2
	Custom3
	Custom4
	Custom5
	DiscNo
	DiscSubtitle
	DiscTotal
	DJMixer
	Encoder
	Engineer
	Ensemble
	EnsembleSort
	FBPM
	Genre
	Grouping
	InvolvedPerson
	ISRC
	IsClassical
	IsCompilation
	IsSoundtrack
	ITunesGrouping
	Key
	Language
	Lyricist
	Lyrics
	Media
	Mixer
	Mood
	MoodAcoustic
	MoodAggressive
	MoodArousal
	MoodDanceability
	MoodElectronic
	MoodHappy
	MoodInstrumental
	MoodParty
	MoodRelaxed
	MoodSad
	MoodValence
	Movement
	MovementNo
	MovementTotal
	MusicBrainzArtistID
	MusicBrainzDiscID
	MusicBrainzOriginalReleaseID
	MusicBrainzReleaseArtistID
	MusicBrainzReleaseCountry
	MusicBrainzReleaseGroupID
	MusicBrainzReleaseID
	MusicBrainzReleaseStatus
	MusicBrainzReleaseTrackID
	MusicBrainzReleaseType
	MusicBrainzTrackID
	MusicBrainzWork
	MusicBrainzWorkCompositionID
	MusicBrainzWorkID
	MusicBrainzWorkPartLevel1ID
	MusicBrainzWorkPartLevel2ID
	MusicBrainzWorkPartLevel3ID
	MusicBrainzWorkPartLevel4ID
	MusicBrainzWorkPartLevel5ID
	MusicBrainzWorkPartLevel6ID
	MusicIPID
	Occasion
	Opus
	Orchestra
	OrchestraSort
	OriginalAlbum
	OriginalArtist
	OriginalLyricist
	OriginalYear
	Part
	PartNumber
	PartType
	Performer
	PerformerName
	PerformerNameSort
	Period
	Producer
	Quality
	Ranking
	Rating
	RecordLabel
	Remixer
	Script
	SingleDiscTrackNo
	Subtitle
	Tags
	Tempo
	Timbre
	Title
	TitleMovement
	TitleSort
	Tonality
	Track
	TrackTotal
	URLDiscogsArtistSite
	URLDiscogsReleaseSite
	URLLyricsSite
	URLOfficialArtistSite
	URLOfficialReleaseSite
	URLWikipediaArtistSite
	URLWikipediaReleaseSite
	Work
	WorkComposition
	WorkPartLevel1
	WorkPartLevel1Type
	WorkPartLevel2
	WorkPartLevel2Type
	WorkPartLevel3
	WorkPartLevel3Type
	WorkPartLevel4
	WorkPartLevel4Type
	WorkPartLevel5
	WorkPartLevel5Type
	WorkPartLevel6
	WorkPartLevel6Type
	WorkType
	Year

	fieldKeyCount
)

var fieldKeyNames = [fieldKeyCount]string{
	FieldUnknown:                 "UNKNOWN",
	AcoustIDFingerprint:          "ACOUSTID_FINGERPRINT",
	AcoustIDID:                   "ACOUSTID_ID",
	Album:                        "ALBUM",
	AlbumArtist:                  "ALBUM_ARTIST",
	AlbumArtistSort:              "ALBUM_ARTIST_SORT",
	AlbumArtists:                 "ALBUM_ARTISTS",
	AlbumArtistsSort:             "ALBUM_ARTISTS_SORT",
	AlbumSort:                    "ALBUM_SORT",
	AmazonID:                     "AMAZON_ID",
	Arranger:                     "ARRANGER",
	ArrangerSort:                 "ARRANGER_SORT",
	Artist:                       "ARTIST",
	Artists:                      "ARTISTS",
	ArtistsSort:                  "ARTISTS_SORT",
	ArtistSort:                   "ARTIST_SORT",
	Barcode:                      "BARCODE",
	BPM:                          "BPM",
	CatalogNo:                    "CATALOG_NO",
	Choir:                        "CHOIR",
	ChoirSort:                    "CHOIR_SORT",
	ClassicalCatalog:             "CLASSICAL_CATALOG",
	ClassicalNickname:            "CLASSICAL_NICKNAME",
	Comment:                      "COMMENT",
	Composer:                     "COMPOSER",
	ComposerSort:                 "COMPOSER_SORT",
	Conductor:                    "CONDUCTOR",
	ConductorSort:                "CONDUCTOR_SORT",
	Country:                      "COUNTRY",
	CoverArt:                     "COVER_ART",
	Custom1:                      "CUSTOM1",
	Custom2:                      "CUSTOM2",
	Custom3:                      "CUSTOM3",
	Custom4:                      "CUSTOM4",
	Custom5:                      "CUSTOM5",
	DiscNo:                       "DISC_NO",
	DiscSubtitle:                 "DISC_SUBTITLE",
	DiscTotal:                    "DISC_TOTAL",
	DJMixer:                      "DJMIXER",
	Encoder:                      "ENCODER",
	Engineer:                     "ENGINEER",
	Ensemble:                     "ENSEMBLE",
	EnsembleSort:                 "ENSEMBLE_SORT",
	FBPM:                         "FBPM",
	Genre:                        "GENRE",
	Grouping:                     "GROUPING",
	InvolvedPerson:               "INVOLVED_PERSON",
	ISRC:                         "ISRC",
	IsClassical:                  "IS_CLASSICAL",
	IsCompilation:                "IS_COMPILATION",
	IsSoundtrack:                 "IS_SOUNDTRACK",
	ITunesGrouping:               "ITUNES_GROUPING",
	Key:                          "KEY",
	Language:                     "LANGUAGE",
	Lyricist:                     "LYRICIST",
	Lyrics:                       "LYRICS",
	Media:                        "MEDIA",
	Mixer:                        "MIXER",
	Mood:                         "MOOD",
	MoodAcoustic:                 "MOOD_ACOUSTIC",
	MoodAggressive:               "MOOD_AGGRESSIVE",
	MoodArousal:                  "MOOD_AROUSAL",
	MoodDanceability:             "MOOD_DANCEABILITY",
	MoodElectronic:               "MOOD_ELECTRONIC",
	MoodHappy:                    "MOOD_HAPPY",
	MoodInstrumental:             "MOOD_INSTRUMENTAL",
	MoodParty:                    "MOOD_PARTY",
	MoodRelaxed:                  "MOOD_RELAXED",
	MoodSad:                      "MOOD_SAD",
	MoodValence:                  "MOOD_VALENCE",
	Movement:                     "MOVEMENT",
	MovementNo:                   "MOVEMENT_NO",
	MovementTotal:                "MOVEMENT_TOTAL",
	MusicBrainzArtistID:          "MUSICBRAINZ_ARTISTID",
	MusicBrainzDiscID:            "MUSICBRAINZ_DISC_ID",
	MusicBrainzOriginalReleaseID: "MUSICBRAINZ_ORIGINAL_RELEASE_ID",
	MusicBrainzReleaseArtistID:   "MUSICBRAINZ_RELEASEARTISTID",
	MusicBrainzReleaseCountry:    "MUSICBRAINZ_RELEASE_COUNTRY",
	MusicBrainzReleaseGroupID:    "MUSICBRAINZ_RELEASE_GROUP_ID",
	MusicBrainzReleaseID:         "MUSICBRAINZ_RELEASEID",
	MusicBrainzReleaseStatus:     "MUSICBRAINZ_RELEASE_STATUS",
	MusicBrainzReleaseTrackID:    "MUSICBRAINZ_RELEASE_TRACK_ID",
	MusicBrainzReleaseType:       "MUSICBRAINZ_RELEASE_TYPE",
	MusicBrainzTrackID:           "MUSICBRAINZ_TRACK_ID",
	MusicBrainzWork:              "MUSICBRAINZ_WORK",
	MusicBrainzWorkCompositionID: "MUSICBRAINZ_WORK_COMPOSITION_ID",
	MusicBrainzWorkID:            "MUSICBRAINZ_WORK_ID",
	MusicBrainzWorkPartLevel1ID:  "MUSICBRAINZ_WORK_PART_LEVEL1_ID",
	MusicBrainzWorkPartLevel2ID:  "MUSICBRAINZ_WORK_PART_LEVEL2_ID",
	MusicBrainzWorkPartLevel3ID:  "MUSICBRAINZ_WORK_PART_LEVEL3_ID",
	MusicBrainzWorkPartLevel4ID:  "MUSICBRAINZ_WORK_PART_LEVEL4_ID",
	MusicBrainzWorkPartLevel5ID:  "MUSICBRAINZ_WORK_PART_LEVEL5_ID",
	MusicBrainzWorkPartLevel6ID:  "MUSICBRAINZ_WORK_PART_LEVEL6_ID",
	MusicIPID:                    "MUSICIP_ID",
	Occasion:                     "OCCASION",
	Opus:                         "OPUS",
	Orchestra:                    "ORCHESTRA",
	OrchestraSort:                "ORCHESTRA_SORT",
	OriginalAlbum:                "ORIGINAL_ALBUM",
	OriginalArtist:               "ORIGINAL_ARTIST",
	OriginalLyricist:             "ORIGINAL_LYRICIST",
	OriginalYear:                 "ORIGINAL_YEAR",
	Part:                         "PART",
	PartNumber:                   "PART_NUMBER",
	PartType:                     "PART_TYPE",
	Performer:                    "PERFORMER",
	PerformerName:                "PERFORMER_NAME",
	PerformerNameSort:            "PERFORMER_NAME_SORT",
	Period:                       "PERIOD",
	Producer:                     "PRODUCER",
	Quality:                      "QUALITY",
	Ranking:                      "RANKING",
	Rating:                       "RATING",
	RecordLabel:                  "RECORD_LABEL",
	Remixer:                      "REMIXER",
	Script:                       "SCRIPT",
	SingleDiscTrackNo:            "SINGLE_DISC_TRACK_NO",
	Subtitle:                     "SUBTITLE",
	Tags:                         "TAGS",
	Tempo:                        "TEMPO",
	Timbre:                       "TIMBRE",
	Title:                        "TITLE",
	TitleMovement:                "TITLE_MOVEMENT",
	TitleSort:                    "TITLE_SORT",
	Tonality:                     "TONALITY",
	Track:                        "TRACK",
	TrackTotal:                   "TRACK_TOTAL",
	URLDiscogsArtistSite:         "URL_DISCOGS_ARTIST_SITE",
	URLDiscogsReleaseSite:        "URL_DISCOGS_RELEASE_SITE",
	URLLyricsSite:                "URL_LYRICS_SITE",
	URLOfficialArtistSite:        "URL_OFFICIAL_ARTIST_SITE",
	URLOfficialReleaseSite:       "URL_OFFICIAL_RELEASE_SITE",
	URLWikipediaArtistSite:       "URL_WIKIPEDIA_ARTIST_SITE",
	URLWikipediaReleaseSite:      "URL_WIKIPEDIA_RELEASE_SITE",
	Work:                         "WORK",
	WorkComposition:              "WORK_COMPOSITION",
	WorkPartLevel1:               "WORK_PART_LEVEL1",
	WorkPartLevel1Type:           "WORK_PART_LEVEL1_TYPE",
	WorkPartLevel2:               "WORK_PART_LEVEL2",
	WorkPartLevel2Type:           "WORK_PART_LEVEL2_TYPE",
	WorkPartLevel3:               "WORK_PART_LEVEL3",
	WorkPartLevel3Type:           "WORK_PART_LEVEL3_TYPE",
	WorkPartLevel4:               "WORK_PART_LEVEL4",
	WorkPartLevel4Type:           "WORK_PART_LEVEL4_TYPE",
	WorkPartLevel5:               "WORK_PART_LEVEL5",
	WorkPartLevel5Type:           "WORK_PART_LEVEL5_TYPE",
	WorkPartLevel6:               "WORK_PART_LEVEL6",
	WorkPartLevel6Type:           "WORK_PART_LEVEL6_TYPE",
	WorkType:                     "WORK_TYPE",
	Year:                         "YEAR",
}

var fieldKeysByName = func() map[string]FieldKey {
	m := make(map[string]FieldKey, len(fieldKeyNames))
	for k, name := range fieldKeyNames {
		m[name] = FieldKey(k)
	}
	return m
}()

// String returns the stable upper-case name of the key.
func (k FieldKey) String() string {
	if k < 0 || k >= fieldKeyCount {
		return fmt.Sprintf("FieldKey(%d)", int(k))
	}
	return fieldKeyNames[k]
}

// Valid reports whether k is a known key other than FieldUnknown.
func (k FieldKey) Valid() bool {
	return k > FieldUnknown && k < fieldKeyCount
}

// ParseFieldKey returns the key with the given upper-case name.
func ParseFieldKey(name string) (FieldKey, bool) {
	k, ok := fieldKeysByName[name]
	if !ok || k == FieldUnknown {
		return FieldUnknown, false
	}
	return k, true
}

// AllFieldKeys returns every valid key in declaration order.
func AllFieldKeys() []FieldKey {
	keys := make([]FieldKey, 0, fieldKeyCount-1)
	for k := FieldUnknown + 1; k < fieldKeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
