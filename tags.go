package audiotag

import (
	"iter"

	"github.com/simonhull/audiotag/internal/types"
)

// Tag is the field-oriented API every tag format implements.
type Tag = types.Tag

// FieldKey names a generic metadata field.
type FieldKey = types.FieldKey

// Field keys.
const (
	FieldUnknown                 = types.FieldUnknown
	AcoustIDFingerprint          = types.AcoustIDFingerprint
	AcoustIDID                   = types.AcoustIDID
	Album                        = types.Album
	AlbumArtist                  = types.AlbumArtist
	AlbumArtistSort              = types.AlbumArtistSort
	AlbumArtists                 = types.AlbumArtists
	AlbumArtistsSort             = types.AlbumArtistsSort
	AlbumSort                    = types.AlbumSort
	AmazonID                     = types.AmazonID
	Arranger                     = types.Arranger
	ArrangerSort                 = types.ArrangerSort
	Artist                       = types.Artist
	Artists                      = types.Artists
	ArtistsSort                  = types.ArtistsSort
	ArtistSort                   = types.ArtistSort
	Barcode                      = types.Barcode
	BPM                          = types.BPM
	CatalogNo                    = types.CatalogNo
	Choir                        = types.Choir
	ChoirSort                    = types.ChoirSort
	ClassicalCatalog             = types.ClassicalCatalog
	ClassicalNickname            = types.ClassicalNickname
	Comment                      = types.Comment
	Composer                     = types.Composer
	ComposerSort                 = types.ComposerSort
	Conductor                    = types.Conductor
	ConductorSort                = types.ConductorSort
	Country                      = types.Country
	CoverArt                     = types.CoverArt
	Custom1                      = types.Custom1
	Custom2                      = types.Custom2
	Custom3                      = types.Custom3
	Custom4                      = types.Custom4
	Custom5                      = types.Custom5
	DiscNo                       = types.DiscNo
	DiscSubtitle                 = types.DiscSubtitle
	DiscTotal                    = types.DiscTotal
	DJMixer                      = types.DJMixer
	Encoder                      = types.Encoder
	Engineer                     = types.Engineer
	Ensemble                     = types.Ensemble
	EnsembleSort                 = types.EnsembleSort
	FBPM                         = types.FBPM
	Genre                        = types.Genre
	Grouping                     = types.Grouping
	InvolvedPerson               = types.InvolvedPerson
	ISRC                         = types.ISRC
	IsClassical                  = types.IsClassical
	IsCompilation                = types.IsCompilation
	IsSoundtrack                 = types.IsSoundtrack
	ITunesGrouping               = types.ITunesGrouping
	Key                          = types.Key
	Language                     = types.Language
	Lyricist                     = types.Lyricist
	Lyrics                       = types.Lyrics
	Media                        = types.Media
	Mixer                        = types.Mixer
	Mood                         = types.Mood
	MoodAcoustic                 = types.MoodAcoustic
	MoodAggressive               = types.MoodAggressive
	MoodArousal                  = types.MoodArousal
	MoodDanceability             = types.MoodDanceability
	MoodElectronic               = types.MoodElectronic
	MoodHappy                    = types.MoodHappy
	MoodInstrumental             = types.MoodInstrumental
	MoodParty                    = types.MoodParty
	MoodRelaxed                  = types.MoodRelaxed
	MoodSad                      = types.MoodSad
	MoodValence                  = types.MoodValence
	Movement                     = types.Movement
	MovementNo                   = types.MovementNo
	MovementTotal                = types.MovementTotal
	MusicBrainzArtistID          = types.MusicBrainzArtistID
	MusicBrainzDiscID            = types.MusicBrainzDiscID
	MusicBrainzOriginalReleaseID = types.MusicBrainzOriginalReleaseID
	MusicBrainzReleaseArtistID   = types.MusicBrainzReleaseArtistID
	MusicBrainzReleaseCountry    = types.MusicBrainzReleaseCountry
	MusicBrainzReleaseGroupID    = types.MusicBrainzReleaseGroupID
	MusicBrainzReleaseID         = types.MusicBrainzReleaseID
	MusicBrainzReleaseStatus     = types.MusicBrainzReleaseStatus
	MusicBrainzReleaseTrackID    = types.MusicBrainzReleaseTrackID
	MusicBrainzReleaseType       = types.MusicBrainzReleaseType
	MusicBrainzTrackID           = types.MusicBrainzTrackID
	MusicBrainzWork              = types.MusicBrainzWork
	MusicBrainzWorkCompositionID = types.MusicBrainzWorkCompositionID
	MusicBrainzWorkID            = types.MusicBrainzWorkID
	MusicBrainzWorkPartLevel1ID  = types.MusicBrainzWorkPartLevel1ID
	MusicBrainzWorkPartLevel2ID  = types.MusicBrainzWorkPartLevel2ID
	MusicBrainzWorkPartLevel3ID  = types.MusicBrainzWorkPartLevel3ID
	MusicBrainzWorkPartLevel4ID  = types.MusicBrainzWorkPartLevel4ID
	MusicBrainzWorkPartLevel5ID  = types.MusicBrainzWorkPartLevel5ID
	MusicBrainzWorkPartLevel6ID  = types.MusicBrainzWorkPartLevel6ID
	MusicIPID                    = types.MusicIPID
	Occasion                     = types.Occasion
	Opus                         = types.Opus
	Orchestra                    = types.Orchestra
	OrchestraSort                = types.OrchestraSort
	OriginalAlbum                = types.OriginalAlbum
	OriginalArtist               = types.OriginalArtist
	OriginalLyricist             = types.OriginalLyricist
	OriginalYear                 = types.OriginalYear
	Part                         = types.Part
	PartNumber                   = types.PartNumber
	PartType                     = types.PartType
	Performer                    = types.Performer
	PerformerName                = types.PerformerName
	PerformerNameSort            = types.PerformerNameSort
	Period                       = types.Period
	Producer                     = types.Producer
	Quality                      = types.Quality
	Ranking                      = types.Ranking
	Rating                       = types.Rating
	RecordLabel                  = types.RecordLabel
	Remixer                      = types.Remixer
	Script                       = types.Script
	SingleDiscTrackNo            = types.SingleDiscTrackNo
	Subtitle                     = types.Subtitle
	Tags                         = types.Tags
	Tempo                        = types.Tempo
	Timbre                       = types.Timbre
	Title                        = types.Title
	TitleMovement                = types.TitleMovement
	TitleSort                    = types.TitleSort
	Tonality                     = types.Tonality
	Track                        = types.Track
	TrackTotal                   = types.TrackTotal
	URLDiscogsArtistSite         = types.URLDiscogsArtistSite
	URLDiscogsReleaseSite        = types.URLDiscogsReleaseSite
	URLLyricsSite                = types.URLLyricsSite
	URLOfficialArtistSite        = types.URLOfficialArtistSite
	URLOfficialReleaseSite       = types.URLOfficialReleaseSite
	URLWikipediaArtistSite       = types.URLWikipediaArtistSite
	URLWikipediaReleaseSite      = types.URLWikipediaReleaseSite
	Work                         = types.Work
	WorkComposition              = types.WorkComposition
	WorkPartLevel1               = types.WorkPartLevel1
	WorkPartLevel1Type           = types.WorkPartLevel1Type
	WorkPartLevel2               = types.WorkPartLevel2
	WorkPartLevel2Type           = types.WorkPartLevel2Type
	WorkPartLevel3               = types.WorkPartLevel3
	WorkPartLevel3Type           = types.WorkPartLevel3Type
	WorkPartLevel4               = types.WorkPartLevel4
	WorkPartLevel4Type           = types.WorkPartLevel4Type
	WorkPartLevel5               = types.WorkPartLevel5
	WorkPartLevel5Type           = types.WorkPartLevel5Type
	WorkPartLevel6               = types.WorkPartLevel6
	WorkPartLevel6Type           = types.WorkPartLevel6Type
	WorkType                     = types.WorkType
	Year                         = types.Year
)

// ParseFieldKey returns the key whose String form is name.
func ParseFieldKey(name string) (FieldKey, bool) {
	return types.ParseFieldKey(name)
}

// AllFieldKeys returns every valid key in declaration order.
func AllFieldKeys() []FieldKey {
	return types.AllFieldKeys()
}

// All returns an iterator over every field t holds a value for.
//
// Example:
//
//	for key, values := range audiotag.All(tag) {
//		fmt.Printf("%s: %v\n", key, values)
//	}
func All(t Tag) iter.Seq2[FieldKey, []string] {
	return types.All(t)
}

// Filter returns an iterator over the fields of t whose key satisfies predicate.
func Filter(t Tag, predicate func(FieldKey) bool) iter.Seq2[FieldKey, []string] {
	return types.Filter(t, predicate)
}

// Copy copies every text field and artwork from src to dst. Keys dst cannot
// represent come back as warnings.
func Copy(dst, src Tag) ([]Warning, error) {
	return types.Copy(dst, src)
}

// Equal reports whether a and b hold the same fields and artwork.
func Equal(a, b Tag) bool {
	return types.Equal(a, b)
}
