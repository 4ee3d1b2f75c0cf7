package id3v2

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/simonhull/audiotag/internal/types"
)

// Mapping binds a field key to a frame identifier and, for frames that
// carry several logical fields, a sub-id. The sub-id is the description of
// a TXXX/WXXX/COMM frame, the owner of a UFID frame, or the role inside an
// involved people list.
type Mapping struct {
	Key     types.FieldKey
	FrameID string
	SubID   string
}

type frameRef struct {
	id  string
	sub string
}

// Table is the key mapping of one ID3v2 version. Tables are built once and
// never modified.
type Table struct {
	version  Version
	mappings []Mapping
	byKey    map[types.FieldKey]Mapping
	byFrame  map[frameRef]types.FieldKey
	multi    map[string]bool
}

// ToFrame returns the frame identifier and sub-id for k.
func (t *Table) ToFrame(k types.FieldKey) (frameID, subID string, ok bool) {
	m, ok := t.byKey[k]
	return m.FrameID, m.SubID, ok
}

// ToGeneric returns the key mapped to the frame identifier and sub-id.
func (t *Table) ToGeneric(frameID, subID string) (types.FieldKey, bool) {
	k, ok := t.byFrame[frameRef{frameID, subID}]
	return k, ok
}

// IsMultiValued reports whether several frames with the identifier may
// appear in one tag.
func (t *Table) IsMultiValued(frameID string) bool {
	return t.multi[frameID]
}

// Mappings returns every mapping of the table in key order.
func (t *Table) Mappings() []Mapping {
	out := make([]Mapping, len(t.mappings))
	copy(out, t.mappings)
	return out
}

// Version returns the version the table describes.
func (t *Table) Version() Version { return t.version }

// claimsSub reports whether some key maps to frameID with a non-empty
// sub-id equal to sub.
func (t *Table) claimsSub(frameID, sub string) bool {
	if sub == "" {
		return false
	}
	_, ok := t.byFrame[frameRef{frameID, sub}]
	return ok
}

// claimsRole reports whether some key maps to a role of the involved
// people list frameID. Roles compare case-insensitively.
func (t *Table) claimsRole(frameID, role string) bool {
	if role == "" {
		return false
	}
	for _, m := range t.mappings {
		if m.FrameID == frameID && m.SubID != "" && strings.EqualFold(m.SubID, role) {
			return true
		}
	}
	return false
}

func newTable(v Version, mappings []Mapping, multi []string) *Table {
	t := &Table{
		version:  v,
		mappings: mappings,
		byKey:    make(map[types.FieldKey]Mapping, len(mappings)),
		byFrame:  make(map[frameRef]types.FieldKey, len(mappings)),
		multi:    make(map[string]bool, len(multi)),
	}
	for _, m := range mappings {
		if m.Key == types.CoverArt {
			panic(fmt.Sprintf("id3v2: %s table maps %s", v, m.Key))
		}
		if prev, dup := t.byKey[m.Key]; dup {
			panic(fmt.Sprintf("id3v2: %s table maps %s twice (%s, %s)", v, m.Key, prev.FrameID, m.FrameID))
		}
		ref := frameRef{m.FrameID, m.SubID}
		if prev, dup := t.byFrame[ref]; dup {
			panic(fmt.Sprintf("id3v2: %s table maps %s:%q to both %s and %s", v, m.FrameID, m.SubID, prev, m.Key))
		}
		t.byKey[m.Key] = m
		t.byFrame[ref] = m.Key
	}
	for _, id := range multi {
		t.multi[id] = true
	}
	return t
}

var (
	tablesOnce sync.Once
	tables     map[Version]*Table
)

// TableFor returns the key table for v, or nil for an unknown version.
func TableFor(v Version) *Table {
	tablesOnce.Do(func() {
		tables = map[Version]*Table{
			V22: newTable(V22, v22Mappings(), v22Multi),
			V23: newTable(V23, v23Mappings(), v23Multi),
			V24: newTable(V24, v24Mappings(), v23Multi),
		}
	})
	return tables[v]
}

// partKeys are keys stored as the total half of an "n/total" text frame.
// They sit outside the bijection and resolve through the key they total.
var partKeys = map[types.FieldKey]types.FieldKey{
	types.TrackTotal:    types.Track,
	types.DiscTotal:     types.DiscNo,
	types.MovementTotal: types.MovementNo,
}

var (
	v22Multi = []string{"PIC", "UFI", "POP", "TXX", "WXX", "COM", "ULT", "GEO", "WAR", "WCM"}
	v23Multi = []string{
		"APIC", "UFID", "POPM", "TXXX", "WXXX", "COMM", "USLT", "SYLT",
		"GEOB", "PRIV", "WCOM", "WOAR", "AENC", "LINK", "ENCR", "GRID",
	}
)

// Descriptions of the user-defined text frames, shared by all versions.
var userTextKeys = []struct {
	key  types.FieldKey
	desc string
}{
	{types.AcoustIDFingerprint, "Acoustid Fingerprint"},
	{types.AcoustIDID, "Acoustid Id"},
	{types.AlbumArtists, "ALBUM_ARTISTS"},
	{types.AlbumArtistsSort, "ALBUM_ARTISTS_SORT"},
	{types.AmazonID, "ASIN"},
	{types.ArrangerSort, "ARRANGER_SORT"},
	{types.Artists, "ARTISTS"},
	{types.ArtistsSort, "ARTISTS_SORT"},
	{types.Barcode, "BARCODE"},
	{types.CatalogNo, "CATALOGNUMBER"},
	{types.Choir, "CHOIR"},
	{types.ChoirSort, "CHOIR_SORT"},
	{types.ClassicalCatalog, "CLASSICAL_CATALOG"},
	{types.ClassicalNickname, "CLASSICAL_NICKNAME"},
	{types.ConductorSort, "CONDUCTOR_SORT"},
	{types.Country, "Country"},
	{types.Ensemble, "ENSEMBLE"},
	{types.EnsembleSort, "ENSEMBLE_SORT"},
	{types.FBPM, "FBPM"},
	{types.IsClassical, "IS_CLASSICAL"},
	{types.IsSoundtrack, "IS_SOUNDTRACK"},
	{types.MoodAcoustic, "MOOD_ACOUSTIC"},
	{types.MoodAggressive, "MOOD_AGGRESSIVE"},
	{types.MoodArousal, "MOOD_AROUSAL"},
	{types.MoodDanceability, "MOOD_DANCEABILITY"},
	{types.MoodElectronic, "MOOD_ELECTRONIC"},
	{types.MoodHappy, "MOOD_HAPPY"},
	{types.MoodInstrumental, "MOOD_INSTRUMENTAL"},
	{types.MoodParty, "MOOD_PARTY"},
	{types.MoodRelaxed, "MOOD_RELAXED"},
	{types.MoodSad, "MOOD_SAD"},
	{types.MoodValence, "MOOD_VALENCE"},
	{types.MusicBrainzArtistID, "MusicBrainz Artist Id"},
	{types.MusicBrainzDiscID, "MusicBrainz Disc Id"},
	{types.MusicBrainzOriginalReleaseID, "MusicBrainz Original Album Id"},
	{types.MusicBrainzReleaseArtistID, "MusicBrainz Album Artist Id"},
	{types.MusicBrainzReleaseCountry, "MusicBrainz Album Release Country"},
	{types.MusicBrainzReleaseGroupID, "MusicBrainz Release Group Id"},
	{types.MusicBrainzReleaseID, "MusicBrainz Album Id"},
	{types.MusicBrainzReleaseStatus, "MusicBrainz Album Status"},
	{types.MusicBrainzReleaseTrackID, "MusicBrainz Release Track Id"},
	{types.MusicBrainzReleaseType, "MusicBrainz Album Type"},
	{types.MusicBrainzWork, "MUSICBRAINZ_WORK"},
	{types.MusicBrainzWorkCompositionID, "MUSICBRAINZ_WORK_COMPOSITION_ID"},
	{types.MusicBrainzWorkID, "MusicBrainz Work Id"},
	{types.MusicBrainzWorkPartLevel1ID, "MUSICBRAINZ_WORK_PART_LEVEL1_ID"},
	{types.MusicBrainzWorkPartLevel2ID, "MUSICBRAINZ_WORK_PART_LEVEL2_ID"},
	{types.MusicBrainzWorkPartLevel3ID, "MUSICBRAINZ_WORK_PART_LEVEL3_ID"},
	{types.MusicBrainzWorkPartLevel4ID, "MUSICBRAINZ_WORK_PART_LEVEL4_ID"},
	{types.MusicBrainzWorkPartLevel5ID, "MUSICBRAINZ_WORK_PART_LEVEL5_ID"},
	{types.MusicBrainzWorkPartLevel6ID, "MUSICBRAINZ_WORK_PART_LEVEL6_ID"},
	{types.MusicIPID, "MusicIP PUID"},
	{types.Opus, "OPUS"},
	{types.Orchestra, "ORCHESTRA"},
	{types.OrchestraSort, "ORCHESTRA_SORT"},
	{types.Part, "PART"},
	{types.PartNumber, "PARTNUMBER"},
	{types.PartType, "PART_TYPE"},
	{types.PerformerName, "PERFORMER_NAME"},
	{types.PerformerNameSort, "PERFORMER_NAME_SORT"},
	{types.Period, "PERIOD"},
	{types.Ranking, "RANKING"},
	{types.Script, "Script"},
	{types.SingleDiscTrackNo, "SINGLE_DISC_TRACK_NO"},
	{types.Tags, "TAGS"},
	{types.Timbre, "TIMBRE_BRIGHTNESS"},
	{types.TitleMovement, "TITLE_MOVEMENT"},
	{types.Tonality, "TONALITY"},
	{types.Work, "WORK"},
	{types.WorkComposition, "MUSICBRAINZ_WORK_COMPOSITION"},
	{types.WorkPartLevel1, "MUSICBRAINZ_WORK_PART_LEVEL1"},
	{types.WorkPartLevel1Type, "MUSICBRAINZ_WORK_PART_LEVEL1_TYPE"},
	{types.WorkPartLevel2, "MUSICBRAINZ_WORK_PART_LEVEL2"},
	{types.WorkPartLevel2Type, "MUSICBRAINZ_WORK_PART_LEVEL2_TYPE"},
	{types.WorkPartLevel3, "MUSICBRAINZ_WORK_PART_LEVEL3"},
	{types.WorkPartLevel3Type, "MUSICBRAINZ_WORK_PART_LEVEL3_TYPE"},
	{types.WorkPartLevel4, "MUSICBRAINZ_WORK_PART_LEVEL4"},
	{types.WorkPartLevel4Type, "MUSICBRAINZ_WORK_PART_LEVEL4_TYPE"},
	{types.WorkPartLevel5, "MUSICBRAINZ_WORK_PART_LEVEL5"},
	{types.WorkPartLevel5Type, "MUSICBRAINZ_WORK_PART_LEVEL5_TYPE"},
	{types.WorkPartLevel6, "MUSICBRAINZ_WORK_PART_LEVEL6"},
	{types.WorkPartLevel6Type, "MUSICBRAINZ_WORK_PART_LEVEL6_TYPE"},
	{types.WorkType, "WORK_TYPE"},
}

// Comment descriptions used by MediaMonkey for its custom fields.
var commentKeys = []struct {
	key  types.FieldKey
	desc string
}{
	{types.Comment, ""},
	{types.Custom1, "Songs-DB_Custom1"},
	{types.Custom2, "Songs-DB_Custom2"},
	{types.Custom3, "Songs-DB_Custom3"},
	{types.Custom4, "Songs-DB_Custom4"},
	{types.Custom5, "Songs-DB_Custom5"},
	{types.Occasion, "Songs-DB_Occasion"},
	{types.Quality, "Songs-DB_Preference"},
	{types.Tempo, "Songs-DB_Tempo"},
}

var userURLKeys = []struct {
	key  types.FieldKey
	desc string
}{
	{types.URLDiscogsArtistSite, "DISCOGS_ARTIST"},
	{types.URLDiscogsReleaseSite, "DISCOGS_RELEASE"},
	{types.URLLyricsSite, "LYRICS_SITE"},
	{types.URLOfficialReleaseSite, "OFFICIAL_RELEASE"},
	{types.URLWikipediaArtistSite, "WIKIPEDIA_ARTIST"},
	{types.URLWikipediaReleaseSite, "WIKIPEDIA_RELEASE"},
}

// Roles inside the involved people list.
var roleKeys = []struct {
	key  types.FieldKey
	role string
}{
	{types.Arranger, "arranger"},
	{types.DJMixer, "DJ-mix"},
	{types.Engineer, "engineer"},
	{types.Mixer, "mix"},
	{types.Producer, "producer"},
}

// MusicBrainzOwner is the UFID owner of MusicBrainz track identifiers.
const MusicBrainzOwner = "http://musicbrainz.org"

// frameIDs names the frames that carry the sub-id families of a version.
type frameIDs struct {
	userText string
	userURL  string
	comment  string
	paired   string
	ufid     string
}

// subIDMappings returns the mappings every version shares, addressed
// through the version's frame identifiers.
func subIDMappings(ids frameIDs) []Mapping {
	var out []Mapping
	for _, e := range userTextKeys {
		out = append(out, Mapping{e.key, ids.userText, e.desc})
	}
	for _, e := range commentKeys {
		out = append(out, Mapping{e.key, ids.comment, e.desc})
	}
	for _, e := range userURLKeys {
		out = append(out, Mapping{e.key, ids.userURL, e.desc})
	}
	for _, e := range roleKeys {
		out = append(out, Mapping{e.key, ids.paired, e.role})
	}
	// The key without a role holds the pairs whose role no key claims.
	out = append(out, Mapping{types.InvolvedPerson, ids.paired, ""})
	return append(out, Mapping{types.MusicBrainzTrackID, ids.ufid, MusicBrainzOwner})
}

// standard builds sub-id-less mappings from a key to frame map.
func standard(frames map[types.FieldKey]string) []Mapping {
	out := make([]Mapping, 0, len(frames))
	for k, id := range frames {
		out = append(out, Mapping{Key: k, FrameID: id})
	}
	return out
}

func sortMappings(ms []Mapping) []Mapping {
	slices.SortFunc(ms, func(a, b Mapping) int { return cmp.Compare(a.Key, b.Key) })
	return ms
}
