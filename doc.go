// Package audiotag reads and writes audio metadata tags: ID3v2.2, ID3v2.3
// and ID3v2.4 tags, FLAC metadata (Vorbis comments plus PICTURE blocks) and
// Ogg Vorbis/Opus comment packets, behind one field-oriented API.
//
// # Quick Start
//
// Reading the tag of an audio file:
//
//	tag, err := audiotag.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, _ := tag.GetFirst(audiotag.Title)
//	artist, _ := tag.GetFirst(audiotag.Artist)
//	fmt.Printf("%s - %s\n", artist, title)
//
// Editing and writing it back:
//
//	tag.SetField(audiotag.Album, "Live")
//	tag.AddField(audiotag.Genre, "Jazz")
//	if err := audiotag.Save("song.mp3", tag, audiotag.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Fields
//
// Every format maps the generic FieldKey space onto its own identifiers:
// frame IDs for ID3v2, comment names for Vorbis comments. A key a format
// cannot represent fails with *UnsupportedFieldError. CoverArt is never a
// text field; use the Artwork, SetArtwork, AddArtwork and DeleteArtwork
// methods.
//
// Track, disc and movement numbers share a single "n/total" frame in
// ID3v2. Track and TrackTotal read and write the two halves independently.
//
// # Tags in memory
//
// Decode and Encode work on complete tags held in memory. The format is
// detected from the magic bytes:
//
//	tag, err := audiotag.Decode(data)
//	out, err := audiotag.Encode(tag, audiotag.WithPadding(0))
//
// Convert moves a tag to another format. Between ID3v2 versions every frame
// is migrated, including frames with no generic key:
//
//	v23, err := audiotag.Convert(tag, audiotag.FormatID3v23)
//
// # Error Handling
//
// audiotag distinguishes between fatal errors and warnings:
//
//   - Fatal errors stop decoding (unsupported format, corrupt tag header)
//   - Warnings record frames or blocks that were dropped
//
// Check Tag.Warnings after decoding, or pass WithStrictParsing to turn the
// first dropped frame into a *CorruptedTagError:
//
//	for _, w := range tag.Warnings() {
//		log.Printf("warning: %s", w)
//	}
//
// # Concurrency
//
// Tags are not safe for concurrent mutation. The frame tables and the codec
// registry are read-only after init, so distinct tags can be decoded in
// parallel; DecodeMany and OpenMany do exactly that.
package audiotag
