package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/audiotag/internal/flac"
	"github.com/simonhull/audiotag/internal/id3v2"
	"github.com/simonhull/audiotag/internal/picture"
	"github.com/simonhull/audiotag/internal/types"
	"github.com/simonhull/audiotag/internal/vorbis"
)

// maxHexBytes limits binary payloads printed with show_binary.
const maxHexBytes = 64

// dumpFile prints the tag at the start of path: the frames of an ID3v2
// tag, the blocks of a FLAC stream, or a raw Vorbis/Opus comment packet.
func dumpFile(w io.Writer, path string, cfg config, o *types.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	size := stat.Size()

	format, err := types.DetectFormat(f, size, path)
	if err != nil {
		return err
	}
	o.Logger.Debug().Str("path", path).Str("format", format.String()).Int64("size", size).Msg("dumping")

	fmt.Fprintf(w, "%s: %s\n", path, format)
	var warnings []types.Warning
	switch format {
	case types.FormatID3v22, types.FormatID3v23, types.FormatID3v24:
		t, err := id3v2.ReadTag(f, size, path, o)
		if err != nil {
			return err
		}
		dumpID3(w, t, cfg)
		warnings = t.Warnings()

	case types.FormatFLAC:
		t, err := flac.Read(f, size, path, o)
		if err != nil {
			return err
		}
		dumpFLAC(w, t, cfg)
		warnings = t.Warnings()

	case types.FormatOggVorbis, types.FormatOpus:
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		t, err := vorbis.DecodePacket(data, o)
		if err != nil {
			return err
		}
		dumpComments(w, t, cfg)
		warnings = t.Warnings()
	}

	for _, warning := range warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	return nil
}

func dumpID3(w io.Writer, t *id3v2.Tag, cfg config) {
	fmt.Fprintf(w, "  %d frames\n", len(t.Frames()))
	for _, f := range t.Frames() {
		flags := ""
		if f.StatusFlags != 0 || f.FormatFlags != 0 {
			flags = fmt.Sprintf(" [status %#02x, format %#02x]", f.StatusFlags, f.FormatFlags)
		}
		fmt.Fprintf(w, "  %-4s%s %s\n", f.ID(), flags, describe(f.Body, cfg))
	}
}

// describe renders a frame body on one line.
func describe(body id3v2.Body, cfg config) string {
	switch b := body.(type) {
	case *id3v2.TextBody:
		return fmt.Sprintf("%q", b.Values())
	case *id3v2.UserTextBody:
		return fmt.Sprintf("%q = %q", b.Description, b.Value)
	case *id3v2.URLBody:
		return b.URL
	case *id3v2.UserURLBody:
		return fmt.Sprintf("%q = %s", b.Description, b.URL)
	case *id3v2.CommentBody:
		return fmt.Sprintf("[%s] %q: %q", b.Language, b.Description, b.Text)
	case *id3v2.PairedTextBody:
		pairs := make([]string, len(b.Pairs))
		for i, p := range b.Pairs {
			pairs[i] = p.Role + "=" + p.Name
		}
		return strings.Join(pairs, ", ")
	case *id3v2.PictureBody:
		return fmt.Sprintf("%s, %s, %q, %d bytes%s", types.ArtworkType(b.PictureType), b.MIMEType, b.Description, len(b.Data), binary(b.Data, cfg))
	case *id3v2.UniqueFileIDBody:
		return fmt.Sprintf("%s: %x", b.Owner, b.Identifier)
	case *id3v2.PopularimeterBody:
		return fmt.Sprintf("%q rating %d, played %d", b.Email, b.Rating, b.Counter)
	case *id3v2.EncryptedBody:
		return fmt.Sprintf("encrypted with method %#02x, %d bytes%s", b.Method, len(b.Data), binary(b.Data, cfg))
	case *id3v2.UnsupportedBody:
		return fmt.Sprintf("%d bytes%s", len(b.Data), binary(b.Data, cfg))
	default:
		return fmt.Sprintf("%T", body)
	}
}

func dumpFLAC(w io.Writer, t *flac.Tag, cfg config) {
	dumpComments(w, t.VorbisComment(), cfg)
	for _, img := range t.Images() {
		fmt.Fprintf(w, "  PICTURE %s\n", describePicture(img, cfg))
	}
	if skipped := t.Skipped(); len(skipped) > 0 {
		names := make([]string, len(skipped))
		for i, bt := range skipped {
			names[i] = flac.BlockName(bt)
		}
		fmt.Fprintf(w, "  skipped blocks: %s\n", strings.Join(names, ", "))
	}
}

func describePicture(b *picture.Block, cfg config) string {
	kind := types.ArtworkType(b.PictureType)
	if b.IsLinked() {
		return fmt.Sprintf("%s, linked to %s", kind, b.URL())
	}
	return fmt.Sprintf("%s, %s, %dx%d, %q, %d bytes%s", kind, b.MIME, b.Width, b.Height, b.Description, len(b.ImageData), binary(b.ImageData, cfg))
}

func dumpComments(w io.Writer, t *vorbis.Tag, cfg config) {
	fmt.Fprintf(w, "  vendor %q, %d comments\n", t.Vendor(), t.FieldCount())
	for _, f := range t.Fields() {
		if vorbis.IsPictureName(f.Name) && !cfg.ShowBinary {
			fmt.Fprintf(w, "  %s=<%d bytes of base64>\n", f.Name, len(f.Value))
			continue
		}
		fmt.Fprintf(w, "  %s=%s\n", f.Name, f.Value)
	}
}

// binary renders the start of data as hex when show_binary is set.
func binary(data []byte, cfg config) string {
	if !cfg.ShowBinary || len(data) == 0 {
		return ""
	}
	if len(data) > maxHexBytes {
		return ": " + hex.EncodeToString(data[:maxHexBytes]) + "..."
	}
	return ": " + hex.EncodeToString(data)
}
