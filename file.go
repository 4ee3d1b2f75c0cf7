package audiotag

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
)

// Open reads the tag at the start of an audio file: a leading ID3v2 tag or
// the metadata blocks of a FLAC stream. Only the tag region is read; audio
// data is never loaded.
//
// Example:
//
//	tag, err := audiotag.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	title, _ := tag.GetFirst(audiotag.Title)
func Open(path string, opts ...Option) (Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	return openReader(f, stat.Size(), path, newOptions(opts))
}

// openReader reads a tag from an io.ReaderAt.
func openReader(r io.ReaderAt, size int64, path string, o *decodeOptions) (Tag, error) {
	format, err := types.DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	dec := registry.Get(format)
	if dec == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder available for format %s", format),
		}
	}

	var t Tag
	if rd, ok := dec.(registry.Reader); ok {
		t, err = rd.Read(r, size, path, o)
	} else {
		data := make([]byte, size)
		if _, err = r.ReadAt(data, 0); err == nil || err == io.EOF {
			t, err = dec.Decode(data, o)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	return t, nil
}

// OpenContext is Open with a context checked before any work starts.
func OpenContext(ctx context.Context, path string, opts ...Option) (Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple audio files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the remaining reads are cancelled and the error is returned.
func OpenMany(ctx context.Context, paths ...string) ([]Tag, error) {
	return decodeMany(ctx, len(paths), func(i int) (Tag, error) {
		t, err := OpenContext(ctx, paths[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
		return t, nil
	})
}
