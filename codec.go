package audiotag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/audiotag/internal/flac"
	"github.com/simonhull/audiotag/internal/id3v2"
	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
	"github.com/simonhull/audiotag/internal/vorbis"
)

// Decode decodes a complete tag: an ID3v2 tag with its header, a FLAC
// metadata region or a Vorbis/Opus comment packet. The format is detected
// from the magic bytes.
//
// Frames or blocks that fail to decode are dropped and reported through
// Tag.Warnings unless WithStrictParsing is given.
func Decode(data []byte, opts ...Option) (Tag, error) {
	format, err := types.DetectBytes(data)
	if err != nil {
		return nil, err
	}
	dec := registry.Get(format)
	if dec == nil {
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("no decoder available for format %s", format)}
	}
	t, err := dec.Decode(data, newOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return t, nil
}

// Encode encodes t in its own format. The result decodes back with Decode.
func Encode(t Tag, opts ...Option) ([]byte, error) {
	enc := registry.GetEncoder(t.Format())
	if enc == nil {
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("no encoder available for format %s", t.Format())}
	}
	return enc.Encode(t, newOptions(opts))
}

// NewTag returns an empty tag of the given format.
func NewTag(format Format) (Tag, error) {
	if v, ok := id3v2.VersionOf(format); ok {
		return id3v2.NewTag(v), nil
	}
	switch format {
	case FormatFLAC:
		return flac.NewTag(), nil
	case FormatOggVorbis, FormatOpus:
		return vorbis.NewTag(format), nil
	default:
		return nil, &UnsupportedFormatError{Reason: fmt.Sprintf("cannot create a %s tag", format)}
	}
}

// Convert returns a copy of t in the target format; t is not modified.
//
// Between ID3v2 versions the frames themselves are migrated, so fields
// without a generic key survive. Any other pair copies the generic fields
// and artwork; keys the target cannot hold are logged and skipped, or fail
// the conversion under WithStrictParsing.
func Convert(t Tag, target Format, opts ...Option) (Tag, error) {
	o := newOptions(opts)
	if src, ok := t.(*id3v2.Tag); ok {
		if v, ok := id3v2.VersionOf(target); ok {
			return id3v2.ConvertTag(src, v, o)
		}
	}

	out, err := NewTag(target)
	if err != nil {
		return nil, err
	}
	warnings, err := types.Copy(out, t)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		if o.Strict {
			return nil, &CorruptedTagError{Reason: w.Message}
		}
		o.Logger.Debug().Str("from", t.Format().String()).Str("to", target.String()).Msg(w.Message)
	}
	return out, nil
}

// DecodeMany decodes several tags concurrently.
//
// Inputs are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the inputs. The first failure
// cancels the remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := audiotag.DecodeMany(ctx, blobs...)
func DecodeMany(ctx context.Context, inputs ...[]byte) ([]Tag, error) {
	return decodeMany(ctx, len(inputs), func(i int) (Tag, error) {
		t, err := Decode(inputs[i])
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		return t, nil
	})
}

func decodeMany(ctx context.Context, n int, decode func(i int) (Tag, error)) ([]Tag, error) {
	if n == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Tag, n)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := decode(i)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
