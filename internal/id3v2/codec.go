package id3v2

import (
	"bytes"
	"fmt"
	"io"

	"github.com/simonhull/audiotag/internal/registry"
	"github.com/simonhull/audiotag/internal/types"
)

func init() {
	for _, v := range []Version{V22, V23, V24} {
		registry.Register(v.Format(), codec{})
		registry.RegisterEncoder(v.Format(), codec{})
	}
}

// codec adapts complete ID3v2 tags to the format registry.
type codec struct{}

func (codec) Decode(data []byte, o *types.Options) (types.Tag, error) {
	return codec{}.Read(bytes.NewReader(data), int64(len(data)), "", o)
}

func (codec) Read(r io.ReaderAt, size int64, path string, o *types.Options) (types.Tag, error) {
	t, err := ReadTag(r, size, path, o)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (codec) Encode(t types.Tag, o *types.Options) ([]byte, error) {
	tag, ok := t.(*Tag)
	if !ok {
		return nil, fmt.Errorf("id3v2: cannot encode %T", t)
	}
	if o == nil {
		o = types.DefaultOptions()
	}
	return Marshal(tag, o.Padding)
}
