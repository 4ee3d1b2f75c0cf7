package audiotag

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/simonhull/audiotag/internal/types"
)

type nopDecrypter struct{}

func (nopDecrypter) Decrypt(_ string, _ byte, data []byte) ([]byte, error) { return data, nil }

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := newOptions(nil)
		if o.Strict || o.IgnoreWarnings || o.Decrypter != nil {
			t.Errorf("newOptions() = %+v, want defaults", o)
		}
		if o.MaxDecompressedSize != types.DefaultMaxDecompressedSize {
			t.Errorf("MaxDecompressedSize = %d, want %d", o.MaxDecompressedSize, types.DefaultMaxDecompressedSize)
		}
		if o.Padding != types.DefaultPadding {
			t.Errorf("Padding = %d, want %d", o.Padding, types.DefaultPadding)
		}
	})

	t.Run("all options combined", func(t *testing.T) {
		logger := zerolog.New(nil).Level(zerolog.DebugLevel)
		o := newOptions([]Option{
			WithStrictParsing(),
			WithIgnoreWarnings(),
			WithLogger(logger),
			WithMaxDecompressedSize(1 << 10),
			WithDecrypter(nopDecrypter{}),
			WithPadding(-5),
		})

		if !o.Strict || !o.IgnoreWarnings {
			t.Error("Strict and IgnoreWarnings should be set")
		}
		if o.Logger.GetLevel() != zerolog.DebugLevel {
			t.Errorf("Logger level = %v, want debug", o.Logger.GetLevel())
		}
		if o.MaxDecompressedSize != 1<<10 {
			t.Errorf("MaxDecompressedSize = %d, want 1024", o.MaxDecompressedSize)
		}
		if o.Decrypter == nil {
			t.Error("Decrypter = nil")
		}
		if o.Padding != 0 {
			t.Errorf("Padding = %d, want 0", o.Padding)
		}
	})

	t.Run("non-positive size keeps default", func(t *testing.T) {
		o := newOptions([]Option{WithMaxDecompressedSize(0)})
		if o.MaxDecompressedSize != types.DefaultMaxDecompressedSize {
			t.Errorf("MaxDecompressedSize = %d, want default", o.MaxDecompressedSize)
		}
	})
}

func TestSaveOptions(t *testing.T) {
	o := defaultSaveOptions()
	if o.backupSuffix != "" || o.validate || o.preserveModTime || o.padding != types.DefaultPadding {
		t.Errorf("defaultSaveOptions() = %+v", o)
	}

	for _, opt := range []SaveOption{WithBackup(".bak"), WithValidation(), WithPreserveModTime(), WithTagPadding(64)} {
		opt(o)
	}
	if o.backupSuffix != ".bak" || !o.validate || !o.preserveModTime || o.padding != 64 {
		t.Errorf("options = %+v, want all set", o)
	}
}
