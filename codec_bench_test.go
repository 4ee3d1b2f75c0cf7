package audiotag_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/audiotag"
)

func benchData(b *testing.B, format audiotag.Format) []byte {
	b.Helper()
	data, err := audiotag.Encode(newTag(b, format))
	if err != nil {
		b.Fatal(err)
	}
	return data
}

// BenchmarkDecode measures detection plus decoding of one in-memory tag.
func BenchmarkDecode(b *testing.B) {
	for _, format := range allFormats {
		b.Run(format.String(), func(b *testing.B) {
			data := benchData(b, format)

			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for i := 0; i < b.N; i++ {
				if _, err := audiotag.Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecodeMany measures concurrent decoding of 100 tags.
func BenchmarkDecodeMany(b *testing.B) {
	inputs := make([][]byte, 100)
	for i := range inputs {
		inputs[i] = benchData(b, allFormats[i%len(allFormats)])
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := audiotag.DecodeMany(ctx, inputs...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOpen measures opening a file and reading its leading tag.
func BenchmarkOpen(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.mp3")
	data := append(benchData(b, audiotag.FormatID3v24), make([]byte, 1<<20)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := audiotag.Open(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvert(b *testing.B) {
	tag := newTag(b, audiotag.FormatID3v24)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := audiotag.Convert(tag, audiotag.FormatID3v23); err != nil {
			b.Fatal(err)
		}
	}
}
