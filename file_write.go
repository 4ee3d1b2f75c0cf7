package audiotag

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/audiotag/internal/flac"
	"github.com/simonhull/audiotag/internal/id3v2"
)

// Save writes t into the audio file at path, replacing its current tag.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
//	err := audiotag.Save("song.mp3", tag,
//	    audiotag.WithBackup(".bak"),
//	    audiotag.WithValidation(),
//	)
//
// An ID3v2 tag replaces the leading ID3v2 tag of any file, or is prepended
// when there is none. A FLAC tag replaces the comment, picture and padding
// blocks of a FLAC stream. Other tag formats return *UnsupportedFormatError.
func Save(path string, t Tag, opts ...SaveOption) error {
	return SaveAs(path, path, t, opts...)
}

// SaveAs is Save writing to outputPath instead of replacing the source. The
// audio data is read from inputPath.
func SaveAs(inputPath, outputPath string, t Tag, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var out []byte
	switch tag := t.(type) {
	case *id3v2.Tag:
		out, err = id3v2.Splice(data, tag, options.padding)
	case *flac.Tag:
		out, err = flac.Rewrite(data, tag, options.padding)
	default:
		return &UnsupportedFormatError{
			Path:   outputPath,
			Reason: fmt.Sprintf("cannot write %s tags to a file", t.Format()),
		}
	}
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(inputPath); err == nil {
			origInfo = info
		}
	}

	// Same directory as the output so the rename stays atomic.
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".audiotag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(out); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, outputPath+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if err := validateWrittenFile(outputPath, t); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// validateWrittenFile re-opens path and compares its tag with want.
func validateWrittenFile(path string, want Tag) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	if !Equal(written, want) {
		return fmt.Errorf("%s: written tag differs from the saved one", path)
	}
	return nil
}
