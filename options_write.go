package audiotag

import "github.com/simonhull/audiotag/internal/types"

// SaveOption configures Save and SaveAs.
//
// Example:
//
//	err := audiotag.Save("song.mp3", tag,
//	    audiotag.WithBackup(".bak"),
//	    audiotag.WithValidation(),
//	)
type SaveOption func(*saveOptions)

type saveOptions struct {
	backupSuffix    string
	validate        bool
	preserveModTime bool
	padding         int
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{padding: types.DefaultPadding}
}

// WithBackup renames the existing output file to its name plus suffix
// before the new file takes its place. WithBackup(".bak") keeps
// "song.mp3.bak" next to the rewritten "song.mp3".
//
// If the backup file already exists, it will be overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and fails if the tag read
// back differs from the one saved.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the modification time of the input file.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithTagPadding sets the padding left after the tag so later edits can
// rewrite it in place. The default is 1024 bytes.
func WithTagPadding(n int) SaveOption {
	return func(o *saveOptions) {
		o.padding = max(n, 0)
	}
}
