package id3text

// DefaultPadding is the number of zero bytes left after the frames so
// later edits can grow the tag without rewriting the file.
const DefaultPadding = 1024

// SaveOption configures behavior when saving files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := file.Save(
//	    id3text.WithVersion(id3text.V23),
//	    id3text.WithBackup(".bak"),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	version         ID3Version // Revision to write; 0 keeps the tag's own
	padding         int        // Zero bytes after the frames
	backupSuffix    string     // Suffix for backup file (e.g., ".bak")
	validate        bool       // Re-read after write to verify
	preserveModTime bool       // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		version:         0,
		padding:         DefaultPadding,
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
	}
}

// WithVersion writes the tag as revision v (V23 or V24).
//
// By default the tag keeps the revision it was read as; tags read as
// ID3v2.2, which cannot be written, are saved as ID3v2.4.
//
// Example:
//
//	err := file.Save(id3text.WithVersion(id3text.V23))
//	// TDRC is written as TYER/TDAT/TIME
func WithVersion(v ID3Version) SaveOption {
	return func(o *saveOptions) {
		o.version = v
	}
}

// WithPadding sets how many zero bytes follow the frames.
//
// Default is DefaultPadding.
func WithPadding(n int) SaveOption {
	return func(o *saveOptions) {
		o.padding = n
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "song.mp3.bak"
// before modifying "song.mp3".
//
// If the backup file already exists, it will be overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// The written tag is read back and rendered again; the result must match
// what was written byte for byte.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// Use this when you want to maintain the original file timestamps,
// such as when updating metadata without changing the "modified" date.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
