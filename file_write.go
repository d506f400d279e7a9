package id3text

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save writes the tag back to the original file.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    id3text.WithBackup(".bak"),
//	    id3text.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the tag followed by the file's remaining data to a new
// location.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, any partially written data is cleaned up.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if f.reader == nil {
		return errors.New("file not open: reader is nil")
	}

	v := options.version
	if v == 0 {
		v = f.Tag.Version
		if v != V23 && v != V24 {
			v = V24
		}
	}

	rendered, err := f.Tag.Render(v, options.padding)
	if err != nil {
		return fmt.Errorf("render tag: %w", err)
	}

	// Get original file's mod time if we need to preserve it
	var origModTime os.FileInfo
	if options.preserveModTime {
		info, err := os.Stat(f.Path)
		if err == nil {
			origModTime = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".id3text-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(rendered); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}
	audio := io.NewSectionReader(f.reader, f.audioOffset, f.Size-f.audioOffset)
	if _, err := io.Copy(tempFile, audio); err != nil {
		return fmt.Errorf("copy audio data: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if options.preserveModTime && origModTime != nil {
		_ = os.Chtimes(outputPath, origModTime.ModTime(), origModTime.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	f.log().Debug("saved tag",
		"path", outputPath,
		"version", v,
		"bytes", len(rendered),
		"frames", f.Tag.Len(),
	)

	if options.validate {
		if err := validateWrittenFile(outputPath, rendered, v, options.padding); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-reads the tag at path and checks that rendering it
// again reproduces want.
func validateWrittenFile(path string, want []byte, v ID3Version, padding int) error {
	written, err := Open(path, WithStrictParsing())
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer written.Close() //nolint:errcheck // Best effort close

	if written.Tag.Version != v {
		return fmt.Errorf("version mismatch: got %s, want %s", written.Tag.Version, v)
	}
	got, err := written.Tag.Render(v, padding)
	if err != nil {
		return fmt.Errorf("re-render: %w", err)
	}
	if !bytes.Equal(got, want) {
		return errors.New("tag read back differs from tag written")
	}
	return nil
}
