package id3text

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3text/internal/tag"
)

// File is an opened file with its ID3v2 tag.
//
// Files without a tag get an empty ID3v2.4 tag, so frames can be added and
// saved the same way.
//
// Always call Close() when done to release file resources:
//
//	file, err := id3text.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the file
	Path string

	// File size in bytes
	Size int64

	// Tag read from the file (never nil)
	Tag *Tag

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	// Internal state (unexported)
	reader      io.ReaderAt // File handle or other reader
	audioOffset int64       // Where the data after the tag starts
	logger      *slog.Logger
}

// Open opens a file and reads its ID3v2 tag.
//
// Only the tag is read; the rest of the file stays on disk until Save.
//
// If a frame is truncated or unusable, Open returns the rest of the tag
// with warnings instead of an error. Check File.Warnings for details.
//
// Example:
//
//	file, err := id3text.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	title, _ := file.Text("TIT2")
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Keep the file handle for Save
	file.reader = f
	return file, nil
}

// openReader reads the tag from an io.ReaderAt (internal, for testing)
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	file := &File{
		Path:   path,
		Size:   size,
		reader: r,
		logger: options.logger,
	}

	if !tag.Present(r, size) {
		options.logger.Debug("no ID3v2 tag", "path", path)
		file.Tag = tag.New(V24)
		return file, nil
	}

	t, err := tag.Read(r, size, path)
	if err != nil {
		return nil, fmt.Errorf("read tag: %w", err)
	}
	file.Tag = t
	file.Warnings = t.Warnings
	file.audioOffset = min(t.Size(), size)

	if options.strictParsing {
		if err := checkFrames(t); err != nil {
			return nil, fmt.Errorf("strict parsing failed: %w", err)
		}
		if len(file.Warnings) > 0 {
			return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
		}
	}

	for _, w := range file.Warnings {
		options.logger.Warn("tag warning", "path", path, "stage", w.Stage, "offset", w.Offset, "msg", w.Message)
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	options.logger.Debug("read tag",
		"path", path,
		"version", t.Version,
		"frames", t.Len(),
		"size", t.Size(),
	)
	return file, nil
}

// checkFrames reports the first text frame that would fail to decode.
func checkFrames(t *Tag) error {
	for f := range t.All() {
		v, ok := f.(interface{ Validate() error })
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ReadTag reads the ID3v2 tag at the start of r.
//
// Unlike Open, a missing tag is an error (*UnsupportedFormatError).
func ReadTag(r io.ReaderAt, size int64) (*Tag, error) {
	return tag.Read(r, size, "")
}

func (f *File) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.logger
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OpenContext opens a file with context support for cancellation.
//
// Reading a tag is short and bounded, so the context is only checked
// before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened files are closed
// and an error is returned.
//
// Example:
//
//	files, err := id3text.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Close any successfully opened files
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
