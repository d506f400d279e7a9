package id3text

import "log/slog"

// Option configures behavior when opening files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := id3text.Open("song.mp3",
//	    id3text.WithStrictParsing(),
//	    id3text.WithLogger(logger),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any warning or undecodable text frame
	ignoreWarnings bool // Suppress all warnings
	logger         *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, id3text keeps reading when a frame is truncated or has an
// identifier with no modern equivalent, returning warnings alongside the
// tag. Text frames are also checked up front, so a frame that would fail
// to decode fails Open instead of its first accessor. The check leaves
// frames undecoded.
//
// Example:
//
//	file, err := id3text.Open("song.mp3", id3text.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Example:
//
//	file, err := id3text.Open("song.mp3", id3text.WithIgnoreWarnings())
//	// file.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets the logger used for debug output while reading and
// saving. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
