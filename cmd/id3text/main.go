// Command id3text prints and edits the text frames of ID3v2 tags.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/simonhull/id3text"
)

// CLI is the root command line.
type CLI struct {
	Verbose int              `short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Dump    DumpCmd    `cmd:"" help:"Print the text frames of one or more files"`
	Set     SetCmd     `cmd:"" help:"Set or remove a text frame"`
	Convert ConvertCmd `cmd:"" help:"Rewrite tags as another ID3v2 revision"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("id3text"),
		kong.Description("Read and edit ID3v2 text frames."),
		kong.UsageOnError(),
		kong.Vars{"version": id3text.GetVersionInfo().Version},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	logger := newLogger(os.Stderr, cli.Verbose)
	ctx.FatalIfErrorf(ctx.Run(logger))
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}
