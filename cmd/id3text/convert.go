package main

import (
	"log/slog"

	"github.com/simonhull/id3text"
)

// ConvertCmd rewrites whole tags as another revision.
type ConvertCmd struct {
	Paths    []string `arg:"" name:"file" type:"existingfile" help:"Files to convert"`
	To       string   `required:"" enum:"2.3,2.4" help:"Target revision (${enum})"`
	Padding  int      `default:"1024" env:"ID3TEXT_PADDING" help:"Zero bytes to leave after the frames"`
	Backup   string   `env:"ID3TEXT_BACKUP" placeholder:".bak" help:"Keep the original file with this suffix"`
	Validate bool     `default:"true" negatable:"" help:"Re-read each file after writing"`
	Strict   bool     `help:"Refuse files with warnings or undecodable frames"`
}

func (c *ConvertCmd) Run(logger *slog.Logger) error {
	v, err := parseVersion(c.To)
	if err != nil {
		return err
	}

	var openOpts []id3text.Option
	openOpts = append(openOpts, id3text.WithLogger(logger))
	if c.Strict {
		openOpts = append(openOpts, id3text.WithStrictParsing())
	}

	saveOpts := []id3text.SaveOption{id3text.WithVersion(v), id3text.WithPadding(c.Padding)}
	if c.Backup != "" {
		saveOpts = append(saveOpts, id3text.WithBackup(c.Backup))
	}
	if c.Validate {
		saveOpts = append(saveOpts, id3text.WithValidation())
	}

	for _, path := range c.Paths {
		if err := convert(path, openOpts, saveOpts); err != nil {
			return err
		}
		logger.Info("converted", "path", path, "version", v)
	}
	return nil
}

func convert(path string, openOpts []id3text.Option, saveOpts []id3text.SaveOption) error {
	f, err := id3text.Open(path, openOpts...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Save(saveOpts...)
}
