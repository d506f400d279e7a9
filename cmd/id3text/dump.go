package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/simonhull/id3text"
)

// DumpCmd prints every frame of each file.
type DumpCmd struct {
	Paths []string `arg:"" name:"file" type:"existingfile" help:"Files to read"`
	JSON  bool     `short:"j" help:"Output in JSON format"`
}

type frameJSON struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Values      []string `json:"values,omitempty"`
	Size        int      `json:"size,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type fileJSON struct {
	Path     string      `json:"path"`
	Version  string      `json:"version"`
	Frames   []frameJSON `json:"frames"`
	Warnings []string    `json:"warnings,omitempty"`
}

func (c *DumpCmd) Run(logger *slog.Logger, out io.Writer) error {
	files, err := id3text.OpenMany(context.Background(), c.Paths...)
	if err != nil {
		return err
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	dumps := make([]fileJSON, 0, len(files))
	for _, f := range files {
		for _, w := range f.Warnings {
			logger.Warn("tag warning", "path", f.Path, "warning", w.String())
		}
		dumps = append(dumps, describe(f))
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dumps)
	}

	for i, d := range dumps {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", d.Path, d.Version)
		for _, fr := range d.Frames {
			fmt.Fprintf(out, "  %s  %s\n", fr.ID, formatFrame(fr))
		}
	}
	return nil
}

func describe(f *id3text.File) fileJSON {
	d := fileJSON{
		Path:    f.Path,
		Version: f.Tag.Version.String(),
		Frames:  []frameJSON{},
	}
	for _, w := range f.Warnings {
		d.Warnings = append(d.Warnings, w.String())
	}

	for fr := range f.Tag.All() {
		j := frameJSON{ID: fr.ID(), Name: id3text.FrameName(fr.ID())}
		var err error
		switch t := fr.(type) {
		case *id3text.TextFrame:
			j.Values, err = t.Values()
		case *id3text.UserTextFrame:
			j.Description, err = t.Description()
			if err == nil {
				j.Values, err = t.Values()
			}
		case *id3text.RawFrame:
			j.Size = len(t.Data)
		}
		if err != nil {
			j.Error = err.Error()
		}
		d.Frames = append(d.Frames, j)
	}
	return d
}

func formatFrame(fr frameJSON) string {
	switch {
	case fr.Error != "":
		return "error: " + fr.Error
	case fr.Description != "" || fr.ID == "TXXX":
		return fmt.Sprintf("%s = %s", fr.Description, strings.Join(fr.Values, "; "))
	case fr.Values != nil:
		return strings.Join(fr.Values, "; ")
	default:
		return fmt.Sprintf("<%d bytes>", fr.Size)
	}
}
