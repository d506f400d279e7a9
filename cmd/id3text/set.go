package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/simonhull/id3text"
)

// SetCmd replaces the values of one frame.
type SetCmd struct {
	Path    string   `arg:"" name:"file" type:"existingfile" help:"File to edit"`
	Frame   string   `arg:"" help:"Frame identifier (TIT2, TPE1, ...) or TXXX:description"`
	Values  []string `arg:"" optional:"" help:"New values; none removes the frame"`
	To      string   `enum:"keep,2.3,2.4" default:"keep" help:"Revision to write (${enum})"`
	Backup  string   `env:"ID3TEXT_BACKUP" placeholder:".bak" help:"Keep the original file with this suffix"`
}

func (c *SetCmd) Run(logger *slog.Logger) error {
	f, err := id3text.Open(c.Path, id3text.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	if desc, ok := strings.CutPrefix(c.Frame, "TXXX:"); ok {
		err = f.SetUserText(desc, c.Values...)
	} else {
		err = f.SetText(strings.ToUpper(c.Frame), c.Values...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Frame, err)
	}

	opts := []id3text.SaveOption{id3text.WithValidation()}
	if c.To != "keep" {
		v, err := parseVersion(c.To)
		if err != nil {
			return err
		}
		opts = append(opts, id3text.WithVersion(v))
	}
	if c.Backup != "" {
		opts = append(opts, id3text.WithBackup(c.Backup))
	}

	if err := f.Save(opts...); err != nil {
		return err
	}
	logger.Info("updated frame", "path", c.Path, "frame", c.Frame, "values", len(c.Values))
	return nil
}

// parseVersion accepts "2.3", "2.4", "3", "4" and "ID3v2.x".
func parseVersion(s string) (id3text.ID3Version, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "id3v")
	switch strings.TrimPrefix(s, "2.") {
	case "3":
		return id3text.V23, nil
	case "4":
		return id3text.V24, nil
	}
	return 0, fmt.Errorf("unsupported ID3v2 revision %q (want 2.3 or 2.4)", s)
}
