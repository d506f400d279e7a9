package tag

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textcodec"
	"github.com/simonhull/id3text/internal/textframe"
	"github.com/simonhull/id3text/internal/types"
)

func TestRender_Passthrough(t *testing.T) {
	body := slices.Concat(
		v4Frame("TIT2", []byte("\x03Title\x00")),
		v4Frame("TPE1", []byte("\x01\xff\xfeA\x00\x00\x00\xff\xfeB\x00")),
		v4Frame("TXXX", []byte("\x00key\x00value\x00\x00")),
		v4Frame("APIC", []byte{0, 1, 2, 3}),
	)
	in := tagBytes(types.V24, 0, body, 32)

	tg := readBytes(t, in)
	out, err := tg.Render(types.V24, 32)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("Render() = %x, want %x", out, in)
	}
}

func TestRender_Downgrade(t *testing.T) {
	body := slices.Concat(
		v4Frame("TDRC", []byte("\x032007-05-06T12:30:02")),
		v4Frame("TPE1", []byte("\x03A\x00B")),
		v4Frame("TCON", []byte("\x0332\x00Eurodisco")),
	)
	tg := readBytes(t, tagBytes(types.V24, 0, body, 0))

	out, err := tg.Render(types.V23, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := readBytes(t, out)
	if got.Version != types.V23 {
		t.Errorf("Version = %v, want %v", got.Version, types.V23)
	}
	if want := []string{"TYER", "TDAT", "TIME", "TPE1", "TCON"}; !slices.Equal(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}

	checks := map[string][]string{
		"TYER": {"2007"},
		"TDAT": {"0506"},
		"TIME": {"1230"},
		"TPE1": {"A", "B"},
		"TCON": {"32", "Eurodisco"},
	}
	for id, want := range checks {
		if v := values(t, got.Frames(id)[0]); !slices.Equal(v, want) {
			t.Errorf("%s = %q, want %q", id, v, want)
		}
	}
}

func TestRender_NewTag(t *testing.T) {
	tg := New(types.V24)
	title, err := textframe.Find(tg, "TIT2", textcodec.UTF8, true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	title.SetValues([]string{"Hello"})

	out, err := tg.Render(types.V24, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := tagBytes(types.V24, 0, v4Frame("TIT2", []byte("\x03Hello")), 0)
	if !bytes.Equal(out, want) {
		t.Errorf("Render() = %x, want %x", out, want)
	}
}

func TestRender_Errors(t *testing.T) {
	tg := New(types.V24)
	tg.AddFrame(&frame.Raw{Header: frame.NewHeader("TOOLONG"), Data: []byte{0}})

	var verr *types.UnsupportedVersionError
	if _, err := tg.Render(types.V22, 0); !errors.As(err, &verr) {
		t.Errorf("Render(V22) error = %v, want UnsupportedVersionError", err)
	}
	if _, err := tg.Render(types.V24, -1); !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("Render(padding -1) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := tg.Render(types.V24, 0); !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("Render() error = %v, want ErrInvalidArgument", err)
	}
}
