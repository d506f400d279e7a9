package tag

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	binutil "github.com/simonhull/id3text/internal/binary"
	"github.com/simonhull/id3text/internal/frame"
	"github.com/simonhull/id3text/internal/textframe"
	"github.com/simonhull/id3text/internal/types"
)

func v3Frame(id string, flags uint16, data []byte) []byte {
	b := []byte(id)
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = binary.BigEndian.AppendUint16(b, flags)
	return append(b, data...)
}

func v4Frame(id string, data []byte) []byte {
	b := []byte(id)
	b = append(b, binutil.EncodeSynchsafe(uint32(len(data)))...)
	b = append(b, 0, 0)
	return append(b, data...)
}

func v22Frame(id string, data []byte) []byte {
	n := len(data)
	b := append([]byte(id), byte(n>>16), byte(n>>8), byte(n))
	return append(b, data...)
}

func tagBytes(v types.Version, flags byte, body []byte, padding int) []byte {
	b := []byte{'I', 'D', '3', byte(v), 0, flags}
	b = append(b, binutil.EncodeSynchsafe(uint32(len(body)+padding))...)
	b = append(b, body...)
	return append(b, make([]byte, padding)...)
}

func readBytes(t *testing.T, b []byte) *Tag {
	t.Helper()
	tg, err := Read(bytes.NewReader(b), int64(len(b)), "test.mp3")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return tg
}

func values(t *testing.T, f frame.Frame) []string {
	t.Helper()
	tf, ok := f.(*textframe.TextFrame)
	if !ok {
		t.Fatalf("frame %s is %T, want *textframe.TextFrame", f.ID(), f)
	}
	v, err := tf.Values()
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	return v
}

func TestRead_V24(t *testing.T) {
	body := slices.Concat(
		v4Frame("TIT2", []byte("\x03Title")),
		v4Frame("TPE1", []byte("\x03A\x00B")),
		v4Frame("TXXX", []byte("\x00key\x00value")),
		v4Frame("APIC", []byte{0, 1, 2, 3}),
	)
	tg := readBytes(t, tagBytes(types.V24, 0, body, 64))

	if tg.Version != types.V24 {
		t.Errorf("Version = %v, want %v", tg.Version, types.V24)
	}
	if got, want := ids(tg), []string{"TIT2", "TPE1", "TXXX", "APIC"}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if got := values(t, tg.Frames("TIT2")[0]); !slices.Equal(got, []string{"Title"}) {
		t.Errorf("TIT2 = %q, want [Title]", got)
	}
	if got := values(t, tg.Frames("TPE1")[0]); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("TPE1 = %q, want [A B]", got)
	}
	if _, ok := tg.Frames("TXXX")[0].(*textframe.UserTextFrame); !ok {
		t.Errorf("TXXX is %T, want *textframe.UserTextFrame", tg.Frames("TXXX")[0])
	}
	if _, ok := tg.Frames("APIC")[0].(*frame.Raw); !ok {
		t.Errorf("APIC is %T, want *frame.Raw", tg.Frames("APIC")[0])
	}
	if want := int64(HeaderSize + len(body) + 64); tg.Size() != want {
		t.Errorf("Size() = %d, want %d", tg.Size(), want)
	}
	if len(tg.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", tg.Warnings)
	}
}

func TestRead_V23(t *testing.T) {
	body := slices.Concat(
		v3Frame("TPE1", 0, []byte("\x00A/B/C")),
		v3Frame("TCON", 0, []byte("\x00(17)Rock")),
	)
	tg := readBytes(t, tagBytes(types.V23, 0, body, 0))

	if got := values(t, tg.Frames("TPE1")[0]); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("TPE1 = %q, want [A B C]", got)
	}
	if got := values(t, tg.Frames("TCON")[0]); !slices.Equal(got, []string{"17", "Rock"}) {
		t.Errorf("TCON = %q, want [17 Rock]", got)
	}
}

func TestRead_V23ExtendedHeader(t *testing.T) {
	ext := []byte{0, 0, 0, 6, 0, 0, 0, 0, 0, 0}
	body := slices.Concat(ext, v3Frame("TIT2", 0, []byte("\x00Title")))
	tg := readBytes(t, tagBytes(types.V23, flagExtendedHeader, body, 0))

	if got, want := ids(tg), []string{"TIT2"}; !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestRead_V24ExtendedHeader(t *testing.T) {
	ext := []byte{0, 0, 0, 6, 1, 0}
	body := slices.Concat(ext, v4Frame("TIT2", []byte("\x03Title")))
	tg := readBytes(t, tagBytes(types.V24, flagExtendedHeader, body, 0))

	if got, want := ids(tg), []string{"TIT2"}; !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestRead_V22(t *testing.T) {
	body := slices.Concat(
		v22Frame("TT2", []byte("\x00Title")),
		v22Frame("TP1", []byte("\x00A/B")),
		v22Frame("XYZ", []byte("\x00junk")),
		v22Frame("TXX", []byte("\x00key\x00value")),
	)
	tg := readBytes(t, tagBytes(types.V22, 0, body, 0))

	if got, want := ids(tg), []string{"TIT2", "TPE1", "TXXX"}; !slices.Equal(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if got := values(t, tg.Frames("TPE1")[0]); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("TPE1 = %q, want [A B]", got)
	}
	if len(tg.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one for XYZ", tg.Warnings)
	}
}

func TestRead_FlaggedFramesStayRaw(t *testing.T) {
	body := v3Frame("TIT2", 0x0080, []byte{0, 0, 0, 9, 'x'})
	tg := readBytes(t, tagBytes(types.V23, 0, body, 0))

	if _, ok := tg.Frames("TIT2")[0].(*frame.Raw); !ok {
		t.Errorf("compressed TIT2 is %T, want *frame.Raw", tg.Frames("TIT2")[0])
	}
}

func TestRead_V24PlainSizes(t *testing.T) {
	data := append([]byte{3}, bytes.Repeat([]byte("a"), 200)...)
	b := []byte("TIT2")
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, 0, 0)
	b = append(b, data...)

	tg := readBytes(t, tagBytes(types.V24, 0, b, 0))
	if got := values(t, tg.Frames("TIT2")[0]); len(got) != 1 || len(got[0]) != 200 {
		t.Errorf("TIT2 = %q, want one 200-byte value", got)
	}
}

func TestRead_Truncated(t *testing.T) {
	body := slices.Concat(
		v3Frame("TIT2", 0, []byte("\x00Title")),
		v3Frame("TALB", 0, []byte("\x00Album")),
	)
	b := tagBytes(types.V23, 0, body, 0)
	b = b[:len(b)-3]

	tg := readBytes(t, b)
	if got, want := ids(tg), []string{"TIT2"}; !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if len(tg.Warnings) != 2 {
		t.Errorf("Warnings = %v, want size and frame warnings", tg.Warnings)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		check func(error) bool
	}{
		{
			name:  "too short",
			input: []byte("ID3"),
			check: func(err error) bool {
				var e *types.UnsupportedFormatError
				return errors.As(err, &e)
			},
		},
		{
			name:  "no magic",
			input: []byte("TAG\x03\x00\x00\x00\x00\x00\x00"),
			check: func(err error) bool {
				var e *types.UnsupportedFormatError
				return errors.As(err, &e)
			},
		},
		{
			name:  "unknown version",
			input: []byte("ID3\x05\x00\x00\x00\x00\x00\x00"),
			check: func(err error) bool {
				var e *types.UnsupportedVersionError
				return errors.As(err, &e) && e.Version == 5
			},
		},
		{
			name:  "unsynchronised",
			input: tagBytes(types.V23, flagUnsynchronisation, nil, 10),
			check: func(err error) bool {
				var e *types.UnsupportedFormatError
				return errors.As(err, &e)
			},
		},
		{
			name:  "bad size",
			input: []byte("ID3\x03\x00\x00\x00\x00\x00\x80"),
			check: func(err error) bool {
				var e *types.UnsupportedFormatError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.input), int64(len(tt.input)), "test.mp3")
			if err == nil || !tt.check(err) {
				t.Errorf("Read() error = %v, wrong type", err)
			}
		})
	}
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"tag", tagBytes(types.V24, 0, nil, 0), true},
		{"too short", []byte("ID3\x04"), false},
		{"mpeg frame", []byte{0xFF, 0xFB, 0x90, 0x64, 0, 0, 0, 0, 0, 0, 0}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Present(bytes.NewReader(tt.input), int64(len(tt.input))); got != tt.want {
				t.Errorf("Present() = %v, want %v", got, tt.want)
			}
		})
	}
}
