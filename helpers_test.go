package id3text_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// audio stands in for the MPEG frames that follow the tag.
var audio = slices.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 64)

func synchsafe(n int) []byte {
	return []byte{byte(n>>21) & 0x7F, byte(n>>14) & 0x7F, byte(n>>7) & 0x7F, byte(n) & 0x7F}
}

func v4Frame(id string, data []byte) []byte {
	b := append([]byte(id), synchsafe(len(data))...)
	b = append(b, 0, 0)
	return append(b, data...)
}

func v3Frame(id string, data []byte) []byte {
	b := binary.BigEndian.AppendUint32([]byte(id), uint32(len(data)))
	b = append(b, 0, 0)
	return append(b, data...)
}

func tagBytes(version byte, padding int, frames ...[]byte) []byte {
	body := slices.Concat(frames...)
	b := []byte{'I', 'D', '3', version, 0, 0}
	b = append(b, synchsafe(len(body)+padding)...)
	b = append(b, body...)
	return append(b, make([]byte, padding)...)
}

// writeFile writes content to a new file in a temp dir and returns its path.
func writeFile(t testing.TB, content ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, slices.Concat(content...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sampleV24 is a small ID3v2.4 tag exercising the main frame classes.
func sampleV24() []byte {
	return tagBytes(4, 64,
		v4Frame("TIT2", []byte("\x03Title\x00")),
		v4Frame("TPE1", []byte("\x03Simon\x00Garfunkel")),
		v4Frame("TDRC", []byte("\x032007-05-06T12:30:02")),
		v4Frame("TCON", []byte("\x0332\x00Eurodisco")),
		v4Frame("TXXX", []byte("\x00MyKey\x00val1\x00val2")),
		v4Frame("APIC", []byte{0, 'i', 'm', 'g'}),
	)
}
