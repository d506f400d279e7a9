package id3text_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/id3text"
)

func TestFile_Save_Passthrough(t *testing.T) {
	original := append(sampleV24(), audio...)
	path := writeFile(t, original)

	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, file.Save(id3text.WithPadding(64), id3text.WithValidation()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(original, got), "untouched tag must be written back unchanged")
}

func TestFile_SaveAs_V23(t *testing.T) {
	path := writeFile(t, sampleV24(), audio)
	out := filepath.Join(t.TempDir(), "out.mp3")

	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, file.SaveAs(out, id3text.WithVersion(id3text.V23), id3text.WithValidation()))

	saved, err := id3text.Open(out)
	require.NoError(t, err)
	defer saved.Close()

	assert.Equal(t, id3text.V23, saved.Tag.Version)
	assert.Empty(t, saved.Tag.Frames("TDRC"))

	checks := map[string][]string{
		"TYER": {"2007"},
		"TDAT": {"0506"},
		"TIME": {"1230"},
		"TPE1": {"Simon", "Garfunkel"},
		"TCON": {"32", "Eurodisco"},
		"TIT2": {"Title"},
	}
	for id, want := range checks {
		got, err := saved.Text(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got, id)
	}

	values, err := saved.UserText("MyKey")
	require.NoError(t, err)
	assert.Equal(t, []string{"val1", "val2"}, values)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, audio), "audio data must follow the tag")
	assert.Equal(t, int64(len(data)-len(audio)), saved.Tag.Size())
}

func TestFile_Save_NewTag(t *testing.T) {
	path := writeFile(t, audio)

	file, err := id3text.Open(path)
	require.NoError(t, err)
	require.NoError(t, file.SetText("TIT2", "日本語"))
	require.NoError(t, file.Save())
	require.NoError(t, file.Close())

	saved, err := id3text.Open(path)
	require.NoError(t, err)
	defer saved.Close()

	title, err := saved.Text("TIT2")
	require.NoError(t, err)
	assert.Equal(t, []string{"日本語"}, title)
	assert.Equal(t, int64(10+id3text.DefaultPadding+10+1+len("日本語")), saved.Tag.Size())
}

func TestFile_Save_Backup(t *testing.T) {
	original := append(sampleV24(), audio...)
	path := writeFile(t, original)

	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, file.SetText("TIT2", "Changed"))
	require.NoError(t, file.Save(id3text.WithBackup(".bak")))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	saved, err := id3text.Open(path)
	require.NoError(t, err)
	defer saved.Close()
	title, err := saved.Text("TIT2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Changed"}, title)
}

func TestFile_Save_PreserveModTime(t *testing.T) {
	path := writeFile(t, sampleV24(), audio)
	old := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, file.Save(id3text.WithPreserveModTime()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "mod time = %v, want %v", info.ModTime(), old)
}

func TestFile_Save_RenderErrorLeavesFile(t *testing.T) {
	original := append(sampleV24(), audio...)
	path := writeFile(t, original)

	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	file.Tag.AddFrame(&id3text.RawFrame{Header: id3text.FrameHeader{ID: "BAD"}, Data: []byte{0}})
	err = file.Save()
	assert.ErrorIs(t, err, id3text.ErrInvalidArgument)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFile_Save_UnsupportedVersion(t *testing.T) {
	path := writeFile(t, sampleV24(), audio)
	file, err := id3text.Open(path)
	require.NoError(t, err)
	defer file.Close()

	err = file.Save(id3text.WithVersion(id3text.V22))
	var verr *id3text.UnsupportedVersionError
	assert.ErrorAs(t, err, &verr)
}

func TestFile_Save_NilReader(t *testing.T) {
	f := &id3text.File{Path: "/tmp/test.mp3", Tag: id3text.NewTag(id3text.V24)}

	err := f.Save()
	assert.ErrorContains(t, err, "reader is nil")
}
