package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.XLSM", "c.xls", "notes.txt", "~$b.xlsx"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	touch(t, filepath.Join(dir, "nested", "d.xlsx"))

	other := t.TempDir()
	single := filepath.Join(other, "single.xlsx")
	touch(t, single)

	jobs, err := Discover([]string{dir, single}, "out")
	require.NoError(t, err)

	want := []Job{
		{ID: 0, Input: filepath.Join(dir, "a.XLSM"), Output: filepath.Join("out", "a.pdf")},
		{ID: 1, Input: filepath.Join(dir, "b.xlsx"), Output: filepath.Join("out", "b.pdf")},
		{ID: 2, Input: filepath.Join(dir, "c.xls"), Output: filepath.Join("out", "c.pdf")},
		{ID: 3, Input: single, Output: filepath.Join("out", "single.pdf")},
	}
	assert.Equal(t, want, jobs)
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	touch(t, notes)

	_, err := Discover([]string{notes}, dir)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Discover([]string{filepath.Join(dir, "missing.xlsx")}, dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
