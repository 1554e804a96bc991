package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// newProject builds the fixture directory used across tests:
//
//	/proj/a.txt     500 bytes
//	/proj/.hidden   10 bytes
//	/proj/sub/      directory
func newProject(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/proj/sub", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/proj/a.txt", make([]byte, 500), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/.hidden", make([]byte, 10), 0o600))
	return fsys
}

func TestExtractorEntry(t *testing.T) {
	fsys := newProject(t)
	mtime := time.Date(2023, 7, 14, 9, 30, 5, 0, time.Local)
	require.NoError(t, fsys.Chtimes("/proj/a.txt", mtime, mtime))
	x := newExtractor(fsys)

	e, err := x.entry("/proj/a.txt")
	require.NoError(t, err)
	require.Equal(t, kindFile, e.kind)
	require.Equal(t, "-rw-r--r--", e.mode())
	require.Equal(t, uint64(500), e.size)
	require.Equal(t, "a.txt", e.name)
	require.False(t, e.hidden)
	require.True(t, mtime.Equal(e.modTime))

	// In-memory files carry no ownership data.
	require.Equal(t, "Unknown", e.owner)
	require.Equal(t, "Unknown", e.group)

	e, err = x.entry("/proj/.hidden")
	require.NoError(t, err)
	require.True(t, e.hidden)
	require.Equal(t, "rw-------", e.perms)

	e, err = x.entry("/proj/sub")
	require.NoError(t, err)
	require.Equal(t, kindDir, e.kind)
	require.Equal(t, "drwxr-xr-x", e.mode())
}

func TestExtractorEntryMissing(t *testing.T) {
	x := newExtractor(newProject(t))
	_, err := x.entry("/proj/nope")
	require.ErrorIs(t, err, ErrPathNotFound)

	var pe *PathError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "/proj/nope", pe.Path)
}

// lstatFailFs rejects every lstat so that lookups go through Stat.
type lstatFailFs struct {
	afero.Fs
}

func (lstatFailFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	return nil, true, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrPermission}
}

func TestExtractorStatFallback(t *testing.T) {
	x := newExtractor(lstatFailFs{newProject(t)})
	e, err := x.entry("/proj/a.txt")
	require.NoError(t, err)
	require.Equal(t, kindFile, e.kind)
	require.Equal(t, uint64(500), e.size)

	_, err = x.entry("/proj/nope")
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestListTarget(t *testing.T) {
	x := newExtractor(newProject(t))

	ents, err := listTarget(x, "/proj")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a.txt", ".hidden", "sub"}, names(ents))

	ents, err = listTarget(x, "/proj/a.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, names(ents))

	_, err = listTarget(x, "/missing")
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestEntryName(t *testing.T) {
	require.Equal(t, "b", entryName("/a/b"))
	require.Equal(t, "b", entryName("/a/b/"))
	require.Equal(t, ".env", entryName("proj/.env"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Base(wd), entryName("."))
	require.Equal(t, filepath.Base(filepath.Dir(wd)), entryName(".."))
}
