package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// entry is the attribute record of one filesystem path.
type entry struct {
	kind    entryKind
	glyph   byte
	perms   string // rwxrwxrwx
	nlink   uint64
	owner   string
	group   string
	size    uint64
	modTime time.Time
	name    string
	hidden  bool
}

// mode returns the glyph-prefixed permission string, e.g. "drwxr-xr-x".
func (e entry) mode() string {
	return string(e.glyph) + e.perms
}

// extractor builds entries from paths on fsys.
type extractor struct {
	fsys afero.Fs
	ids  *idResolver
}

func newExtractor(fsys afero.Fs) *extractor {
	return &extractor{fsys: fsys, ids: newIDResolver()}
}

// entry returns the record for path. It prefers lstat semantics and falls
// back to stat so that entries the link-aware call rejects still get a record.
func (x *extractor) entry(path string) (entry, error) {
	info, err := x.stat(path)
	if err != nil {
		return entry{}, err
	}

	glyph, kind := classify(info.Mode())
	name := entryName(path)
	nlink, uid, gid, ok := statInfo(info)

	var owner, group string
	if ok {
		owner, group = x.ids.names(uid, gid, kind)
	} else {
		owner = unknownName
		if !kind.isSpecial() {
			group = unknownName
		}
	}

	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}

	return entry{
		kind:    kind,
		glyph:   glyph,
		perms:   permString(info.Mode()),
		nlink:   nlink,
		owner:   owner,
		group:   group,
		size:    size,
		modTime: info.ModTime(),
		name:    name,
		hidden:  strings.HasPrefix(name, "."),
	}, nil
}

func (x *extractor) stat(path string) (fs.FileInfo, error) {
	if l, ok := x.fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		if err == nil {
			return info, nil
		}
		slog.Debug("lstat failed, falling back to stat", "path", path, "error", err)
	}
	info, err := x.fsys.Stat(path)
	if err != nil {
		return nil, &PathError{Op: "stat", Path: path, Err: statError(err)}
	}
	return info, nil
}

// statError maps an OS error onto the listing's error taxonomy.
func statError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrPathNotFound
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
}

// readDirError maps a failed directory enumeration onto the error taxonomy.
func readDirError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrPathNotFound
	}
	slog.Debug("directory enumeration failed", "error", err)
	return ErrDirectoryUnreadable
}

// isDir reports whether path resolves to a directory, following symlinks.
func (x *extractor) isDir(path string) bool {
	info, err := x.fsys.Stat(path)
	return err == nil && info.IsDir()
}

// dangling reports whether path is a symlink whose target does not exist.
func (x *extractor) dangling(path string) bool {
	_, err := x.fsys.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}

// readDir returns the child paths of dir in enumeration order.
func (x *extractor) readDir(dir string) ([]string, error) {
	f, err := x.fsys.Open(dir)
	if err != nil {
		return nil, &PathError{Op: "open", Path: dir, Err: readDirError(err)}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &PathError{Op: "readdir", Path: dir, Err: readDirError(err)}
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// entryName returns the final path component of p, resolving "." and ".."
// to the name of the directory they refer to.
func entryName(p string) string {
	clean := filepath.Clean(p)
	name := filepath.Base(clean)
	if name == "." || name == ".." {
		if abs, err := filepath.Abs(clean); err == nil {
			name = filepath.Base(abs)
		}
	}
	return name
}
