package main

import (
	"errors"
	"log/slog"
)

const defaultMaxDepth = 10

// placeholder marks a tree node that could not be rendered as an entry.
type placeholder int

const (
	noPlaceholder placeholder = iota
	missingEntry
	unreadableDir
	noMetadata
)

func (p placeholder) String() string {
	switch p {
	case missingEntry:
		return "No such file or directory"
	case unreadableDir:
		return "Permission denied"
	case noMetadata:
		return "Metadata unavailable"
	default:
		return ""
	}
}

// treeNode is one visited position of a tree walk. Exactly one of entry or
// note is meaningful: note is noPlaceholder for regular nodes.
type treeNode struct {
	depth int
	entry entry
	note  placeholder
}

// visitFunc is called for every visited node. For entry nodes, returning
// false prevents descent into that node.
type visitFunc func(n treeNode) bool

// walkTree visits root and, for directories, its descendants up to maxDepth
// levels below it. Children are visited in enumeration order. A root that is
// a symlink to a directory is descended; symlinks below root never are.
// Failing to stat or enumerate root is returned as an error; failures below
// root are reported as placeholder nodes instead.
func walkTree(x *extractor, root string, maxDepth int, visit visitFunc) error {
	e, err := x.entry(root)
	if err != nil {
		return err
	}
	descend := e.kind == kindDir || e.kind == kindLink && x.isDir(root)
	if !visit(treeNode{entry: e}) || !descend {
		return nil
	}
	children, err := x.readDir(root)
	if err != nil {
		return err
	}
	for _, child := range children {
		walk(x, child, 1, maxDepth, visit)
	}
	return nil
}

func walk(x *extractor, path string, depth, maxDepth int, visit visitFunc) {
	if depth > maxDepth {
		return
	}

	e, err := x.entry(path)
	if err != nil {
		slog.Debug("tree: skipping entry", "path", path, "error", err)
		note := noMetadata
		if errors.Is(err, ErrPathNotFound) {
			note = missingEntry
		}
		visit(treeNode{depth: depth, note: note})
		return
	}
	if e.kind == kindLink && x.dangling(path) {
		slog.Debug("tree: dangling symlink", "path", path)
		visit(treeNode{depth: depth, note: missingEntry})
		return
	}

	if !visit(treeNode{depth: depth, entry: e}) || e.kind != kindDir {
		return
	}

	children, err := x.readDir(path)
	if err != nil {
		slog.Debug("tree: cannot read directory", "path", path, "error", err)
		note := unreadableDir
		if errors.Is(err, ErrPathNotFound) {
			note = missingEntry
		}
		visit(treeNode{depth: depth + 1, note: note})
		return
	}
	for _, child := range children {
		walk(x, child, depth+1, maxDepth, visit)
	}
}
