package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var progName = filepath.Base(os.Args[0])

func main() {
	cmd := newRootCmd(afero.NewOsFs(), os.Stdout)
	if err := cmd.Execute(); err != nil {
		showError(err)
		os.Exit(1)
	}
}

// run lists target according to o. In the flat layouts every record is
// collected and sorted before anything is written.
func run(fsys afero.Fs, w io.Writer, o *options, target string) error {
	f, err := newFilter(o.all, o.ignore)
	if err != nil {
		return err
	}
	x := newExtractor(fsys)
	r := newRenderer(w, o, f)

	mode := o.mode()
	if mode == modeTree {
		return r.printTree(x, target, o.depth)
	}

	ents, err := listTarget(x, target)
	if err != nil {
		return err
	}
	sortEntries(ents, o.sort, o.reverse)

	if mode == modeLong {
		r.printLong(ents)
	} else {
		r.printShort(ents)
	}
	return nil
}

// listTarget returns the records of target's children when target resolves
// to a directory, or the record of target itself otherwise.
func listTarget(x *extractor, target string) ([]entry, error) {
	self, err := x.entry(target)
	if err != nil {
		return nil, err
	}
	if !x.isDir(target) {
		return []entry{self}, nil
	}

	children, err := x.readDir(target)
	if err != nil {
		return nil, err
	}
	ents := make([]entry, 0, len(children))
	for _, p := range children {
		e, err := x.entry(p)
		if err != nil {
			return nil, err
		}
		ents = append(ents, e)
	}
	return ents, nil
}

func showError(e error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", progName, e)
}
