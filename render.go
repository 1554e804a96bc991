package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gobwas/glob"
)

const (
	cellWidth   = 20
	indentWidth = 5
)

// renderMode is the output layout selected by the caller's options.
type renderMode int

const (
	modeNames renderMode = iota
	modeLong
	modeTree
)

// category is the display class of an entry. All special files share one.
type category int

const (
	catFile category = iota
	catDir
	catLink
	catSpecial
)

func categoryOf(k entryKind) category {
	switch k {
	case kindDir:
		return catDir
	case kindLink:
		return catLink
	case kindCharDevice, kindBlockDevice, kindFifo, kindSocket:
		return catSpecial
	default:
		return catFile
	}
}

// filter decides which entries are shown.
type filter struct {
	all    bool
	ignore []glob.Glob
}

func newFilter(all bool, patterns []string) (filter, error) {
	f := filter{all: all}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return filter{}, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		f.ignore = append(f.ignore, g)
	}
	return f, nil
}

func (f filter) visible(e entry) bool {
	if e.hidden && !f.all {
		return false
	}
	for _, g := range f.ignore {
		if g.Match(e.name) {
			return false
		}
	}
	return true
}

type renderer struct {
	w         io.Writer
	filter    filter
	human     bool
	timeFmt   string
	termWidth int

	palette [catSpecial + 1]*color.Color
	errors  *color.Color
}

func newRenderer(w io.Writer, o *options, f filter) *renderer {
	r := &renderer{
		w:         w,
		filter:    f,
		human:     o.human,
		timeFmt:   o.timeFmt,
		termWidth: o.termWidth,
		palette: [...]*color.Color{
			catFile:    color.New(color.FgWhite),
			catDir:     color.New(color.FgCyan),
			catLink:    color.New(color.FgBlue),
			catSpecial: color.New(color.FgGreen),
		},
		errors: color.New(color.FgRed),
	}
	for _, c := range append(r.palette[:], r.errors) {
		if o.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *renderer) paint(e entry, s string) string {
	return r.palette[categoryOf(e.kind)].Sprint(s)
}

// printShort writes visible names in fixed-width cells, wrapping lines at
// the terminal width.
func (r *renderer) printShort(ents []entry) {
	var b strings.Builder
	lineLen := 0
	for _, e := range ents {
		if !r.filter.visible(e) {
			continue
		}
		cell := fmt.Sprintf("%-*s", cellWidth, e.name)
		width := utf8.RuneCountInString(cell)
		if lineLen > 0 && lineLen+width > r.termWidth {
			b.WriteByte('\n')
			lineLen = 0
		}
		b.WriteString(r.paint(e, cell))
		lineLen += width
	}
	b.WriteByte('\n')
	io.WriteString(r.w, b.String())
}

// printLong writes one detailed row per visible entry.
func (r *renderer) printLong(ents []entry) {
	var b strings.Builder
	for _, e := range ents {
		if !r.filter.visible(e) {
			continue
		}
		sizeStr := fmt.Sprintf("%d", e.size)
		if r.human {
			sizeStr = humanReadable(e.size)
		}
		fmt.Fprintf(&b, "%s %3d %8s %8s %8s %20s %s\n",
			e.mode(),
			e.nlink,
			e.owner,
			e.group,
			sizeStr,
			e.modTime.Format(r.timeFmt),
			r.paint(e, e.name),
		)
	}
	io.WriteString(r.w, b.String())
}

// printTree walks root and writes one indented line per visible node.
// The root itself is always shown.
func (r *renderer) printTree(x *extractor, root string, maxDepth int) error {
	return walkTree(x, root, maxDepth, func(n treeNode) bool {
		indent := strings.Repeat(" ", n.depth*indentWidth)
		if n.note != noPlaceholder {
			fmt.Fprintf(r.w, "%s| - %s\n", indent, r.errors.Sprint(n.note.String()))
			return false
		}
		if n.depth > 0 && !r.filter.visible(n.entry) {
			return false
		}
		fmt.Fprintf(r.w, "%s| - %s\n", indent, r.paint(n.entry, n.entry.name))
		return true
	})
}
