package main

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"
)

type sortBy int

const (
	sortName sortBy = iota
	sortSize
	sortTime
)

func (s *sortBy) Set(word string) error {
	switch word {
	case "name":
		*s = sortName
	case "size":
		*s = sortSize
	case "time", "mtime":
		*s = sortTime
	default:
		return errors.New("must be name, size, or time")
	}
	return nil
}

func (s sortBy) String() string {
	switch s {
	case sortName:
		return "name"
	case sortSize:
		return "size"
	case sortTime:
		return "time"
	default:
		return ""
	}
}

// Type implements pflag.Value.
func (s *sortBy) Type() string { return "WORD" }

// sortEntries stably orders ents by key. Times compare at second
// resolution, matching the displayed timestamp. Reversal is applied to the sorted
// slice as a whole, so ties come out in reverse input order.
func sortEntries(ents []entry, key sortBy, reverse bool) {
	slices.SortStableFunc(ents, func(a, b entry) int {
		switch key {
		case sortSize:
			return cmp.Compare(a.size, b.size)
		case sortTime:
			return a.modTime.Truncate(time.Second).Compare(b.modTime.Truncate(time.Second))
		default:
			return strings.Compare(a.name, b.name)
		}
	})
	if reverse {
		slices.Reverse(ents)
	}
}
