package main

import "io/fs"

// entryKind is the closed set of entry types. The declaration order doubles
// as the tie-breaking order.
type entryKind int

const (
	kindFile entryKind = iota
	kindDir
	kindLink
	kindCharDevice
	kindBlockDevice
	kindFifo
	kindSocket
)

func (k entryKind) String() string {
	switch k {
	case kindFile:
		return "file"
	case kindDir:
		return "directory"
	case kindLink:
		return "symlink"
	case kindCharDevice:
		return "char-device"
	case kindBlockDevice:
		return "block-device"
	case kindFifo:
		return "fifo"
	case kindSocket:
		return "socket"
	default:
		return ""
	}
}

// isSpecial reports whether k is a device, FIFO or socket.
func (k entryKind) isSpecial() bool {
	return k >= kindCharDevice
}

// permTriad returns the rwx string for the low three bits of b.
func permTriad(b uint32) string {
	s := [3]byte{'-', '-', '-'}
	if b&4 != 0 {
		s[0] = 'r'
	}
	if b&2 != 0 {
		s[1] = 'w'
	}
	if b&1 != 0 {
		s[2] = 'x'
	}
	return string(s[:])
}

// permString returns the nine-character owner/group/other permission string.
func permString(m fs.FileMode) string {
	perm := uint32(m.Perm())
	return permTriad(perm>>6&7) + permTriad(perm>>3&7) + permTriad(perm&7)
}

// classify maps m's type bits to an ls-style glyph and an entryKind.
// Unknown types fall back to a regular file with a '?' glyph.
func classify(m fs.FileMode) (byte, entryKind) {
	switch {
	case m.IsDir():
		return 'd', kindDir
	case m.IsRegular():
		return '-', kindFile
	case m&fs.ModeSymlink != 0:
		return 'l', kindLink
	case m&fs.ModeCharDevice != 0:
		return 'c', kindCharDevice
	case m&fs.ModeDevice != 0:
		return 'b', kindBlockDevice
	case m&fs.ModeNamedPipe != 0:
		return 'p', kindFifo
	case m&fs.ModeSocket != 0:
		return 's', kindSocket
	default:
		return '?', kindFile
	}
}
