//go:build unix

package main

import (
	"io/fs"
	"syscall"
)

// statInfo extracts the link count and numeric owner/group of info.
// ok is false when info carries no raw stat data, e.g. for in-memory files.
func statInfo(info fs.FileInfo) (nlink uint64, uid, gid uint32, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return 1, 0, 0, false
	}
	return uint64(st.Nlink), st.Uid, st.Gid, true
}
