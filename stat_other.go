//go:build !unix

package main

import "io/fs"

// statInfo reports no ownership data on platforms without POSIX stat.
func statInfo(fs.FileInfo) (nlink uint64, uid, gid uint32, ok bool) {
	return 1, 0, 0, false
}
