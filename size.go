package main

import "fmt"

var sizeUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// humanReadable scales size by 1024 while it is strictly greater than 1024,
// stopping at petabytes, and formats it with two decimals.
func humanReadable(size uint64) string {
	v := float64(size)
	u := 0
	for v > 1024 && u < len(sizeUnits)-1 {
		v /= 1024
		u++
	}
	return fmt.Sprintf("%.2f%s", v, sizeUnits[u])
}
