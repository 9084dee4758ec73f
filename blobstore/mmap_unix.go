//go:build unix

package blobstore

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps f read-only. size must be positive and fit in int.
func mapFile(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}
