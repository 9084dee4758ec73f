//go:build !unix

package blobstore

import (
	"errors"
	"os"
)

var errMmapUnsupported = errors.New("blobstore: mmap not supported on this platform")

func mapFile(_ *os.File, _ int64) ([]byte, error) {
	return nil, errMmapUnsupported
}

func unmapFile(_ []byte) error {
	return nil
}
