package blobstore

import (
	"context"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// tmpPattern names in-progress writes so List can skip them and crashed
// writes are recognizable leftovers.
const tmpPattern = ".tmp-*"

// LocalStore implements BlobStore on the local file system. Blobs are plain
// files below a root directory; writes go through a temporary file in the
// target directory and are published by rename.
type LocalStore struct {
	root string
}

// Compile-time check that LocalStore satisfies BlobStore.
var _ BlobStore = (*LocalStore)(nil)

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open opens a blob for reading. Non-empty files are memory mapped where the
// platform supports it; otherwise reads go through the file directly.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	size := info.Size()
	if size > 0 && size <= math.MaxInt {
		if data, err := mapFile(f, size); err == nil {
			return &mappedBlob{f: f, data: data}, nil
		}
	}

	return &fileBlob{f: f, size: size}, nil
}

// Create opens a temporary file next to the target; Close renames it into
// place.
func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return nil, err
	}

	return &localWritableBlob{f: tmp, path: path}, nil
}

// Put writes a blob atomically via a temporary file and rename.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// List returns all blob names below the root with the given prefix, sorted.
// In-progress temporary files are skipped.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == s.root && os.IsNotExist(err) {
				return filepath.SkipAll
			}

			return err
		}

		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}

		if name := filepath.ToSlash(rel); strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	return names, nil
}

// mappedBlob is a file whose contents are memory mapped for the lifetime of
// the handle.
type mappedBlob struct {
	f    *os.File
	data []byte
}

var _ Mappable = (*mappedBlob)(nil)

func (b *mappedBlob) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

func (b *mappedBlob) Close() error {
	if b.data == nil {
		return b.f.Close()
	}

	data := b.data
	b.data = nil

	if err := unmapFile(data); err != nil {
		_ = b.f.Close()
		return err
	}

	return b.f.Close()
}

func (b *mappedBlob) Size() int64 {
	return int64(len(b.data))
}

func (b *mappedBlob) Bytes() ([]byte, error) {
	return b.data, nil
}

// fileBlob reads straight from the file. Used for empty files and platforms
// without mmap.
type fileBlob struct {
	f    *os.File
	size int64
}

func (b *fileBlob) ReadAt(p []byte, off int64) (int, error) {
	return b.f.ReadAt(p, off)
}

func (b *fileBlob) Close() error {
	return b.f.Close()
}

func (b *fileBlob) Size() int64 {
	return b.size
}

// localWritableBlob buffers into a temporary file and publishes it on Close.
type localWritableBlob struct {
	f    *os.File
	path string
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.f.Sync()
}

func (w *localWritableBlob) Close() error {
	err := w.f.Sync()

	if cerr := w.f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(w.f.Name())
		return err
	}

	return os.Rename(w.f.Name(), w.path)
}
