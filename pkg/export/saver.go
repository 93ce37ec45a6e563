package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Blob is an encoded export handed to a Saver.
type Blob struct {
	// Name is the file name including its extension.
	Name string

	// ContentType is the MIME type of Data.
	ContentType string

	// Data is the encoded payload.
	Data []byte
}

// Saver delivers an encoded export to its destination. Save does not wait
// for anything beyond handing the payload over.
type Saver interface {
	Save(ctx context.Context, blob Blob) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, blob Blob) error

// Save calls fn(ctx, blob).
func (fn SaverFunc) Save(ctx context.Context, blob Blob) error {
	return fn(ctx, blob)
}

// DirSaver writes blobs as files into a directory. Files are written to a
// temporary name first and renamed into place, so readers never observe a
// partial export.
type DirSaver struct {
	Dir string

	// Perm is the mode of created files (default 0644).
	Perm os.FileMode
}

// NewDirSaver creates a DirSaver rooted at dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Dir: dir, Perm: 0644}
}

// Path returns the destination path of a blob named name.
func (s *DirSaver) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

// Save implements Saver.
func (s *DirSaver) Save(ctx context.Context, blob Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", s.Dir, err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+filepath.Base(blob.Name)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(blob.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", blob.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", blob.Name, err)
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w", blob.Name, err)
	}
	if err := os.Rename(tmpName, s.Path(blob.Name)); err != nil {
		return fmt.Errorf("failed to move %q into place: %w", blob.Name, err)
	}
	return nil
}

// WriterSaver streams the payload of every blob to W, ignoring the name.
type WriterSaver struct {
	W io.Writer
}

// Save implements Saver.
func (s *WriterSaver) Save(ctx context.Context, blob Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.W.Write(blob.Data)
	return err
}

// MemorySaver keeps saved blobs in memory. It is safe for concurrent use.
type MemorySaver struct {
	mu    sync.Mutex
	blobs []Blob
}

// NewMemorySaver creates an empty MemorySaver.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{}
}

// Save implements Saver.
func (s *MemorySaver) Save(ctx context.Context, blob Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data := make([]byte, len(blob.Data))
	copy(data, blob.Data)
	blob.Data = data

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs = append(s.blobs, blob)
	return nil
}

// Blobs returns a copy of the saved blobs in save order.
func (s *MemorySaver) Blobs() []Blob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Blob, len(s.blobs))
	copy(out, s.blobs)
	return out
}

// Last returns the most recently saved blob.
func (s *MemorySaver) Last() (Blob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.blobs) == 0 {
		return Blob{}, false
	}
	return s.blobs[len(s.blobs)-1], true
}

// Len returns the number of saved blobs.
func (s *MemorySaver) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
