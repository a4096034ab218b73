package store

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// uploadChunkSize is the fixed read-chunk size for streaming uploads to
// the blob store.
const uploadChunkSize = 1024

// BlobStore persists uploaded image bytes under a caller-chosen name and
// returns the URL the stored record should reference. Writes carry no
// overwrite protection: a second upload for the same name replaces the
// first.
type BlobStore interface {
	Write(name string, src io.Reader) (string, error)
}

// DiskBlobStore writes blobs into a directory served as static content.
type DiskBlobStore struct {
	dir     string
	baseURL string
}

func NewDiskBlobStore(dir, baseURL string) *DiskBlobStore {
	return &DiskBlobStore{dir: dir, baseURL: baseURL}
}

func (s *DiskBlobStore) Write(name string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	buf := make([]byte, uploadChunkSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return "", writeErr
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", readErr
		}
	}

	return s.baseURL + "/" + name, nil
}

// MockBlobStore is an in-memory BlobStore used by the tests.
type MockBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{objects: make(map[string][]byte)}
}

func (s *MockBlobStore) Write(name string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	return "/static/" + name, nil
}

// Object returns the stored bytes for name and whether it exists.
func (s *MockBlobStore) Object(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[name]
	return data, ok
}
