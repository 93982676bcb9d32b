package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// FakeStorage is an in-memory ObjectStorage for tests and local development.
type FakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailNext makes the next Upload return an error, for exercising the
	// degraded "skip document" path.
	FailNext bool
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{objects: make(map[string][]byte)}
}

func (f *FakeStorage) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailNext {
		f.FailNext = false
		return "", errors.New("fake storage: upload failed")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[filename] = data
	return fmt.Sprintf("https://fake-bucket.local/%s", filename), nil
}

// Object returns the stored bytes for filename.
func (f *FakeStorage) Object(filename string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[filename]
	return data, ok
}
