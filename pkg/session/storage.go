package session

import (
	"context"
	"errors"
	"sync"
)

// Storage keys used by the session.
const (
	KeyProfile  = "userProfile"
	KeyDarkMode = "darkMode"
)

// ErrClosed is returned by storage operations after Close.
var ErrClosed = errors.New("storage is closed")

// Storage is a small key/value store holding JSON-encoded session values.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the storage.
	Close() error
}

// MemoryStorage keeps values in a map. Everything is lost on exit.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Get implements Storage.
func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, NewStorageError("memory", "get", ErrClosed)
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements Storage.
func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return NewStorageError("memory", "set", ErrClosed)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Storage.
func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return NewStorageError("memory", "delete", ErrClosed)
	}
	delete(m.values, key)
	return nil
}

// Close implements Storage.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
