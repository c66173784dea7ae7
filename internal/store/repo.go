package store

import (
	"context"
	"sync"
)

// Logical keys of the persisted learner documents.
const (
	KeyProfile  = "user"
	KeyResults  = "quizResults"
	KeySettings = "userSettings"
)

// KV is the persistence collaborator: opaque blobs addressed by key.
// A read either returns the full blob or nothing.
type KV interface {
	// Get returns the blob stored under key. ok is false if nothing is stored.
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)

	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, blob []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Memory is an in-process KV.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ KV = (*Memory)(nil)

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), blob...)
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
