package session

import (
	"context"
	"sync"
)

// MemoryStorage is an in-process Storage used by tests and ephemeral runs.
type MemoryStorage struct {
	mu    sync.Mutex
	token []byte
	user  []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneBytes(m.token), cloneBytes(m.user), nil
}

func (m *MemoryStorage) Save(ctx context.Context, token, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = cloneBytes(token)
	m.user = cloneBytes(user)
	return nil
}

func (m *MemoryStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	m.user = nil
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
