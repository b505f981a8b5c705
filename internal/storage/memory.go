package storage

import (
	"context"
	"sync"

	"pharmacy-storefront/internal/domain"
)

// Memory keeps the payload in process memory. Used in tests and for
// throwaway deployments; state is lost on restart.
type Memory struct {
	mu     sync.Mutex
	data   []byte
	stored bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stored {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.stored = true
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}
