package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token   string
	expires time.Time
}

type MemoryLoginGuard struct {
	mu     sync.Mutex
	ttl    time.Duration
	leases map[string]lease
	now    func() time.Time
}

func NewMemoryLoginGuard(ttl time.Duration) *MemoryLoginGuard {
	return &MemoryLoginGuard{
		ttl:    ttl,
		leases: make(map[string]lease),
		now:    time.Now,
	}
}

func (m *MemoryLoginGuard) Acquire(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if held, ok := m.leases[key]; ok && now.Before(held.expires) {
		return "", ErrAlreadyHeld
	}

	token := uuid.NewString()
	m.leases[key] = lease{token: token, expires: now.Add(m.ttl)}
	return token, nil
}

// Release drops the lease on key if token still owns it. A lease that expired and
// was taken over by another holder is left alone.
func (m *MemoryLoginGuard) Release(ctx context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if held, ok := m.leases[key]; ok && held.token == token {
		delete(m.leases, key)
	}
	return nil
}
