package repositories

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionConflict = errors.New("session id already in use")
)

// SessionRepository keeps live sessions in memory. Nothing outlives the process.
type SessionRepository[T any] interface {
	Create(ctx context.Context, id string, session T) error
	GetByID(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, id string) error
	ListIdle(ctx context.Context, before time.Time) ([]string, error)
	Count(ctx context.Context) int
}

type sessionEntry[T any] struct {
	session  T
	lastSeen time.Time
}

type memorySessionRepository[T any] struct {
	mu    sync.RWMutex
	items map[string]*sessionEntry[T]
	now   func() time.Time
}

func NewMemorySessionRepository[T any]() SessionRepository[T] {
	return newMemorySessionRepository[T](time.Now)
}

func newMemorySessionRepository[T any](now func() time.Time) *memorySessionRepository[T] {
	return &memorySessionRepository[T]{
		items: make(map[string]*sessionEntry[T]),
		now:   now,
	}
}

func (r *memorySessionRepository[T]) Create(ctx context.Context, id string, session T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		return ErrSessionConflict
	}
	r.items[id] = &sessionEntry[T]{session: session, lastSeen: r.now()}
	return nil
}

func (r *memorySessionRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrSessionNotFound
	}
	return entry.session, nil
}

func (r *memorySessionRepository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.items, id)
	return nil
}

// Touch marks the session as used now, postponing its expiry.
func (r *memorySessionRepository[T]) Touch(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[id]
	if !ok {
		return ErrSessionNotFound
	}
	entry.lastSeen = r.now()
	return nil
}

// ListIdle returns the ids of sessions not touched since before.
func (r *memorySessionRepository[T]) ListIdle(ctx context.Context, before time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, entry := range r.items {
		if entry.lastSeen.Before(before) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *memorySessionRepository[T]) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
