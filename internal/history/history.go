// Package history keeps the most recent distinct search terms per user.
package history

import (
	"context"
	"strings"
	"sync"
)

// MaxEntries caps how many terms are remembered
const MaxEntries = 7

// Push returns a new history with term first, any earlier copy of it
// removed, and at most MaxEntries terms. The input slice is not modified.
func Push(h []string, term string) []string {
	if strings.TrimSpace(term) == "" {
		return append([]string(nil), h...)
	}
	out := make([]string, 0, MaxEntries)
	out = append(out, term)
	for _, t := range h {
		if len(out) == MaxEntries {
			break
		}
		if t != term {
			out = append(out, t)
		}
	}
	return out
}

// Store persists a history list per identity
type Store interface {
	Load(ctx context.Context, identity string) ([]string, error)
	Save(ctx context.Context, identity string, terms []string) error
	Clear(ctx context.Context, identity string) error
}

// Recorder applies Push against a Store
type Recorder struct {
	store Store
	mu    sync.Mutex
}

// NewRecorder creates a recorder backed by store
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record adds term to identity's history and returns the updated list
func (r *Recorder) Record(ctx context.Context, identity, term string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.store.Load(ctx, identity)
	if err != nil {
		return nil, err
	}
	next := Push(current, term)
	if err := r.store.Save(ctx, identity, next); err != nil {
		return nil, err
	}
	return next, nil
}

// List returns identity's history, most recent first
func (r *Recorder) List(ctx context.Context, identity string) ([]string, error) {
	return r.store.Load(ctx, identity)
}

// Clear forgets identity's history
func (r *Recorder) Clear(ctx context.Context, identity string) error {
	return r.store.Clear(ctx, identity)
}

// MemoryStore keeps histories in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	terms map[string][]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{terms: make(map[string][]string)}
}

func (m *MemoryStore) Load(_ context.Context, identity string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.terms[identity]...), nil
}

func (m *MemoryStore) Save(_ context.Context, identity string, terms []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms[identity] = append([]string(nil), terms...)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.terms, identity)
	return nil
}
