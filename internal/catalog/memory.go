package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Publish(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[e.Track] = clone(e)
	return nil
}

func (m *Memory) Get(_ context.Context, name string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	out := clone(e)
	return &out, nil
}

func clone(e Entry) Entry {
	e.Challenges = slices.Clone(e.Challenges)
	e.Operations = slices.Clone(e.Operations)
	e.Indices = slices.Clone(e.Indices)
	return e
}
