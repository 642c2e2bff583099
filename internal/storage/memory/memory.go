// Package memory is the map-backed slot backend used in tests.
package memory

import (
	"sync"
)

type Backend struct {
	mu    sync.Mutex
	slots map[string][]byte

	// Saves counts Save calls, letting tests assert that every
	// mutation flushed the collection.
	saves int
}

func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

func (b *Backend) Load(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (b *Backend) Save(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.slots[key] = stored
	b.saves++
	return nil
}

func (b *Backend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.slots, key)
	return nil
}

func (b *Backend) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

// Keys lists the stored slot keys, for assertions on version cleanup.
func (b *Backend) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]string, 0, len(b.slots))
	for k := range b.slots {
		keys = append(keys, k)
	}
	return keys
}
