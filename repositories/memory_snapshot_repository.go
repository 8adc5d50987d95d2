package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memorySnapshotRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySnapshotRepository keeps snapshots in process memory. Values are
// stored encoded so callers never share state with the repository.
func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepository{values: make(map[string][]byte)}
}

func (r *memorySnapshotRepository) Load(_ context.Context, key string, dst interface{}) (bool, error) {
	r.mu.RLock()
	raw, ok := r.values[key]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, key, err)
	}
	return true, nil
}

func (r *memorySnapshotRepository) Save(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}
	r.mu.Lock()
	r.values[key] = raw
	r.mu.Unlock()
	return nil
}

func (r *memorySnapshotRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.values[key]; !ok {
		return ErrSnapshotNotFound
	}
	delete(r.values, key)
	return nil
}
