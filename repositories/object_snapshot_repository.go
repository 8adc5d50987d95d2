package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/family-games/storage"
)

type objectSnapshotRepository struct {
	store storage.ObjectStore
}

// NewObjectSnapshotRepository stores each snapshot as a <key>.json object.
func NewObjectSnapshotRepository(store storage.ObjectStore) SnapshotRepository {
	return &objectSnapshotRepository{store: store}
}

func objectName(key string) string {
	return key + ".json"
}

func (r *objectSnapshotRepository) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := r.store.Download(ctx, objectName(key))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, key, err)
	}
	return true, nil
}

func (r *objectSnapshotRepository) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}
	_, err = r.store.Upload(ctx, objectName(key), "application/json", bytes.NewReader(raw))
	return err
}

func (r *objectSnapshotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.store.Download(ctx, objectName(key)); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrSnapshotNotFound
		}
		return err
	}
	return r.store.Delete(ctx, objectName(key))
}
