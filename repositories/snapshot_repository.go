package repositories

import (
	"context"
	"errors"
)

// Snapshot namespaces.
const (
	KeyTeams    = "familyGames_teams"
	KeyGames    = "familyGames_games"
	KeyBrackets = "familyGames_brackets"
)

var (
	ErrSnapshotNotFound      = errors.New("snapshot not found")
	ErrSnapshotSchemaMissing = errors.New("snapshot table does not exist")
	ErrSnapshotCorrupt       = errors.New("stored snapshot could not be decoded")
)

// SnapshotRepository persists whole JSON values under a key.
type SnapshotRepository interface {
	// Load decodes the value stored under key into dst. It reports false and
	// leaves dst untouched when nothing is stored.
	Load(ctx context.Context, key string, dst interface{}) (bool, error)
	Save(ctx context.Context, key string, value interface{}) error
	// Delete returns ErrSnapshotNotFound when nothing was stored under key.
	Delete(ctx context.Context, key string) error
}
