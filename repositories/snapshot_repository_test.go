package repositories

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/Dosada05/family-games/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key}, nil
}

func (f *fakeObjectStore) Download(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return raw, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStore) GetPublicURL(string) string { return "" }

type sample struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestSnapshotRepositories(t *testing.T) {
	repos := map[string]SnapshotRepository{
		"memory": NewMemorySnapshotRepository(),
		"object": NewObjectSnapshotRepository(newFakeObjectStore()),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var missing sample
			found, err := repo.Load(ctx, KeyTeams, &missing)
			require.NoError(t, err)
			assert.False(t, found)

			in := sample{Name: "teams", Items: []string{"a", "b"}}
			require.NoError(t, repo.Save(ctx, KeyTeams, in))

			// Mutating the saved value afterwards does not leak into the store.
			in.Items[0] = "changed"

			var out sample
			found, err = repo.Load(ctx, KeyTeams, &out)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, sample{Name: "teams", Items: []string{"a", "b"}}, out)

			require.NoError(t, repo.Delete(ctx, KeyTeams))
			assert.ErrorIs(t, repo.Delete(ctx, KeyTeams), ErrSnapshotNotFound)

			found, err = repo.Load(ctx, KeyTeams, &out)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestObjectSnapshotRepository_UsesJSONObjects(t *testing.T) {
	store := newFakeObjectStore()
	repo := NewObjectSnapshotRepository(store)

	require.NoError(t, repo.Save(context.Background(), KeyGames, []string{"x"}))
	assert.JSONEq(t, `["x"]`, string(store.objects[KeyGames+".json"]))
}

func TestObjectSnapshotRepository_CorruptObject(t *testing.T) {
	store := newFakeObjectStore()
	store.objects[KeyBrackets+".json"] = []byte("{not json")
	repo := NewObjectSnapshotRepository(store)

	var out map[string]interface{}
	found, err := repo.Load(context.Background(), KeyBrackets, &out)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrSnapshotCorrupt)
}
