package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hidato/internal/domain"
)

func fixture(id string, d domain.Difficulty) *domain.Puzzle {
	return &domain.Puzzle{
		ID:         id,
		Size:       3,
		Adjacency:  domain.Adjacency4,
		Difficulty: d,
		Cells: []int{
			1, 2, 3,
			6, 5, 4,
			7, 8, 9,
		},
		CreatedAt: 12345,
		Name:      "fixture " + id,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	p := fixture("p1", domain.Hard)
	require.NoError(t, fs.Save(ctx, p))

	got, err := fs.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Cells, got.Cells)
	assert.Equal(t, domain.Hard, got.Difficulty)
	assert.Equal(t, p.Adjacency, got.Adjacency)
}

func TestSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	err := fs.Save(context.Background(), &domain.Puzzle{Size: 3})
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	_, err := fs.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDifficultyInference(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs := NewFS(dir)
	bucket := filepath.Join(dir, domain.Medium.String())
	require.NoError(t, os.MkdirAll(bucket, 0o755))

	// an explicit easy marker survives even in a foreign bucket
	explicit := []byte(`{"id":"x","size":2,"adjacency":8,"cells":[1,2,4,3],"difficulty":0}`)
	require.NoError(t, os.WriteFile(filepath.Join(bucket, "x.json"), explicit, 0o644))
	got, err := fs.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, domain.Easy, got.Difficulty)

	// a missing key falls back to the bucket
	absent := []byte(`{"id":"y","size":2,"adjacency":8,"cells":[1,2,4,3]}`)
	require.NoError(t, os.WriteFile(filepath.Join(bucket, "y.json"), absent, 0o644))
	got, err = fs.Load(ctx, "y")
	require.NoError(t, err)
	assert.Equal(t, domain.Medium, got.Difficulty)
}

func TestListAcrossBuckets(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())
	require.NoError(t, fs.Save(ctx, fixture("a", domain.Easy)))
	require.NoError(t, fs.Save(ctx, fixture("b", domain.Expert)))

	metas, err := fs.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	assert.Equal(t, domain.Easy, byID["a"].Difficulty)
	assert.Equal(t, domain.Expert, byID["b"].Difficulty)
	assert.Equal(t, 3, byID["a"].Size)
}
