package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/model"
	"docindex/internal/repository"
)

func newTestRepo(t *testing.T) (*DocumentRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDocumentRedis(client, "test:"), mr
}

func TestDocumentRedis_CreateAndFind(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	project := "phoenix"

	created, err := repo.Create(ctx, &model.Document{
		ID:         "doc-1",
		Title:      "Q1 Plan",
		Category:   "strategy",
		Tags:       []string{"q1"},
		Project:    &project,
		UploadedBy: "u1",
		UploadedAt: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", created.ID)
	assert.True(t, mr.Exists("test:doc:doc-1"))

	got, err := repo.FindByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Q1 Plan", got.Title)
	assert.Equal(t, []string{"q1"}, got.Tags)
	assert.Equal(t, "phoenix", *got.Project)
	assert.Nil(t, got.Team)

	_, err = repo.Create(ctx, &model.Document{ID: "doc-1"})
	assert.Error(t, err)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentRedis_AllOrdersByUploadTime(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, d := range []model.Document{
		{ID: "late", UploadedAt: 300},
		{ID: "early", UploadedAt: 100},
		{ID: "mid", UploadedAt: 200},
	} {
		_, err := repo.Create(ctx, &d)
		require.NoError(t, err)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "early", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "late", all[2].ID)
	assert.NotNil(t, all[0].Tags)
}

func TestDocumentRedis_Update(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Document{ID: "doc-1", Title: "Old", FileName: "a.md", UploadedAt: 100, LastModified: 100})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &model.Document{ID: "doc-1", Title: "New", Category: "general", LastModified: 200})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "a.md", updated.FileName)
	assert.Equal(t, int64(100), updated.UploadedAt)
	assert.Equal(t, int64(200), updated.LastModified)

	_, err = repo.Update(ctx, &model.Document{ID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentRedis_DeleteIsIdempotent(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Document{ID: "doc-1", UploadedAt: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "doc-1"))
	require.NoError(t, repo.Delete(ctx, "doc-1"))

	assert.False(t, mr.Exists("test:doc:doc-1"))
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDocumentRedis_PingContext(t *testing.T) {
	repo, mr := newTestRepo(t)

	assert.NoError(t, repo.PingContext(context.Background()))

	mr.Close()
	assert.Error(t, repo.PingContext(context.Background()))
}

func TestDocumentRedis_CreateIndexFailureLeavesNoDocument(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	// A string under the index key makes ZADD fail with WRONGTYPE.
	require.NoError(t, mr.Set("test:docs", "not-a-zset"))

	_, err := repo.Create(ctx, &model.Document{ID: "doc-1", Title: "T", UploadedBy: "u1", UploadedAt: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index document")
	assert.False(t, mr.Exists("test:doc:doc-1"))

	_, err = repo.FindByID(ctx, "doc-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
