package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docindex/internal/model"
)

func strPtr(s string) *string { return &s }

func corpus() []model.Document {
	return []model.Document{
		{ID: "1", Category: "strategy", Team: strPtr("growth"), Project: strPtr("phoenix"), UploadedAt: 10},
		{ID: "2", Category: "campaign", Team: strPtr("brand"), UploadedAt: 30},
		{ID: "3", Category: "strategy", Team: strPtr("growth"), Project: strPtr("atlas"), UploadedAt: 20},
		{ID: "4", Category: "general", UploadedAt: 40},
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"campaign", "general", "strategy"}, Categories(corpus()))
}

func TestTeams(t *testing.T) {
	assert.Equal(t, []string{"brand", "growth"}, Teams(corpus()))
}

func TestProjects(t *testing.T) {
	assert.Equal(t, []string{"atlas", "phoenix"}, Projects(corpus()))
}

func TestEmptyCorpus(t *testing.T) {
	assert.Empty(t, Categories(nil))
	assert.NotNil(t, Teams(nil))
	assert.Empty(t, Projects(nil))
	assert.Empty(t, Recent(nil, 5))
}

func TestRecent(t *testing.T) {
	t.Run("newest first with limit", func(t *testing.T) {
		got := Recent(corpus(), 2)
		assert.Len(t, got, 2)
		assert.Equal(t, "4", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	})

	t.Run("default limit", func(t *testing.T) {
		docs := make([]model.Document, 15)
		for i := range docs {
			docs[i] = model.Document{UploadedAt: int64(i)}
		}
		got := Recent(docs, 0)
		assert.Len(t, got, DefaultRecentLimit)
		assert.Equal(t, int64(14), got[0].UploadedAt)
	})

	t.Run("input is left untouched", func(t *testing.T) {
		in := corpus()
		_ = Recent(in, 10)
		assert.Equal(t, "1", in[0].ID)
	})
}
