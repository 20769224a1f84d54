package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docindex/internal/model"
)

func strPtr(s string) *string { return &s }

func ids(docs []model.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func TestScore(t *testing.T) {
	doc := model.Document{
		Title:   "Launch Plan",
		Content: "the launch is in march",
		Tags:    []string{"product launch", "q1"},
	}

	assert.Equal(t, 16, Score(doc, []string{"launch"}))
	assert.Equal(t, 10, Score(doc, []string{"plan"}))
	assert.Equal(t, 5, Score(doc, []string{"q1"}))
	assert.Equal(t, 0, Score(doc, []string{"budget"}))
	// repeated terms count twice
	assert.Equal(t, 20, Score(doc, []string{"plan", "plan"}))
}

func TestSubstringEngine_Search(t *testing.T) {
	engine := NewSubstringEngine()

	t.Run("title match outranks content match", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "body", Title: "Notes", Content: "we will launch soon", UploadedAt: 2},
			{ID: "title", Title: "Product Launch Plan", Content: "", UploadedAt: 1},
		}

		got := engine.Search(corpus, Query{Text: "launch"})

		assert.Equal(t, []string{"title", "body"}, ids(got))
	})

	t.Run("query is trimmed and lower-cased", func(t *testing.T) {
		corpus := []model.Document{{ID: "a", Title: "SEO Report"}}

		got := engine.Search(corpus, Query{Text: "  SEO  "})

		assert.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("zero score documents are excluded", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "hit", Title: "Budget", Category: "general"},
			{ID: "miss", Title: "Roadmap", Category: "general"},
		}

		got := engine.Search(corpus, Query{Text: "budget", Filters: Filters{Category: "general"}})

		assert.Equal(t, []string{"hit"}, ids(got))
	})

	t.Run("scores accumulate across terms", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "one", Title: "email"},
			{ID: "both", Title: "email", Content: "seo"},
		}

		got := engine.Search(corpus, Query{Text: "email seo"})

		assert.Equal(t, []string{"both", "one"}, ids(got))
	})

	t.Run("ties are deterministic", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "a", Title: "report"},
			{ID: "b", Title: "report"},
			{ID: "c", Title: "report"},
		}

		first := engine.Search(corpus, Query{Text: "report"})
		second := engine.Search(corpus, Query{Text: "report"})

		assert.Equal(t, ids(first), ids(second))
		assert.Len(t, first, 3)
	})

	t.Run("limit truncates", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "a", Title: "data"},
			{ID: "b", Title: "data"},
			{ID: "c", Title: "data"},
		}

		got := engine.Search(corpus, Query{Text: "data", Limit: 2})

		assert.Len(t, got, 2)
	})

	t.Run("empty query returns filtered set newest first", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "old", FileType: "pdf", UploadedAt: 100},
			{ID: "new", FileType: "pdf", UploadedAt: 300},
			{ID: "mid", FileType: "pdf", UploadedAt: 200},
			{ID: "other", FileType: "md", UploadedAt: 400},
		}

		got := engine.Search(corpus, Query{Text: "   ", Filters: Filters{FileType: "pdf"}, Limit: 2})

		assert.Equal(t, []string{"new", "mid"}, ids(got))
	})

	t.Run("default limit", func(t *testing.T) {
		corpus := make([]model.Document, 0, DefaultLimit+5)
		for i := 0; i < DefaultLimit+5; i++ {
			corpus = append(corpus, model.Document{ID: "d", UploadedAt: int64(i)})
		}

		got := engine.Search(corpus, Query{})

		assert.Len(t, got, DefaultLimit)
	})

	t.Run("corpus is not mutated", func(t *testing.T) {
		corpus := []model.Document{
			{ID: "a", UploadedAt: 1},
			{ID: "b", UploadedAt: 2},
		}

		_ = engine.Search(corpus, Query{})

		assert.Equal(t, []string{"a", "b"}, ids(corpus))
	})
}

func TestFilter(t *testing.T) {
	corpus := []model.Document{
		{ID: "1", Category: "campaign", Team: strPtr("growth"), Project: strPtr("phoenix"), FileType: "pdf"},
		{ID: "2", Category: "campaign", Team: strPtr("growth"), FileType: "md"},
		{ID: "3", Category: "strategy", Team: strPtr("brand"), Project: strPtr("phoenix"), FileType: "pdf"},
		{ID: "4", Category: "campaign", FileType: "pdf"},
	}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "no filters", filters: Filters{}, want: []string{"1", "2", "3", "4"}},
		{name: "category", filters: Filters{Category: "campaign"}, want: []string{"1", "2", "4"}},
		{name: "team skips absent", filters: Filters{Team: "growth"}, want: []string{"1", "2"}},
		{name: "project", filters: Filters{Project: "phoenix"}, want: []string{"1", "3"}},
		{name: "anded", filters: Filters{Category: "campaign", FileType: "pdf", Project: "phoenix"}, want: []string{"1"}},
		{name: "no match", filters: Filters{Team: "legal"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(corpus, tt.filters)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
