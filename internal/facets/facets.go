// Package facets projects distinct facet values and recency listings out of a corpus.
// Nothing is cached: every call recomputes from the corpus it is given.
package facets

import (
	"sort"

	"docindex/internal/model"
	"docindex/internal/search"
)

// DefaultRecentLimit is used when Recent is called without a positive limit.
const DefaultRecentLimit = 10

// Categories returns the sorted distinct categories present in corpus.
func Categories(corpus []model.Document) []string {
	return distinct(corpus, func(d model.Document) *string { return &d.Category })
}

// Teams returns the sorted distinct teams, skipping documents without one.
func Teams(corpus []model.Document) []string {
	return distinct(corpus, func(d model.Document) *string { return d.Team })
}

// Projects returns the sorted distinct projects, skipping documents without one.
func Projects(corpus []model.Document) []string {
	return distinct(corpus, func(d model.Document) *string { return d.Project })
}

// Recent returns up to limit documents, newest upload first.
func Recent(corpus []model.Document, limit int) []model.Document {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	docs := append(make([]model.Document, 0, len(corpus)), corpus...)
	search.SortByUploadedDesc(docs)
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs
}

func distinct(corpus []model.Document, value func(model.Document) *string) []string {
	seen := make(map[string]struct{}, len(corpus))
	out := make([]string, 0)
	for _, d := range corpus {
		v := value(d)
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	sort.Strings(out)
	return out
}
