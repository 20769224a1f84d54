// Package search ranks documents against a free-text query.
package search

import (
	"sort"
	"strings"

	"docindex/internal/model"
)

// DefaultLimit is used when a query does not set a positive limit.
const DefaultLimit = 50

const (
	titleWeight   = 10
	contentWeight = 1
	tagWeight     = 5
)

// Filters narrows the corpus by exact facet equality. Empty fields impose no constraint.
type Filters struct {
	Category string
	Team     string
	Project  string
	FileType string
}

// Query is a single search request.
type Query struct {
	Text    string
	Filters Filters
	Limit   int
}

// Engine ranks a corpus against a query. Implementations must not mutate the corpus.
type Engine interface {
	Search(corpus []model.Document, q Query) []model.Document
}

// SubstringEngine scores every document by naive substring matching of query
// terms against title, content and tags. It scans the whole corpus per call.
// Documents with equal scores keep their corpus order.
type SubstringEngine struct{}

var _ Engine = SubstringEngine{}

// NewSubstringEngine returns the substring-matching engine.
func NewSubstringEngine() SubstringEngine {
	return SubstringEngine{}
}

// Search filters, scores, sorts and truncates corpus.
func (SubstringEngine) Search(corpus []model.Document, q Query) []model.Document {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	docs := Filter(corpus, q.Filters)

	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		SortByUploadedDesc(docs)
		return truncate(docs, limit)
	}

	terms := strings.Fields(text)

	type scored struct {
		doc   model.Document
		score int
	}
	hits := make([]scored, 0, len(docs))
	for _, d := range docs {
		if s := Score(d, terms); s > 0 {
			hits = append(hits, scored{doc: d, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]model.Document, 0, min(len(hits), limit))
	for i := 0; i < len(hits) && i < limit; i++ {
		out = append(out, hits[i].doc)
	}
	return out
}

// Score sums the weights of every lower-cased term found in doc.
// A single term can match title, content and tags at once.
func Score(doc model.Document, terms []string) int {
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(doc.Content)
	tags := strings.ToLower(strings.Join(doc.Tags, " "))

	score := 0
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += titleWeight
		}
		if strings.Contains(content, term) {
			score += contentWeight
		}
		if strings.Contains(tags, term) {
			score += tagWeight
		}
	}
	return score
}

// Filter returns the documents matching every non-empty filter, in corpus order.
// The result is a new slice.
func Filter(corpus []model.Document, f Filters) []model.Document {
	out := make([]model.Document, 0, len(corpus))
	for _, d := range corpus {
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		if f.Team != "" && !equalOptional(d.Team, f.Team) {
			continue
		}
		if f.Project != "" && !equalOptional(d.Project, f.Project) {
			continue
		}
		if f.FileType != "" && d.FileType != f.FileType {
			continue
		}
		out = append(out, d)
	}
	return out
}

// SortByUploadedDesc orders docs newest first, keeping corpus order for equal timestamps.
func SortByUploadedDesc(docs []model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UploadedAt > docs[j].UploadedAt
	})
}

func equalOptional(v *string, want string) bool {
	return v != nil && *v == want
}

func truncate(docs []model.Document, limit int) []model.Document {
	if len(docs) > limit {
		return docs[:limit]
	}
	return docs
}
