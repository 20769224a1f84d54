package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	for _, ft := range []string{"txt", "md", "pdf", "docx", ""} {
		t.Run(ft, func(t *testing.T) {
			assert.Equal(t, "raw body", ExtractText("raw body", ft))
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{
			name:  "first listed category wins",
			title: "2025 Marketing Strategy for New Campaign Launch",
			want:  "campaign",
		},
		{
			name:    "content keyword only",
			title:   "Quarterly notes",
			content: "See the KPI dashboard",
			want:    "analytics",
		},
		{
			name:  "case insensitive",
			title: "BRAND Book",
			want:  "branding",
		},
		{
			name:    "multi word keyword",
			title:   "Notes",
			content: "our style guide lives here",
			want:    "branding",
		},
		{
			name:    "no keyword falls back to general",
			title:   "Team lunch",
			content: "we ate pizza",
			want:    DefaultCategory,
		},
		{
			name: "empty input",
			want: DefaultCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title, tt.content))
		})
	}
}

func TestExtractTags(t *testing.T) {
	t.Run("fixed tags before quoted phrases", func(t *testing.T) {
		got := ExtractTags("Kickoff", `Planning for q1 2024 with "Project Phoenix" kickoff`)
		assert.Equal(t, []string{"q1", "2024", "Project Phoenix"}, got)
	})

	t.Run("quoted phrase length bounds", func(t *testing.T) {
		len29 := strings.Repeat("x", 29)
		len30 := strings.Repeat("y", 30)
		content := `"ab" "abc" "` + len29 + `" "` + len30 + `"`
		got := ExtractTags("x", content)
		assert.Equal(t, []string{"abc", len29}, got)
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		got := ExtractTags("Invite", `join our "webinar"`)
		assert.Equal(t, []string{"webinar", "webinar"}, got)
	})

	t.Run("truncated to max tags", func(t *testing.T) {
		got := ExtractTags("Plan", "q1 q2 q3 q4 2024 2025 social media email seo ppc b2b")
		assert.Len(t, got, MaxTags)
		assert.Equal(t, "q1", got[0])
		assert.Equal(t, "ppc", got[MaxTags-1])
	})

	t.Run("no tags yields empty slice", func(t *testing.T) {
		got := ExtractTags("Hello", "world")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		title, content := "Q3 Event", `"Spring Gala" for b2b partners`
		assert.Equal(t, ExtractTags(title, content), ExtractTags(title, content))
	})
}

func TestAnalyze(t *testing.T) {
	res := Analyze("Q1 Campaign", `The "Big Push" for 2025`, "pdf")

	assert.Equal(t, `The "Big Push" for 2025`, res.Content)
	assert.Equal(t, "campaign", res.Category)
	assert.Equal(t, []string{"q1", "2025", "Big Push"}, res.Tags)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, "campaign", cats[0])
	assert.Equal(t, DefaultCategory, cats[len(cats)-1])
	assert.Len(t, cats, 8)

	assert.True(t, IsCategory("research"))
	assert.True(t, IsCategory(DefaultCategory))
	assert.False(t, IsCategory("misc"))
}

func TestIsPlainText(t *testing.T) {
	assert.True(t, IsPlainText("txt"))
	assert.True(t, IsPlainText("md"))
	assert.False(t, IsPlainText("pdf"))
	assert.False(t, IsPlainText("TXT"))
}
