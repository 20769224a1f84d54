// Package analyzer derives search attributes (category, tags) from document text.
// Every function here is pure: the same title and content always produce the same output.
package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultCategory is assigned when no category keyword matches.
const DefaultCategory = "general"

// MaxTags bounds the number of tags kept on a document.
const MaxTags = 10

const (
	minQuotedLen = 2 // exclusive
	maxQuotedLen = 30
)

type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules is evaluated top to bottom; the first match wins.
var categoryRules = []categoryRule{
	{"campaign", []string{"campaign", "promotion", "launch", "advertising", "ad campaign"}},
	{"strategy", []string{"strategy", "plan", "roadmap", "goals", "objectives"}},
	{"content", []string{"content", "blog", "article", "copy", "copywriting", "social media"}},
	{"analytics", []string{"analytics", "report", "metrics", "kpi", "dashboard", "data"}},
	{"branding", []string{"brand", "branding", "identity", "guidelines", "style guide"}},
	{"research", []string{"research", "study", "survey", "analysis", "insights"}},
	{"template", []string{"template", "boilerplate", "example", "sample"}},
}

var commonTags = []string{
	"q1", "q2", "q3", "q4",
	"2024", "2025",
	"social media", "email", "seo", "ppc",
	"b2b", "b2c",
	"product launch", "event", "webinar",
}

var quotedPhrase = regexp.MustCompile(`"([^"]+)"`)

// Result is the output of Analyze.
type Result struct {
	Content  string
	Category string
	Tags     []string
}

// Analyze runs text extraction, categorization and tag extraction in that order.
func Analyze(title, content, fileType string) Result {
	text := ExtractText(content, fileType)
	return Result{
		Content:  text,
		Category: Categorize(title, text),
		Tags:     ExtractTags(title, text),
	}
}

// IsPlainText reports whether fileType is stored as readable text.
func IsPlainText(fileType string) bool {
	return fileType == "txt" || fileType == "md"
}

// ExtractText returns the indexable text for content of the given file type.
// No format is parsed: binary formats must arrive already extracted.
func ExtractText(content, fileType string) string {
	switch fileType {
	case "txt", "md":
		return content
	default:
		return content
	}
}

// Categorize returns the first category whose keywords occur in the title or
// content, or DefaultCategory.
func Categorize(title, content string) string {
	lowerTitle := strings.ToLower(title)
	lowerContent := strings.ToLower(content)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowerTitle, kw) || strings.Contains(lowerContent, kw) {
				return rule.name
			}
		}
	}
	return DefaultCategory
}

// ExtractTags collects known tag keywords followed by double-quoted phrases,
// capped at MaxTags. Duplicates are kept.
func ExtractTags(title, content string) []string {
	raw := title + " " + content
	text := strings.ToLower(raw)

	tags := make([]string, 0, MaxTags)
	for _, tag := range commonTags {
		if strings.Contains(text, tag) {
			tags = append(tags, tag)
		}
	}

	// Quoted phrases keep their original casing.
	for _, m := range quotedPhrase.FindAllStringSubmatch(raw, -1) {
		phrase := m[1]
		n := utf8.RuneCountInString(phrase)
		if n > minQuotedLen && n < maxQuotedLen {
			tags = append(tags, phrase)
		}
	}

	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}

// Categories lists every category Categorize can return, in rule order.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.name)
	}
	return append(out, DefaultCategory)
}

// IsCategory reports whether name is a category Categorize can return.
func IsCategory(name string) bool {
	if name == DefaultCategory {
		return true
	}
	for _, rule := range categoryRules {
		if rule.name == name {
			return true
		}
	}
	return false
}
