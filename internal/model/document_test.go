package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPatch_TouchesText(t *testing.T) {
	empty := ""
	title := "New title"

	tests := []struct {
		name  string
		patch DocumentPatch
		want  bool
	}{
		{name: "empty patch", patch: DocumentPatch{}, want: false},
		{name: "facets only", patch: DocumentPatch{Team: &title, Category: &title}, want: false},
		{name: "title", patch: DocumentPatch{Title: &title}, want: true},
		{name: "present but empty content", patch: DocumentPatch{Content: &empty}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.TouchesText())
		})
	}
}

func TestDocumentPatch_DecodeDistinguishesEmptyFromAbsent(t *testing.T) {
	var withEmpty, without DocumentPatch
	require.NoError(t, json.Unmarshal([]byte(`{"content":""}`), &withEmpty))
	require.NoError(t, json.Unmarshal([]byte(`{"team":"growth"}`), &without))

	require.NotNil(t, withEmpty.Content)
	assert.Equal(t, "", *withEmpty.Content)
	assert.True(t, withEmpty.TouchesText())

	assert.Nil(t, without.Content)
	assert.False(t, without.TouchesText())
}

func TestDocument_Clone(t *testing.T) {
	team := "growth"
	orig := Document{ID: "d1", Team: &team, Tags: []string{"q1"}}

	cp := orig.Clone()
	*cp.Team = "brand"
	cp.Tags[0] = "q2"

	assert.Equal(t, "growth", *orig.Team)
	assert.Equal(t, []string{"q1"}, orig.Tags)
}
