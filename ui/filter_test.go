package ui

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterContent() Content {
	return Content{
		Filters: []FilterDef{
			{Label: "All", Filter: FilterAll},
			{Label: "Health", Filter: "healthcare"},
			{Label: "Games", Filter: "game"},
			{Label: "AI", Filter: "ai"},
		},
		Projects: []Project{
			{ID: "mri", Categories: []string{"healthcare", "aiSystems"}},
			{ID: "ski", Categories: []string{"game"}},
			{ID: "lab", Categories: []string{"civic", "game"}},
			{ID: "bare"},
		},
	}
}

func visibleIDs(f *Filter) []string {
	var ids []string
	f.Visible().Each(func(_ int, c *goquery.Selection) {
		ids = append(ids, c.AttrOr("id", ""))
	})
	return ids
}

func activeCount(f *Filter) int {
	return f.Buttons().Filter("." + ClassActive).Length()
}

func TestFilterByCategory(t *testing.T) {
	f := NewFilter(BuildDocument(filterContent()))
	assert.Equal(t, FilterAll, f.Active())

	require.True(t, f.SelectCategory("game"))
	assert.Equal(t, []string{"project-ski", "project-lab"}, visibleIDs(f))
	assert.Equal(t, "game", f.Active())
	assert.Equal(t, 1, activeCount(f))

	require.True(t, f.SelectCategory("healthcare"))
	assert.Equal(t, []string{"project-mri"}, visibleIDs(f))
	assert.Equal(t, 1, activeCount(f))

	require.True(t, f.SelectCategory(FilterAll))
	assert.Equal(t, 4, f.Visible().Length())
	assert.Equal(t, 1, activeCount(f))
}

func TestFilterMatchesWholeTokens(t *testing.T) {
	f := NewFilter(BuildDocument(filterContent()))
	require.True(t, f.SelectCategory("ai"))
	assert.Empty(t, visibleIDs(f), `"ai" must not match "aiSystems"`)
}

func TestFilterIgnoresForeignButtons(t *testing.T) {
	f := NewFilter(BuildDocument(filterContent()))

	other := BuildDocument(filterContent())
	f.Select(other.Find("." + ClassFilterButton).Eq(2))
	f.Select(nil)
	assert.Equal(t, FilterAll, f.Active())
	assert.Equal(t, 4, f.Visible().Length())

	assert.False(t, f.SelectCategory("unknown"))
	assert.False(t, f.SelectIndex(10))
	assert.False(t, f.SelectIndex(-1))
	assert.True(t, f.SelectIndex(2))
	assert.Equal(t, "game", f.Active())
}

func TestFilterWithoutButtons(t *testing.T) {
	f := NewFilter(mustParse(t, `<article class="project-card" data-categories="game"></article>`))
	assert.Equal(t, "", f.Active())
	assert.False(t, f.SelectCategory(FilterAll))
	assert.Equal(t, 1, f.Visible().Length())
}

func TestHasCategory(t *testing.T) {
	assert.True(t, HasCategory("civic aiSystems", "aiSystems"))
	assert.False(t, HasCategory("civic aiSystems", "ai"))
	assert.False(t, HasCategory("", "civic"))
	assert.False(t, HasCategory("civic", ""))
}
