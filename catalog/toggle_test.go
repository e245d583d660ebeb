package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overtone-studio/site-backend/models"
)

func TestToggleSelection(t *testing.T) {
	var selected []string

	selected = ToggleSelection(selected, "Music")
	assert.Equal(t, []string{"Music"}, selected)

	selected = ToggleSelection(selected, "Automotive")
	assert.Equal(t, []string{"Music", "Automotive"}, selected)

	// Toggling a present value removes it and keeps the rest in order.
	selected = ToggleSelection(selected, "Music")
	assert.Equal(t, []string{"Automotive"}, selected)

	selected = ToggleSelection(selected, "Automotive")
	assert.Empty(t, selected)
}

func TestToggleSelection_DoesNotMutateInput(t *testing.T) {
	original := []string{"A", "B"}
	_ = ToggleSelection(original, "A")
	assert.Equal(t, []string{"A", "B"}, original)
}

func TestToggleProjectTag_OperatesOnSingleProjectField(t *testing.T) {
	p := models.Project{
		IndustryTags: []string{"Music"},
		TypeTags:     []string{"Commercial"},
	}

	ToggleProjectTag(&p, models.CategoryIndustry, "Fashion")
	assert.Equal(t, []string{"Music", "Fashion"}, []string(p.IndustryTags))
	assert.Equal(t, []string{"Commercial"}, []string(p.TypeTags))

	ToggleProjectTag(&p, models.CategoryIndustry, "Music")
	assert.Equal(t, []string{"Fashion"}, []string(p.IndustryTags))

	ToggleProjectTag(&p, models.CategoryType, "Commercial")
	assert.Empty(t, []string(p.TypeTags))
}

func TestRenameTagInSet_PreservesOrderAndOtherEntries(t *testing.T) {
	got := RenameTagInSet([]string{"Automotive", "Tech"}, "Automotive", "Cars")
	assert.Equal(t, []string{"Cars", "Tech"}, got)

	// Entries not matching the old name are untouched.
	got = RenameTagInSet([]string{"Tech"}, "Automotive", "Cars")
	assert.Equal(t, []string{"Tech"}, got)

	// Every occurrence is rewritten, in place.
	got = RenameTagInSet([]string{"Drama", "Action", "Drama"}, "Drama", "Thriller")
	assert.Equal(t, []string{"Thriller", "Action", "Thriller"}, got)
}

func TestRemoveTagFromSet(t *testing.T) {
	got := RemoveTagFromSet([]string{"Drama", "Action", "Drama"}, "Drama")
	assert.Equal(t, []string{"Action"}, got)

	got = RemoveTagFromSet([]string{"Action"}, "Drama")
	assert.Equal(t, []string{"Action"}, got)
}

func TestContainsTag(t *testing.T) {
	assert.True(t, ContainsTag([]string{"A", "B"}, "B"))
	assert.False(t, ContainsTag([]string{"A", "B"}, "C"))
	assert.False(t, ContainsTag(nil, "A"))
}
