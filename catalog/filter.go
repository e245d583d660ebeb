package catalog

import (
	"sort"
	"strings"

	"github.com/overtone-studio/site-backend/models"
)

// FilterState is the mutable filter/search state driving the gallery view.
// An empty Search string and empty selections mean "no restriction".
type FilterState struct {
	Search     string   `json:"search"`
	Industries []string `json:"industries"`
	Types      []string `json:"types"`
}

// Empty reports whether the state imposes no restriction at all.
func (s FilterState) Empty() bool {
	return s.Search == "" && len(s.Industries) == 0 && len(s.Types) == 0
}

// Filter computes the subset of projects matching the current state. All
// three clauses combine with AND; tag selections use OR within a category
// (a project needs at least one of the selected tags, not all of them).
// An empty selection for a category imposes no restriction, which is
// distinct from matching only projects with zero tags. Input ordering is
// preserved. Callers on a public surface must pass a collection already
// restricted to visible projects.
func Filter(projects []models.Project, state FilterState) []models.Project {
	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesSearch(p, state.Search) {
			continue
		}
		if !matchesAny(p.IndustryTags, state.Industries) {
			continue
		}
		if !matchesAny(p.TypeTags, state.Types) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchesSearch is a case-insensitive substring match over title or client.
func matchesSearch(p models.Project, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Client), needle)
}

// matchesAny reports whether the project's tag set intersects the selected
// set. An empty selection means no restriction.
func matchesAny(tags []string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range tags {
		for _, sel := range selected {
			if tag == sel {
				return true
			}
		}
	}
	return false
}

// FacetSet holds the distinct tag values available per category, each list
// lexicographically sorted so the UI does not reorder between recomputes.
type FacetSet struct {
	Industry []string `json:"industry"`
	Type     []string `json:"type"`
}

// Facets derives the facet values offered for filtering from the given
// project collection. It is a pure function of the collection: it carries
// no state between calls and yields identically ordered output for
// identical input. Visibility scoping is the caller's concern; pass only
// visible projects to derive public-facing facets.
func Facets(projects []models.Project) FacetSet {
	return FacetSet{
		Industry: distinctSorted(projects, models.CategoryIndustry),
		Type:     distinctSorted(projects, models.CategoryType),
	}
}

func distinctSorted(projects []models.Project, category models.TagCategory) []string {
	seen := make(map[string]struct{})
	for i := range projects {
		for _, tag := range projects[i].TagsForCategory(category) {
			seen[tag] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for tag := range seen {
		values = append(values, tag)
	}
	sort.Strings(values)
	return values
}

// VisibleOnly returns the projects flagged visible, preserving order.
// Public consumers apply this before filtering or facet derivation.
func VisibleOnly(projects []models.Project) []models.Project {
	visible := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsVisible {
			visible = append(visible, p)
		}
	}
	return visible
}
