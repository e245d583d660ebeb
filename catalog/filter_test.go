package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overtone-studio/site-backend/models"
)

func project(title, client string, industries, types []string, visible bool) models.Project {
	return models.Project{
		ID:           uuid.New(),
		Title:        title,
		Client:       client,
		IndustryTags: industries,
		TypeTags:     types,
		IsVisible:    visible,
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	projects := []models.Project{
		project("Neon Drift", "Cyber Motors", nil, nil, true),
		project("Urban Rhythm", "Spotify", nil, nil, true),
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search matches all", "", []string{"Neon Drift", "Urban Rhythm"}},
		{"title substring", "eon", []string{"Neon Drift"}},
		{"title mixed case", "nEoN dRiFt", []string{"Neon Drift"}},
		{"client substring", "spoti", []string{"Urban Rhythm"}},
		{"client uppercase", "SPOTIFY", []string{"Urban Rhythm"}},
		{"no match", "netflix", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(projects, FilterState{Search: tt.search})
			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilter_EmptySelectionIsNoRestriction(t *testing.T) {
	untagged := project("Bare", "Nobody", nil, nil, true)
	tagged := project("Tagged", "Somebody", []string{"Music"}, []string{"Commercial"}, true)

	got := Filter([]models.Project{untagged, tagged}, FilterState{})

	// An empty selection never excludes anything, including projects with
	// zero tags.
	require.Len(t, got, 2)
}

func TestFilter_TagLogicIsOrWithinAndAcrossCategories(t *testing.T) {
	p := project("Spot", "Acme", []string{"A", "B"}, []string{"X"}, true)

	// OR within category: {B,C} intersects {A,B}.
	got := Filter([]models.Project{p}, FilterState{Industries: []string{"B", "C"}})
	assert.Len(t, got, 1)

	// No intersection with {C,D}.
	got = Filter([]models.Project{p}, FilterState{Industries: []string{"C", "D"}})
	assert.Empty(t, got)

	// AND across categories: industry clause passes, type clause fails.
	got = Filter([]models.Project{p}, FilterState{
		Industries: []string{"A"},
		Types:      []string{"Y"},
	})
	assert.Empty(t, got)

	// Both clauses pass.
	got = Filter([]models.Project{p}, FilterState{
		Industries: []string{"A"},
		Types:      []string{"X"},
	})
	assert.Len(t, got, 1)
}

func TestFilter_PreservesInputOrdering(t *testing.T) {
	projects := []models.Project{
		project("C", "c", []string{"M"}, nil, true),
		project("A", "a", []string{"M"}, nil, true),
		project("B", "b", []string{"M"}, nil, true),
	}

	got := Filter(projects, FilterState{Industries: []string{"M"}})

	require.Len(t, got, 3)
	assert.Equal(t, "C", got[0].Title)
	assert.Equal(t, "A", got[1].Title)
	assert.Equal(t, "B", got[2].Title)
}

func TestVisibleOnly_ExcludesHiddenRegardlessOfFilterState(t *testing.T) {
	projects := []models.Project{
		project("Neon Drift", "Cyber Motors", []string{"Automotive"}, nil, true),
		project("Urban Rhythm", "Spotify", []string{"Music"}, nil, false),
	}
	visible := VisibleOnly(projects)

	// Scenario from the public gallery: no filters at all.
	got := Filter(visible, FilterState{})
	require.Len(t, got, 1)
	assert.Equal(t, "Neon Drift", got[0].Title)

	// A search that only the hidden project would match yields nothing.
	got = Filter(visible, FilterState{Search: "spotify"})
	assert.Empty(t, got)

	// Selecting the hidden project's tag yields nothing either.
	got = Filter(visible, FilterState{Industries: []string{"Music"}})
	assert.Empty(t, got)
}

func TestFacets_SortedDistinctPerCategory(t *testing.T) {
	projects := []models.Project{
		project("One", "c1", []string{"Music", "Automotive"}, []string{"Commercial"}, true),
		project("Two", "c2", []string{"Automotive", "Fashion"}, []string{"Documentary", "Commercial"}, true),
	}

	facets := Facets(projects)

	assert.Equal(t, []string{"Automotive", "Fashion", "Music"}, facets.Industry)
	assert.Equal(t, []string{"Commercial", "Documentary"}, facets.Type)
}

func TestFacets_PureFunctionOfCollection(t *testing.T) {
	projects := []models.Project{
		project("One", "c1", []string{"B", "A"}, []string{"Z", "Y"}, true),
		project("Two", "c2", []string{"A", "C"}, nil, false),
	}

	first := Facets(projects)
	second := Facets(projects)

	// Identical and identically ordered on repeated calls.
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"A", "B", "C"}, first.Industry)
}

func TestFacets_IncludesHiddenProjectTagsWhenGivenFullCollection(t *testing.T) {
	projects := []models.Project{
		project("Shown", "c1", []string{"Music"}, nil, true),
		project("Hidden", "c2", []string{"Automotive"}, nil, false),
	}

	// Admin views derive facets over everything fetched.
	all := Facets(projects)
	assert.Equal(t, []string{"Automotive", "Music"}, all.Industry)

	// Public views restrict to visible projects first.
	public := Facets(VisibleOnly(projects))
	assert.Equal(t, []string{"Music"}, public.Industry)
}

func TestFacets_EmptyCollection(t *testing.T) {
	facets := Facets(nil)
	assert.Empty(t, facets.Industry)
	assert.Empty(t, facets.Type)
}
