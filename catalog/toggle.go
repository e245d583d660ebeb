package catalog

import "github.com/overtone-studio/site-backend/models"

// ToggleSelection flips one facet value in a filter-selection set: present
// values are removed, absent values appended. The "All" control is not a
// toggle; model it by resetting the selection to nil. Order of the
// remaining selections is preserved.
func ToggleSelection(selected []string, tag string) []string {
	for i, s := range selected {
		if s == tag {
			return append(append([]string{}, selected[:i]...), selected[i+1:]...)
		}
	}
	result := make([]string, 0, len(selected)+1)
	result = append(result, selected...)
	return append(result, tag)
}

// ToggleProjectTag flips one tag on a single project's tag set for the
// given category. This operates on the project draft held by an open
// editor session, not on any filter-selection set; the change reaches the
// store only when the caller saves the project.
func ToggleProjectTag(p *models.Project, category models.TagCategory, tag string) {
	p.SetTagsForCategory(category, ToggleSelection(p.TagsForCategory(category), tag))
}

// RenameTagInSet rewrites every occurrence of oldName to newName in place,
// preserving the set's order and all other entries.
func RenameTagInSet(tags []string, oldName, newName string) []string {
	renamed := make([]string, len(tags))
	for i, tag := range tags {
		if tag == oldName {
			renamed[i] = newName
		} else {
			renamed[i] = tag
		}
	}
	return renamed
}

// RemoveTagFromSet drops every occurrence of name, preserving the order of
// the remaining entries.
func RemoveTagFromSet(tags []string, name string) []string {
	remaining := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != name {
			remaining = append(remaining, tag)
		}
	}
	return remaining
}

// ContainsTag reports membership of name in a tag set.
func ContainsTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}
