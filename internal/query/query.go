// package query derives filtered views and statistics from the channel list.
//
// All functions are pure: they never mutate their input and preserve the
// original relative order among matches.
package query

import (
	"strings"

	"livetv/internal/models"
)

// All is the sentinel facet value matching every channel.
const All = "all"

// Filters are the admin table facets: a free-text search term plus exact
// category and type filters. Empty facet values behave like [All].
type Filters struct {
	Search   string
	Category string
	Type     string
}

// Filter returns the channels matching all three predicates, in their
// original order. The search term is trimmed and matched case-insensitively
// against name and description.
func Filter(channels []models.Channel, f Filters) []models.Channel {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Channel
	for _, c := range channels {
		if !matchesTerm(c, term, false) {
			continue
		}
		if !matchesFacet(f.Category, c.Category) {
			continue
		}
		if !matchesFacet(f.Type, string(c.Type)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Search is the viewer surface's free-text mode: the term additionally
// matches on category, and no facet filters apply. An empty term returns
// every channel.
func Search(channels []models.Channel, term string) []models.Channel {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []models.Channel
	for _, c := range channels {
		if matchesTerm(c, term, true) {
			out = append(out, c)
		}
	}
	return out
}

// ByCategory returns the channels in the given category; the [All] sentinel
// returns every channel.
func ByCategory(channels []models.Channel, category string) []models.Channel {
	var out []models.Channel
	for _, c := range channels {
		if matchesFacet(category, c.Category) {
			out = append(out, c)
		}
	}
	return out
}

// matchesTerm is the shared substring predicate; includeCategory selects
// which fields participate.
func matchesTerm(c models.Channel, term string, includeCategory bool) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), term) {
		return true
	}
	if includeCategory && strings.Contains(strings.ToLower(c.Category), term) {
		return true
	}
	return false
}

func matchesFacet(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// Stats summarizes the directory for the dashboard.
type Stats struct {
	Total      int `json:"total"`
	YouTube    int `json:"youtube"`
	Facebook   int `json:"facebook"`
	Categories int `json:"categories"`
}

// Summarize counts channels per platform and the number of distinct
// categories.
func Summarize(channels []models.Channel) Stats {
	s := Stats{Total: len(channels)}
	categories := map[string]struct{}{}
	for _, c := range channels {
		switch c.Type {
		case models.TypeYouTube:
			s.YouTube++
		case models.TypeFacebook:
			s.Facebook++
		}
		categories[c.Category] = struct{}{}
	}
	s.Categories = len(categories)
	return s
}
