// Package catalog derives display lists for the movie catalog from the
// full dataset plus the caller's filter selections.
package catalog

import (
	"strings"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// Sort modes accepted by FilterState.Sort.
const (
	SortNone   = ""
	SortNew    = "new"
	SortTop    = "top"
	SortRandom = "random"
)

// FilterState holds the caller's current catalog selections. The zero
// value selects everything.
type FilterState struct {
	Search string
	Genre  string
	Year   int
	Sort   string
}

// Precomputed holds the derived lists the sort modes select from.
type Precomputed struct {
	Newest []*domain.Movie
	Top    []*domain.Movie
	Random []*domain.Movie
}

// ValidSort reports whether s is an accepted sort mode.
func ValidSort(s string) bool {
	switch s {
	case SortNone, SortNew, SortTop, SortRandom:
		return true
	}
	return false
}

// Apply narrows all down to the movies matching every set filter
// dimension. A selected sort mode replaces the result wholesale with
// the corresponding precomputed list; search, genre and year are not
// reapplied to it. The override is deliberate: the derived lists are
// site-wide shelves, not orderings of the filtered subset.
//
// Apply is a pure function of its inputs and never mutates them.
func Apply(all []*domain.Movie, state FilterState, pre Precomputed) []*domain.Movie {
	switch state.Sort {
	case SortNew:
		return pre.Newest
	case SortTop:
		return pre.Top
	case SortRandom:
		return pre.Random
	}

	search := strings.ToLower(strings.TrimSpace(state.Search))

	result := make([]*domain.Movie, 0, len(all))
	for _, movie := range all {
		if search != "" && !strings.Contains(strings.ToLower(movie.Name), search) {
			continue
		}
		if state.Genre != "" && movie.GenreID != state.Genre {
			continue
		}
		if state.Year != 0 && movie.Year != state.Year {
			continue
		}
		result = append(result, movie)
	}
	return result
}
