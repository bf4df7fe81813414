package dto

import (
	"strings"
	"time"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// CreateMovieRequest represents a movie creation request
type CreateMovieRequest struct {
	Name    string   `json:"name" binding:"required"`
	Image   string   `json:"image"`
	Year    int      `json:"year" binding:"required"`
	GenreID string   `json:"genre"`
	Detail  string   `json:"detail"`
	Cast    []string `json:"cast"`
	Rating  float64  `json:"rating"`
}

// Validate checks the fields beyond what binding tags cover
func (r *CreateMovieRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if r.Year < 1888 || r.Year > time.Now().Year()+1 {
		return false, "Year is out of range"
	}
	if r.Rating < 0 {
		return false, "Rating must not be negative"
	}
	return true, ""
}

// UpdateMovieRequest carries a partial movie update; zero values are
// left unchanged (Cast is replaced when non-nil)
type UpdateMovieRequest struct {
	Name    string   `json:"name"`
	Image   string   `json:"image"`
	Year    int      `json:"year"`
	GenreID string   `json:"genre"`
	Detail  string   `json:"detail"`
	Cast    []string `json:"cast"`
	Rating  *float64 `json:"rating"`
}

// Validate checks only the fields that are present
func (r *UpdateMovieRequest) Validate() (bool, string) {
	if r.Year != 0 && (r.Year < 1888 || r.Year > time.Now().Year()+1) {
		return false, "Year is out of range"
	}
	if r.Rating != nil && *r.Rating < 0 {
		return false, "Rating must not be negative"
	}
	return true, ""
}

// BrowseQuery carries the catalogue filter dimensions.
// Sort selects a curated view ("new", "top", "random") that replaces
// the filtered list wholesale.
type BrowseQuery struct {
	Search string `form:"search"`
	Genre  string `form:"genre"`
	Year   int    `form:"year"`
	Sort   string `form:"sort"`
}

// Validate rejects unknown sort modes
func (q *BrowseQuery) Validate() (bool, string) {
	switch q.Sort {
	case "", "new", "top", "random":
		return true, ""
	}
	return false, "Sort must be one of new, top, random"
}

// MovieResponse represents a movie in responses
type MovieResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Image  string   `json:"image"`
	Year   int      `json:"year"`
	Genre  string   `json:"genre"`
	Detail string   `json:"detail"`
	Cast   []string `json:"cast"`
	Rating float64  `json:"rating"`
}

// ToMovieResponse converts a Movie to its response shape
func ToMovieResponse(m *domain.Movie) *MovieResponse {
	cast := m.Cast
	if cast == nil {
		cast = []string{}
	}
	return &MovieResponse{
		ID:     m.ID,
		Name:   m.Name,
		Image:  m.Image,
		Year:   m.Year,
		Genre:  m.GenreID,
		Detail: m.Detail,
		Cast:   cast,
		Rating: m.Rating,
	}
}

// ToMovieResponses converts a slice of movies
func ToMovieResponses(movies []*domain.Movie) []*MovieResponse {
	out := make([]*MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = ToMovieResponse(m)
	}
	return out
}
