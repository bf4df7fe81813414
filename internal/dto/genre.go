package dto

import (
	"strings"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// CreateGenreRequest represents a genre creation request
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate checks the genre name
func (r *CreateGenreRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if len(r.Name) > 64 {
		return false, "Name must not exceed 64 characters"
	}
	return true, ""
}

// UpdateGenreRequest represents a genre rename
type UpdateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate checks the genre name
func (r *UpdateGenreRequest) Validate() (bool, string) {
	return (&CreateGenreRequest{Name: r.Name}).Validate()
}

// GenreResponse represents a genre in responses
type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToGenreResponse converts a Genre to its response shape
func ToGenreResponse(g *domain.Genre) *GenreResponse {
	return &GenreResponse{ID: g.ID, Name: g.Name}
}

// ToGenreResponses converts a slice of genres
func ToGenreResponses(genres []*domain.Genre) []*GenreResponse {
	out := make([]*GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = ToGenreResponse(g)
	}
	return out
}
