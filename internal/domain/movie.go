package domain

import (
	"time"
)

// Genre represents a movie genre
type Genre struct {
	ID        string    `json:"id"`
	TMDbID    int       `json:"tmdb_id,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Movie represents a catalogue entry.
// GenreID references a Genre but is not enforced as a hard constraint;
// a movie may outlive its genre.
type Movie struct {
	ID        string    `json:"id"`
	TMDbID    int       `json:"tmdb_id,omitempty"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Year      int       `json:"year"`
	GenreID   string    `json:"genre"`
	Detail    string    `json:"detail"`
	Cast      []string  `json:"cast"` // ordered, top billing first
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
