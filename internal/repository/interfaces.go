package repository

import (
	"context"
	"time"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID; (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email; (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List retrieves all users ordered by creation time
	List(ctx context.Context) ([]*domain.User, error)
	// Count returns the number of stored users
	Count(ctx context.Context) (int, error)
}

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	// Create creates a new movie
	Create(ctx context.Context, movie *domain.Movie) error
	// GetByID retrieves a movie by ID; (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	// List retrieves all movies ordered by creation time descending
	List(ctx context.Context) ([]*domain.Movie, error)
	// ListNewest retrieves the n most recent movies by release year
	ListNewest(ctx context.Context, n int) ([]*domain.Movie, error)
	// ListTop retrieves the n highest rated movies
	ListTop(ctx context.Context, n int) ([]*domain.Movie, error)
	// ListRandom retrieves a uniform random sample of n movies
	// without replacement
	ListRandom(ctx context.Context, n int) ([]*domain.Movie, error)
	// Update updates a movie
	Update(ctx context.Context, movie *domain.Movie) error
	// Delete deletes a movie
	Delete(ctx context.Context, id string) error
	// DeleteAll wipes the movies table (seeding only)
	DeleteAll(ctx context.Context) error
}

// GenreRepository defines the interface for genre data access
type GenreRepository interface {
	// Create creates a new genre
	Create(ctx context.Context, genre *domain.Genre) error
	// GetByID retrieves a genre by ID; (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Genre, error)
	// GetByName retrieves a genre by name; (nil, nil) when absent
	GetByName(ctx context.Context, name string) (*domain.Genre, error)
	// List retrieves all genres ordered by name
	List(ctx context.Context) ([]*domain.Genre, error)
	// Update updates a genre
	Update(ctx context.Context, genre *domain.Genre) error
	// Delete deletes a genre
	Delete(ctx context.Context, id string) error
	// DeleteAll wipes the genres table (seeding only)
	DeleteAll(ctx context.Context) error
}

// TokenDenylist records revoked session token IDs until their natural
// expiry. Logout is the only writer.
type TokenDenylist interface {
	// Revoke marks a token ID as revoked for the given remaining lifetime
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsRevoked reports whether a token ID has been revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
