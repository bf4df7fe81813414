package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// PostgresMovieRepository implements MovieRepository using PostgreSQL
type PostgresMovieRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMovieRepository creates a new PostgresMovieRepository
func NewPostgresMovieRepository(pool *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{pool: pool}
}

// movieColumns uses COALESCE for nullable columns to avoid scan errors
const movieColumns = `id, COALESCE(tmdb_id, 0), name,
	COALESCE(image, '') as image,
	year,
	COALESCE(genre_id::text, '') as genre_id,
	COALESCE(detail, '') as detail,
	COALESCE(movie_cast, '[]'::jsonb) as movie_cast,
	COALESCE(rating, 0) as rating,
	created_at, updated_at`

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	movie := &domain.Movie{}
	var castJSON []byte

	err := row.Scan(
		&movie.ID,
		&movie.TMDbID,
		&movie.Name,
		&movie.Image,
		&movie.Year,
		&movie.GenreID,
		&movie.Detail,
		&castJSON,
		&movie.Rating,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if castJSON != nil {
		json.Unmarshal(castJSON, &movie.Cast)
	}
	if movie.Cast == nil {
		movie.Cast = []string{}
	}

	return movie, nil
}

func (r *PostgresMovieRepository) queryMovies(ctx context.Context, query string, args ...interface{}) ([]*domain.Movie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// Create creates a new movie
func (r *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	castJSON, err := json.Marshal(movie.Cast)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO movies (id, tmdb_id, name, image, year, genre_id, detail, movie_cast, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11)
	`
	_, err = r.pool.Exec(ctx, query,
		movie.ID,
		movie.TMDbID,
		movie.Name,
		movie.Image,
		movie.Year,
		movie.GenreID,
		movie.Detail,
		castJSON,
		movie.Rating,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	return err
}

// GetByID retrieves a movie by ID
func (r *PostgresMovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	return scanMovie(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all movies, newest insertions first
func (r *PostgresMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at DESC`
	return r.queryMovies(ctx, query)
}

// ListNewest retrieves the n most recent movies by release year
func (r *PostgresMovieRepository) ListNewest(ctx context.Context, n int) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY year DESC, created_at DESC LIMIT $1`
	return r.queryMovies(ctx, query, n)
}

// ListTop retrieves the n highest rated movies
func (r *PostgresMovieRepository) ListTop(ctx context.Context, n int) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY rating DESC, created_at DESC LIMIT $1`
	return r.queryMovies(ctx, query, n)
}

// ListRandom retrieves a uniform random sample of n movies without
// replacement
func (r *PostgresMovieRepository) ListRandom(ctx context.Context, n int) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY random() LIMIT $1`
	return r.queryMovies(ctx, query, n)
}

// Update updates a movie
func (r *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	castJSON, err := json.Marshal(movie.Cast)
	if err != nil {
		return err
	}

	query := `
		UPDATE movies
		SET name = $2, image = $3, year = $4, genre_id = NULLIF($5, '')::uuid,
		    detail = $6, movie_cast = $7, rating = $8, updated_at = $9
		WHERE id = $1
	`
	_, err = r.pool.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.Image,
		movie.Year,
		movie.GenreID,
		movie.Detail,
		castJSON,
		movie.Rating,
		movie.UpdatedAt,
	)
	return err
}

// Delete deletes a movie
func (r *PostgresMovieRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	return err
}

// DeleteAll wipes the movies table
func (r *PostgresMovieRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM movies`)
	return err
}
