package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// PostgresGenreRepository implements GenreRepository using PostgreSQL
type PostgresGenreRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGenreRepository creates a new PostgresGenreRepository
func NewPostgresGenreRepository(pool *pgxpool.Pool) *PostgresGenreRepository {
	return &PostgresGenreRepository{pool: pool}
}

const genreColumns = `id, COALESCE(tmdb_id, 0), name, created_at`

func scanGenre(row pgx.Row) (*domain.Genre, error) {
	genre := &domain.Genre{}
	err := row.Scan(
		&genre.ID,
		&genre.TMDbID,
		&genre.Name,
		&genre.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genre, nil
}

// Create creates a new genre
func (r *PostgresGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	query := `
		INSERT INTO genres (id, tmdb_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, genre.ID, genre.TMDbID, genre.Name, genre.CreatedAt)
	return err
}

// GetByID retrieves a genre by ID
func (r *PostgresGenreRepository) GetByID(ctx context.Context, id string) (*domain.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`
	return scanGenre(r.pool.QueryRow(ctx, query, id))
}

// GetByName retrieves a genre by its exact name
func (r *PostgresGenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE name = $1`
	return scanGenre(r.pool.QueryRow(ctx, query, name))
}

// List retrieves all genres ordered by name
func (r *PostgresGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*domain.Genre
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

// Update updates a genre
func (r *PostgresGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	query := `UPDATE genres SET name = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, genre.ID, genre.Name)
	return err
}

// Delete deletes a genre and detaches its movies
func (r *PostgresGenreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	return err
}

// DeleteAll wipes the genres table
func (r *PostgresGenreRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM genres`)
	return err
}
