package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
	"github.com/abhi1440/RateMyMovieAPP/internal/repository"
)

var ErrGenreAlreadyExists = errors.New("genre already exists")

// GenreService defines the interface for genre operations
type GenreService interface {
	// Create creates a genre, admin only
	Create(ctx context.Context, req *dto.CreateGenreRequest) (*dto.GenreResponse, error)
	// Get retrieves a genre by ID
	Get(ctx context.Context, id string) (*dto.GenreResponse, error)
	// List retrieves all genres
	List(ctx context.Context) ([]*dto.GenreResponse, error)
	// Update renames a genre, admin only
	Update(ctx context.Context, id string, req *dto.UpdateGenreRequest) (*dto.GenreResponse, error)
	// Delete removes a genre, admin only
	Delete(ctx context.Context, id string) error
}

// genreService implements GenreService
type genreService struct {
	genreRepo repository.GenreRepository
}

// NewGenreService creates a new GenreService
func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

// Create creates a genre, admin only
func (s *genreService) Create(ctx context.Context, req *dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	existing, err := s.genreRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGenreAlreadyExists
	}

	genre := &domain.Genre{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return dto.ToGenreResponse(genre), nil
}

// Get retrieves a genre by ID
func (s *genreService) Get(ctx context.Context, id string) (*dto.GenreResponse, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}
	return dto.ToGenreResponse(genre), nil
}

// List retrieves all genres
func (s *genreService) List(ctx context.Context) ([]*dto.GenreResponse, error) {
	genres, err := s.genreRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToGenreResponses(genres), nil
}

// Update renames a genre, admin only
func (s *genreService) Update(ctx context.Context, id string, req *dto.UpdateGenreRequest) (*dto.GenreResponse, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	if req.Name != genre.Name {
		existing, err := s.genreRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrGenreAlreadyExists
		}
		genre.Name = req.Name
		if err := s.genreRepo.Update(ctx, genre); err != nil {
			return nil, err
		}
	}
	return dto.ToGenreResponse(genre), nil
}

// Delete removes a genre, admin only
func (s *genreService) Delete(ctx context.Context, id string) error {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if genre == nil {
		return ErrGenreNotFound
	}
	return s.genreRepo.Delete(ctx, id)
}
