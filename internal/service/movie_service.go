package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhi1440/RateMyMovieAPP/internal/catalog"
	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
	"github.com/abhi1440/RateMyMovieAPP/internal/repository"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrGenreNotFound = errors.New("genre not found")
	ErrInvalidSort   = errors.New("invalid sort mode")
)

// Number of entries served by the curated views.
const derivedListSize = 10

// MovieService defines the interface for catalogue operations
type MovieService interface {
	// Create creates a movie, admin only
	Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.MovieResponse, error)
	// Get retrieves a movie by ID
	Get(ctx context.Context, id string) (*dto.MovieResponse, error)
	// List retrieves all movies
	List(ctx context.Context) ([]*dto.MovieResponse, error)
	// Newest retrieves the most recent releases
	Newest(ctx context.Context) ([]*dto.MovieResponse, error)
	// Top retrieves the highest rated movies
	Top(ctx context.Context) ([]*dto.MovieResponse, error)
	// Random retrieves a random sample
	Random(ctx context.Context) ([]*dto.MovieResponse, error)
	// Browse applies the filter dimensions and returns the display list
	Browse(ctx context.Context, query *dto.BrowseQuery) ([]*dto.MovieResponse, error)
	// Update applies a partial update, admin only
	Update(ctx context.Context, id string, req *dto.UpdateMovieRequest) (*dto.MovieResponse, error)
	// Delete removes a movie, admin only
	Delete(ctx context.Context, id string) error
}

// movieService implements MovieService
type movieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

// resolveGenre checks the referenced genre exists
func (s *movieService) resolveGenre(ctx context.Context, genreID string) error {
	if genreID == "" {
		return nil
	}
	genre, err := s.genreRepo.GetByID(ctx, genreID)
	if err != nil {
		return err
	}
	if genre == nil {
		return ErrGenreNotFound
	}
	return nil
}

// Create creates a movie, admin only
func (s *movieService) Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	if err := s.resolveGenre(ctx, req.GenreID); err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &domain.Movie{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Image:     req.Image,
		Year:      req.Year,
		GenreID:   req.GenreID,
		Detail:    req.Detail,
		Cast:      req.Cast,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if movie.Cast == nil {
		movie.Cast = []string{}
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return dto.ToMovieResponse(movie), nil
}

// Get retrieves a movie by ID
func (s *movieService) Get(ctx context.Context, id string) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return dto.ToMovieResponse(movie), nil
}

// List retrieves all movies
func (s *movieService) List(ctx context.Context) ([]*dto.MovieResponse, error) {
	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToMovieResponses(movies), nil
}

// Newest retrieves the most recent releases
func (s *movieService) Newest(ctx context.Context) ([]*dto.MovieResponse, error) {
	movies, err := s.movieRepo.ListNewest(ctx, derivedListSize)
	if err != nil {
		return nil, err
	}
	return dto.ToMovieResponses(movies), nil
}

// Top retrieves the highest rated movies
func (s *movieService) Top(ctx context.Context) ([]*dto.MovieResponse, error) {
	movies, err := s.movieRepo.ListTop(ctx, derivedListSize)
	if err != nil {
		return nil, err
	}
	return dto.ToMovieResponses(movies), nil
}

// Random retrieves a random sample
func (s *movieService) Random(ctx context.Context) ([]*dto.MovieResponse, error) {
	movies, err := s.movieRepo.ListRandom(ctx, derivedListSize)
	if err != nil {
		return nil, err
	}
	return dto.ToMovieResponses(movies), nil
}

// Browse applies the filter dimensions and returns the display list.
// A sort mode fetches only its curated view; otherwise the full set is
// narrowed in memory by catalog.Apply.
func (s *movieService) Browse(ctx context.Context, query *dto.BrowseQuery) ([]*dto.MovieResponse, error) {
	if !catalog.ValidSort(query.Sort) {
		return nil, ErrInvalidSort
	}

	state := catalog.FilterState{
		Search: query.Search,
		Genre:  query.Genre,
		Year:   query.Year,
		Sort:   query.Sort,
	}

	var (
		all []*domain.Movie
		pre catalog.Precomputed
		err error
	)
	switch state.Sort {
	case catalog.SortNew:
		pre.Newest, err = s.movieRepo.ListNewest(ctx, derivedListSize)
	case catalog.SortTop:
		pre.Top, err = s.movieRepo.ListTop(ctx, derivedListSize)
	case catalog.SortRandom:
		pre.Random, err = s.movieRepo.ListRandom(ctx, derivedListSize)
	default:
		all, err = s.movieRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return dto.ToMovieResponses(catalog.Apply(all, state, pre)), nil
}

// Update applies a partial update, admin only
func (s *movieService) Update(ctx context.Context, id string, req *dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if req.GenreID != "" && req.GenreID != movie.GenreID {
		if err := s.resolveGenre(ctx, req.GenreID); err != nil {
			return nil, err
		}
		movie.GenreID = req.GenreID
	}
	if req.Name != "" {
		movie.Name = req.Name
	}
	if req.Image != "" {
		movie.Image = req.Image
	}
	if req.Year != 0 {
		movie.Year = req.Year
	}
	if req.Detail != "" {
		movie.Detail = req.Detail
	}
	if req.Cast != nil {
		movie.Cast = req.Cast
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	movie.UpdatedAt = time.Now()

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return dto.ToMovieResponse(movie), nil
}

// Delete removes a movie, admin only
func (s *movieService) Delete(ctx context.Context, id string) error {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}
	return s.movieRepo.Delete(ctx, id)
}
