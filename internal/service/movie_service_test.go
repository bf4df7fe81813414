package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
)

// mockMovieRepository is an in-memory MovieRepository
type mockMovieRepository struct {
	movies map[string]*domain.Movie
}

func newMockMovieRepository() *mockMovieRepository {
	return &mockMovieRepository{movies: make(map[string]*domain.Movie)}
}

func (r *mockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	r.movies[movie.ID] = movie
	return nil
}

func (r *mockMovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	return r.movies[id], nil
}

func (r *mockMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	movies := make([]*domain.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		movies = append(movies, movie)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (r *mockMovieRepository) ListNewest(ctx context.Context, n int) ([]*domain.Movie, error) {
	movies, _ := r.List(ctx)
	sort.Slice(movies, func(i, j int) bool { return movies[i].Year > movies[j].Year })
	if len(movies) > n {
		movies = movies[:n]
	}
	return movies, nil
}

func (r *mockMovieRepository) ListTop(ctx context.Context, n int) ([]*domain.Movie, error) {
	movies, _ := r.List(ctx)
	sort.Slice(movies, func(i, j int) bool { return movies[i].Rating > movies[j].Rating })
	if len(movies) > n {
		movies = movies[:n]
	}
	return movies, nil
}

func (r *mockMovieRepository) ListRandom(ctx context.Context, n int) ([]*domain.Movie, error) {
	movies, _ := r.List(ctx)
	if len(movies) > n {
		movies = movies[:n]
	}
	return movies, nil
}

func (r *mockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	r.movies[movie.ID] = movie
	return nil
}

func (r *mockMovieRepository) Delete(ctx context.Context, id string) error {
	delete(r.movies, id)
	return nil
}

func (r *mockMovieRepository) DeleteAll(ctx context.Context) error {
	r.movies = make(map[string]*domain.Movie)
	return nil
}

// mockGenreRepository is an in-memory GenreRepository
type mockGenreRepository struct {
	genres map[string]*domain.Genre
}

func newMockGenreRepository() *mockGenreRepository {
	return &mockGenreRepository{genres: make(map[string]*domain.Genre)}
}

func (r *mockGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	r.genres[genre.ID] = genre
	return nil
}

func (r *mockGenreRepository) GetByID(ctx context.Context, id string) (*domain.Genre, error) {
	return r.genres[id], nil
}

func (r *mockGenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	for _, genre := range r.genres {
		if genre.Name == name {
			return genre, nil
		}
	}
	return nil, nil
}

func (r *mockGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	genres := make([]*domain.Genre, 0, len(r.genres))
	for _, genre := range r.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	return genres, nil
}

func (r *mockGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	r.genres[genre.ID] = genre
	return nil
}

func (r *mockGenreRepository) Delete(ctx context.Context, id string) error {
	delete(r.genres, id)
	return nil
}

func (r *mockGenreRepository) DeleteAll(ctx context.Context) error {
	r.genres = make(map[string]*domain.Genre)
	return nil
}

func seedCatalogue(movieRepo *mockMovieRepository, genreRepo *mockGenreRepository) {
	genreRepo.genres["scifi"] = &domain.Genre{ID: "scifi", Name: "Science Fiction", CreatedAt: time.Now()}
	genreRepo.genres["crime"] = &domain.Genre{ID: "crime", Name: "Crime", CreatedAt: time.Now()}

	movieRepo.movies["1"] = &domain.Movie{ID: "1", Name: "The Matrix", Year: 1999, GenreID: "scifi", Rating: 8.7}
	movieRepo.movies["2"] = &domain.Movie{ID: "2", Name: "Heat", Year: 1995, GenreID: "crime", Rating: 8.3}
	movieRepo.movies["3"] = &domain.Movie{ID: "3", Name: "Blade Runner", Year: 1982, GenreID: "scifi", Rating: 8.1}
}

func TestMovieService_Create(t *testing.T) {
	movieRepo := newMockMovieRepository()
	genreRepo := newMockGenreRepository()
	seedCatalogue(movieRepo, genreRepo)
	svc := NewMovieService(movieRepo, genreRepo)

	t.Run("success", func(t *testing.T) {
		movie, err := svc.Create(context.Background(), &dto.CreateMovieRequest{
			Name:    "Alien",
			Year:    1979,
			GenreID: "scifi",
			Rating:  8.5,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, movie.ID)
		assert.Equal(t, "Alien", movie.Name)
		assert.NotNil(t, movie.Cast)
	})

	t.Run("unknown genre", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &dto.CreateMovieRequest{
			Name:    "Orphan",
			Year:    2000,
			GenreID: "missing",
		})
		assert.ErrorIs(t, err, ErrGenreNotFound)
	})

	t.Run("no genre is allowed", func(t *testing.T) {
		movie, err := svc.Create(context.Background(), &dto.CreateMovieRequest{
			Name: "Uncategorized",
			Year: 2001,
		})
		assert.NoError(t, err)
		assert.Empty(t, movie.Genre)
	})
}

func TestMovieService_DerivedLists(t *testing.T) {
	movieRepo := newMockMovieRepository()
	genreRepo := newMockGenreRepository()
	seedCatalogue(movieRepo, genreRepo)
	svc := NewMovieService(movieRepo, genreRepo)

	newest, err := svc.Newest(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "The Matrix", newest[0].Name)

	top, err := svc.Top(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "The Matrix", top[0].Name)
	assert.Equal(t, "Heat", top[1].Name)

	random, err := svc.Random(context.Background())
	assert.NoError(t, err)
	assert.Len(t, random, 3)
}

func TestMovieService_Browse(t *testing.T) {
	movieRepo := newMockMovieRepository()
	genreRepo := newMockGenreRepository()
	seedCatalogue(movieRepo, genreRepo)
	svc := NewMovieService(movieRepo, genreRepo)

	t.Run("search narrows the list", func(t *testing.T) {
		movies, err := svc.Browse(context.Background(), &dto.BrowseQuery{Search: "matrix"})
		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, "The Matrix", movies[0].Name)
	})

	t.Run("genre and year conjoin", func(t *testing.T) {
		movies, err := svc.Browse(context.Background(), &dto.BrowseQuery{Genre: "scifi", Year: 1982})
		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, "Blade Runner", movies[0].Name)
	})

	t.Run("sort overrides the other dimensions", func(t *testing.T) {
		movies, err := svc.Browse(context.Background(), &dto.BrowseQuery{
			Search: "matrix",
			Genre:  "crime",
			Sort:   "top",
		})
		assert.NoError(t, err)
		assert.Len(t, movies, 3)
		assert.Equal(t, "The Matrix", movies[0].Name)
	})

	t.Run("unknown sort mode", func(t *testing.T) {
		_, err := svc.Browse(context.Background(), &dto.BrowseQuery{Sort: "rating"})
		assert.ErrorIs(t, err, ErrInvalidSort)
	})
}

func TestMovieService_Update(t *testing.T) {
	movieRepo := newMockMovieRepository()
	genreRepo := newMockGenreRepository()
	seedCatalogue(movieRepo, genreRepo)
	svc := NewMovieService(movieRepo, genreRepo)

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		rating := 9.0
		movie, err := svc.Update(context.Background(), "1", &dto.UpdateMovieRequest{Rating: &rating})
		assert.NoError(t, err)
		assert.Equal(t, 9.0, movie.Rating)
		assert.Equal(t, "The Matrix", movie.Name)
		assert.Equal(t, 1999, movie.Year)
	})

	t.Run("zero rating is applied", func(t *testing.T) {
		rating := 0.0
		movie, err := svc.Update(context.Background(), "2", &dto.UpdateMovieRequest{Rating: &rating})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, movie.Rating)
	})

	t.Run("unknown movie", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &dto.UpdateMovieRequest{})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("unknown genre", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "1", &dto.UpdateMovieRequest{GenreID: "missing"})
		assert.ErrorIs(t, err, ErrGenreNotFound)
	})
}

func TestMovieService_Delete(t *testing.T) {
	movieRepo := newMockMovieRepository()
	genreRepo := newMockGenreRepository()
	seedCatalogue(movieRepo, genreRepo)
	svc := NewMovieService(movieRepo, genreRepo)

	assert.NoError(t, svc.Delete(context.Background(), "1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), ErrMovieNotFound)
}
