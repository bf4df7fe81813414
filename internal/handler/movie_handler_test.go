package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
)

// MockMovieService is a mock implementation of MovieService
type MockMovieService struct {
	movies map[string]*dto.MovieResponse
}

func NewMockMovieService() *MockMovieService {
	return &MockMovieService{movies: make(map[string]*dto.MovieResponse)}
}

func (m *MockMovieService) Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	if req.GenreID == "missing" {
		return nil, service.ErrGenreNotFound
	}
	movie := &dto.MovieResponse{
		ID:     "movie-1",
		Name:   req.Name,
		Year:   req.Year,
		Genre:  req.GenreID,
		Rating: req.Rating,
		Cast:   []string{},
	}
	m.movies[movie.ID] = movie
	return movie, nil
}

func (m *MockMovieService) Get(ctx context.Context, id string) (*dto.MovieResponse, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, service.ErrMovieNotFound
	}
	return movie, nil
}

func (m *MockMovieService) List(ctx context.Context) ([]*dto.MovieResponse, error) {
	movies := make([]*dto.MovieResponse, 0, len(m.movies))
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (m *MockMovieService) Newest(ctx context.Context) ([]*dto.MovieResponse, error) {
	return m.List(ctx)
}

func (m *MockMovieService) Top(ctx context.Context) ([]*dto.MovieResponse, error) {
	return m.List(ctx)
}

func (m *MockMovieService) Random(ctx context.Context) ([]*dto.MovieResponse, error) {
	return m.List(ctx)
}

func (m *MockMovieService) Browse(ctx context.Context, query *dto.BrowseQuery) ([]*dto.MovieResponse, error) {
	return m.List(ctx)
}

func (m *MockMovieService) Update(ctx context.Context, id string, req *dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, service.ErrMovieNotFound
	}
	if req.Name != "" {
		movie.Name = req.Name
	}
	return movie, nil
}

func (m *MockMovieService) Delete(ctx context.Context, id string) error {
	if _, ok := m.movies[id]; !ok {
		return service.ErrMovieNotFound
	}
	delete(m.movies, id)
	return nil
}

func setupMovieRouter(movieService service.MovieService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewMovieHandler(movieService, logger.Get())

	router := gin.New()
	router.GET("/api/v1/movies", h.List)
	router.GET("/api/v1/movies/browse", h.Browse)
	router.GET("/api/v1/movies/:id", h.Get)
	router.POST("/api/v1/movies", h.Create)
	router.PUT("/api/v1/movies/:id", h.Update)
	router.DELETE("/api/v1/movies/:id", h.Delete)
	return router
}

func TestMovieHandler_Create(t *testing.T) {
	router := setupMovieRouter(NewMockMovieService())

	t.Run("success", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreateMovieRequest{Name: "Alien", Year: 1979, Rating: 8.5})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("missing name", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{"year": 1979})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown genre", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreateMovieRequest{Name: "Orphan", Year: 2000, GenreID: "missing"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestMovieHandler_Get(t *testing.T) {
	mock := NewMockMovieService()
	_, _ = mock.Create(context.Background(), &dto.CreateMovieRequest{Name: "Alien", Year: 1979})
	router := setupMovieRouter(mock)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/movie-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestMovieHandler_Browse(t *testing.T) {
	router := setupMovieRouter(NewMockMovieService())

	t.Run("valid query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/browse?search=alien&year=1979", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/browse?sort=rating", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestMovieHandler_Delete(t *testing.T) {
	mock := NewMockMovieService()
	_, _ = mock.Create(context.Background(), &dto.CreateMovieRequest{Name: "Alien", Year: 1979})
	router := setupMovieRouter(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/movies/movie-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/movies/movie-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
