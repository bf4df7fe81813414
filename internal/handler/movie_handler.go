package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
	"github.com/abhi1440/RateMyMovieAPP/pkg/response"
)

// MovieHandler handles catalogue HTTP requests
type MovieHandler struct {
	movieService service.MovieService
	log          *logger.Logger
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieService service.MovieService, log *logger.Logger) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
		log:          log,
	}
}

// List handles GET /movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		h.log.Error("list movies failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movies)
}

// Browse handles GET /movies/browse - filtered catalogue view
func (h *MovieHandler) Browse(c *gin.Context) {
	var query dto.BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if valid, msg := query.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movies, err := h.movieService.Browse(c.Request.Context(), &query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSort) {
			response.BadRequest(c, "Sort must be one of new, top, random")
			return
		}
		h.log.Error("browse movies failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movies)
}

// Newest handles GET /movies/new
func (h *MovieHandler) Newest(c *gin.Context) {
	movies, err := h.movieService.Newest(c.Request.Context())
	if err != nil {
		h.log.Error("newest movies failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movies)
}

// Top handles GET /movies/top
func (h *MovieHandler) Top(c *gin.Context) {
	movies, err := h.movieService.Top(c.Request.Context())
	if err != nil {
		h.log.Error("top movies failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movies)
}

// Random handles GET /movies/random
func (h *MovieHandler) Random(c *gin.Context) {
	movies, err := h.movieService.Random(c.Request.Context())
	if err != nil {
		h.log.Error("random movies failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movies)
}

// Get handles GET /movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			response.NotFound(c, "Movie not found")
			return
		}
		h.log.Error("get movie failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, movie)
}

// Create handles POST /movies - admin only
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			response.BadRequest(c, "Genre not found")
			return
		}
		h.log.Error("create movie failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, movie)
}

// Update handles PUT /movies/:id - admin only
func (h *MovieHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			response.NotFound(c, "Movie not found")
		case errors.Is(err, service.ErrGenreNotFound):
			response.BadRequest(c, "Genre not found")
		default:
			h.log.Error("update movie failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Success(c, movie)
}

// Delete handles DELETE /movies/:id - admin only
func (h *MovieHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			response.NotFound(c, "Movie not found")
			return
		}
		h.log.Error("delete movie failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, gin.H{"message": "Movie deleted"})
}
