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

// GenreHandler handles genre HTTP requests
type GenreHandler struct {
	genreService service.GenreService
	log          *logger.Logger
}

// NewGenreHandler creates a new GenreHandler
func NewGenreHandler(genreService service.GenreService, log *logger.Logger) *GenreHandler {
	return &GenreHandler{
		genreService: genreService,
		log:          log,
	}
}

// List handles GET /genre
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genreService.List(c.Request.Context())
	if err != nil {
		h.log.Error("list genres failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, genres)
}

// Get handles GET /genre/:id
func (h *GenreHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	genre, err := h.genreService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
			return
		}
		h.log.Error("get genre failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, genre)
}

// Create handles POST /genre - admin only
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrGenreAlreadyExists) {
			response.BadRequest(c, "Genre already exists")
			return
		}
		h.log.Error("create genre failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, genre)
}

// Update handles PUT /genre/:id - admin only
func (h *GenreHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	var req dto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	genre, err := h.genreService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			response.NotFound(c, "Genre not found")
		case errors.Is(err, service.ErrGenreAlreadyExists):
			response.BadRequest(c, "Genre already exists")
		default:
			h.log.Error("update genre failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}
	response.Success(c, genre)
}

// Delete handles DELETE /genre/:id - admin only
func (h *GenreHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	if err := h.genreService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
			return
		}
		h.log.Error("delete genre failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, gin.H{"message": "Genre deleted"})
}
