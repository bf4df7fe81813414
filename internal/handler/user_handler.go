package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
	"github.com/abhi1440/RateMyMovieAPP/internal/middleware"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
	"github.com/abhi1440/RateMyMovieAPP/pkg/response"
)

// CookieConfig controls how the session cookie is written
type CookieConfig struct {
	Name   string
	MaxAge int // seconds, also the token TTL
	Secure bool
}

// UserHandler handles account and session HTTP requests
type UserHandler struct {
	authService service.AuthService
	cookie      CookieConfig
	log         *logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService service.AuthService, cookie CookieConfig, log *logger.Logger) *UserHandler {
	return &UserHandler{
		authService: authService,
		cookie:      cookie,
		log:         log,
	}
}

// setSessionCookie writes the HttpOnly session cookie
func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

// clearSessionCookie overwrites the session cookie with an already
// expired one
func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// Register handles POST /users - creates an account and logs it in
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	auth, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.BadRequest(c, "User already exists")
			return
		}
		h.log.Error("register failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, auth.Token)
	response.Created(c, auth)
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, auth.Token)
	response.Success(c, auth)
}

// Logout handles POST /users/logout - revokes the token and clears the
// cookie
func (h *UserHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		// Revocation failing is not fatal, the cookie still gets
		// cleared and the token expires naturally
		h.log.Warn("token revocation failed", zap.Error(err))
	}

	h.clearSessionCookie(c)
	response.Success(c, gin.H{"message": "Logged out"})
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.log.Error("get profile failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Success(c, profile)
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	profile, err := h.authService.UpdateProfile(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrUserAlreadyExists):
			response.BadRequest(c, "Email already in use")
		default:
			h.log.Error("update profile failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Success(c, profile)
}

// List handles GET /users - admin only
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Success(c, users)
}

// Promote handles PUT /users/:id/promote - admin only
func (h *UserHandler) Promote(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "ID is required")
		return
	}

	profile, err := h.authService.Promote(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.log.Error("promote failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Success(c, profile)
}
