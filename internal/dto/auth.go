package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
)

// emailRegex is a simplified RFC 5322 check, enough to catch typos
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest represents a registration request.
// The admin flag is deliberately absent: accounts are always created
// non-admin and elevated through the promote endpoint.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// Validate checks the fields beyond what binding tags cover
func (r *RegisterRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Username) == "" {
		return false, "Username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		return false, "Email is required"
	}
	if r.Password == "" {
		return false, "Password is required"
	}
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	if len(r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	if len(r.Password) > 72 {
		return false, "Password must not exceed 72 characters"
	}
	return true, ""
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial profile update.
// Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks only the fields that are present
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	if r.Password != "" && len(r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	if r.Password != "" && len(r.Password) > 72 {
		return false, "Password must not exceed 72 characters"
	}
	return true, ""
}

// UserResponse is the public profile shape; it never carries the hash
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToUserResponse converts a User to its public profile
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// AuthResponse is returned by register and login; the token also
// travels in the HttpOnly cookie, the body copy exists for non-browser
// clients
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
