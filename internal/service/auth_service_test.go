package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/dto"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users       map[string]*domain.User
	emailIndex  map[string]*domain.User
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *mockUserRepository) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}

// mockDenylist is an in-memory TokenDenylist
type mockDenylist struct {
	revoked map[string]bool
}

func newMockDenylist() *mockDenylist {
	return &mockDenylist{revoked: make(map[string]bool)}
}

func (d *mockDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *mockDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], nil
}

func testAuthService() (AuthService, *mockUserRepository, *mockDenylist) {
	userRepo := newMockUserRepository()
	denylist := newMockDenylist()
	config := &AuthServiceConfig{
		JWTSecret:  "test-secret-key",
		TokenTTL:   time.Hour,
		Issuer:     "test",
		BcryptCost: bcrypt.MinCost, // faster tests
	}
	return NewAuthService(userRepo, denylist, config), userRepo, denylist
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := testAuthService()

	t.Run("successful registration", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Username: "testuser",
			Email:    "test@example.com",
			Password: "Password1!",
		}

		resp, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if resp.Token == "" {
			t.Error("Register() Token is empty")
		}
		if resp.User.Email != req.Email {
			t.Errorf("Register() User.Email = %v, want %v", resp.User.Email, req.Email)
		}
		if resp.User.IsAdmin {
			t.Error("Register() User.IsAdmin = true, new accounts must not be admin")
		}
	})

	t.Run("duplicate email leaves record count unchanged", func(t *testing.T) {
		before, _ := userRepo.Count(context.Background())

		req := &dto.RegisterRequest{
			Username: "another",
			Email:    "test@example.com", // Same email as previous test
			Password: "Password2!",
		}

		_, err := svc.Register(context.Background(), req)
		if err != ErrUserAlreadyExists {
			t.Errorf("Register() error = %v, want %v", err, ErrUserAlreadyExists)
		}

		after, _ := userRepo.Count(context.Background())
		if after != before {
			t.Errorf("Register() stored record count = %d, want %d", after, before)
		}
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Username: "hashcheck",
			Email:    "hash@example.com",
			Password: "Password1!",
		}

		resp, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		body, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal response: %v", err)
		}
		stored := userRepo.emailIndex[req.Email]
		if strings.Contains(string(body), stored.PasswordHash) {
			t.Error("Register() response contains the password hash")
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, userRepo, _ := testAuthService()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	testUser := &domain.User{
		ID:           "test-user-id",
		Username:     "logintest",
		Email:        "login@example.com",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	userRepo.users[testUser.ID] = testUser
	userRepo.emailIndex[testUser.Email] = testUser

	t.Run("successful login", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "login@example.com",
			Password: "Password1!",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if resp.Token == "" {
			t.Error("Login() Token is empty")
		}
		if resp.User.ID != testUser.ID {
			t.Errorf("Login() User.ID = %v, want %v", resp.User.ID, testUser.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong",
		})
		if err != ErrInvalidCredentials {
			t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "Password1!",
		})
		if err != ErrInvalidCredentials {
			t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, _, _ := testAuthService()

	auth, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "validate",
		Email:    "validate@example.com",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(context.Background(), auth.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.UserID != auth.User.ID {
			t.Errorf("ValidateToken() UserID = %v, want %v", claims.UserID, auth.User.ID)
		}
		if claims.TokenID == "" {
			t.Error("ValidateToken() TokenID is empty")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-token")
		if err != ErrInvalidToken {
			t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "someone",
			"jti": "some-id",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, _ := forged.SignedString([]byte("other-secret"))

		_, err := svc.ValidateToken(context.Background(), signed)
		if err != ErrInvalidToken {
			t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": auth.User.ID,
			"jti": "expired-id",
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		signed, _ := expired.SignedString([]byte("test-secret-key"))

		_, err := svc.ValidateToken(context.Background(), signed)
		if err != ErrTokenExpired {
			t.Errorf("ValidateToken() error = %v, want %v", err, ErrTokenExpired)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, _ := testAuthService()

	auth, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "logout",
		Email:    "logout@example.com",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	claims, err := svc.ValidateToken(context.Background(), auth.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	// Replaying the pre-logout token must now be rejected
	_, err = svc.ValidateToken(context.Background(), auth.Token)
	if err != ErrTokenRevoked {
		t.Errorf("ValidateToken() after logout error = %v, want %v", err, ErrTokenRevoked)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _, _ := testAuthService()

	first, _ := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "first",
		Email:    "first@example.com",
		Password: "Password1!",
	})
	second, _ := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "second",
		Email:    "second@example.com",
		Password: "Password1!",
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		profile, err := svc.UpdateProfile(context.Background(), first.User.ID, &dto.UpdateProfileRequest{
			Username: "renamed",
		})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if profile.Username != "renamed" {
			t.Errorf("UpdateProfile() Username = %v, want renamed", profile.Username)
		}
		if profile.Email != "first@example.com" {
			t.Errorf("UpdateProfile() Email = %v, want first@example.com", profile.Email)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), first.User.ID, &dto.UpdateProfileRequest{
			Email: second.User.Email,
		})
		if err != ErrUserAlreadyExists {
			t.Errorf("UpdateProfile() error = %v, want %v", err, ErrUserAlreadyExists)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), "missing", &dto.UpdateProfileRequest{})
		if err != ErrUserNotFound {
			t.Errorf("UpdateProfile() error = %v, want %v", err, ErrUserNotFound)
		}
	})
}

func TestAuthService_Promote(t *testing.T) {
	svc, userRepo, _ := testAuthService()

	auth, _ := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "promotee",
		Email:    "promotee@example.com",
		Password: "Password1!",
	})

	profile, err := svc.Promote(context.Background(), auth.User.ID)
	if err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if !profile.IsAdmin {
		t.Error("Promote() IsAdmin = false, want true")
	}
	if !userRepo.users[auth.User.ID].IsAdmin {
		t.Error("Promote() stored record IsAdmin = false, want true")
	}

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Promote(context.Background(), "missing")
		if err != ErrUserNotFound {
			t.Errorf("Promote() error = %v, want %v", err, ErrUserNotFound)
		}
	})
}
