package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when trying to register an existing email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password too long")
)

// Sessions starts and ends cookie sessions.
type Sessions interface {
	Start(ctx context.Context, userID uint) (*http.Cookie, error)
	End(ctx context.Context, sessionID string) (*http.Cookie, error)
}

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*http.Cookie, *model.User, error)
	Logout(ctx context.Context, sessionID string) (*http.Cookie, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions Sessions
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions Sessions) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates a new user with hashed password. Email uniqueness is
// checked here, not by the database.
func (s *authService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Email: email,
		Name:  name,
	}
	if err := user.SetPassword(password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and starts a session for the user.
func (s *authService) Login(ctx context.Context, email, password string) (*http.Cookie, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("find user: %w", err)
		}
		// Spend the same bcrypt work as a real comparison.
		dummyUser().CheckPassword(password)
		return nil, nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, nil, ErrInvalidCredentials
	}

	cookie, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	return cookie, user, nil
}

// Logout ends the session and returns the cookie that clears it client side.
func (s *authService) Logout(ctx context.Context, sessionID string) (*http.Cookie, error) {
	cookie, err := s.sessions.End(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}
	return cookie, nil
}

var (
	dummyOnce sync.Once
	dummy     model.User
)

func dummyUser() *model.User {
	dummyOnce.Do(func() {
		_ = dummy.SetPassword("not-a-real-password")
	})
	return &dummy
}
