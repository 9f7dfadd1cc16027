package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkov/accountd/internal/auth"
	"github.com/avolkov/accountd/internal/database/models"
	"github.com/avolkov/accountd/internal/database/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(email, name, password string) (*models.User, error)
	Login(email, password string) (*TokenResult, error)
	Authenticate(tokenString string) (*models.User, error)
}

// TokenResult represents an issued bearer token
type TokenResult struct {
	AccessToken string
	TokenType   string
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance. tokenTTL is
// the lifetime of tokens issued at login.
func NewAuthService(
	userRepo repository.UserRepository,
	tokens *auth.TokenService,
	tokenTTL time.Duration,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *authService) Register(email, name, password string) (*models.User, error) {
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: auth.HashPassword(password),
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.logger.Warn("⚠️ [AuthService] Email registered concurrently", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(email, password string) (*TokenResult, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so callers cannot probe for
			// registered emails.
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to issue token", "error", err)
		return nil, err
	}

	// Best effort: a login is still a login if the stamp fails.
	if err := s.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		s.logger.Warn("⚠️ [AuthService] Failed to update last_login", "user_id", user.ID, "error", err)
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return &TokenResult{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) Authenticate(tokenString string) (*models.User, error) {
	subject, err := s.tokens.Decode(tokenString)
	if err != nil {
		s.logger.Warn("⚠️ [AuthService] Token rejected", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := s.userRepo.FindByEmail(subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] Token subject no longer exists", "subject", subject)
			return nil, ErrUnauthenticated
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	return user, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)
