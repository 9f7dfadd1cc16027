package service

import (
	"errors"
	"log/slog"

	"github.com/avolkov/accountd/internal/database/models"
	"github.com/avolkov/accountd/internal/database/repository"
)

const (
	// DefaultListLimit is used when a caller does not ask for a page size.
	DefaultListLimit = 10
	// MaxListLimit caps a single listing page.
	MaxListLimit = 100
)

// UserService defines the interface for user administration logic
type UserService interface {
	GetUser(userID uint) (*models.User, error)
	ListUsers(offset, limit int) ([]models.User, error)
	UpdateStatus(userID uint, status models.UserStatus) (*models.User, error)
	DeleteUser(userID uint) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetUser(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) ListUsers(offset, limit int) ([]models.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.userRepo.List(offset, limit)
}

func (s *userService) UpdateStatus(userID uint, status models.UserStatus) (*models.User, error) {
	s.logger.Info("🔄 [UserService] Updating user status", "user_id", userID, "status", status)

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.UpdateStatus(userID, status)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "user_id", userID)
			return nil, err
		}
		s.logger.Error("❌ [UserService] Failed to update status", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User status updated", "user_id", userID, "status", status)
	return user, nil
}

func (s *userService) DeleteUser(userID uint) (*models.User, error) {
	s.logger.Info("🗑️ [UserService] Deleting user", "user_id", userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "user_id", userID)
		}
		return nil, err
	}

	if err := s.userRepo.Delete(userID); err != nil {
		s.logger.Error("❌ [UserService] Failed to delete user", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User deleted", "user_id", userID)
	return user, nil
}

// Service errors
var (
	ErrInvalidStatus = errors.New("invalid user status")
)
