package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avolkov/accountd/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	return db
}

func newUser(email string) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "digest",
		Status:       models.UserStatusActive,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("test@example.com")
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(newUser("test@example.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)

		// The failed write must not leave a second record behind.
		users, err := repo.List(0, 10)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("find@example.com")))

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "found", email: "find@example.com"},
		{name: "not found", email: "nonexistent@example.com", wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.FindByEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("byid@example.com")
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid@example.com", found.Email)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("status@example.com")
	require.NoError(t, repo.Create(user))

	updated, err := repo.UpdateStatus(user.ID, models.UserStatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBlocked, updated.Status)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBlocked, found.Status)

	_, err = repo.UpdateStatus(9999, models.UserStatusBlocked)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("login@example.com")
	require.NoError(t, repo.Create(user))
	require.Nil(t, user.LastLogin)

	stamp := time.Now()
	require.NoError(t, repo.UpdateLastLogin(user.ID, stamp))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.WithinDuration(t, stamp, *found.LastLogin, time.Second)

	assert.ErrorIs(t, repo.UpdateLastLogin(9999, stamp), ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newUser("delete@example.com")
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(user.ID), ErrUserNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, repo.Create(newUser(email)))
	}

	t.Run("full page in id order", func(t *testing.T) {
		users, err := repo.List(0, 10)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "a@example.com", users[0].Email)
		assert.Equal(t, "c@example.com", users[2].Email)
	})

	t.Run("offset and limit", func(t *testing.T) {
		users, err := repo.List(1, 1)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "b@example.com", users[0].Email)
	})

	t.Run("offset past the end", func(t *testing.T) {
		users, err := repo.List(10, 10)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
