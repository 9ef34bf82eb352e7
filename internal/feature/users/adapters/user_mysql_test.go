package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedUser(t *testing.T, repo *userMySQL, email string) *entity.User {
	t.Helper()

	u := &entity.User{
		Name:     "Test",
		Email:    email,
		Password: "hashed_password",
		Phone:    "741852963",
	}
	require.NoError(t, repo.Create(context.Background(), u), "failed to seed user")
	return u
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "hashed_password",
			Phone:    "1234567890",
			Role:     "user",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		seedUser(t, repo, "duplicate@example.com")

		// Create second user with the same email
		user2 := &entity.User{
			Name:     "Other",
			Email:    "duplicate@example.com",
			Password: "password2",
			Phone:    "222",
		}
		err := repo.Create(context.Background(), user2)

		assert.Error(t, err, "should return duplicate error")

		// Exactly one record persists
		var count int64
		db.Model(&entity.User{}).Where("email = ?", "duplicate@example.com").Count(&count)
		assert.Equal(t, int64(1), count, "duplicate must not create a second record")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seeded := seedUser(t, repo, "test@example.com")

		found, err := repo.FindByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
		assert.Equal(t, "hashed_password", found.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seeded := seedUser(t, repo, "test@example.com")

		found, err := repo.FindByID(context.Background(), seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, seeded.Email, found.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindAll(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		users, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("all records in id order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seedUser(t, repo, "a@example.com")
		seedUser(t, repo, "b@example.com")

		users, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "a@example.com", users[0].Email)
		assert.Equal(t, "b@example.com", users[1].Email)
	})
}

func TestUserMySQL_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	seeded := seedUser(t, repo, "test@example.com")

	seeded.Phone = "852741963"
	err := repo.Update(context.Background(), seeded)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "852741963", found.Phone)
	assert.Equal(t, "test@example.com", found.Email, "untouched field changed")
}

func TestUserMySQL_Delete(t *testing.T) {
	t.Run("delete then find returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)
		seeded := seedUser(t, repo, "test@example.com")

		err := repo.Delete(context.Background(), seeded.ID)
		require.NoError(t, err)

		// ハードデリートなので同じIDの取得は必ず失敗する
		_, err = repo.FindByID(context.Background(), seeded.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
