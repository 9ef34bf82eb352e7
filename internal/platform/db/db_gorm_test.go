package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/platform/config"
)

func TestOpenDB_SQLite(t *testing.T) {
	cfg := config.App{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "users.db"),
	}

	db, err := OpenDB(cfg)
	require.NoError(t, err)

	// マイグレーション済みなのでそのまま書き込める
	u := &entity.User{Name: "Test", Email: "test@example.com", Password: "hash", Phone: "741852963"}
	require.NoError(t, db.Create(u).Error)
	assert.NotZero(t, u.ID)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB(config.App{DBDriver: "oracle"})
	assert.Error(t, err)
}
