package pkg

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCredentials(t *testing.T) {
	t.Run("hashes plain password", func(t *testing.T) {
		creds, err := AdminCredentials(&config.Config{AdminUsername: "admin", AdminPassword: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "admin", creds.Username)
		assert.True(t, auth.CheckPassword(creds.PasswordHash, "s3cret"))
	})

	t.Run("prefers precomputed hash", func(t *testing.T) {
		creds, err := AdminCredentials(&config.Config{AdminUsername: "admin", AdminPassword: "ignored", AdminPasswordHash: "$2a$12$hash"})
		require.NoError(t, err)
		assert.Equal(t, "$2a$12$hash", creds.PasswordHash)
	})

	t.Run("requires a password", func(t *testing.T) {
		_, err := AdminCredentials(&config.Config{AdminUsername: "admin"})
		assert.Error(t, err)
	})
}

func TestNewAuthenticator(t *testing.T) {
	authenticator, issuer, err := NewAuthenticator(&config.Config{
		AuthProvider: config.AuthProviderLocal,
		JWTSecret:    "secret",
		TokenTTL:     time.Hour,
	})
	require.NoError(t, err)
	require.NotNil(t, issuer)

	token, err := issuer.IssueToken("admin", true)
	require.NoError(t, err)
	identity, err := authenticator.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)

	_, _, err = NewAuthenticator(&config.Config{AuthProvider: config.AuthProviderCasdoor})
	assert.Error(t, err)

	_, _, err = NewAuthenticator(&config.Config{AuthProvider: "ldap"})
	assert.Error(t, err)
}

func TestNewCacheWithoutRedis(t *testing.T) {
	c, closer, err := NewCache(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	var dest map[string]any
	assert.ErrorIs(t, c.Get(context.Background(), "k", &dest), cache.ErrCacheMiss)
}

func TestNewQuizRepositorySQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "quiz.db") + "?_pragma=foreign_keys(1)"
	repo, closer, err := NewQuizRepository(&config.Config{StorageDriver: config.StorageSQLite, SQLitePath: dsn})
	require.NoError(t, err)
	defer closer.Close()

	assert.NoError(t, repo.Ping(context.Background()))
}
