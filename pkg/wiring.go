package pkg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/config"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	quizpg "github.com/SAP-F-2025/quiz-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/quiz-service/internal/repositories/sqlite"
	"github.com/SAP-F-2025/quiz-service/internal/services"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// NewQuizRepository opens the configured storage backend. The returned closer
// releases the underlying connection pool.
func NewQuizRepository(cfg *config.Config) (repositories.QuizRepository, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := InitDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to access database pool: %w", err)
		}
		return quizpg.NewQuizPostgreSQL(db), sqlDB, nil
	case config.StorageSQLite:
		db, err := InitSQLite(cfg)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewQuizSQLite(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// NewCache returns a Redis backed cache when REDIS_URL is set and a no-op cache otherwise.
func NewCache(cfg *config.Config, logger *slog.Logger) (cache.CacheService, io.Closer, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, caching disabled")
		return cache.NewNopCache(), closerFunc(func() error { return nil }), nil
	}

	client, err := NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCache(client, logger), client, nil
}

// NewAuthenticator builds the token verifier for the configured provider. The
// issuer is nil when tokens are minted by an external identity provider.
func NewAuthenticator(cfg *config.Config) (auth.Authenticator, auth.TokenIssuer, error) {
	switch cfg.AuthProvider {
	case config.AuthProviderCasdoor:
		authenticator, err := auth.NewCasdoorAuthenticator(cfg.Casdoor)
		if err != nil {
			return nil, nil, err
		}
		return authenticator, nil, nil
	case config.AuthProviderLocal:
		jwtAuth := auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.TokenTTL)
		return jwtAuth, jwtAuth, nil
	default:
		return nil, nil, fmt.Errorf("unsupported auth provider %q", cfg.AuthProvider)
	}
}

// AdminCredentials resolves the configured admin account, hashing the plain
// password when no precomputed hash is given.
func AdminCredentials(cfg *config.Config) (services.AdminCredentials, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if cfg.AdminPassword == "" {
			return services.AdminCredentials{}, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
		}
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return services.AdminCredentials{}, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}
	return services.AdminCredentials{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}, nil
}
