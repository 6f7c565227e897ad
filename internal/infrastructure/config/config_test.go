package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearFHEnv unsets every FH_ variable for the duration of the test
func clearFHEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FH_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearFHEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "freelancehub", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "freelancehub", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
		assert.Equal(t, "uploads", cfg.Storage.LocalDir)
		assert.Equal(t, int64(10<<20), cfg.HTTP.UploadMaxSize)
		assert.Equal(t, 24*time.Hour, cfg.HTTP.IdempotencyTTL)
		assert.False(t, cfg.Redis.Enabled)
	})

	t.Run("loads values from environment variables with FH prefix", func(t *testing.T) {
		clearFHEnv(t)
		t.Setenv("FH_APP_PORT", "9000")
		t.Setenv("FH_DATABASE_DRIVER", "sqlite")
		t.Setenv("FH_DATABASE_SQLITE_PATH", "/tmp/fh.db")
		t.Setenv("FH_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("FH_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("FH_REDIS_ENABLED", "true")
		t.Setenv("FH_STORAGE_BACKEND", "s3")
		t.Setenv("FH_STORAGE_BUCKET", "docs")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "/tmp/fh.db", cfg.Database.SQLitePath)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, "docs", cfg.Storage.Bucket)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearFHEnv(t)
		t.Setenv("FH_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("FH_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearFHEnv(t)
		t.Setenv("FH_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("s3 backend requires a bucket", func(t *testing.T) {
		clearFHEnv(t)
		t.Setenv("FH_STORAGE_BACKEND", "s3")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.bucket")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		clearFHEnv(t)
		t.Setenv("FH_APP_ENV", "production")
		t.Setenv("FH_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		t.Setenv("FH_DATABASE_PASSWORD", "secure-password")
		t.Setenv("FH_DATABASE_SSLMODE", "require")
		t.Setenv("FH_SWAGGER_ENABLED", "false")
	}

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "valid", env: nil},
		{name: "short secret", env: map[string]string{"FH_JWT_SECRET": "short"}, wantErr: "jwt.secret"},
		{name: "missing db password", env: map[string]string{"FH_DATABASE_PASSWORD": ""}, wantErr: "database.password"},
		{name: "ssl disabled", env: map[string]string{"FH_DATABASE_SSLMODE": "disable"}, wantErr: "sslmode"},
		{name: "wildcard cors", env: map[string]string{"FH_HTTP_CORS_ALLOW_ORIGINS": "*"}, wantErr: "cors_allow_origins"},
		{name: "open swagger", env: map[string]string{"FH_SWAGGER_ENABLED": "true"}, wantErr: "swagger endpoint"},
		{name: "protected swagger", env: map[string]string{"FH_SWAGGER_ENABLED": "true", "FH_SWAGGER_REQUIRE_AUTH": "true"}},
		{name: "s3 without credentials", env: map[string]string{"FH_STORAGE_BACKEND": "s3", "FH_STORAGE_BUCKET": "docs"}, wantErr: "storage credentials"},
		{name: "sqlite skips postgres checks", env: map[string]string{"FH_DATABASE_DRIVER": "sqlite", "FH_DATABASE_PASSWORD": "", "FH_DATABASE_SSLMODE": "disable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidProductionBase(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.IsProduction())
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "fh", SSLMode: "disable"}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "/fh")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "user", Password: "pass@word#123", DBName: "db", SSLMode: "disable"}
		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}
