package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/freelancehub/backend/internal/infrastructure/auth"
	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:                "test-secret-that-is-long-enough-for-hs256",
			AccessTokenExpiration: time.Hour,
			Issuer:                "fhctl-test",
		},
	}
	cfg.Database.Password = "db-pass"
	prev := loadConfig
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = prev })
	return cfg
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		tokenUserID, tokenUsername, tokenEmail, tokenJSON = "", "", "", false
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTokenCommand(t *testing.T) {
	cfg := stubConfig(t)
	userID := "6f1c2a4e-3b1d-4c55-9a7e-0d2b8f9e1a11"

	t.Run("plain token validates", func(t *testing.T) {
		out := execute(t, "token", "--user", userID)
		claims, err := auth.NewJWTService(cfg.JWT).ValidateAccessToken(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("json output", func(t *testing.T) {
		out := execute(t, "token", "--user", userID, "--json")
		var got tokenOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, userID, got.UserID)
		assert.NotEmpty(t, got.Token)
		assert.True(t, got.ExpiresAt.After(time.Now()))
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		rootCmd.SetArgs([]string{"token", "--user", "nope"})
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --user")
		tokenUserID = ""
	})
}

func TestConfigShowMasksSecrets(t *testing.T) {
	stubConfig(t)

	out := execute(t, "config", "show")

	assert.NotContains(t, out, "db-pass")
	assert.NotContains(t, out, "test-secret-that-is-long-enough-for-hs256")
	assert.Contains(t, out, redacted)
}

func TestRoutesCommand(t *testing.T) {
	out := execute(t, "routes")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 63)
	assert.Contains(t, lines[0], "METHOD")
	assert.Contains(t, out, "/api/v1/kanban/cards/:id/move")
	assert.Contains(t, out, "/api/v1/profile/:id/stats/earnings")
}
