package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalObjectStorage_RoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalObjectStorage(root)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.PutObject(ctx, "projects/p1/brief.txt", strings.NewReader("scope"), 5, "text/plain"))
	_, err = os.Stat(filepath.Join(root, "projects", "p1", "brief.txt"))
	require.NoError(t, err)

	rc, err := s.GetObject(ctx, "projects/p1/brief.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "scope", string(data))

	// overwrite
	require.NoError(t, s.PutObject(ctx, "projects/p1/brief.txt", strings.NewReader("v2"), 2, "text/plain"))
	rc, err = s.GetObject(ctx, "projects/p1/brief.txt")
	require.NoError(t, err)
	data, _ = io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "v2", string(data))

	require.NoError(t, s.DeleteObject(ctx, "projects/p1/brief.txt"))
	_, err = s.GetObject(ctx, "projects/p1/brief.txt")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, s.DeleteObject(ctx, "projects/p1/brief.txt"))
}

func TestLocalObjectStorage_KeysStayInsideRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")
	s, err := NewLocalObjectStorage(root)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.PutObject(ctx, "../../escape.txt", strings.NewReader("x"), 1, "text/plain"))
	_, err = os.Stat(filepath.Join(root, "escape.txt"))
	assert.NoError(t, err, "traversal is clamped to the root")

	assert.Error(t, s.PutObject(ctx, "", strings.NewReader("x"), 1, "text/plain"))
	assert.Error(t, s.PutObject(ctx, "/", strings.NewReader("x"), 1, "text/plain"))
}

func TestNewLocalObjectStorage_RequiresDir(t *testing.T) {
	_, err := NewLocalObjectStorage("")
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, &config.StorageConfig{Backend: config.StorageBackendLocal, LocalDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalObjectStorage{}, s)

	_, err = New(ctx, &config.StorageConfig{Backend: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
