package storage

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the object storage selected by cfg.Backend
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (workspace.ObjectStorage, error) {
	switch cfg.Backend {
	case "", config.StorageBackendLocal:
		return NewLocalObjectStorage(cfg.LocalDir)
	case config.StorageBackendS3:
		s, err := NewS3ObjectStorage(cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("Document storage ready", zap.String("backend", cfg.Backend), zap.String("bucket", s.GetBucket()))
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
