package telemetry_test

import (
	"context"
	"testing"

	"github.com/freelancehub/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   uint
	Name string
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, telemetry.RegisterDBTracing(db, telemetry.DBTracingConfig{}, zap.NewNop()))
	assert.Nil(t, db.Callback().Query().Get("fh_trace:after_query"))
}

func TestRegisterDBTracing_AnnotatesQuerySpans(t *testing.T) {
	rec := withSpanRecorder(t)
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))

	err := telemetry.RegisterDBTracing(db, telemetry.DBTracingConfig{
		Enabled:  true,
		DBSystem: "sqlite",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, db.Callback().Query().Get("fh_trace:after_query"))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "a"}).Error)

	var rows []tracedRow
	require.NoError(t, db.WithContext(ctx).Find(&rows).Error)
	require.Len(t, rows, 1)

	var tables []string
	for _, s := range rec.Ended() {
		for _, kv := range s.Attributes() {
			if kv.Key == "db.sql.table" {
				tables = append(tables, kv.Value.AsString())
			}
		}
	}
	assert.Contains(t, tables, "traced_rows")
}
