package project

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxDocumentSize is the upload limit for a single document
const MaxDocumentSize int64 = 10 << 20

// Document is metadata of an uploaded project file. The bytes live in
// object storage under StorageKey.
type Document struct {
	shared.OwnedAggregateRoot
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName     string    `gorm:"type:varchar(255);not null"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	FileType     string    `gorm:"type:varchar(100)"`
	FileSize     int64     `gorm:"not null"`
	StorageKey   string    `gorm:"type:varchar(512);not null"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "project_documents"
}

// NewDocument creates document metadata with a generated file name
func NewDocument(p *Project, originalName, fileType string, size int64, now time.Time) (*Document, error) {
	originalName = filepath.Base(strings.TrimSpace(originalName))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		return nil, shared.NewDomainError("INVALID_FILE", "File name is required")
	}
	if size <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "File is empty")
	}
	if size > MaxDocumentSize {
		return nil, shared.NewDomainError("PAYLOAD_TOO_LARGE", "File exceeds the 10 MiB limit")
	}

	name := GenerateFileName(originalName, now)
	return &Document{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		FileName:           name,
		OriginalName:       originalName,
		FileType:           fileType,
		FileSize:           size,
		StorageKey:         "documents/" + p.ID.String() + "/" + name,
	}, nil
}

// GenerateFileName returns "<unix-millis>-<random><ext>"
func GenerateFileName(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Int64N(1_000_000_000), strings.ToLower(filepath.Ext(originalName)))
}
