package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/infrastructure/logger"
	"github.com/freelancehub/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrStorageUnavailable is returned by document operations when no object
// storage is configured
var ErrStorageUnavailable = shared.NewDomainError("STORAGE_UNAVAILABLE", "Document storage is not configured")

// UploadInput describes an uploaded file
type UploadInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// Download is an open document stream. The caller closes Body.
type Download struct {
	Document DocumentResponse
	Body     io.ReadCloser
}

// ListDocuments lists a project's documents, newest first
func (s *Service) ListDocuments(ctx context.Context, ownerID, projectID uuid.UUID) ([]DocumentResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	docs, err := s.repos.Documents.FindByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return mapSlice(docs, toDocumentResponse), nil
}

// UploadDocument stores the blob under a generated key, then records its
// metadata. A failed metadata write removes the blob again.
func (s *Service) UploadDocument(ctx context.Context, ownerID, projectID uuid.UUID, in UploadInput) (_ *DocumentResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "document.upload",
		"project_id", projectID, "size", in.Size, "content_type", in.ContentType)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	doc, err := project.NewDocument(p, in.OriginalName, in.ContentType, in.Size, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.PutObject(ctx, doc.StorageKey, in.Body, in.Size, in.ContentType); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := s.repos.Documents.Save(ctx, doc); err != nil {
		s.removeBlobs(ctx, []string{doc.StorageKey})
		return nil, fmt.Errorf("save document: %w", err)
	}

	logger.For(ctx, s.logger).Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("project_id", p.ID.String()),
		zap.Int64("size", doc.FileSize),
	)
	resp := toDocumentResponse(doc)
	return &resp, nil
}

// OpenDocument opens a document for download. A row whose blob is gone is
// reported as not found.
func (s *Service) OpenDocument(ctx context.Context, ownerID, documentID uuid.UUID) (*Download, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	doc, err := s.repos.Documents.FindByIDForOwner(ctx, ownerID, documentID)
	if err != nil {
		return nil, notFound(err, "Document")
	}
	body, err := s.storage.GetObject(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Document file")
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &Download{Document: toDocumentResponse(doc), Body: body}, nil
}

// DeleteDocument removes the blob, then the row
func (s *Service) DeleteDocument(ctx context.Context, ownerID, documentID uuid.UUID) error {
	doc, err := s.repos.Documents.FindByIDForOwner(ctx, ownerID, documentID)
	if err != nil {
		return notFound(err, "Document")
	}
	if s.storage != nil {
		if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
			return fmt.Errorf("delete document blob: %w", err)
		}
	}
	return s.repos.Documents.Delete(ctx, doc.ID)
}
