package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ListNotes lists a project's notes, newest first
func (s *Service) ListNotes(ctx context.Context, ownerID, projectID uuid.UUID) ([]NoteResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	notes, err := s.repos.Notes.FindByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return mapSlice(notes, toNoteResponse), nil
}

// CreateNote adds a note and bumps the project's note count
func (s *Service) CreateNote(ctx context.Context, ownerID, projectID uuid.UUID, req NoteRequest) (*NoteResponse, error) {
	var note *project.Note
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := ownedProject(ctx, repos.Projects(), ownerID, projectID)
		if err != nil {
			return err
		}
		if note, err = project.NewNote(p, req.Content); err != nil {
			return err
		}
		if err := repos.Notes().Save(ctx, note); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		p.IncrementNotes()
		return repos.Projects().Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// UpdateNote replaces a note's content
func (s *Service) UpdateNote(ctx context.Context, ownerID, noteID uuid.UUID, req NoteRequest) (*NoteResponse, error) {
	note, err := s.repos.Notes.FindByIDForOwner(ctx, ownerID, noteID)
	if err != nil {
		return nil, notFound(err, "Note")
	}
	if err := note.SetContent(req.Content); err != nil {
		return nil, err
	}
	if err := s.repos.Notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	resp := toNoteResponse(note)
	return &resp, nil
}

// DeleteNote removes a note and lowers the project's note count
func (s *Service) DeleteNote(ctx context.Context, ownerID, noteID uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		note, err := repos.Notes().FindByIDForOwner(ctx, ownerID, noteID)
		if err != nil {
			return notFound(err, "Note")
		}
		if err := repos.Notes().Delete(ctx, note.ID); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		p, err := repos.Projects().FindByIDForOwner(ctx, ownerID, note.ProjectID)
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load project: %w", err)
		}
		p.DecrementNotes()
		return repos.Projects().Save(ctx, p)
	})
}
