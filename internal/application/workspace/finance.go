package workspace

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
)

// GetFinance returns the project ledger, creating an empty one on first access
func (s *Service) GetFinance(ctx context.Context, ownerID, projectID uuid.UUID) (*FinanceResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	f, err := s.repos.Finances.GetOrCreate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("load finance: %w", err)
	}
	resp := toFinanceResponse(f)
	return &resp, nil
}

// UpdateFinance replaces the supplied ledger fields
func (s *Service) UpdateFinance(ctx context.Context, ownerID, projectID uuid.UUID, req UpdateFinanceRequest) (*FinanceResponse, error) {
	return s.mutateFinance(ctx, ownerID, projectID, func(f *project.Finance) error {
		return f.Apply(project.FinanceUpdate{
			TotalBudget:      req.TotalBudget,
			PaymentsReceived: req.PaymentsReceived,
			Expenses:         req.Expenses,
		}, s.clock.Now())
	})
}

// AddPayment appends a received payment
func (s *Service) AddPayment(ctx context.Context, ownerID, projectID uuid.UUID, req LedgerEntryRequest) (*FinanceResponse, error) {
	return s.mutateFinance(ctx, ownerID, projectID, func(f *project.Finance) error {
		return f.AddPayment(req.toDomain(), s.clock.Now())
	})
}

// AddExpense appends an expense
func (s *Service) AddExpense(ctx context.Context, ownerID, projectID uuid.UUID, req LedgerEntryRequest) (*FinanceResponse, error) {
	return s.mutateFinance(ctx, ownerID, projectID, func(f *project.Finance) error {
		return f.AddExpense(req.toDomain(), s.clock.Now())
	})
}

func (s *Service) mutateFinance(ctx context.Context, ownerID, projectID uuid.UUID, fn func(*project.Finance) error) (*FinanceResponse, error) {
	var f *project.Finance
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := ownedProject(ctx, repos.Projects(), ownerID, projectID)
		if err != nil {
			return err
		}
		if f, err = repos.Finances().GetOrCreate(ctx, p); err != nil {
			return fmt.Errorf("load finance: %w", err)
		}
		if err := fn(f); err != nil {
			return err
		}
		return repos.Finances().Save(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	resp := toFinanceResponse(f)
	return &resp, nil
}
