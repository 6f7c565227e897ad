package project

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one payment or expense line
type LedgerEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// Finance is the one-per-project ledger
type Finance struct {
	shared.OwnedAggregateRoot
	ProjectID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	TotalBudget      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentsReceived []LedgerEntry   `gorm:"type:jsonb;serializer:json"`
	Expenses         []LedgerEntry   `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (Finance) TableName() string {
	return "project_finances"
}

// NewFinance creates an empty ledger for p
func NewFinance(p *Project) *Finance {
	return &Finance{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		TotalBudget:        decimal.Zero,
		PaymentsReceived:   make([]LedgerEntry, 0),
		Expenses:           make([]LedgerEntry, 0),
	}
}

// TotalReceived sums payments received
func (f *Finance) TotalReceived() decimal.Decimal {
	return sumEntries(f.PaymentsReceived)
}

// TotalExpenses sums expenses
func (f *Finance) TotalExpenses() decimal.Decimal {
	return sumEntries(f.Expenses)
}

// Balance is received minus expenses
func (f *Finance) Balance() decimal.Decimal {
	return f.TotalReceived().Sub(f.TotalExpenses())
}

// RemainingBudget is the budget minus expenses
func (f *Finance) RemainingBudget() decimal.Decimal {
	return f.TotalBudget.Sub(f.TotalExpenses())
}

// FinanceUpdate carries the optional fields of a ledger update
type FinanceUpdate struct {
	TotalBudget      *decimal.Decimal
	PaymentsReceived *[]LedgerEntry
	Expenses         *[]LedgerEntry
}

// Apply replaces the provided fields. Entries without a date are dated now.
func (f *Finance) Apply(u FinanceUpdate, now time.Time) error {
	if u.TotalBudget != nil {
		if u.TotalBudget.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", "Total budget cannot be negative")
		}
		f.TotalBudget = *u.TotalBudget
	}
	if u.PaymentsReceived != nil {
		entries, err := normalizeEntries(*u.PaymentsReceived, now)
		if err != nil {
			return err
		}
		f.PaymentsReceived = entries
	}
	if u.Expenses != nil {
		entries, err := normalizeEntries(*u.Expenses, now)
		if err != nil {
			return err
		}
		f.Expenses = entries
	}
	f.Touch()
	f.IncrementVersion()
	return nil
}

// AddPayment appends a received payment
func (f *Finance) AddPayment(e LedgerEntry, now time.Time) error {
	entries, err := normalizeEntries([]LedgerEntry{e}, now)
	if err != nil {
		return err
	}
	f.PaymentsReceived = append(append([]LedgerEntry(nil), f.PaymentsReceived...), entries...)
	f.Touch()
	f.IncrementVersion()
	return nil
}

// AddExpense appends an expense
func (f *Finance) AddExpense(e LedgerEntry, now time.Time) error {
	entries, err := normalizeEntries([]LedgerEntry{e}, now)
	if err != nil {
		return err
	}
	f.Expenses = append(append([]LedgerEntry(nil), f.Expenses...), entries...)
	f.Touch()
	f.IncrementVersion()
	return nil
}

func normalizeEntries(in []LedgerEntry, now time.Time) ([]LedgerEntry, error) {
	out := make([]LedgerEntry, 0, len(in))
	for _, e := range in {
		if e.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
		}
		if e.Date.IsZero() {
			e.Date = now
		}
		out = append(out, e)
	}
	return out, nil
}

func sumEntries(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
