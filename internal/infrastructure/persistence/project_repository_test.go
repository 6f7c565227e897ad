package persistence

import (
	"context"
	"testing"
	"time"

	appworkspace "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, ctx context.Context, repo *GormProjectRepository, ownerID uuid.UUID, title string) *project.Project {
	t.Helper()
	p, err := project.NewProject(ownerID, title, "Acme")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))
	return p
}

func TestGormProjectRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormProjectRepository(db)
	ownerID := uuid.New()

	first := seedProject(t, ctx, repo, ownerID, "Shop")
	second := seedProject(t, ctx, repo, ownerID, "Blog")
	seedProject(t, ctx, repo, uuid.New(), "Someone else's")

	t.Run("lists only the owner's projects", func(t *testing.T) {
		list, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("recently updated honours the limit", func(t *testing.T) {
		first.UpdatedAt = time.Now().Add(time.Hour)
		require.NoError(t, repo.Save(ctx, first))

		list, err := repo.FindRecentlyUpdated(ctx, ownerID, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("foreign owner cannot read", func(t *testing.T) {
		_, err := repo.FindByIDForOwner(ctx, uuid.New(), second.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete reports missing rows", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))
		assert.ErrorIs(t, repo.Delete(ctx, second.ID), shared.ErrNotFound)
	})
}

func TestGormFinanceRepository_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	p := seedProject(t, ctx, NewGormProjectRepository(db), uuid.New(), "Shop")
	repo := NewGormFinanceRepository(db)

	created, err := repo.GetOrCreate(ctx, p)
	require.NoError(t, err)
	require.NoError(t, created.AddPayment(project.LedgerEntry{Amount: decimal.NewFromInt(500), Description: "Deposit"}, time.Now()))
	require.NoError(t, repo.Save(ctx, created))

	again, err := repo.GetOrCreate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	require.Len(t, again.PaymentsReceived, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(again.TotalReceived()))

	ledgers, err := repo.FindByProjects(ctx, []uuid.UUID{p.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, ledgers, 1)

	empty, err := repo.FindByProjects(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGormWorkspaceTransactionScope_Cascade(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repos := NewWorkspaceRepositories(db)
	scope := NewGormWorkspaceTransactionScope(db)
	ownerID := uuid.New()

	p, err := project.NewProject(ownerID, "Shop", "Acme")
	require.NoError(t, err)
	require.NoError(t, repos.Projects.Save(ctx, p))

	note, err := project.NewNote(p, "Kickoff call on Monday")
	require.NoError(t, err)
	require.NoError(t, repos.Notes.Save(ctx, note))
	_, err = repos.Details.GetOrCreate(ctx, p)
	require.NoError(t, err)

	err = scope.Execute(ctx, func(tx appworkspace.TransactionalRepositories) error {
		if err := tx.Notes().DeleteByProject(ctx, p.ID); err != nil {
			return err
		}
		if err := tx.Details().DeleteByProject(ctx, p.ID); err != nil {
			return err
		}
		return tx.Projects().Delete(ctx, p.ID)
	})
	require.NoError(t, err)

	notes, err := repos.Notes.FindByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
	_, err = repos.Projects.FindByIDForOwner(ctx, ownerID, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormProfileRepository(db)
	userID := uuid.New()

	_, err := repo.FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	p := newTestProfile(userID)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Go", got.Skills[0].Name)
	assert.True(t, decimal.NewFromInt(90).Equal(got.HourlyRate))
}

func newTestProfile(userID uuid.UUID) *profile.Profile {
	p := profile.NewProfile(userID)
	p.Username = "ada"
	p.HourlyRate = decimal.NewFromInt(90)
	p.Skills = []profile.Skill{{Name: "Go", Level: profile.LevelExpert}}
	return p
}
