//go:build integration

package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dashboardapp "github.com/freelancehub/backend/internal/application/dashboard"
	profileapp "github.com/freelancehub/backend/internal/application/profile"
	workspaceapp "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/freelancehub/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, target, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProjectWorkspaceFlow(t *testing.T) {
	stack := newAPIStack(t)
	owner := testutil.NewTestUUID("workspace-owner")
	api := testutil.NewAPIClient(t, stack.Engine, owner)

	budget := decimal.NewFromInt(5000)
	proj := testutil.Decode[workspaceapp.ProjectResponse](t,
		api.Do(http.MethodPost, "/api/v1/projects", workspaceapp.CreateProjectRequest{
			Title:      "Mobile app",
			ClientName: "Acme",
			Budget:     &budget,
		}),
		http.StatusCreated)
	base := "/api/v1/projects/" + proj.ID.String()

	t.Run("finance ledger", func(t *testing.T) {
		testutil.Decode[workspaceapp.FinanceResponse](t,
			api.Do(http.MethodPost, base+"/finance/payments", workspaceapp.LedgerEntryRequest{Amount: decimal.NewFromInt(1500), Description: "deposit"}),
			http.StatusCreated)
		fin := testutil.Decode[workspaceapp.FinanceResponse](t,
			api.Do(http.MethodPost, base+"/finance/expenses", workspaceapp.LedgerEntryRequest{Amount: decimal.NewFromInt(200), Description: "fonts"}),
			http.StatusCreated)

		assert.True(t, fin.TotalReceived.Equal(decimal.NewFromInt(1500)))
		assert.True(t, fin.TotalExpenses.Equal(decimal.NewFromInt(200)))
		assert.True(t, fin.Balance.Equal(decimal.NewFromInt(1300)))
	})

	t.Run("notes update the project count", func(t *testing.T) {
		testutil.Decode[workspaceapp.NoteResponse](t,
			api.Do(http.MethodPost, base+"/notes", workspaceapp.NoteRequest{Content: "Kickoff on Monday"}),
			http.StatusCreated)

		got := testutil.Decode[workspaceapp.ProjectResponse](t, api.Do(http.MethodGet, base, nil), http.StatusOK)
		assert.Equal(t, 1, got.NotesCount)
	})

	t.Run("documents round trip through storage", func(t *testing.T) {
		req := uploadRequest(t, base+"/documents", "brief.txt", []byte("scope and timeline"))
		req.Header.Set("X-User-ID", owner.String())
		w := httptest.NewRecorder()
		stack.Engine.ServeHTTP(w, req)
		doc := testutil.Decode[workspaceapp.DocumentResponse](t, w, http.StatusCreated)
		assert.Equal(t, "brief.txt", doc.OriginalName)
		assert.EqualValues(t, len("scope and timeline"), doc.FileSize)

		dl := api.Do(http.MethodGet, "/api/v1/documents/"+doc.ID.String()+"/download", nil)
		require.Equal(t, http.StatusOK, dl.Code)
		assert.Equal(t, "scope and timeline", dl.Body.String())
		assert.Contains(t, dl.Header().Get("Content-Disposition"), `filename=brief.txt`)

		require.Equal(t, http.StatusNoContent, api.Do(http.MethodDelete, "/api/v1/documents/"+doc.ID.String(), nil).Code)
		docs := testutil.Decode[[]workspaceapp.DocumentResponse](t, api.Do(http.MethodGet, base+"/documents", nil), http.StatusOK)
		assert.Empty(t, docs)
	})

	t.Run("dashboard aggregates the owner's projects", func(t *testing.T) {
		stats := testutil.Decode[dashboardapp.StatsResponse](t, api.Do(http.MethodGet, "/api/v1/dashboard/stats", nil), http.StatusOK)
		assert.Equal(t, 1, stats.TotalProjects)
		assert.Equal(t, 1, stats.TotalClients)
		assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1500)))
		assert.True(t, stats.TotalCost.Equal(decimal.NewFromInt(200)))

		empty := testutil.Decode[dashboardapp.StatsResponse](t,
			api.As(testutil.NewTestUUID("nobody")).Do(http.MethodGet, "/api/v1/dashboard/stats", nil), http.StatusOK)
		assert.Zero(t, empty.TotalProjects)
	})

	t.Run("profile activity lists recent projects", func(t *testing.T) {
		activity := testutil.Decode[[]profile.Activity](t,
			api.Do(http.MethodGet, "/api/v1/profile/"+owner.String()+"/stats/activity", nil), http.StatusOK)
		require.Len(t, activity, 1)
		assert.Equal(t, "Mobile app", activity[0].Target)
	})

	t.Run("deleting a project cascades", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, api.Do(http.MethodDelete, base, nil).Code)
		testutil.AssertError(t, api.Do(http.MethodGet, base+"/finance", nil), http.StatusNotFound, "ERR_NOT_FOUND")
	})
}

func TestProfileOwnership(t *testing.T) {
	stack := newAPIStack(t)
	owner := testutil.NewTestUUID("profile-owner")
	api := testutil.NewAPIClient(t, stack.Engine, owner)
	path := "/api/v1/profile/" + owner.String()

	created := testutil.Decode[profileapp.ProfileResponse](t, api.Do(http.MethodGet, path, nil), http.StatusOK)
	assert.Equal(t, owner, created.ID)

	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := testutil.Decode[profileapp.ProfileResponse](t,
		api.Do(http.MethodPost, path+"/experience", profileapp.ExperienceRequest{Title: "Designer", Company: "Studio", StartDate: &start}),
		http.StatusCreated)
	require.Len(t, updated.Experience, 1)

	intruder := api.As(testutil.NewTestUUID("profile-intruder"))
	testutil.AssertError(t, intruder.Do(http.MethodPut, path, profileapp.UpdateProfileRequest{Bio: "hijacked"}),
		http.StatusForbidden, "ERR_FORBIDDEN")
}
