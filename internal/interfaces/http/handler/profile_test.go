package handler

import (
	"context"
	"net/http"
	"testing"

	profileapp "github.com/freelancehub/backend/internal/application/profile"
	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileService struct {
	mock.Mock
	ProfileService
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*profileapp.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileapp.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) AddExperience(ctx context.Context, actorID, userID uuid.UUID, req profileapp.ExperienceRequest) (*profileapp.ProfileResponse, error) {
	args := m.Called(ctx, actorID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileapp.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) DeleteEducation(ctx context.Context, actorID, userID, eduID uuid.UUID) (*profileapp.ProfileResponse, error) {
	args := m.Called(ctx, actorID, userID, eduID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileapp.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) Earnings(ctx context.Context, userID uuid.UUID) (profile.EarningsChart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profile.EarningsChart), args.Error(1)
}

func newProfileRouter(h *ProfileHandler) *gin.Engine {
	r := gin.New()
	r.GET("/profile/:id", h.GetProfile)
	r.POST("/profile/:id/experience", h.AddExperience)
	r.DELETE("/profile/:id/education/:eduId", h.DeleteEducation)
	r.GET("/profile/:id/stats/earnings", h.Earnings)
	return r
}

func TestProfileHandler_GetProfileIsPublic(t *testing.T) {
	profileID := uuid.New()
	svc := new(MockProfileService)
	svc.On("GetProfile", mock.Anything, profileID).
		Return(&profileapp.ProfileResponse{ID: profileID, Username: "dana"}, nil)

	w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodGet, "/profile/"+profileID.String(), nil, uuid.Nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"dana"`)
}

func TestProfileHandler_AddExperience(t *testing.T) {
	profileID := uuid.New()
	req := profileapp.ExperienceRequest{Title: "Backend contractor", Company: "Acme"}

	t.Run("owner", func(t *testing.T) {
		svc := new(MockProfileService)
		svc.On("AddExperience", mock.Anything, profileID, profileID, req).
			Return(&profileapp.ProfileResponse{ID: profileID}, nil)

		w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodPost,
			"/profile/"+profileID.String()+"/experience", req, profileID)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("another user", func(t *testing.T) {
		actor := uuid.New()
		svc := new(MockProfileService)
		svc.On("AddExperience", mock.Anything, actor, profileID, req).Return(nil, shared.ErrForbidden)

		w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodPost,
			"/profile/"+profileID.String()+"/experience", req, actor)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrCodeForbidden, decodeResponse(t, w).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := new(MockProfileService)

		w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodPost,
			"/profile/"+profileID.String()+"/experience", req, uuid.Nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileHandler_DeleteEducation(t *testing.T) {
	profileID, eduID := uuid.New(), uuid.New()

	t.Run("unknown entry", func(t *testing.T) {
		svc := new(MockProfileService)
		svc.On("DeleteEducation", mock.Anything, profileID, profileID, eduID).
			Return(nil, shared.NewNotFoundError("education entry"))

		w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodDelete,
			"/profile/"+profileID.String()+"/education/"+eduID.String(), nil, profileID)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed entry id", func(t *testing.T) {
		svc := new(MockProfileService)

		w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodDelete,
			"/profile/"+profileID.String()+"/education/abc", nil, profileID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "eduId", decodeResponse(t, w).Error.Details[0].Field)
	})
}

func TestProfileHandler_Earnings(t *testing.T) {
	profileID := uuid.New()
	svc := new(MockProfileService)
	svc.On("Earnings", mock.Anything, profileID).Return(profile.EarningsChart{
		Labels: []string{"Aug", "Sep"},
		Data:   []float64{1500, 2200.5},
	}, nil)

	w := performRequest(newProfileRouter(NewProfileHandler(svc)), http.MethodGet,
		"/profile/"+profileID.String()+"/stats/earnings", nil, uuid.Nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"labels":["Aug","Sep"],"data":[1500,2200.5]}}`, w.Body.String())
}
