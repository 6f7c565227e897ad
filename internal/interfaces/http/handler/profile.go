package handler

import (
	profileapp "github.com/freelancehub/backend/internal/application/profile"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler serves user profiles and their statistics. Profiles are
// readable by anyone; mutations require the acting user to own the profile.
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// actorAndProfile resolves the acting user and the :id profile
func (h *ProfileHandler) actorAndProfile(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	profileID, ok := h.uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	actorID, ok := h.requireUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return actorID, profileID, true
}

// GetProfile godoc
// @ID           getProfile
// @Summary      Get a profile
// @Description  Returns the profile, creating an empty one on first access
// @Tags         profile
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /profile/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// UpdateProfile godoc
// @ID           updateProfile
// @Summary      Replace a profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Param        request body profileapp.UpdateProfileRequest true "Profile"
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	var req profileapp.UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.UpdateProfile(c.Request.Context(), actorID, profileID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// AddExperience godoc
// @ID           addProfileExperience
// @Summary      Add an experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Param        request body profileapp.ExperienceRequest true "Experience"
// @Success      201 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/experience [post]
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	var req profileapp.ExperienceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.AddExperience(c.Request.Context(), actorID, profileID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// UpdateExperience godoc
// @ID           updateProfileExperience
// @Summary      Update an experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path string true "User ID" format(uuid)
// @Param        expId path string true "Experience ID" format(uuid)
// @Param        request body profileapp.ExperienceRequest true "Experience"
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/experience/{expId} [put]
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	expID, ok := h.uuidParam(c, "expId")
	if !ok {
		return
	}
	var req profileapp.ExperienceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.UpdateExperience(c.Request.Context(), actorID, profileID, expID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeleteExperience godoc
// @ID           deleteProfileExperience
// @Summary      Delete an experience entry
// @Tags         profile
// @Produce      json
// @Param        id    path string true "User ID" format(uuid)
// @Param        expId path string true "Experience ID" format(uuid)
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/experience/{expId} [delete]
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	expID, ok := h.uuidParam(c, "expId")
	if !ok {
		return
	}
	p, err := h.service.DeleteExperience(c.Request.Context(), actorID, profileID, expID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// AddEducation godoc
// @ID           addProfileEducation
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Param        request body profileapp.EducationRequest true "Education"
// @Success      201 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/education [post]
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	var req profileapp.EducationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.AddEducation(c.Request.Context(), actorID, profileID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// UpdateEducation godoc
// @ID           updateProfileEducation
// @Summary      Update an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path string true "User ID" format(uuid)
// @Param        eduId path string true "Education ID" format(uuid)
// @Param        request body profileapp.EducationRequest true "Education"
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/education/{eduId} [put]
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	eduID, ok := h.uuidParam(c, "eduId")
	if !ok {
		return
	}
	var req profileapp.EducationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.UpdateEducation(c.Request.Context(), actorID, profileID, eduID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeleteEducation godoc
// @ID           deleteProfileEducation
// @Summary      Delete an education entry
// @Tags         profile
// @Produce      json
// @Param        id    path string true "User ID" format(uuid)
// @Param        eduId path string true "Education ID" format(uuid)
// @Success      200 {object} APIResponse[profileapp.ProfileResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /profile/{id}/education/{eduId} [delete]
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	actorID, profileID, ok := h.actorAndProfile(c)
	if !ok {
		return
	}
	eduID, ok := h.uuidParam(c, "eduId")
	if !ok {
		return
	}
	p, err := h.service.DeleteEducation(c.Request.Context(), actorID, profileID, eduID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// SkillsChart godoc
// @ID           getProfileSkillsChart
// @Summary      Skill levels
// @Tags         profile
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[[]profile.SkillPoint]
// @Failure      400 {object} ErrorResponse
// @Router       /profile/{id}/stats/skills [get]
func (h *ProfileHandler) SkillsChart(c *gin.Context) {
	profileID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	points, err := h.service.SkillsChart(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, points)
}

// Activity godoc
// @ID           getProfileActivity
// @Summary      Recent activity
// @Description  The five most recently updated projects
// @Tags         profile
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[[]profile.Activity]
// @Failure      400 {object} ErrorResponse
// @Router       /profile/{id}/stats/activity [get]
func (h *ProfileHandler) Activity(c *gin.Context) {
	profileID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	items, err := h.service.Activity(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Earnings godoc
// @ID           getProfileEarnings
// @Summary      Earnings over the last six months
// @Tags         profile
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[profile.EarningsChart]
// @Failure      400 {object} ErrorResponse
// @Router       /profile/{id}/stats/earnings [get]
func (h *ProfileHandler) Earnings(c *gin.Context) {
	profileID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	chart, err := h.service.Earnings(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, chart)
}
