package handler

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	workspaceapp "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/freelancehub/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultUploadMaxBytes bounds a single document upload
const DefaultUploadMaxBytes int64 = 10 << 20

// ProjectHandler serves projects and their workspace records: milestones,
// finance, notes, details, progress, documents and tech links
type ProjectHandler struct {
	BaseHandler
	service        WorkspaceService
	uploadMaxBytes int64
}

// NewProjectHandler creates a new ProjectHandler. uploadMaxBytes <= 0 uses
// DefaultUploadMaxBytes.
func NewProjectHandler(service WorkspaceService, uploadMaxBytes int64) *ProjectHandler {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = DefaultUploadMaxBytes
	}
	return &ProjectHandler{service: service, uploadMaxBytes: uploadMaxBytes}
}

// ownerAndID resolves the acting user and the :id path parameter
func (h *ProjectHandler) ownerAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := h.requireUser(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

// ListProjects godoc
// @ID           listProjects
// @Summary      List projects
// @Description  Projects of the acting user, newest first
// @Tags         projects
// @Produce      json
// @Param        X-User-ID header string false "Acting user (development fallback)"
// @Success      200 {object} APIResponse[[]workspaceapp.ProjectResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	projects, err := h.service.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}

// GetProject godoc
// @ID           getProject
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[workspaceapp.ProjectResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	p, err := h.service.GetProject(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// CreateProject godoc
// @ID           createProject
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Makes the request safe to retry"
// @Param        request body workspaceapp.CreateProjectRequest true "Project"
// @Success      201 {object} APIResponse[workspaceapp.ProjectResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req workspaceapp.CreateProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// UpdateProject godoc
// @ID           updateProject
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.UpdateProjectRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.ProjectResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.UpdateProject(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeleteProject godoc
// @ID           deleteProject
// @Summary      Delete a project
// @Description  Removes the project together with its workspace records and document files
// @Tags         projects
// @Param        id path string true "Project ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteProject(c.Request.Context(), userID, projectID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMilestones godoc
// @ID           listProjectMilestones
// @Summary      List milestones
// @Tags         milestones
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]workspaceapp.MilestoneResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/milestones [get]
func (h *ProjectHandler) ListMilestones(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	items, err := h.service.ListMilestones(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// CreateMilestone godoc
// @ID           createProjectMilestone
// @Summary      Create a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.CreateMilestoneRequest true "Milestone"
// @Success      201 {object} APIResponse[workspaceapp.MilestoneResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/milestones [post]
func (h *ProjectHandler) CreateMilestone(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.CreateMilestoneRequest
	if !h.bindJSON(c, &req) {
		return
	}
	m, err := h.service.CreateMilestone(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, m)
}

// UpdateMilestone godoc
// @ID           updateMilestone
// @Summary      Update a milestone
// @Description  Entering completed stamps completedAt; leaving it clears the stamp
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id path string true "Milestone ID" format(uuid)
// @Param        request body workspaceapp.UpdateMilestoneRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.MilestoneResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /milestones/{id} [put]
func (h *ProjectHandler) UpdateMilestone(c *gin.Context) {
	userID, milestoneID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateMilestoneRequest
	if !h.bindJSON(c, &req) {
		return
	}
	m, err := h.service.UpdateMilestone(c.Request.Context(), userID, milestoneID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// DeleteMilestone godoc
// @ID           deleteMilestone
// @Summary      Delete a milestone
// @Tags         milestones
// @Param        id path string true "Milestone ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /milestones/{id} [delete]
func (h *ProjectHandler) DeleteMilestone(c *gin.Context) {
	userID, milestoneID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMilestone(c.Request.Context(), userID, milestoneID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetFinance godoc
// @ID           getProjectFinance
// @Summary      Get project finance
// @Description  Returns the finance record, creating an empty one on first access
// @Tags         finance
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[workspaceapp.FinanceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/finance [get]
func (h *ProjectHandler) GetFinance(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	f, err := h.service.GetFinance(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, f)
}

// UpdateFinance godoc
// @ID           updateProjectFinance
// @Summary      Update project finance
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.UpdateFinanceRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.FinanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/finance [put]
func (h *ProjectHandler) UpdateFinance(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateFinanceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	f, err := h.service.UpdateFinance(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, f)
}

// AddPayment godoc
// @ID           addProjectPayment
// @Summary      Record a payment
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.LedgerEntryRequest true "Payment"
// @Success      201 {object} APIResponse[workspaceapp.FinanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/finance/payments [post]
func (h *ProjectHandler) AddPayment(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.LedgerEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	f, err := h.service.AddPayment(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, f)
}

// AddExpense godoc
// @ID           addProjectExpense
// @Summary      Record an expense
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.LedgerEntryRequest true "Expense"
// @Success      201 {object} APIResponse[workspaceapp.FinanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/finance/expenses [post]
func (h *ProjectHandler) AddExpense(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.LedgerEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	f, err := h.service.AddExpense(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, f)
}

// ListNotes godoc
// @ID           listProjectNotes
// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]workspaceapp.NoteResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/notes [get]
func (h *ProjectHandler) ListNotes(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	notes, err := h.service.ListNotes(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}

// CreateNote godoc
// @ID           createProjectNote
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.NoteRequest true "Note"
// @Success      201 {object} APIResponse[workspaceapp.NoteResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/notes [post]
func (h *ProjectHandler) CreateNote(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.NoteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.service.CreateNote(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, n)
}

// UpdateNote godoc
// @ID           updateNote
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id path string true "Note ID" format(uuid)
// @Param        request body workspaceapp.NoteRequest true "Note"
// @Success      200 {object} APIResponse[workspaceapp.NoteResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notes/{id} [put]
func (h *ProjectHandler) UpdateNote(c *gin.Context) {
	userID, noteID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.NoteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	n, err := h.service.UpdateNote(c.Request.Context(), userID, noteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// DeleteNote godoc
// @ID           deleteNote
// @Summary      Delete a note
// @Tags         notes
// @Param        id path string true "Note ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /notes/{id} [delete]
func (h *ProjectHandler) DeleteNote(c *gin.Context) {
	userID, noteID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetDetails godoc
// @ID           getProjectDetails
// @Summary      Get project details
// @Tags         details
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[workspaceapp.DetailsResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/details [get]
func (h *ProjectHandler) GetDetails(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	d, err := h.service.GetDetails(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// UpdateDetails godoc
// @ID           updateProjectDetails
// @Summary      Update project details
// @Tags         details
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.UpdateDetailsRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.DetailsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/details [put]
func (h *ProjectHandler) UpdateDetails(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateDetailsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	d, err := h.service.UpdateDetails(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// GetProgress godoc
// @ID           getProjectProgress
// @Summary      Get project progress
// @Tags         progress
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[workspaceapp.ProgressResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/progress [get]
func (h *ProjectHandler) GetProgress(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	p, err := h.service.GetProgress(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// UpdateProgress godoc
// @ID           updateProjectProgress
// @Summary      Update project progress
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.UpdateProgressRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.ProgressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/progress [put]
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateProgressRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.service.UpdateProgress(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// ListDocuments godoc
// @ID           listProjectDocuments
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]workspaceapp.DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/documents [get]
func (h *ProjectHandler) ListDocuments(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	docs, err := h.service.ListDocuments(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, docs)
}

// UploadDocument godoc
// @ID           uploadProjectDocument
// @Summary      Upload a document
// @Description  Multipart upload of a single file (field "file"), at most 10 MiB
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        file formData file true "Document"
// @Success      201 {object} APIResponse[workspaceapp.DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/documents [post]
func (h *ProjectHandler) UploadDocument(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		if middleware.IsPayloadTooLarge(err) {
			middleware.AbortPayloadTooLarge(c)
			return
		}
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			h.ValidationError(c, []dto.ValidationDetail{{Field: "file", Message: "This field is required"}})
			return
		}
		h.ValidationError(c, middleware.ValidationDetails(err))
		return
	}
	if header.Size > h.uploadMaxBytes {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooLarge,
			"File exceeds the "+strconv.FormatInt(h.uploadMaxBytes>>20, 10)+" MiB limit")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.service.UploadDocument(c.Request.Context(), userID, projectID, workspaceapp.UploadInput{
		OriginalName: header.Filename,
		ContentType:  contentType,
		Size:         header.Size,
		Body:         file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

// DownloadDocument godoc
// @ID           downloadDocument
// @Summary      Download a document
// @Description  Streams the file with its original name in Content-Disposition
// @Tags         documents
// @Produce      octet-stream
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{id}/download [get]
func (h *ProjectHandler) DownloadDocument(c *gin.Context) {
	userID, documentID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	dl, err := h.service.OpenDocument(c.Request.Context(), userID, documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer dl.Body.Close()

	contentType := dl.Document.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": dl.Document.OriginalName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.DataFromReader(http.StatusOK, dl.Document.FileSize, contentType, dl.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}

// DeleteDocument godoc
// @ID           deleteDocument
// @Summary      Delete a document
// @Tags         documents
// @Param        id path string true "Document ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *ProjectHandler) DeleteDocument(c *gin.Context) {
	userID, documentID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDocument(c.Request.Context(), userID, documentID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListTechLinks godoc
// @ID           listProjectTechLinks
// @Summary      List tech links
// @Tags         tech-links
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]workspaceapp.TechLinkResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/tech-links [get]
func (h *ProjectHandler) ListTechLinks(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	links, err := h.service.ListTechLinks(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, links)
}

// CreateTechLink godoc
// @ID           createProjectTechLink
// @Summary      Create a tech link
// @Tags         tech-links
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body workspaceapp.CreateTechLinkRequest true "Link"
// @Success      201 {object} APIResponse[workspaceapp.TechLinkResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /projects/{id}/tech-links [post]
func (h *ProjectHandler) CreateTechLink(c *gin.Context) {
	userID, projectID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.CreateTechLinkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	link, err := h.service.CreateTechLink(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, link)
}

// UpdateTechLink godoc
// @ID           updateTechLink
// @Summary      Update a tech link
// @Tags         tech-links
// @Accept       json
// @Produce      json
// @Param        id path string true "Tech link ID" format(uuid)
// @Param        request body workspaceapp.UpdateTechLinkRequest true "Changes"
// @Success      200 {object} APIResponse[workspaceapp.TechLinkResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tech-links/{id} [put]
func (h *ProjectHandler) UpdateTechLink(c *gin.Context) {
	userID, linkID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	var req workspaceapp.UpdateTechLinkRequest
	if !h.bindJSON(c, &req) {
		return
	}
	link, err := h.service.UpdateTechLink(c.Request.Context(), userID, linkID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// DeleteTechLink godoc
// @ID           deleteTechLink
// @Summary      Delete a tech link
// @Tags         tech-links
// @Param        id path string true "Tech link ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /tech-links/{id} [delete]
func (h *ProjectHandler) DeleteTechLink(c *gin.Context) {
	userID, linkID, ok := h.ownerAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTechLink(c.Request.Context(), userID, linkID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
