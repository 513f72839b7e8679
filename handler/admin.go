package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harikrish1993-phk/telvel/config"
	"github.com/harikrish1993-phk/telvel/model"
	"github.com/harikrish1993-phk/telvel/service"
)

// AdminHandler implements the back-office API. Every route behind it is
// already authenticated by the admin middleware.
type AdminHandler struct {
	store *service.Store
	cfg   *config.Config
}

func NewAdminHandler(store *service.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg}
}

// Dashboard returns the six aggregate counts, computed fresh on every call.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.store.Dashboard()
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": counts})
}

// ── Jobs ──

// ListJobs returns all jobs including drafts and closed ones.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.store.ListJobs()
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

type jobRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Experience  string   `json:"experience"`
	Salary      string   `json:"salary"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

// CreateJob creates a job. Title, slug, and description are mandatory; the
// slug must be globally unique.
func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title, slug, and description are required"})
		return
	}
	if req.Status != "" && !model.ValidJobStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid job status"})
		return
	}
	if req.Type != "" && !model.ValidJobType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid employment type"})
		return
	}

	job := &model.Job{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Description: req.Description,
		Skills:      req.Skills,
		Location:    req.Location,
		Type:        req.Type,
		Experience:  req.Experience,
		Salary:      req.Salary,
		Status:      req.Status,
		Featured:    req.Featured,
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if job.Location == "" {
		job.Location = "Europe"
	}
	if job.Type == "" {
		job.Type = model.TypeFullTime
	}
	if job.Status == "" {
		job.Status = model.JobActive
	}

	if err := h.store.CreateJob(job); err != nil {
		if errors.Is(err, service.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A job with this slug already exists"})
			return
		}
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	slog.Info("admin created job", "job_id", job.ID, "title", job.Title)
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

type jobUpdateRequest struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Location    *string   `json:"location"`
	Type        *string   `json:"type"`
	Experience  *string   `json:"experience"`
	Salary      *string   `json:"salary"`
	Status      *string   `json:"status"`
	Featured    *bool     `json:"featured"`
}

// UpdateJob applies a partial update; enum fields are re-validated when
// present.
func (h *AdminHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req jobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if req.Status != nil && !model.ValidJobStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid job status"})
		return
	}
	if req.Type != nil && !model.ValidJobType(*req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid employment type"})
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Skills != nil {
		updates["skills"] = *req.Skills
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nothing to update"})
		return
	}

	job, err := h.store.UpdateJob(id, updates)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}
	if errors.Is(err, service.ErrDuplicateSlug) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A job with this slug already exists"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	slog.Info("admin updated job", "job_id", job.ID, "title", job.Title)
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// DeleteJob removes a job permanently. Applications referencing it survive.
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.store.DeleteJob(id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	slog.Info("admin deleted job", "job_id", id, "title", job.Title)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job deleted"})
}

// ── Applications ──

// ListApplications filters by optional status and jobId query parameters.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidApplicationStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	var jobID uint
	if raw := c.Query("jobId"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid jobId"})
			return
		}
		jobID = uint(id64)
	}

	apps, err := h.store.ListApplications(status, jobID)
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	if apps == nil {
		apps = []model.Application{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplication changes exactly one field: the status. Any enum member
// may move to any other; no forward-only graph is enforced.
func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidApplicationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	app, err := h.store.UpdateApplicationStatus(id, req.Status)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	slog.Info("admin updated application status", "application_id", id, "status", req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

// DeleteApplication hard-deletes the record. The stored resume file is left
// in place.
func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	_, err := h.store.DeleteApplication(id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	slog.Info("admin deleted application", "application_id", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application deleted"})
}

// ── Contacts ──

// ListContacts filters by optional status. Contacts have no delete endpoint.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidContactStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	contacts, err := h.store.ListContacts(status)
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": contacts})
}

// UpdateContact changes the contact status only.
func (h *AdminHandler) UpdateContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidContactStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	contact, err := h.store.UpdateContactStatus(id, req.Status)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}
