package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harikrish1993-phk/telvel/config"
	"github.com/harikrish1993-phk/telvel/model"
	"github.com/harikrish1993-phk/telvel/pkg/logger"
	"github.com/harikrish1993-phk/telvel/service"
)

// resumeField is the fixed multipart field name for the uploaded resume.
const resumeField = "resume"

// multipartSlack is the extra request-body allowance beyond the resume size
// cap for the text fields and multipart framing. Files slightly over the cap
// still reach CheckResumeFile and its exact message; grossly oversized bodies
// are cut off mid-stream instead of being buffered whole.
const multipartSlack = 1 << 20

// PublicHandler serves the unauthenticated site API: job listing, the two
// submission flows, and display data.
type PublicHandler struct {
	store   *service.Store
	storage service.ResumeStorage
	mailer  *service.Mailer
	cfg     *config.Config
}

func NewPublicHandler(store *service.Store, storage service.ResumeStorage, mailer *service.Mailer, cfg *config.Config) *PublicHandler {
	return &PublicHandler{store: store, storage: storage, mailer: mailer, cfg: cfg}
}

// CompanyInfo returns the static display block for the public site.
func (h *PublicHandler) CompanyInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cfg.Company})
}

// ListJobs returns active jobs, featured first, then newest.
func (h *PublicHandler) ListJobs(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	jobs, err := h.store.ListActiveJobs(featuredOnly)
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs, "total": len(jobs)})
}

// GetJob returns a single active job by slug.
func (h *PublicHandler) GetJob(c *gin.Context) {
	job, err := h.store.GetActiveJobBySlug(c.Param("slug"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// SubmitApplication is the application intake: file intake runs first so a
// bad upload fails with its own message before field validation; validation
// errors come back as a full list; the record is persisted before any
// notification is attempted.
func (h *PublicHandler) SubmitApplication(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes()+multipartSlack)

	var in model.ApplicationInput
	if err := c.ShouldBind(&in); err != nil {
		// The multipart reader does not always wrap the limit error, so
		// match on the message as well.
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("File too large — max %dMB", h.cfg.Uploads.MaxSizeMB),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	var (
		storedName string
		resumePath string
		resumeName string
	)
	file, header, err := c.Request.FormFile(resumeField)
	if err == nil {
		defer file.Close()

		if err := service.CheckResumeFile(header.Filename, header.Size, h.cfg.MaxUploadBytes()); err != nil {
			var ue *service.UploadError
			if errors.As(err, &ue) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ue.Message})
				return
			}
			internalError(c, h.cfg.IsProduction(), err)
			return
		}

		storedName = service.GenerateResumeName(header.Filename)
		resumePath, err = h.storage.Save(ctx, storedName, file, header.Size)
		if err != nil {
			logger.Error(ctx, "resume storage failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to store uploaded file"})
			return
		}
		resumeName = header.Filename
	}

	norm, fieldErrs := model.ValidateApplication(in, resumePath != "")
	if len(fieldErrs) > 0 {
		if storedName != "" {
			// Best effort: don't leave an orphan behind a rejected submission.
			if err := h.storage.Remove(ctx, storedName); err != nil {
				logger.Warn(ctx, "failed to remove rejected resume", "name", storedName, "error", err)
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrs})
		return
	}

	// The job reference is optional and weak: an unknown or malformed id
	// still produces a valid general application.
	var jobID *uint
	jobTitle := model.GeneralApplication
	if norm.JobID != "" {
		if id64, err := strconv.ParseUint(norm.JobID, 10, 32); err == nil {
			if job, err := h.store.GetJobByID(uint(id64)); err == nil {
				id := job.ID
				jobID = &id
				jobTitle = job.Title
			}
		}
	}

	app := &model.Application{
		FullName:    norm.FullName,
		Email:       norm.Email,
		Phone:       norm.Phone,
		CoverLetter: norm.CoverLetter,
		ResumePath:  resumePath,
		ResumeName:  resumeName,
		JobID:       jobID,
		JobTitle:    jobTitle,
		Source:      "website",
		Status:      model.AppNew,
		IPAddress:   c.ClientIP(),
	}
	if err := h.store.CreateApplication(app); err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	logger.Info(ctx, "new application", "application_id", app.ID, "email", app.Email, "job", app.JobTitle)

	// Fire and forget; the 201 below does not depend on delivery.
	h.mailer.DispatchApplication(app)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application submitted successfully! We will review your profile and get back to you.",
	})
}

// SubmitContact is the contact-inquiry intake.
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	ctx := c.Request.Context()

	var in model.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	norm, fieldErrs := model.ValidateContact(in)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrs})
		return
	}

	contact := &model.Contact{
		FullName:    norm.FullName,
		Email:       norm.Email,
		Phone:       norm.Phone,
		CompanyName: norm.CompanyName,
		Subject:     norm.Subject,
		Message:     norm.Message,
		Type:        norm.Type,
		Status:      model.ContactNew,
		IPAddress:   c.ClientIP(),
	}
	if err := h.store.CreateContact(contact); err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	logger.Info(ctx, "new contact", "contact_id", contact.ID, "email", contact.Email)

	h.mailer.DispatchContact(contact)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for reaching out! We will respond within 24 hours.",
	})
}

// Stats returns the public counters plus the configured display block.
func (h *PublicHandler) Stats(c *gin.Context) {
	totalJobs, err := h.store.CountJobs(model.JobActive)
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}
	totalApplications, err := h.store.CountApplications("")
	if err != nil {
		internalError(c, h.cfg.IsProduction(), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalJobs":         totalJobs,
			"totalApplications": totalApplications,
			"display":           h.cfg.Company.Stats,
		},
	})
}
