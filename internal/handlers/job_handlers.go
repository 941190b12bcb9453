package handlers

import (
	"fmt"
	"net/http"

	"jobsapi/internal/common"
	"jobsapi/internal/models"
	"jobsapi/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JobHandlers handles job-related HTTP requests. Every route behind it runs
// after the auth gate, so the caller is always on the request context.
type JobHandlers struct {
	jobs services.JobService
}

// NewJobHandlers creates a new job handlers instance
func NewJobHandlers(jobs services.JobService) *JobHandlers {
	return &JobHandlers{jobs: jobs}
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job *models.Job `json:"job"`
}

// JobListResponse is the reply of ListJobs.
type JobListResponse struct {
	Jobs  []*models.Job `json:"jobs"`
	Count int           `json:"count"`
}

// ListJobs returns every job the caller created, oldest first
//
// @Summary List jobs
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} JobListResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /jobs [get]
func (h *JobHandlers) ListJobs(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobs.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, JobListResponse{Jobs: jobs, Count: len(jobs)})
}

// GetJob handles getting a single job by ID
//
// @Summary Get a job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} JobResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandlers) GetJob(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobs.Get(c.Request().Context(), ownerID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, JobResponse{Job: job})
}

// CreateJob handles creating a job owned by the caller
//
// @Summary Create a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body services.JobInput true "Job"
// @Success 201 {object} JobResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /jobs [post]
func (h *JobHandlers) CreateJob(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req services.JobInput
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.Company = common.SanitizeHTMLElement(req.Company)
	req.Position = common.SanitizeHTMLElement(req.Position)

	job, err := h.jobs.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, JobResponse{Job: job})
}

// UpdateJob handles a partial update of one of the caller's jobs
//
// @Summary Update a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body services.JobUpdateInput true "Fields to change"
// @Success 200 {object} JobResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandlers) UpdateJob(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	var req services.JobUpdateInput
	if err := c.Bind(&req); err != nil {
		return err
	}
	common.SanitizeHTMLField(req.Company)
	common.SanitizeHTMLField(req.Position)

	job, err := h.jobs.Update(c.Request().Context(), ownerID, jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, JobResponse{Job: job})
}

// DeleteJob removes one of the caller's jobs and replies with an empty body
//
// @Summary Delete a job
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200
// @Failure 404 {object} common.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandlers) DeleteJob(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	if err := h.jobs.Delete(c.Request().Context(), ownerID, jobID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, common.Unauthenticated("Authentication invalid")
	}
	return userID, nil
}

// pathJobID parses the :id parameter. A malformed id cannot name any job, so
// it is reported as not found.
func pathJobID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.NotFound(fmt.Sprintf("No item found with id : %s", raw))
	}
	return id, nil
}
