package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JRossell27/Job-tracker/internal/delivery/http/response"
	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.GET("/applications", handler.List)
	r.POST("/applications", handler.Create)
	r.PATCH("/applications/:id", handler.Update)
	r.DELETE("/applications/:id", handler.Delete)
	r.POST("/sync", handler.Sync)
}

// CreateApplicationRequest is the add form payload. Everything is free text
// except the selector fields, which are validated in the usecase.
type CreateApplicationRequest struct {
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	Location        string `json:"location"`
	SalaryEstimate  string `json:"salary_estimate"`
	JobPostingLink  string `json:"job_posting_link"`
	ApplicationDate string `json:"application_date"`
	Status          string `json:"application_status"`
	InterviewStage  string `json:"interview_stage"`
	FollowUpDate    string `json:"follow_up_date"`
	FollowUpSent    string `json:"follow_up_sent"`
	ResumeOptimized string `json:"resume_optimized"`
	JobSource       string `json:"job_source"`
	ContactName     string `json:"contact_name"`
	Notes           string `json:"notes"`
}

// List godoc
// @Summary      List applications
// @Description  List the current user's applications, optionally filtered
// @Tags         applications
// @Produce      json
// @Param        q                 query  string  false  "Free-text search"
// @Param        status            query  []string false "Status filter (repeatable)"
// @Param        follow_up_sent    query  string  false  "Yes or No"
// @Param        resume_optimized  query  string  false  "Yes or No"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	filter := domain.ApplicationFilter{
		Query:           c.Query("q"),
		Statuses:        c.QueryArray("status"),
		FollowUpSent:    c.Query("follow_up_sent"),
		ResumeOptimized: c.Query("resume_optimized"),
	}

	apps, err := h.applicationUC.List(c.Request.Context(), username, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// Create godoc
// @Summary      Add an application
// @Description  Append one application record and sync it to the remote
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      CreateApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := &domain.Application{
		Company:         req.Company,
		JobTitle:        req.JobTitle,
		Location:        req.Location,
		SalaryEstimate:  req.SalaryEstimate,
		JobPostingLink:  req.JobPostingLink,
		ApplicationDate: req.ApplicationDate,
		Status:          req.Status,
		InterviewStage:  req.InterviewStage,
		FollowUpDate:    req.FollowUpDate,
		FollowUpSent:    req.FollowUpSent,
		ResumeOptimized: req.ResumeOptimized,
		JobSource:       req.JobSource,
		ContactName:     req.ContactName,
		Notes:           req.Notes,
	}

	outcome, err := h.applicationUC.Create(c.Request.Context(), username, app)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, syncMessage("Application added", outcome), app)
}

// Update godoc
// @Summary      Edit an application
// @Description  Overwrite only the submitted fields of one record and sync
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Record ID"
// @Param        body  body      domain.ApplicationUpdate  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))
	id := c.Param("id")

	var req domain.ApplicationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	outcome, err := h.applicationUC.Update(c.Request.Context(), username, id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, syncMessage("Changes saved", outcome), nil)
}

// Delete godoc
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Param        id  path      string  true  "Record ID"
// @Success      200 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))
	id := c.Param("id")

	outcome, err := h.applicationUC.Delete(c.Request.Context(), username, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, syncMessage("Application deleted", outcome), nil)
}

// Sync godoc
// @Summary      Sync now
// @Description  Commit and push the current data file without changing it
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /sync [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Sync(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	outcome, err := h.applicationUC.Sync(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, syncMessage("Sync finished", outcome), gin.H{"outcome": outcome})
}

// syncMessage folds the sync outcome into the user-facing notice; a disabled
// sync is a warning, not an error.
func syncMessage(action string, outcome domain.SyncOutcome) string {
	switch outcome {
	case domain.SyncDisabled:
		return action + " (remote sync disabled)"
	case domain.SyncClean:
		return action + " (nothing to sync)"
	default:
		return action + " and synced"
	}
}
