package v1

import (
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
	}

	r.GET("/creators/:id/matching-jobs", handler.MatchingForCreator)
}

type CreateJobRequest struct {
	HirerID        string   `json:"hirerId" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills" binding:"required,min=1"`
	BudgetRange    string   `json:"budgetRange"`
	Timeline       string   `json:"timeline"`
}

// List godoc
// @Summary      List jobs
// @Description  All jobs, or only one hirer's when hirer_id is given
// @Tags         jobs
// @Produce      json
// @Param        hirer_id  query     string  false  "Filter by hirer"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var (
		jobs []domain.Job
		err  error
	)
	if hirerID := c.Query("hirer_id"); hirerID != "" {
		jobs, err = h.jobUC.GetJobsByHirer(c.Request.Context(), hirerID)
	} else {
		jobs, err = h.jobUC.GetJobs(c.Request.Context())
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// Create godoc
// @Summary      Post a job
// @Description  Creates an open job and notifies creators with matching skill tags
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), &domain.Job{
		HirerID:        req.HirerID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		BudgetRange:    req.BudgetRange,
		Timeline:       req.Timeline,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// MatchingForCreator godoc
// @Summary      Open jobs matching a creator's skills
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Creator ID"
// @Success      200  {object}  response.Response
// @Router       /creators/{id}/matching-jobs [get]
func (h *JobHandler) MatchingForCreator(c *gin.Context) {
	jobs, err := h.jobUC.GetMatchingJobsForCreator(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Matching jobs retrieved", jobs)
}
