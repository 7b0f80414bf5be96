package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/my", handler.ListMine)
		protectedJobs.POST("/create", handler.Create)
		protectedJobs.POST("/apply/:id", handler.Apply)
	}
}

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	CompanyLogo *string  `json:"companyLogo"`
	Budget      *int     `json:"budget" binding:"omitempty,gte=0"`
	Location    *string  `json:"location"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status" binding:"omitempty,oneof=open closed"`
}

// List godoc
// @Summary      List jobs
// @Description  All jobs, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  domain.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListJobsByPoster(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Type:        req.Type,
		CompanyLogo: req.CompanyLogo,
		Budget:      req.Budget,
		Location:    req.Location,
		Skills:      req.Skills,
		Status:      req.Status,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// Apply submits the caller as an applicant. Repeated applications get
// 400 "Already applied"; unknown jobs 404.
func (h *JobHandler) Apply(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.Apply(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Application submitted successfully")
}
