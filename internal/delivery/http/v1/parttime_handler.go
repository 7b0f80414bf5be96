package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type PartTimeJobHandler struct {
	partTimeUC domain.PartTimeJobUsecase
}

func NewPartTimeJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, partTimeUC domain.PartTimeJobUsecase) {
	handler := &PartTimeJobHandler{partTimeUC: partTimeUC}

	publicPartTime := public.Group("/part-time")
	{
		publicPartTime.GET("", handler.List)
		publicPartTime.GET("/:id", handler.GetDetails)
	}

	protectedPartTime := protected.Group("/part-time")
	{
		protectedPartTime.POST("/create", handler.Create)
		protectedPartTime.POST("/apply/:id", handler.Apply)
	}
}

type CreatePartTimeJobRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Pay         int     `json:"pay" binding:"required,gte=0"`
	Location    string  `json:"location" binding:"required"`
	Distance    *string `json:"distance"`
}

func (h *PartTimeJobHandler) List(c *gin.Context) {
	jobs, err := h.partTimeUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *PartTimeJobHandler) GetDetails(c *gin.Context) {
	job, err := h.partTimeUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

func (h *PartTimeJobHandler) Create(c *gin.Context) {
	var req CreatePartTimeJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	job := &domain.PartTimeJob{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Type:        req.Type,
		Pay:         req.Pay,
		Location:    req.Location,
		Distance:    req.Distance,
	}

	if err := h.partTimeUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

func (h *PartTimeJobHandler) Apply(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.partTimeUC.Apply(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Application submitted successfully")
}
