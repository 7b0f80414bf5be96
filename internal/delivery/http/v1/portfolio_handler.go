package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(protected *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolio := protected.Group("/portfolio")
	{
		portfolio.GET("/my", handler.My)
		portfolio.POST("/project", handler.AddProject)
	}
}

type AddProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Image       *string  `json:"image"`
	LiveURL     *string  `json:"liveUrl" binding:"omitempty,url"`
	GithubURL   *string  `json:"githubUrl" binding:"omitempty,url"`
	Tags        []string `json:"tags"`
}

// My returns the caller's portfolio, creating an empty one on first
// access.
func (h *PortfolioHandler) My(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	portfolio, err := h.portfolioUC.MyPortfolio(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, portfolio)
}

func (h *PortfolioHandler) AddProject(c *gin.Context) {
	var req AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	portfolio, err := h.portfolioUC.AddProject(c.Request.Context(), userID, domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Tags:        req.Tags,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, portfolio)
}
