package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type CompetitionHandler struct {
	competitionUC domain.CompetitionUsecase
}

func NewCompetitionHandler(public *gin.RouterGroup, protected *gin.RouterGroup, competitionUC domain.CompetitionUsecase) {
	handler := &CompetitionHandler{competitionUC: competitionUC}

	publicCompetitions := public.Group("/competitions")
	{
		publicCompetitions.GET("", handler.List)
		publicCompetitions.GET("/:id", handler.GetDetails)
	}

	protectedCompetitions := protected.Group("/competitions")
	{
		protectedCompetitions.POST("/create", handler.Create)
		protectedCompetitions.POST("/join/:id", handler.Join)
	}
}

type CreateCompetitionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Difficulty  string    `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Category    string    `json:"category" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Prize       *string   `json:"prize"`
}

func (h *CompetitionHandler) List(c *gin.Context) {
	competitions, err := h.competitionUC.ListCompetitions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, competitions)
}

func (h *CompetitionHandler) GetDetails(c *gin.Context) {
	competition, err := h.competitionUC.GetCompetition(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, competition)
}

func (h *CompetitionHandler) Create(c *gin.Context) {
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	competition := &domain.Competition{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		Deadline:    req.Deadline,
		Prize:       req.Prize,
	}

	if err := h.competitionUC.CreateCompetition(c.Request.Context(), competition); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, competition)
}

// Join registers the caller as a participant; joining twice yields 400
// "Already joined".
func (h *CompetitionHandler) Join(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.competitionUC.Join(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Joined successfully")
}
