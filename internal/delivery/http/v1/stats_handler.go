package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(protected *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	protected.GET("/dashboard/stats", handler.Dashboard)
	protected.GET("/admin/stats", handler.Admin)
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.statsUC.Dashboard(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

// Admin godoc
// @Summary      Platform statistics
// @Description  Aggregate counts over the live collections. Admin role required.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  response.Message
// @Failure      403  {object}  response.Message
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *StatsHandler) Admin(c *gin.Context) {
	// Role Check
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Forbidden"))
		return
	}

	stats, err := h.statsUC.Admin(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, stats)
}
