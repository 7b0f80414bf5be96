package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type ConnectionHandler struct {
	connectionUC domain.ConnectionUsecase
}

func NewConnectionHandler(protected *gin.RouterGroup, connectionUC domain.ConnectionUsecase) {
	handler := &ConnectionHandler{connectionUC: connectionUC}

	connections := protected.Group("/connections")
	{
		connections.POST("", handler.Create)
		connections.GET("", handler.List)
	}
}

type ConnectRequest struct {
	ConnectedUserID string `json:"connectedUserId" binding:"required"`
}

func (h *ConnectionHandler) Create(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	connection, err := h.connectionUC.Connect(c.Request.Context(), userID, req.ConnectedUserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, connection)
}

func (h *ConnectionHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	connections, err := h.connectionUC.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if connections == nil {
		connections = []domain.Connection{}
	}
	response.JSON(c, http.StatusOK, connections)
}
