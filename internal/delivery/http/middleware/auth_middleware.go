package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/token"
)

// AuthMiddleware authenticates requests via "Authorization: Bearer".
// Verified claims are attached to the context; the token is
// self-contained, so no store lookup happens here. Role checks stay in
// the handlers that need them.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if claims == nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.ID)
		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
