package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Username    string              `json:"username" binding:"required,min=3"`
	Email       string              `json:"email" binding:"required,email"`
	Password    string              `json:"password" binding:"required,min=6"`
	Role        string              `json:"role" binding:"omitempty,oneof=user employer admin"`
	FullName    *string             `json:"fullName"`
	Bio         *string             `json:"bio"`
	Avatar      *string             `json:"avatar"`
	Skills      []string            `json:"skills"`
	Experience  *string             `json:"experience"`
	SocialLinks *domain.SocialLinks `json:"socialLinks"`
	Location    *string             `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user; responds with the sanitized user and a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Message
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, signed, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		FullName:    req.FullName,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Skills:      req.Skills,
		Experience:  req.Experience,
		SocialLinks: req.SocialLinks,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": user, "token": signed})
}

// Login godoc
// @Summary      User Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Message
// @Failure      401  {object}  response.Message
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.Error(apperror.BadRequest("Email and password required"))
		return
	}

	user, signed, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": user, "token": signed})
}

// Me returns the authenticated user's current record. 404 covers the
// edge where the token outlived the user (restart wiped the store).
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}
