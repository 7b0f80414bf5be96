package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(public *gin.RouterGroup, protected *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	public.GET("/posts", handler.List)

	protectedPosts := protected.Group("/posts")
	{
		protectedPosts.POST("", handler.Create)
		protectedPosts.POST("/:id/like", handler.Like)
		protectedPosts.POST("/:id/comment", handler.Comment)
	}
}

type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// List returns the feed, each post decorated with the poster's
// username, full name and avatar.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.ListPosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	post, err := h.postUC.CreatePost(c.Request.Context(), userID, req.Content, req.ImageURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, post)
}

// Like toggles the caller's like on the post: first call adds it, the
// next removes it.
func (h *PostHandler) Like(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	liked, err := h.postUC.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Success", "liked": liked})
}

func (h *PostHandler) Comment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	post, err := h.postUC.AddComment(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, post)
}
