package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(public *gin.RouterGroup, protected *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	publicCourses := public.Group("/courses")
	{
		publicCourses.GET("", handler.List)
		publicCourses.GET("/:id", handler.GetDetails)
	}

	protectedCourses := protected.Group("/courses")
	{
		protectedCourses.POST("/create", handler.Create)
		protectedCourses.POST("/enroll/:id", handler.Enroll)
	}
}

type CreateCourseRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Level          string          `json:"level" binding:"required"`
	Thumbnail      *string         `json:"thumbnail"`
	InstructorName *string         `json:"instructorName"`
	Duration       *int            `json:"duration" binding:"omitempty,gte=0"`
	Price          int             `json:"price" binding:"gte=0"`
	Lessons        []domain.Lesson `json:"lessons"`
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

func (h *CourseHandler) GetDetails(c *gin.Context) {
	course, err := h.courseUC.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	course := &domain.Course{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Level:          req.Level,
		Thumbnail:      req.Thumbnail,
		InstructorName: req.InstructorName,
		Duration:       req.Duration,
		Price:          req.Price,
		Lessons:        req.Lessons,
	}

	if err := h.courseUC.CreateCourse(c.Request.Context(), userID, course); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, course)
}

// Enroll adds the caller to the course roster; enrolling twice yields
// 400 "Already enrolled".
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.courseUC.Enroll(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Enrolled successfully")
}
