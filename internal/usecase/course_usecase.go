package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
}

func NewCourseUsecase(courseRepo domain.CourseRepository) domain.CourseUsecase {
	return &courseUsecase{courseRepo: courseRepo}
}

func (u *courseUsecase) CreateCourse(ctx context.Context, instructorID string, course *domain.Course) error {
	if course.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if course.Price < 0 {
		return apperror.BadRequest("Price cannot be negative")
	}

	course.Instructor = instructorID

	return u.courseRepo.Create(ctx, course)
}

func (u *courseUsecase) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Course not found")
	}
	return course, nil
}

func (u *courseUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return u.courseRepo.GetAll(ctx)
}

func (u *courseUsecase) Enroll(ctx context.Context, courseID, userID string) error {
	if err := u.courseRepo.AddStudent(ctx, courseID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Course not found")
		case errors.Is(err, domain.ErrAlreadyMember):
			return apperror.BadRequest("Already enrolled")
		default:
			return apperror.Internal(err)
		}
	}
	return nil
}
