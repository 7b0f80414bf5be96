package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-careerhub-backend/internal/domain"
)

type courseRepository struct {
	store *Store
}

func NewCourseRepository(store *Store) domain.CourseRepository {
	return &courseRepository{store: store}
}

func (r *courseRepository) Create(_ context.Context, course *domain.Course) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = uuid.NewString()
	course.CreatedAt = time.Now()
	course.EnrolledStudents = []string{}
	if course.Lessons == nil {
		course.Lessons = []domain.Lesson{}
	}

	stored := *course
	s.courses[stored.ID] = &stored
	return nil
}

func (r *courseRepository) GetByID(_ context.Context, id string) (*domain.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *course
	return &out, nil
}

func (r *courseRepository) GetAll(_ context.Context) ([]domain.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]domain.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, *course)
	}
	sortNewestFirst(courses, func(c domain.Course) int64 { return c.CreatedAt.UnixNano() })
	return courses, nil
}

func (r *courseRepository) AddStudent(_ context.Context, courseID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[courseID]
	if !ok {
		return domain.ErrNotFound
	}
	if contains(course.EnrolledStudents, userID) {
		return domain.ErrAlreadyMember
	}
	course.EnrolledStudents = append(course.EnrolledStudents, userID)
	return nil
}
