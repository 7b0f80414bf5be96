package domain

import (
	"context"
	"time"
)

type Lesson struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	VideoURL *string `json:"videoUrl,omitempty"`
}

type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Thumbnail        *string   `json:"thumbnail"`
	Instructor       string    `json:"instructor"`
	InstructorName   *string   `json:"instructorName"`
	Category         string    `json:"category"`
	Level            string    `json:"level"`
	Duration         *int      `json:"duration"`
	Price            int       `json:"price"`
	Rating           int       `json:"rating"`
	EnrolledStudents []string  `json:"enrolledStudents"`
	Lessons          []Lesson  `json:"lessons"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id string) (*Course, error)
	GetAll(ctx context.Context) ([]Course, error)
	// AddStudent is an atomic insert-if-absent on the enrolled list.
	AddStudent(ctx context.Context, courseID, userID string) error
}

type CourseUsecase interface {
	CreateCourse(ctx context.Context, instructorID string, course *Course) error
	GetCourse(ctx context.Context, id string) (*Course, error)
	ListCourses(ctx context.Context) ([]Course, error)
	Enroll(ctx context.Context, courseID, userID string) error
}
