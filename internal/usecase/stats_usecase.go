package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type statsUsecase struct {
	userRepo        domain.UserRepository
	jobRepo         domain.JobRepository
	courseRepo      domain.CourseRepository
	competitionRepo domain.CompetitionRepository
	portfolioRepo   domain.PortfolioRepository
	connectionRepo  domain.ConnectionRepository
}

func NewStatsUsecase(
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	courseRepo domain.CourseRepository,
	competitionRepo domain.CompetitionRepository,
	portfolioRepo domain.PortfolioRepository,
	connectionRepo domain.ConnectionRepository,
) domain.StatsUsecase {
	return &statsUsecase{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		courseRepo:      courseRepo,
		competitionRepo: competitionRepo,
		portfolioRepo:   portfolioRepo,
		connectionRepo:  connectionRepo,
	}
}

// Dashboard aggregates the caller's activity. A missing portfolio is
// not an error here; it just means zero views and achievements.
func (u *statsUsecase) Dashboard(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	portfolio, err := u.portfolioRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if portfolio != nil {
		stats.ProfileViews = portfolio.ViewCount
		stats.Achievements = len(portfolio.Projects)
	}

	connections, err := u.connectionRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stats.Connections = len(connections)

	courses, err := u.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, course := range courses {
		for _, enrolled := range course.EnrolledStudents {
			if enrolled == userID {
				stats.CoursesEnrolled++
				break
			}
		}
	}

	return stats, nil
}

// Admin returns platform-wide aggregate counts from the live
// collections. The role gate lives at the handler.
func (u *statsUsecase) Admin(ctx context.Context) (*domain.AdminStats, error) {
	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	jobs, err := u.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	courses, err := u.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	competitions, err := u.competitionRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stats := &domain.AdminStats{
		TotalUsers:        len(users),
		TotalCourses:      len(courses),
		TotalCompetitions: len(competitions),
	}
	for _, job := range jobs {
		if job.Status == domain.JobStatusOpen {
			stats.ActiveJobs++
		}
	}
	return stats, nil
}
