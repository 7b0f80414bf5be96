package domain

import "context"

type DashboardStats struct {
	ProfileViews    int `json:"profileViews"`
	Connections     int `json:"connections"`
	CoursesEnrolled int `json:"coursesEnrolled"`
	Achievements    int `json:"achievements"`
}

type AdminStats struct {
	TotalUsers        int `json:"totalUsers"`
	ActiveJobs        int `json:"activeJobs"`
	TotalCourses      int `json:"totalCourses"`
	TotalCompetitions int `json:"totalCompetitions"`
}

type StatsUsecase interface {
	Dashboard(ctx context.Context, userID string) (*DashboardStats, error)
	Admin(ctx context.Context) (*AdminStats, error)
}
