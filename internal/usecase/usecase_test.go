package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/password"
	"go-careerhub-backend/pkg/token"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByPoster(ctx context.Context, userID string) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) AddApplicant(ctx context.Context, jobID, userID string) error {
	return m.Called(ctx, jobID, userID).Error(0)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}
func (m *MockCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}
func (m *MockCourseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Course), args.Error(1)
}
func (m *MockCourseRepo) AddStudent(ctx context.Context, courseID, userID string) error {
	return m.Called(ctx, courseID, userID).Error(0)
}

type MockCompetitionRepo struct {
	mock.Mock
}

func (m *MockCompetitionRepo) Create(ctx context.Context, competition *domain.Competition) error {
	return m.Called(ctx, competition).Error(0)
}
func (m *MockCompetitionRepo) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competition), args.Error(1)
}
func (m *MockCompetitionRepo) GetAll(ctx context.Context) ([]domain.Competition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Competition), args.Error(1)
}
func (m *MockCompetitionRepo) AddParticipant(ctx context.Context, competitionID, userID string) error {
	return m.Called(ctx, competitionID, userID).Error(0)
}

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) GetByUserID(ctx context.Context, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}
func (m *MockPortfolioRepo) AddProject(ctx context.Context, userID string, project domain.Project) (*domain.Portfolio, error) {
	args := m.Called(ctx, userID, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

type MockConnectionRepo struct {
	mock.Mock
}

func (m *MockConnectionRepo) Create(ctx context.Context, connection *domain.Connection) error {
	return m.Called(ctx, connection).Error(0)
}
func (m *MockConnectionRepo) GetByUser(ctx context.Context, userID string) ([]domain.Connection, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Connection), args.Error(1)
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestRegisterDuplicate(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("Should map duplicate email to 400", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailTaken)

		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		_, _, err := uc.Register(context.Background(), domain.RegisterInput{Username: "a", Email: "a@x.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "Email already registered")
	})

	t.Run("Should map duplicate username to 400", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrUsernameTaken)

		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		_, _, err := uc.Register(context.Background(), domain.RegisterInput{Username: "a", Email: "a@x.com", Password: "secret1"})
		require.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "Username already taken")
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	mockRepo := new(MockUserRepo)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		assert.NotEqual(t, "plain-pass", u.Password)
		assert.True(t, password.Compare("plain-pass", u.Password))
	})

	uc := usecase.NewAuthUsecase(mockRepo, tokens)
	user, signed, err := uc.Register(context.Background(), domain.RegisterInput{Username: "a", Email: "a@x.com", Password: "plain-pass"})
	require.NoError(t, err)

	// Issued token decodes back to the new user's claims
	claims := tokens.Verify(signed)
	require.NotNil(t, claims)
	assert.Equal(t, user.Email, claims.Email)
}

func TestLogin(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	hashed, err := password.Hash("right-pass")
	require.NoError(t, err)
	stored := &domain.User{ID: "u1", Username: "a", Email: "a@x.com", Password: hashed, Role: domain.RoleUser}

	t.Run("Should fail with 401 for unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, domain.ErrNotFound)

		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		_, _, err := uc.Login(context.Background(), "nobody@x.com", "whatever")
		require.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})

	t.Run("Should fail with 401 for wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		_, _, err := uc.Login(context.Background(), "a@x.com", "wrong-pass")
		require.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})

	t.Run("Should issue verifiable token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(stored, nil)

		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		user, signed, err := uc.Login(context.Background(), "a@x.com", "right-pass")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		claims := tokens.Verify(signed)
		require.NotNil(t, claims)
		assert.Equal(t, "u1", claims.ID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})
}

func TestJobApplyErrorMapping(t *testing.T) {
	t.Run("Should map missing job to 404", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("AddApplicant", mock.Anything, "j1", "u1").Return(domain.ErrNotFound)

		uc := usecase.NewJobUsecase(mockRepo)
		err := uc.Apply(context.Background(), "j1", "u1")
		require.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})

	t.Run("Should map repeated application to 400", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockRepo.On("AddApplicant", mock.Anything, "j1", "u1").Return(domain.ErrAlreadyMember)

		uc := usecase.NewJobUsecase(mockRepo)
		err := uc.Apply(context.Background(), "j1", "u1")
		require.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "Already applied")
	})
}

func TestCreateJobForcesPoster(t *testing.T) {
	mockRepo := new(MockJobRepo)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
		j := args.Get(1).(*domain.Job)
		assert.Equal(t, "real-user", j.PostedBy)
	})

	uc := usecase.NewJobUsecase(mockRepo)
	job := &domain.Job{Title: "T", Description: "D", Company: "C", Type: "x", PostedBy: "spoofed"}
	require.NoError(t, uc.CreateJob(context.Background(), "real-user", job))
}

func TestAdminStatsAggregation(t *testing.T) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	courseRepo := new(MockCourseRepo)
	competitionRepo := new(MockCompetitionRepo)

	userRepo.On("GetAll", mock.Anything).Return([]domain.User{{}, {}}, nil)
	jobRepo.On("GetAll", mock.Anything).Return([]domain.Job{
		{Status: domain.JobStatusOpen},
		{Status: "closed"},
		{Status: domain.JobStatusOpen},
	}, nil)
	courseRepo.On("GetAll", mock.Anything).Return([]domain.Course{{}}, nil)
	competitionRepo.On("GetAll", mock.Anything).Return([]domain.Competition{{}, {}, {}}, nil)

	uc := usecase.NewStatsUsecase(userRepo, jobRepo, courseRepo, competitionRepo, new(MockPortfolioRepo), new(MockConnectionRepo))
	stats, err := uc.Admin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveJobs) // only open jobs count
	assert.Equal(t, 1, stats.TotalCourses)
	assert.Equal(t, 3, stats.TotalCompetitions)
}

func TestDashboardStats(t *testing.T) {
	portfolioRepo := new(MockPortfolioRepo)
	connectionRepo := new(MockConnectionRepo)
	courseRepo := new(MockCourseRepo)

	portfolioRepo.On("GetByUserID", mock.Anything, "u1").Return(&domain.Portfolio{
		ViewCount: 7,
		Projects:  []domain.Project{{Title: "a"}, {Title: "b"}},
	}, nil)
	connectionRepo.On("GetByUser", mock.Anything, "u1").Return([]domain.Connection{{}, {}, {}}, nil)
	courseRepo.On("GetAll", mock.Anything).Return([]domain.Course{
		{EnrolledStudents: []string{"u1", "u2"}},
		{EnrolledStudents: []string{"u2"}},
	}, nil)

	uc := usecase.NewStatsUsecase(new(MockUserRepo), new(MockJobRepo), courseRepo, new(MockCompetitionRepo), portfolioRepo, connectionRepo)
	stats, err := uc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 7, stats.ProfileViews)
	assert.Equal(t, 3, stats.Connections)
	assert.Equal(t, 1, stats.CoursesEnrolled)
	assert.Equal(t, 2, stats.Achievements)
}

func TestDashboardStatsWithoutPortfolio(t *testing.T) {
	portfolioRepo := new(MockPortfolioRepo)
	connectionRepo := new(MockConnectionRepo)
	courseRepo := new(MockCourseRepo)

	portfolioRepo.On("GetByUserID", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
	connectionRepo.On("GetByUser", mock.Anything, "u1").Return([]domain.Connection{}, nil)
	courseRepo.On("GetAll", mock.Anything).Return([]domain.Course{}, nil)

	uc := usecase.NewStatsUsecase(new(MockUserRepo), new(MockJobRepo), courseRepo, new(MockCompetitionRepo), portfolioRepo, connectionRepo)
	stats, err := uc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Zero(t, stats.ProfileViews)
	assert.Zero(t, stats.Achievements)
}
