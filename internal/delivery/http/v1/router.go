package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-careerhub-backend/config"
	"go-careerhub-backend/internal/delivery/http/middleware"
	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/metrics"
	"go-careerhub-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CourseUC      domain.CourseUsecase
	CompetitionUC domain.CompetitionUsecase
	PortfolioUC   domain.PortfolioUsecase
	PartTimeUC    domain.PartTimeJobUsecase
	PostUC        domain.PostUsecase
	ConnectionUC  domain.ConnectionUsecase
	StatsUC       domain.StatsUsecase
	Tokens        *token.Manager
	Metrics       *metrics.Collector
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: window,
	}))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "System operational")
	})

	// Credential endpoints get a tighter limit than the rest of the API
	authPublic := api.Group("")
	authPublic.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitLoginThreshold,
		Window: window,
	}))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(authPublic, protected, deps.AuthUC)
		NewJobHandler(api, protected, deps.JobUC)
		NewCourseHandler(api, protected, deps.CourseUC)
		NewCompetitionHandler(api, protected, deps.CompetitionUC)
		NewPortfolioHandler(protected, deps.PortfolioUC)
		NewPartTimeJobHandler(api, protected, deps.PartTimeUC)
		NewPostHandler(api, protected, deps.PostUC)
		NewConnectionHandler(protected, deps.ConnectionUC)
		NewStatsHandler(protected, deps.StatsUC)
	}

	return r
}
