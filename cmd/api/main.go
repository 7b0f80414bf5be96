package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-careerhub-backend/config"
	v1 "go-careerhub-backend/internal/delivery/http/v1"
	"go-careerhub-backend/internal/metrics"
	"go-careerhub-backend/internal/repository/memory"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/logger"
	"go-careerhub-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careerhub backend", "port", cfg.Port)

	// 3. Setup Store (in-memory; all state is volatile)
	store := memory.NewStore()
	if cfg.SeedSampleData {
		store.Seed()
		logger.Log.Info("Seeded sample data")
	}

	// 4. Setup Repositories
	userRepo := memory.NewUserRepository(store)
	jobRepo := memory.NewJobRepository(store)
	courseRepo := memory.NewCourseRepository(store)
	competitionRepo := memory.NewCompetitionRepository(store)
	portfolioRepo := memory.NewPortfolioRepository(store)
	partTimeRepo := memory.NewPartTimeJobRepository(store)
	postRepo := memory.NewPostRepository(store)
	connectionRepo := memory.NewConnectionRepository(store)

	// 5. Setup Token Manager
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	competitionUC := usecase.NewCompetitionUsecase(competitionRepo)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, validate)
	partTimeUC := usecase.NewPartTimeJobUsecase(partTimeRepo)
	postUC := usecase.NewPostUsecase(postRepo, userRepo)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, userRepo)
	statsUC := usecase.NewStatsUsecase(userRepo, jobRepo, courseRepo, competitionRepo, portfolioRepo, connectionRepo)

	// 7. Setup Metrics
	collector := metrics.NewCollector()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CourseUC:      courseUC,
		CompetitionUC: competitionUC,
		PortfolioUC:   portfolioUC,
		PartTimeUC:    partTimeUC,
		PostUC:        postUC,
		ConnectionUC:  connectionUC,
		StatsUC:       statsUC,
		Tokens:        tokens,
		Metrics:       collector,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
