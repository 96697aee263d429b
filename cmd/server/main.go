package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireloop/internal/config"
	"hireloop/internal/events"
	"hireloop/internal/handlers"
	"hireloop/internal/interview"
	"hireloop/internal/jobs"
	"hireloop/internal/llm"
	_ "hireloop/internal/llm/gemini"
	"hireloop/internal/metrics"
	appmw "hireloop/internal/middleware"
	"hireloop/internal/models"
	"hireloop/internal/prompts"
	"hireloop/internal/repositories"
	"hireloop/internal/routers"
	"hireloop/internal/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Recruiter{},
		&models.Position{},
		&models.Quiz{},
		&models.Question{},
		&models.Candidate{},
		&models.Interview{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded", zap.String("provider", cfg.Provider))

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	recruiters := &repositories.RecruiterRepository{DB: db}
	positions := &repositories.PositionRepository{DB: db}
	quizzes := &repositories.QuizRepository{DB: db}
	candidates := &repositories.CandidateRepository{DB: db}
	interviews := &repositories.InterviewRepository{DB: db}

	// Redis is optional: without it, completion events and the distributed
	// rate limit degrade to in-process behavior.
	var rdb *redis.Client
	var notifier interview.Notifier
	var rateLimiter appmw.RateLimiter
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, falling back to local rate limiting and no scoring events",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		notifier = events.NewPublisher(rdb)
		rateLimiter = appmw.NewRedisRateLimiter(rdb, cfg.RateLimit, cfg.RateLimitWindow)
	} else {
		rateLimiter = appmw.NewLocalRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	}

	lifecycle := interview.NewService(interviews, quizzes, candidates, notifier, logger)

	authHandler := handlers.NewAuthHandler(recruiters, cfg.JWTSecret)
	positionHandler := handlers.NewPositionHandler(positions)
	quizHandler := handlers.NewQuizHandler(quizzes, positions)
	candidateHandler := handlers.NewCandidateHandler(candidates)
	inviteHandler := handlers.NewInviteHandler(interviews, quizzes, positions, candidates, lifecycle)
	aiHandler := handlers.NewAIHandler(aiProvider, promptManager, quizzes, positions, logger)
	interviewHandler := handlers.NewCandidateInterviewHandler(lifecycle, logger)
	healthHandler := handlers.NewHealthHandler(db, aiProvider, promptManager)

	// score subscriber consumes completion events published by the lifecycle
	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()
	if rdb != nil {
		scorer := scoring.NewScorer(interviews, quizzes, positions, aiProvider, promptManager)
		subscriber := scoring.NewScoreSubscriber(rdb, scorer)
		go subscriber.Subscribe(subscriberCtx)
	}

	sweeperJob := jobs.NewInterviewSweeperJob(interviews, &jobs.SweeperConfig{
		Schedule: cfg.SweepSchedule,
		Enabled:  cfg.SweepEnabled,
	})
	if err := sweeperJob.Start(); err != nil {
		logger.Error("Failed to start interview sweeper", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{getEnv("FRONTEND_ORIGIN", "http://localhost:5173")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.CandidateRoutes(router, interviewHandler)
	routers.RecruiterRoutes(router, cfg.JWTSecret, appmw.RateLimit(rateLimiter),
		positionHandler, quizHandler, candidateHandler, inviteHandler, aiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("hireloop starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("hireloop shutting down...")

	sweeperJob.Stop()
	stopSubscriber()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("hireloop exited")
}
