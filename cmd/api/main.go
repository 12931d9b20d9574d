package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/catalog"
	"github.com/mightymouse007/genie-it-pathfinder/internal/config"
	"github.com/mightymouse007/genie-it-pathfinder/internal/db"
	apihttp "github.com/mightymouse007/genie-it-pathfinder/internal/http"
	"github.com/mightymouse007/genie-it-pathfinder/internal/llm"
	"github.com/mightymouse007/genie-it-pathfinder/internal/repository"
	"github.com/mightymouse007/genie-it-pathfinder/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("ensure schema", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}

	// Backend durable del estado del quiz: Postgres por defecto, Redis si se
	// pidió y está disponible. El wrapper de contingencia mantiene la sesión
	// viva en memoria si el backend falla.
	var durable repository.StateRepository = repository.NewPgStateRepository(pool, cfg.AppPrefix)
	if cfg.RedisState && redisClient != nil {
		durable = repository.NewRedisStateRepository(redisClient, cfg.AppPrefix, 0)
	}
	states := repository.NewFallbackStateRepository(durable, logger)

	var analysisLimiter service.AnalysisRateLimiter
	if redisClient != nil {
		analysisLimiter = service.NewRedisAnalysisRateLimiter(
			redisClient,
			time.Duration(cfg.AnalysisRateWindowMinutes)*time.Minute,
			cfg.AnalysisRateMax,
		)
	}

	cat := catalog.MustDefault()
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	quizSvc := service.NewQuizService(cat, states, logger)
	analysisSvc := service.NewAnalysisService(llmClient, logger)
	tokenSvc := service.NewSessionTokenService(cfg.SessionSecret, time.Duration(cfg.SessionTTLDays)*24*time.Hour)

	quizHandler := apihttp.NewQuizHandler(logger, quizSvc, tokenSvc, cat)
	resultsHandler := apihttp.NewResultsHandler(logger, quizSvc, analysisSvc, analysisLimiter, cat)

	healthChecks := map[string]apihttp.HealthChecker{
		"postgres": func(c *gin.Context) error {
			return db.Ping(c.Request.Context(), pool)
		},
	}
	if redisClient != nil {
		healthChecks["redis"] = func(c *gin.Context) error {
			return redisClient.Ping(c.Request.Context()).Err()
		}
	}

	router := apihttp.NewRouter(logger, quizHandler, resultsHandler, tokenSvc, healthChecks)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
