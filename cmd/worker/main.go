package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/config"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/database"
	applog "github.com/mukulnagar-gammaedge/resume-analyzer/internal/logger"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/pipeline"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/queue"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/repository"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/service"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/util"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := applog.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(config.LoadDBConfig(), appConfig)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}

	var llm service.LLMClientInterface
	var gemini *service.GeminiService
	var modelName string
	switch appConfig.LLMProvider {
	case "openrouter":
		cfg := config.LoadOpenRouterConfig()
		llm = service.NewOpenRouterService(cfg)
		modelName = cfg.Model
	default:
		cfg := config.LoadGeminiConfig()
		gemini, err = service.NewGeminiService(ctx, cfg, zlog)
		if err != nil {
			zlog.Fatal("gemini client init failed", zap.Error(err))
		}
		llm = gemini
		modelName = cfg.Model
	}

	jobRepo := repository.NewJobRepository(db)
	extraction := service.NewExtractionService(llm, modelName, zlog)
	analysis := service.NewAnalysisService(llm, modelName, zlog)
	pipe := pipeline.New(jobRepo, extraction, analysis, util.ExtractPDFText, zlog)

	tasks, err := queue.New(config.LoadRedisConfig(), zlog)
	if err != nil {
		zlog.Fatal("queue init failed", zap.Error(err))
	}
	defer tasks.Close()

	zlog.Info("worker started",
		zap.String("llm_provider", appConfig.LLMProvider),
		zap.String("model", modelName),
		zap.Int("concurrency", appConfig.WorkerConcurrency))

	handle := pipe.Process
	if gemini != nil {
		handle = func(ctx context.Context, jobID string) error {
			err := pipe.Process(ctx, jobID)
			if errs, open := gemini.GetCircuitBreakerStatus(); open {
				zlog.Warn("gemini circuit breaker open",
					zap.Int("consecutive_errors", errs),
					zap.String("job_id", jobID))
			}
			return err
		}
	}

	tasks.Consume(ctx, appConfig.WorkerConcurrency, handle)

	zlog.Info("worker stopped")
}
