package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Logger)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Info().Str("env", cfg.Server.Env).Str("judge", cfg.Judge.Provider).Str("storage", cfg.Storage.Driver).Msg("config loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)

	storageService, err := services.NewStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	judge, err := services.NewJudge(ctx, cfg.Judge)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize judge")
	}

	evaluator := services.NewEvaluator(judge, services.NewCoverLetterAnalyzer(judge))
	screening := services.NewScreeningService(
		submissionRepo,
		jobRepo,
		candidateRepo,
		storageService,
		services.NewPDFParserService(),
		services.NewFieldExtractor(judge),
		evaluator,
	)

	worker := services.NewWorker(submissionRepo, screening, services.WorkerOptions{
		Concurrency:  cfg.Worker.Concurrency,
		QueueSize:    cfg.Worker.QueueSize,
		PollInterval: cfg.Worker.PollInterval,
	})
	worker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.Judge.Timeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, handlers.Handlers{
		Jobs:     handlers.NewJobHandler(jobRepo, candidateRepo),
		Apply:    handlers.NewApplyHandler(jobRepo, submissionRepo, storageService, worker, cfg.Storage.MaxFileSize),
		Result:   handlers.NewResultHandler(submissionRepo),
		Evaluate: handlers.NewEvaluateHandler(evaluator),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("server forced to shutdown")
		}
		worker.Stop()
		cancel()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
