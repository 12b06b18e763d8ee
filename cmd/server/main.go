package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/config"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/database"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/domain/fiber/handler"
	applog "github.com/mukulnagar-gammaedge/resume-analyzer/internal/logger"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/middleware"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/queue"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/repository"
	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/storage"
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

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db, err := database.Connect(config.LoadDBConfig(), appConfig)
	if err != nil {
		log.Fatal(err)
	}

	resumeStore, err := storage.NewResumeStore(config.LoadStorageConfig().UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	tasks, err := queue.New(config.LoadRedisConfig(), zlog)
	if err != nil {
		log.Fatal(err)
	}
	defer tasks.Close()

	jobRepo := repository.NewJobRepository(db)
	analyzeHandler := handler.NewAnalyzeHandler(jobRepo, resumeStore, tasks)
	analyzeHandler.RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
