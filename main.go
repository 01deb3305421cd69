package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bioskop/internal/config"
	"bioskop/internal/handlers"
	"bioskop/internal/middleware"
	"bioskop/internal/models"
	"bioskop/internal/repositories"
	"bioskop/internal/services"
	"bioskop/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// DATABASE_URL and JWT_SECRET are mandatory; a missing one is a fatal
	// startup condition, never a per-request error.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// --- Database ---
	// TranslateError makes unique-constraint violations surface as
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Movie{}, &models.Actor{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Analytics (optional) ---
	// Reviews persist whether or not the analytics pipeline is up; an empty
	// RABBITMQ_URL just disables publishing.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; analytics events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	movieRepo := repositories.NewGORMMovieRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	// --- Services ---
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	var analytics services.AnalyticsPublisher
	if mqClient != nil {
		analytics = mqClient
	}
	reviewService := services.NewReviewService(reviewRepo, movieRepo, analytics)
	movieService := services.NewMovieService(movieRepo, reviewService, cfg.DefaultImageURL)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	movieHandler := handlers.NewMovieHandler(movieService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the bioskop movie API")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public authentication routes
	authHandler.RegisterRoutes(app)

	// Protected routes: every request passes the auth gate, which resolves
	// the token to a live user record.
	protected := app.Group("", middleware.AuthRequired(tokenService, userRepo))
	movieHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)

	// --- Analytics consumer ---
	// Stand-in for the external collector: drain the queue and log events.
	if mqClient != nil {
		log.Println("Starting analytics event consumer...")
		if consumerErr := mqClient.ConsumeAnalyticsEvents(func(msg amqp.Delivery) error {
			log.Printf("Analytics event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start analytics consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
