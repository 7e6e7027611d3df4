package main

import (
	"context"
	"log"

	api "trendwatch-backend/cmd/api"
	digestDelivery "trendwatch-backend/internal/digest/delivery"
	digestdomain "trendwatch-backend/internal/digest/domain"
	"trendwatch-backend/internal/digest/mailer"
	digestRepo "trendwatch-backend/internal/digest/repository"
	digestScheduler "trendwatch-backend/internal/digest/scheduler"
	"trendwatch-backend/internal/digest/summarizer"
	digestUsecase "trendwatch-backend/internal/digest/usecase"
	subscriberDelivery "trendwatch-backend/internal/subscriber/delivery"
	subdomain "trendwatch-backend/internal/subscriber/domain"
	subscriberRepo "trendwatch-backend/internal/subscriber/repository"
	subscriberUsecase "trendwatch-backend/internal/subscriber/usecase"
	"trendwatch-backend/pkg/config"
	"trendwatch-backend/pkg/database"
	"trendwatch-backend/pkg/githubtrending"
	"trendwatch-backend/pkg/openai"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&subdomain.Subscriber{}, &digestdomain.Repository{}, &digestdomain.DigestLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	subscriberRepository := subscriberRepo.NewSubscriberRepository(db)
	repositoryRepository := digestRepo.NewRepositoryRepository(db)
	digestLogRepository := digestRepo.NewDigestLogRepository(db)

	// Initialize the summarization provider; without a key the summarizer
	// falls back to deterministic template summaries.
	var aiClient summarizer.AIClient
	if cfg.OpenAIAPIKey != "" {
		aiClient = openai.NewService(cfg.OpenAIAPIKey)
		log.Println("OpenAI summarization enabled")
	} else {
		log.Println("[WARN] OPENAI_API_KEY not set, using fallback summaries")
	}
	summarizerService := summarizer.New(aiClient)

	// Trending source and mailer
	trendingClient := githubtrending.NewClient(cfg.GitHubToken)
	digestMailer := mailer.NewFromConfig(cfg)

	// Initialize use cases (dependency injection)
	subscriberUsecaseInstance := subscriberUsecase.NewSubscriberUsecase(subscriberRepository)
	digestUsecaseInstance := digestUsecase.NewDigestUsecase(
		subscriberRepository,
		trendingClient,
		summarizerService,
		digestMailer,
		repositoryRepository,
		digestLogRepository,
		cfg.EmailSendDelay,
	)

	// Optional in-process schedule; most deployments trigger the cron
	// endpoint externally instead.
	if cfg.DigestSchedule != "" {
		sched := digestScheduler.New()
		if err := sched.AddDigestJob(cfg.DigestSchedule, func(ctx context.Context) error {
			_, err := digestUsecaseInstance.Run(ctx)
			return err
		}); err != nil {
			log.Printf("[WARN] Failed to schedule digest job: %v", err)
		} else {
			sched.Start()
		}
	} else {
		log.Println("DIGEST_SCHEDULE not set, relying on external cron trigger")
	}

	// Initialize HTTP handlers
	subscriberHandler := subscriberDelivery.NewSubscriberHandler(subscriberUsecaseInstance)
	digestHandler := digestDelivery.NewDigestHandler(
		digestUsecaseInstance,
		subscriberRepository,
		trendingClient,
		summarizerService,
		digestMailer,
		digestLogRepository,
	)
	handler := api.NewHandler(subscriberHandler, digestHandler, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
