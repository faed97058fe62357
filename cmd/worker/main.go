package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mbti-travel-planner/internal/config"
	"github.com/mbti-travel-planner/internal/pkg/logger"
	"github.com/mbti-travel-planner/internal/repository/cache"
	"github.com/mbti-travel-planner/internal/repository/postgres"
	redisRepo "github.com/mbti-travel-planner/internal/repository/redis"
	"github.com/mbti-travel-planner/internal/usecase"
	"github.com/mbti-travel-planner/internal/worker"
	"github.com/mbti-travel-planner/internal/worker/itinerary"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Itinerary Generation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis Streams
	streamsClient, err := cache.NewRedisStreams(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis Streams", zap.Error(err))
	}
	defer func() {
		if err := streamsClient.Close(); err != nil {
			log.Error("Failed to close Redis Streams connection", zap.Error(err))
		}
	}()

	// 6. Initialize repositories
	spotRepo := postgres.NewSpotRepository(db)
	restaurantRepo := postgres.NewRestaurantRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(streamsClient, log)

	// 7. Initialize use cases
	assignmentEngine := usecase.NewAssignmentEngine(log)
	validationEngine := usecase.NewValidationEngine(log)

	itineraryUC := usecase.NewItineraryUseCase(
		spotRepo,
		restaurantRepo,
		cacheRepo,
		assignmentEngine,
		validationEngine,
		log,
		cfg.Cache.ItineraryCacheTTL,
		cfg.Planner.CacheEnabled,
		cfg.Planner.Version,
	)

	// 8. Initialize workers
	generationWorker := itinerary.NewGenerationWorker(
		streamRepo,
		itineraryUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 9. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(generationWorker)

	// 10. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
