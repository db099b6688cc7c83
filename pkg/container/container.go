package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"reviewcard-backend/internal/config"
	infraCache "reviewcard-backend/internal/infrastructure/cache"
	"reviewcard-backend/internal/infrastructure/queue"
	"reviewcard-backend/internal/infrastructure/storage"
	"reviewcard-backend/pkg/cache"
	"reviewcard-backend/pkg/jwt"

	cardHandler "reviewcard-backend/internal/domains/card/handler"
	cardRepo "reviewcard-backend/internal/domains/card/repository"
	cardService "reviewcard-backend/internal/domains/card/service"

	exportHandler "reviewcard-backend/internal/domains/export/handler"
	exportRepo "reviewcard-backend/internal/domains/export/repository"
	exportService "reviewcard-backend/internal/domains/export/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config         *config.Config
	Redis          *infraCache.RedisClient
	Cache          cache.Cache
	Storage        *storage.MinIOStorage
	ImageProcessor *storage.ImageProcessor
	JWTManager     *jwt.Manager
	QueueClient    *queue.Client

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	CardRepo cardRepo.CardRepository
	JobRepo  exportRepo.JobRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	CardService   cardService.CardService
	ExportService exportService.ExportService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CardHandler   *cardHandler.CardHandler
	ExportHandler *exportHandler.ExportHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (Redis, MinIO, queue client) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE REDIS
	// ========================================
	// Redis giữ cả card sessions lẫn export job status - critical, fail fast
	log.Println("🔴 Connecting to Redis...")

	redisClient := infraCache.NewRedisClient(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.Redis = redisClient
	c.Cache = infraCache.NewCache(redisClient)
	log.Println("✅ Redis connected")

	// ========================================
	// STEP 3: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO ready")

	// ========================================
	// STEP 4: SHARED COMPONENTS
	// ========================================
	c.ImageProcessor = storage.NewImageProcessor(cfg.Export.MaxUploadBytes)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionTokenExpiry)
	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	if err := c.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() error {
	sessionTTL := time.Duration(c.Config.Export.SessionTTLHours) * time.Hour
	jobTTL := time.Duration(c.Config.Export.JobTTLHours) * time.Hour

	// ----------------------------------------
	// CARD REPOSITORY
	// ----------------------------------------
	// Card records sống trong Redis với sliding TTL - không có durable store
	c.CardRepo = cardRepo.NewRedisCardRepository(c.Cache, sessionTTL)

	// ----------------------------------------
	// EXPORT JOB REPOSITORY
	// ----------------------------------------
	c.JobRepo = exportRepo.NewRedisJobRepository(c.Cache, jobTTL)

	return nil
}

func (c *Container) initServices() error {
	// ----------------------------------------
	// CARD SERVICE
	// ----------------------------------------
	c.CardService = cardService.NewCardService(
		c.CardRepo,
		c.ImageProcessor,
		c.JWTManager,
	)

	// ----------------------------------------
	// EXPORT SERVICE
	// ----------------------------------------
	c.ExportService = exportService.NewExportService(
		c.JobRepo,
		c.Storage,
		c.QueueClient,
	)

	return nil
}

func (c *Container) initHandlers() error {
	c.CardHandler = cardHandler.NewCardHandler(c.CardService, c.Config.Export.MaxUploadBytes)
	c.ExportHandler = exportHandler.NewExportHandler(c.ExportService, c.CardService)

	return nil
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		} else {
			log.Println("✅ Queue client closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
