package main

import (
	"context"
	"log"
	"time"

	"eventify/config"
	"eventify/internal/cache"
	"eventify/internal/database"
	"eventify/internal/handler"
	"eventify/internal/queue"
	"eventify/internal/repository"
	"eventify/internal/service"
	"eventify/internal/storage"
	"eventify/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	imageStore, err := storage.NewLocalImageStore(cfg.Storage.ImageDir)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	cleanupQueue, err := queue.NewRedisStreamCleanupQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize cleanup queue: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	sessions := cache.NewSessionStore(rdb)

	eventService := service.NewEventService(eventRepo, cleanupQueue)
	rsvpService := service.NewRSVPService(eventRepo)
	authService := service.NewAuthService(userRepo, sessions, time.Duration(cfg.Session.TTLHours)*time.Hour)
	aiService := service.NewAIService(cfg.AI)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupWorker := worker.NewCleanupWorker(imageStore, cleanupQueue)
	if err := cleanupWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start cleanup worker: %v", err)
	}

	authMiddleware := handler.AuthRequired(authService)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService, imageStore, authMiddleware).RegisterRoutes(router)
	handler.NewRSVPHandler(rsvpService, authMiddleware).RegisterRoutes(router)
	handler.NewAuthHandler(authService, authMiddleware).RegisterRoutes(router)
	handler.NewAIHandler(aiService, authMiddleware).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
