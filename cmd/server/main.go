package main

import (
	"context"
	"log"

	"event-admin-api/config"
	"event-admin-api/internal/cache"
	"event-admin-api/internal/database"
	"event-admin-api/internal/handler"
	"event-admin-api/internal/middleware"
	"event-admin-api/internal/repository"
	"event-admin-api/internal/service"
	"event-admin-api/internal/upload"
	"event-admin-api/migrations"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(context.Background(), pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	listCache := cache.NewEventListCache(rdb)
	eventService := service.NewEventService(eventRepo, listCache)

	authService := service.NewAuthService(&service.AuthServiceConfig{
		AdminUser:     cfg.Auth.AdminUser,
		AdminPassword: cfg.Auth.AdminPassword,
		JWTSecret:     cfg.Auth.JWTSecret,
	})

	resolver := upload.NewResolver(cfg.Upload.Dir, cfg.Server.BaseURL)

	router := gin.Default()
	router.Static("/uploads", cfg.Upload.Dir)

	handler.NewAuthHandler(authService).RegisterRoutes(router)
	handler.NewEventHandler(eventService, resolver).RegisterRoutes(router, middleware.RequireAuth(authService))

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
