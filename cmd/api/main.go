package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	"github.com/yusaku0324/kakeru-sub008/internal/config"
	dbpkg "github.com/yusaku0324/kakeru-sub008/internal/db"
	"github.com/yusaku0324/kakeru-sub008/internal/middleware"
	"github.com/yusaku0324/kakeru-sub008/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	store := cache.New(redisClient, logger)

	reserveAPI := backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIKey, logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, reserveAPI, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
