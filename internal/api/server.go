package api

import (
	"context"
	"fmt"

	"gamerental/internal/app/config"
	"gamerental/internal/app/handler"
	"gamerental/internal/app/metrics"
	"gamerental/internal/app/middleware"
	"gamerental/internal/app/redis"
	"gamerental/internal/app/repository"
	"gamerental/internal/app/storage"
	"gamerental/internal/app/token"
	"gamerental/internal/app/validation"
	"gamerental/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with logging, recovery, metrics and every API route.
func NewRouter(h *handler.APIHandler, authMiddleware *middleware.AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())
	h.RegisterAPIRoutes(r, authMiddleware)
	return r
}

func StartServer() error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logrus.Infof("config: %s", cfg)

	if err := validation.Register(); err != nil {
		return err
	}

	repo, err := repository.New(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	tokens := token.NewManager(cfg.JWT)

	// optional dependencies stay nil interfaces when not configured
	var (
		sessionCheck middleware.Blacklist
		sessionStore handler.TokenBlacklist
		images       handler.ImageStore
	)

	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		sessionCheck, sessionStore = redisClient, redisClient
	} else {
		logrus.Warn("redis is not configured: logout is disabled")
	}

	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		images = minioClient
	} else {
		logrus.Warn("minio is not configured: game images are disabled")
	}

	authHandler := handler.NewAuthHandler(repo, tokens, sessionStore)
	apiHandler := handler.NewAPIHandler(repo, images, authHandler)
	router := NewRouter(apiHandler, middleware.NewAuthMiddleware(tokens, sessionCheck))

	return pkg.NewApp(cfg, router).RunApp()
}
