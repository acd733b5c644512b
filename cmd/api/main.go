package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"user-api/docs"
	"user-api/internal/common/config"
	"user-api/internal/common/logger"
	apphttp "user-api/internal/http"
	mongorepo "user-api/internal/features/user/repository/mongo"
	redisrepo "user-api/internal/features/user/repository/redis"
	"user-api/internal/features/user/service"
	"user-api/internal/platform/mongo"
	"user-api/internal/platform/redis"
)

// @title           User API
// @version         1.0
// @description     CRUD API over a document store of users, with session login and logout.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @tag.name user
// @tag.description Operations about user

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init("user-api", cfg.Debug)
	logger.Info().
		Str("version", "1.0.0").
		Str("env", cfg.Env).
		Msg("Starting User API")

	mongoClient, err := mongo.Open(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	redisClient, err := redis.Open(ctx, redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		_ = mongoClient.Close(context.Background())
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	users := mongorepo.NewUserRepository(mongoClient.Collection(cfg.Mongo.UserCollection))
	sessions := redisrepo.NewSessionRepository(redisClient.Client)
	userSvc := service.NewUserService(users, sessions, cfg.Session.TTL)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Host = cfg.SwaggerHost

	router := apphttp.NewRouter(cfg, apphttp.Dependencies{
		Users:    userSvc,
		Database: mongoClient,
		Sessions: redisClient,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("Failed to close Redis client")
	}
	if err := mongoClient.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to close database client")
	}

	logger.Info().Msg("Server exited")
}
