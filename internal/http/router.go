package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "user-api/docs"
	"user-api/internal/common/config"
	"user-api/internal/common/middleware"
	userhttp "user-api/internal/features/user/delivery/http"
	"user-api/internal/features/user/service"
)

const serviceName = "user-api"

// HealthChecker is implemented by the platform clients probed by /ready.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies are the services and backing stores the router is built from.
type Dependencies struct {
	Users    service.UserService
	Database HealthChecker
	Sessions HealthChecker
}

// NewRouter builds the gin engine with middleware, probes, API docs and user routes.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	devMode := cfg.IsDevelopment()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.HandleErrors(devMode))
	router.Use(middleware.Recovery(devMode))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-Expires-After"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
	router.GET("/ready", readiness(deps))

	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userhttp.NewUserHandler(deps.Users).RegisterRoutes(router)

	router.NoRoute(middleware.NotFound())

	return router
}

func readiness(deps Dependencies) gin.HandlerFunc {
	checks := []struct {
		name    string
		checker HealthChecker
	}{
		{"mongo", deps.Database},
		{"redis", deps.Sessions},
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		for _, check := range checks {
			if check.checker == nil {
				continue
			}
			if err := check.checker.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   check.name + " unavailable",
					"details": err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	}
}
