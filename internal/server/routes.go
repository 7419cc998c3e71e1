// Package server configures the HTTP server and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/heroes-service/internal/config"
	"github.com/fleveque/heroes-service/internal/handler"
	"github.com/fleveque/heroes-service/internal/metrics"
	"github.com/fleveque/heroes-service/internal/middleware"
	"github.com/fleveque/heroes-service/internal/service"
)

// Deps are the collaborators the routes need. They are built once at
// startup and shared by every request.
type Deps struct {
	HeroService *service.HeroService
	Metrics     *metrics.Metrics // nil when metrics are disabled
}

// RegisterRoutes sets up all HTTP routes on the Gin engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler(cfg.Storage.Driver)
	heroHandler := handler.NewHeroHandler(deps.HeroService)

	r.GET("/healthz", healthHandler.Healthz)

	if deps.Metrics != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	heroes := r.Group("/heroes")
	heroes.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	heroes.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	{
		heroes.GET("/", heroHandler.List)
		// Group middleware only runs on matched routes; CORS answers the
		// preflight before this handler is reached.
		heroes.OPTIONS("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	logger.Debug("routes registered", zap.Int("count", len(r.Routes())))
}
