package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/resumeeditor/resume-editor/backend/go-services/handlers"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/config"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/handler"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/middleware"
)

// NewRouter registers every route on a fresh engine. Collectors must already
// be registered with the default registry for /metrics to report them.
func NewRouter(cfg *config.Config, d *Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && d.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(d.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter: redis rps=%.1f burst=%d window=%s", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: memory rps=%.1f burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	handlers.RegisterRootRoutes(r, d.Checks)
	handlers.RegisterEnhanceRoutes(r)
	handler.RegisterResumeRoutes(r, d.Service)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
