package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/enhance"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
)

// Version is reported by GET /.
const Version = "1.0.0"

var startTime = time.Now()

// Check reports whether a dependency is usable. A nil error means ready.
type Check func(ctx context.Context) error

// RegisterRootRoutes registers the service index and the liveness and
// readiness probes. Every entry in checks must pass for /ready to return 200.
func RegisterRootRoutes(r gin.IRouter, checks map[string]Check) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Resume Editor API",
			"version": Version,
			"endpoints": gin.H{
				"enhance":       "POST /ai-enhance",
				"save_resume":   "POST /save-resume",
				"get_resume":    "GET /resume/{id}",
				"list_resumes":  "GET /resumes",
				"delete_resume": "DELETE /resume/{id}",
				"health":        "GET /health",
			},
			"sections": enhance.Sections(),
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// readiness: 200 only when every configured dependency answers
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		ready := true
		deps := map[string]bool{}
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				logger.Warnf("readiness: %s unavailable: %v", name, err)
				deps[name] = false
				ready = false
				continue
			}
			deps[name] = true
		}

		uptime := time.Since(startTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
