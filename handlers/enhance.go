package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/enhance"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/validation"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/metrics"
)

type enhanceRequest struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// RegisterEnhanceRoutes registers POST /ai-enhance.
func RegisterEnhanceRoutes(r gin.IRouter) {
	r.POST("/ai-enhance", func(c *gin.Context) {
		var req enhanceRequest
		if !validation.BindJSON(c, validation.Enhance, &req) {
			return
		}
		kind := enhance.Kind(req.Section)
		metrics.EnhanceRequests.WithLabelValues(kind).Inc()
		logger.Debugf("enhance: section=%s bytes=%d", kind, len(req.Content))
		c.JSON(http.StatusOK, gin.H{"enhanced_content": enhance.Enhance(req.Section, req.Content)})
	})
}
