package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/service"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/validation"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
)

const notFoundMessage = "Resume not found"

func RegisterResumeRoutes(r gin.IRouter, svc service.Service) {
	r.POST("/save-resume", func(c *gin.Context) {
		var req resume.Resume
		if !validation.BindJSON(c, validation.Resume, &req) {
			return
		}
		id, err := svc.Save(c.Request.Context(), req)
		if err != nil {
			internalError(c, "save resume", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Resume saved successfully", "resume_id": id})
	})

	r.GET("/resume/:id", func(c *gin.Context) {
		rec, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": notFoundMessage})
				return
			}
			internalError(c, "get resume", err)
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	r.GET("/resumes", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			internalError(c, "list resumes", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"resumes": list, "count": len(list)})
	})

	r.DELETE("/resume/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": notFoundMessage})
				return
			}
			internalError(c, "delete resume", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully", "resume_id": id})
	})
}

// internalError logs the cause and answers with a generic message; storage
// details never reach the client.
func internalError(c *gin.Context, op string, err error) {
	logger.Errorf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
