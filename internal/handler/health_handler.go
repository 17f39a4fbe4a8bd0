package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codebyvimal/BiblioDrift/internal/pkg/response"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

const (
	ServiceName    = "BiblioDrift Mood Analysis API"
	ServiceVersion = "1.0.0"
)

type HealthHandler struct {
	moods *service.MoodService
}

func NewHealthHandler(moods *service.MoodService) *HealthHandler {
	return &HealthHandler{moods: moods}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.Success(c, gin.H{
		"status":                  "healthy",
		"service":                 ServiceName,
		"version":                 ServiceVersion,
		"mood_analysis_available": h.moods.Available(),
	})
}
