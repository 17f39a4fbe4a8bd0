package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codebyvimal/BiblioDrift/internal/middleware"
)

type RouterDeps struct {
	Notes  *NoteHandler
	Moods  *MoodHandler
	Search *SearchHandler
	Health *HealthHandler

	// AnalyzerRateLimit throttles the analyzer-backed endpoints; zero
	// disables it.
	AnalyzerRateLimit time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/generate-note", deps.Notes.Generate)
	api.POST("/mood-search", deps.Search.MoodSearch)
	api.GET("/health", deps.Health.Check)

	analyzed := api.Group("")
	analyzed.Use(middleware.RateLimit(deps.AnalyzerRateLimit))
	analyzed.POST("/analyze-mood", deps.Moods.Analyze)
	analyzed.POST("/mood-tags", deps.Moods.Tags)
}
