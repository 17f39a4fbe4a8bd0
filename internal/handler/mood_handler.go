package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/codebyvimal/BiblioDrift/internal/pkg/errors"
	"github.com/codebyvimal/BiblioDrift/internal/pkg/response"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

type MoodHandler struct {
	moods *service.MoodService
}

func NewMoodHandler(moods *service.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type moodRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (h *MoodHandler) Analyze(c *gin.Context) {
	if !h.moods.Available() {
		response.Error(c, http.StatusServiceUnavailable, "Mood analysis not available - missing dependencies")
		return
	}
	var req moodRequest
	_ = c.ShouldBindJSON(&req)
	if req.Title == "" {
		response.Invalid(c, "Title is required")
		return
	}
	analysis, err := h.moods.AnalyzeMood(c.Request.Context(), req.Title, req.Author)
	if err != nil {
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Could not analyze mood for this book")
			return
		}
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true, "mood_analysis": analysis})
}

func (h *MoodHandler) Tags(c *gin.Context) {
	var req moodRequest
	_ = c.ShouldBindJSON(&req)
	if req.Title == "" {
		response.Invalid(c, "Title is required")
		return
	}
	tags := h.moods.MoodTags(c.Request.Context(), req.Title, req.Author)
	response.Success(c, gin.H{"success": true, "mood_tags": tags})
}
