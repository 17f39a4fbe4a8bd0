package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codebyvimal/BiblioDrift/internal/pkg/response"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

type SearchHandler struct {
	recommender *service.RecommendService
}

func NewSearchHandler(recommender *service.RecommendService) *SearchHandler {
	return &SearchHandler{recommender: recommender}
}

type moodSearchRequest struct {
	Query string `json:"query"`
}

func (h *SearchHandler) MoodSearch(c *gin.Context) {
	var req moodSearchRequest
	_ = c.ShouldBindJSON(&req)
	if req.Query == "" {
		response.Invalid(c, "Query is required")
		return
	}
	recommendations := h.recommender.MapQuery(req.Query)
	response.Success(c, gin.H{
		"success":         true,
		"recommendations": recommendations,
		"query":           req.Query,
	})
}
