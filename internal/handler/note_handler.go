package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/codebyvimal/BiblioDrift/internal/pkg/response"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type generateNoteRequest struct {
	Description string `json:"description"`
	Title       string `json:"title"`
	Author      string `json:"author"`
}

// Generate never fails: every field is optional and analyzer errors fall
// back to local heuristics inside the service.
func (h *NoteHandler) Generate(c *gin.Context) {
	var req generateNoteRequest
	_ = c.ShouldBindJSON(&req)
	vibe := h.notes.Generate(c.Request.Context(), req.Description, req.Title, req.Author)
	response.Success(c, gin.H{"vibe": vibe})
}
