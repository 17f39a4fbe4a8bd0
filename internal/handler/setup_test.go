package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/codebyvimal/BiblioDrift/internal/ai"
	"github.com/codebyvimal/BiblioDrift/internal/handler"
	"github.com/codebyvimal/BiblioDrift/internal/middleware"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

// scriptedProvider answers each analyzer capability by sniffing its prompt.
type scriptedProvider struct {
	analysis string
	tags     string
	note     string
	err      error
}

func (p *scriptedProvider) Name() string {
	return "scripted"
}

func (p *scriptedProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	switch {
	case strings.Contains(prompt, "mood analyst"):
		return p.analysis, nil
	case strings.Contains(prompt, "tagging assistant"):
		return p.tags, nil
	default:
		return p.note, nil
	}
}

func setupRouter(t *testing.T, provider ai.IProvider, rateLimit time.Duration) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var manager *ai.Manager
	if provider != nil {
		manager = ai.NewManager(provider, "test-model", ai.ManagerConfig{MaxTags: 5})
	}
	moodService := service.NewMoodService(manager)
	noteService := service.NewNoteService(moodService)
	recommendService := service.NewRecommendService()

	deps := handler.RouterDeps{
		Notes:             handler.NewNoteHandler(noteService),
		Moods:             handler.NewMoodHandler(moodService),
		Search:            handler.NewSearchHandler(recommendService),
		Health:            handler.NewHealthHandler(moodService),
		AnalyzerRateLimit: rateLimit,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	parsed := map[string]interface{}{}
	if resp.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	}
	return resp, parsed
}

var errAnalyzerDown = errors.New("analyzer exploded")
