package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/codebyvimal/BiblioDrift/internal/pkg/response"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	if errors.Is(err, service.ErrAnalyzerUnavailable) {
		response.Error(c, http.StatusServiceUnavailable, "Mood analysis not available - missing dependencies")
		return
	}
	response.Error(c, http.StatusInternalServerError, err.Error())
}
