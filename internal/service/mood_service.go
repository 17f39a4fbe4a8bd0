package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/codebyvimal/BiblioDrift/internal/ai"
	"github.com/codebyvimal/BiblioDrift/internal/model"
	appErr "github.com/codebyvimal/BiblioDrift/internal/pkg/errors"
)

// ErrAnalyzerUnavailable aliases the provider sentinel so that an absent
// manager and a configured-but-unusable provider (blank api key) report the
// same condition to callers.
var ErrAnalyzerUnavailable = ai.ErrUnavailable

// MoodService wraps the optional analyzer. Whether the analyzer exists is
// decided once at startup: a nil manager means every analyzer-backed call
// degrades (empty tags, unavailable errors) instead of failing hard.
type MoodService struct {
	manager *ai.Manager
	cache   *expirable.LRU[string, string]
}

func NewMoodService(manager *ai.Manager) *MoodService {
	cache := expirable.NewLRU[string, string](10000, nil, 2*time.Hour)
	return &MoodService{
		manager: manager,
		cache:   cache,
	}
}

func (s *MoodService) Available() bool {
	return s != nil && s.manager != nil
}

func (s *MoodService) AnalyzeMood(ctx context.Context, title, author string) (*model.MoodAnalysis, error) {
	if !s.Available() {
		return nil, ErrAnalyzerUnavailable
	}
	cacheKey := s.cacheKey("analyze", title, author)
	if cached, ok := s.cache.Get(cacheKey); ok {
		var analysis model.MoodAnalysis
		if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
			return &analysis, nil
		}
	}
	analysis, err := s.manager.AnalyzeBookMood(ctx, title, author)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, appErr.ErrNotFound
	}
	if data, err := json.Marshal(analysis); err == nil {
		s.cache.Add(cacheKey, string(data))
	}
	return analysis, nil
}

// MoodTags never fails: analyzer absence and analyzer errors both collapse
// to an empty tag list.
func (s *MoodService) MoodTags(ctx context.Context, title, author string) []string {
	if !s.Available() {
		return []string{}
	}
	cacheKey := s.cacheKey("tags", title, author)
	if cached, ok := s.cache.Get(cacheKey); ok {
		var tags []string
		if err := json.Unmarshal([]byte(cached), &tags); err == nil {
			return tags
		}
	}
	tags, err := s.manager.MoodTags(ctx, title, author)
	if err != nil {
		logutil.GetLogger(ctx).Warn("mood tags lookup failed",
			zap.String("title", title),
			zap.String("author", author),
			zap.Error(err),
		)
		return []string{}
	}
	if data, err := json.Marshal(tags); err == nil {
		s.cache.Add(cacheKey, string(data))
	}
	return tags
}

func (s *MoodService) EnhancedNote(ctx context.Context, description, title, author string) (string, error) {
	if !s.Available() {
		return "", ErrAnalyzerUnavailable
	}
	return s.manager.EnhancedNote(ctx, description, title, author)
}

func (s *MoodService) ProviderName() string {
	if !s.Available() {
		return ""
	}
	return s.manager.ProviderName()
}

func (s *MoodService) cacheKey(feature, title, author string) string {
	hash := sha256.Sum256([]byte(title + "\x00" + author))
	return feature + ":" + hex.EncodeToString(hash[:])
}
