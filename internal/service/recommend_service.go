package service

import (
	"fmt"
	"strings"
)

type moodMapping struct {
	mood  string
	query string
}

// moodMappings is ordered: the first keyword found in the query wins, even
// when the query mentions several moods. Do not reorder.
var moodMappings = []moodMapping{
	{"cozy", "comfort reads warm atmosphere"},
	{"dark", "psychological thriller mystery"},
	{"romantic", "romance love story"},
	{"mysterious", "mystery suspense thriller"},
	{"uplifting", "inspiring hopeful positive"},
	{"melancholy", "literary fiction emotional"},
	{"adventurous", "adventure fantasy epic"},
}

// RecommendService expands free-text mood queries into search strings.
type RecommendService struct{}

func NewRecommendService() *RecommendService {
	return &RecommendService{}
}

func (s *RecommendService) MapQuery(query string) string {
	lower := strings.ToLower(query)
	for _, m := range moodMappings {
		if strings.Contains(lower, m.mood) {
			return fmt.Sprintf("AI-optimized %s results: %s", m.mood, m.query)
		}
	}
	return fmt.Sprintf("AI-optimized results for: %s", query)
}
