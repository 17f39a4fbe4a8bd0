package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	noteDeepNarrative = "A deep, complex narrative that readers find emotionally resonant."
	noteCompelling    = "A compelling story with layers waiting to be discovered."
	noteMystery       = "A mysterious tale that will keep you guessing."
	noteRomance       = "A heartwarming story perfect for cozy reading."
	noteDefault       = "A delightful read for any quiet moment."
)

// NoteService produces a short descriptive vibe for a book. It prefers the
// enhanced analyzer when one is configured and falls back to description
// heuristics on absence or on any analyzer failure.
type NoteService struct {
	moods *MoodService
}

func NewNoteService(moods *MoodService) *NoteService {
	return &NoteService{moods: moods}
}

func (s *NoteService) Generate(ctx context.Context, description, title, author string) string {
	if s.moods.Available() && title != "" && author != "" {
		note, err := s.moods.EnhancedNote(ctx, description, title, author)
		if err == nil {
			return note
		}
		logutil.GetLogger(ctx).Warn("mood analysis failed, using fallback",
			zap.String("title", title),
			zap.Error(err),
		)
	}
	return heuristicNote(description)
}

// heuristicNote is evaluated in order, first match wins. Lengths count
// characters, not bytes, so multi-byte descriptions branch the same way.
func heuristicNote(description string) string {
	lower := strings.ToLower(description)
	length := utf8.RuneCountInString(description)
	switch {
	case length > 200:
		return noteDeepNarrative
	case length > 100:
		return noteCompelling
	case strings.Contains(lower, "mystery"):
		return noteMystery
	case strings.Contains(lower, "romance"):
		return noteRomance
	default:
		return noteDefault
	}
}
