package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/codebyvimal/BiblioDrift/internal/model"
)

const unknownBookSentinel = "UNKNOWN"

type ManagerConfig struct {
	Timeout int
	MaxTags int
}

// Manager owns the prompts and response parsing for the mood analyzer
// capabilities. A nil Manager means the analyzer is not configured.
type Manager struct {
	provider IProvider
	model    string
	cfg      ManagerConfig
}

func NewManager(provider IProvider, model string, cfg ManagerConfig) *Manager {
	return &Manager{
		provider: provider,
		model:    model,
		cfg:      cfg,
	}
}

func (m *Manager) ProviderName() string {
	if m == nil || m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

func (m *Manager) AnalyzeBookMood(ctx context.Context, title, author string) (*model.MoodAnalysis, error) {
	prompt := fmt.Sprintf(`You are a book mood analyst working from reader reviews.
Analyze the overall mood of the book below.
- Return a JSON object with fields: primary_mood (string), mood_tags (array of strings), confidence (number between 0 and 1), summary (string).
- If you do not recognize the book, return {"primary_mood": "%s"}.
- Output ONLY the JSON object. No extra text.

BOOK:
Title: %s
Author: %s`, unknownBookSentinel, title, author)
	result, err := m.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseMoodAnalysis(result)
}

func (m *Manager) MoodTags(ctx context.Context, title, author string) ([]string, error) {
	maxTags := m.cfg.MaxTags
	if maxTags <= 0 {
		maxTags = 5
	}
	if maxTags > 10 {
		maxTags = 10
	}
	prompt := fmt.Sprintf(`You are a book mood tagging assistant.
For the book below, list up to %d short mood tags (single words or short phrases like "dark", "cozy", "slow burn").
- Return a JSON array of strings only. No extra text.

BOOK:
Title: %s
Author: %s`, maxTags, title, author)
	result, err := m.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseTags(result, maxTags)
}

func (m *Manager) EnhancedNote(ctx context.Context, description, title, author string) (string, error) {
	prompt := fmt.Sprintf(`You are a book recommendation writer.
Write a single short sentence describing the vibe of the book below, based on its description and how readers talk about it.
- One sentence, under 25 words.
- Output ONLY the sentence. No quotes, no extra text.

BOOK:
Title: %s
Author: %s
Description: %s`, title, author, description)
	return m.generateText(ctx, prompt)
}

func (m *Manager) generateText(ctx context.Context, prompt string) (string, error) {
	if m == nil || m.provider == nil {
		return "", ErrUnavailable
	}
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(m.cfg.Timeout)*time.Second)
		defer cancel()
	}
	resp, err := m.provider.Generate(ctx, m.model, prompt)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp)
	if text == "" {
		return "", fmt.Errorf("empty ai response")
	}
	return text, nil
}

// parseMoodAnalysis returns (nil, nil) when the model reports it does not
// recognize the book, distinguishing "no analysis" from a failed call.
func parseMoodAnalysis(output string) (*model.MoodAnalysis, error) {
	clean := stripFences(output)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	var analysis model.MoodAnalysis
	if err := json.Unmarshal([]byte(clean), &analysis); err != nil {
		return nil, fmt.Errorf("parse mood analysis: %w", err)
	}
	if analysis.PrimaryMood == "" || strings.EqualFold(analysis.PrimaryMood, unknownBookSentinel) {
		return nil, nil
	}
	if analysis.MoodTags == nil {
		analysis.MoodTags = []string{}
	}
	return &analysis, nil
}

func parseTags(output string, maxTags int) ([]string, error) {
	clean := stripFences(output)
	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var tags []string
	if err := json.Unmarshal([]byte(clean), &tags); err != nil {
		return nil, fmt.Errorf("parse tags: %w", err)
	}
	uniq := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, tag := range tags {
		normalized := strings.TrimSpace(tag)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, normalized)
		if len(uniq) >= maxTags {
			break
		}
	}
	if len(uniq) == 0 {
		return nil, fmt.Errorf("no tags found")
	}
	return uniq, nil
}

func stripFences(output string) string {
	clean := strings.TrimSpace(output)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
