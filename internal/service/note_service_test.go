package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateHeuristics(t *testing.T) {
	notes := NewNoteService(NewMoodService(nil))
	ctx := context.Background()

	long := strings.Repeat("x", 201)
	require.Equal(t, noteDeepNarrative, notes.Generate(ctx, long, "", ""))

	medium := strings.Repeat("x", 150)
	require.Equal(t, noteCompelling, notes.Generate(ctx, medium, "", ""))

	require.Equal(t, noteMystery, notes.Generate(ctx, "A mystery", "", ""))
	require.Equal(t, noteMystery, notes.Generate(ctx, "A MYSTERY novel", "", ""))
	require.Equal(t, noteRomance, notes.Generate(ctx, "a romance story", "", ""))
	require.Equal(t, noteDefault, notes.Generate(ctx, "", "", ""))
}

func TestGenerateLengthCountsRunes(t *testing.T) {
	notes := NewNoteService(NewMoodService(nil))
	ctx := context.Background()

	// 150 characters but 300 bytes: stays in the mid-length branch.
	medium := strings.Repeat("é", 150)
	require.Equal(t, noteCompelling, notes.Generate(ctx, medium, "", ""))

	long := strings.Repeat("é", 201)
	require.Equal(t, noteDeepNarrative, notes.Generate(ctx, long, "", ""))

	short := strings.Repeat("é", 100)
	require.Equal(t, noteDefault, notes.Generate(ctx, short, "", ""))
}

func TestGenerateLengthBeatsKeyword(t *testing.T) {
	notes := NewNoteService(NewMoodService(nil))

	// 201 chars containing "mystery": length branch wins.
	desc := "mystery " + strings.Repeat("x", 193)
	require.Greater(t, len(desc), 200)
	require.Equal(t, noteDeepNarrative, notes.Generate(context.Background(), desc, "", ""))
}

func TestGenerateUsesEnhancedNote(t *testing.T) {
	provider := &scriptedProvider{generate: func(prompt string) (string, error) {
		return "A slow-burn gothic tale soaked in sea air.", nil
	}}
	notes := NewNoteService(newTestMoodService(provider))

	got := notes.Generate(context.Background(), "some description", "Rebecca", "Daphne du Maurier")
	require.Equal(t, "A slow-burn gothic tale soaked in sea air.", got)
	require.Equal(t, 1, provider.calls)
}

func TestGenerateFallsBackOnAnalyzerError(t *testing.T) {
	provider := &scriptedProvider{generate: func(prompt string) (string, error) {
		return "", errors.New("upstream exploded")
	}}
	notes := NewNoteService(newTestMoodService(provider))

	got := notes.Generate(context.Background(), "A mystery", "Rebecca", "Daphne du Maurier")
	require.Equal(t, noteMystery, got)
}

func TestGenerateSkipsAnalyzerWithoutTitleOrAuthor(t *testing.T) {
	provider := &scriptedProvider{generate: func(prompt string) (string, error) {
		return "should not be used", nil
	}}
	notes := NewNoteService(newTestMoodService(provider))

	require.Equal(t, noteDefault, notes.Generate(context.Background(), "short", "Title Only", ""))
	require.Equal(t, noteDefault, notes.Generate(context.Background(), "short", "", "Author Only"))
	require.Equal(t, 0, provider.calls)
}
