package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	reply string
	err   error
}

func (p *fakeProvider) Name() string {
	return "fake"
}

func (p *fakeProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	return p.reply, p.err
}

func TestParseMoodAnalysis(t *testing.T) {
	analysis, err := parseMoodAnalysis(`{"primary_mood":"cozy","mood_tags":["warm"],"confidence":0.9,"summary":"Nice."}`)
	require.NoError(t, err)
	require.NotNil(t, analysis)
	require.Equal(t, "cozy", analysis.PrimaryMood)
	require.Equal(t, []string{"warm"}, analysis.MoodTags)
}

func TestParseMoodAnalysisStripsFences(t *testing.T) {
	raw := "```json\n{\"primary_mood\":\"dark\",\"confidence\":0.7}\n```"
	analysis, err := parseMoodAnalysis(raw)
	require.NoError(t, err)
	require.NotNil(t, analysis)
	require.Equal(t, "dark", analysis.PrimaryMood)
	require.NotNil(t, analysis.MoodTags)
}

func TestParseMoodAnalysisUnknown(t *testing.T) {
	analysis, err := parseMoodAnalysis(`{"primary_mood":"UNKNOWN"}`)
	require.NoError(t, err)
	require.Nil(t, analysis)

	analysis, err = parseMoodAnalysis(`{}`)
	require.NoError(t, err)
	require.Nil(t, analysis)
}

func TestParseMoodAnalysisGarbage(t *testing.T) {
	_, err := parseMoodAnalysis("not json at all")
	require.Error(t, err)
}

func TestParseTagsDedupesAndCaps(t *testing.T) {
	tags, err := parseTags(`["dark"," Dark ","tense","bleak","grim"]`, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"dark", "tense", "bleak"}, tags)
}

func TestParseTagsEmpty(t *testing.T) {
	_, err := parseTags(`[]`, 5)
	require.Error(t, err)

	_, err = parseTags(`["",""]`, 5)
	require.Error(t, err)
}

func TestManagerEnhancedNote(t *testing.T) {
	m := NewManager(&fakeProvider{reply: "  A windswept tale.  "}, "test-model", ManagerConfig{})
	note, err := m.EnhancedNote(context.Background(), "desc", "Title", "Author")
	require.NoError(t, err)
	require.Equal(t, "A windswept tale.", note)
}

func TestManagerEmptyResponseIsError(t *testing.T) {
	m := NewManager(&fakeProvider{reply: "   "}, "test-model", ManagerConfig{})
	_, err := m.EnhancedNote(context.Background(), "desc", "Title", "Author")
	require.Error(t, err)
}

func TestManagerPromptContainsBook(t *testing.T) {
	var seen string
	m := NewManager(&capturingProvider{out: `["dark"]`, seen: &seen}, "test-model", ManagerConfig{MaxTags: 5})
	_, err := m.MoodTags(context.Background(), "Rebecca", "Daphne du Maurier")
	require.NoError(t, err)
	require.True(t, strings.Contains(seen, "Rebecca"))
	require.True(t, strings.Contains(seen, "Daphne du Maurier"))
}

type capturingProvider struct {
	out  string
	seen *string
}

func (p *capturingProvider) Name() string {
	return "capturing"
}

func (p *capturingProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	*p.seen = prompt
	return p.out, nil
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider("does-not-exist", map[string]interface{}{})
	require.Error(t, err)

	_, err = NewProvider("", nil)
	require.Error(t, err)
}

func TestNewProviderRegistered(t *testing.T) {
	for _, name := range []string{"gemini", "openai", "openrouter"} {
		p, err := NewProvider(name, map[string]interface{}{"api_key": "k"})
		require.NoError(t, err, name)
		require.Equal(t, name, p.Name())
	}
}
