package model

// MoodAnalysis is the structured result produced by the external analyzer
// for a title/author pair. It only lives for the duration of a request.
type MoodAnalysis struct {
	PrimaryMood string   `json:"primary_mood"`
	MoodTags    []string `json:"mood_tags"`
	Confidence  float64  `json:"confidence"`
	Summary     string   `json:"summary"`
}
