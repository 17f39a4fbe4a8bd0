package service

import (
	"context"

	"github.com/codebyvimal/BiblioDrift/internal/ai"
)

type scriptedProvider struct {
	generate func(prompt string) (string, error)
	calls    int
}

func (p *scriptedProvider) Name() string {
	return "scripted"
}

func (p *scriptedProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	p.calls++
	return p.generate(prompt)
}

func newTestMoodService(provider ai.IProvider) *MoodService {
	return NewMoodService(ai.NewManager(provider, "test-model", ai.ManagerConfig{}))
}
