package assess

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"
)

// ErrMissingPrompt is returned when Generate receives an empty prompt.
var ErrMissingPrompt = errors.New("prompt is required")

// keywordGroup maps role keywords to a canned question block. Groups are
// evaluated in order; the first containing match wins.
type keywordGroup struct {
	keywords []string
	block    string
}

var keywordGroups = []keywordGroup{
	{keywords: []string{"software engineer", "developer"}, block: softwareEngineerQuestions},
	{keywords: []string{"data scientist", "data analyst"}, block: dataScientistQuestions},
	{keywords: []string{"product manager", "project manager"}, block: productManagerQuestions},
}

// Service emulates an AI question generator with a fixed lookup table. The
// response delay exists only to approximate the latency of a real backend.
type Service struct {
	logger *slog.Logger
	delay  time.Duration
}

// New constructs a Service.
func New(logger *slog.Logger, delay time.Duration) Service {
	return Service{logger: logger, delay: delay}
}

// Generate returns the question block for the first keyword group the prompt
// matches, or the generic block when none match. It is total over non-empty
// prompts.
func (s Service) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrMissingPrompt
	}
	block := selectBlock(prompt)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	s.logger.Info("generated interview questions", "prompt_len", len(prompt))
	return block, nil
}

func selectBlock(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.block
			}
		}
	}
	return genericQuestions
}
