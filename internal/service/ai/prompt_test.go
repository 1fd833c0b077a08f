package ai

import (
	"strings"
	"testing"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
)

func TestBuildSystemPromptEmbedsAssessment(t *testing.T) {
	a := sentiment.Assessment{
		Mood:           sentiment.Anxious,
		Confidence:     0.8,
		Category:       sentiment.Career,
		SpecificIssues: []string{"job", "anxiety"},
		Severity:       3,
	}

	prompt := buildSystemPrompt(a)

	for _, want := range []string{"VentBot", "anxious", "career", "job, anxiety", "3/5"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "under 3 sentences") {
		t.Fatalf("prompt missing length constraint:\n%s", prompt)
	}
}

func TestBuildSystemPromptOmitsEmptyIssues(t *testing.T) {
	a := sentiment.Assessment{Mood: sentiment.Neutral, Category: sentiment.General, Severity: 1}
	prompt := buildSystemPrompt(a)
	if strings.Contains(prompt, "detected issues") {
		t.Fatalf("prompt should omit issues line when none detected:\n%s", prompt)
	}
}
