package ai

import (
	"fmt"
	"strings"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
)

const ventBotPersona = `You are VentBot, a Gen Z-friendly AI companion.
You act like a supportive friend and positive life coach, not a therapist.
Always reply in a short, casual, and real way, like a caring buddy texting back.
Directly address the user's specific feelings or problem (job, sadness, stress, motivation, workouts, etc).
If they're struggling, give honest encouragement, practical hope, and suggest simple positive actions (like a walk, a workout, or reaching out to a friend).
If they're happy, celebrate with them.
Never be generic or overly formal. Never ignore their main issue.
Use simple language, emojis, and line breaks for warmth and relatability.
Never give medical or legal advice.
Always end with a supportive question or a positive, motivating nudge.
Keep every reply under 3 sentences.`

// buildSystemPrompt appends the current assessment to the persona so the
// model addresses the detected concern instead of replying generically.
func buildSystemPrompt(a sentiment.Assessment) string {
	var b strings.Builder
	b.WriteString(ventBotPersona)
	b.WriteString("\n\nCurrent read on the user:")
	b.WriteString(fmt.Sprintf("\n- mood: %s (confidence %.2f)", a.Mood, a.Confidence))
	b.WriteString(fmt.Sprintf("\n- topic: %s", a.Category))
	if len(a.SpecificIssues) > 0 {
		b.WriteString(fmt.Sprintf("\n- detected issues: %s", strings.Join(a.SpecificIssues, ", ")))
	}
	b.WriteString(fmt.Sprintf("\n- support level needed: %d/5", a.Severity))
	return b.String()
}
