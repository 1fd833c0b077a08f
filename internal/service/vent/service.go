package vent

import (
	"context"
	"log"
	"time"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
	"github.com/ScienHAC/ventspace/internal/model/chat"
	"github.com/ScienHAC/ventspace/internal/observability"
	"github.com/ScienHAC/ventspace/internal/service/ai"
)

// Reply sources surfaced to the client.
const (
	SourceGenerated = "ai_generated"
	SourceCanned    = "ventbot_friendly_short"
	SourceEmergency = "emergency_fallback"
)

// Result is the full outcome of processing one vent.
type Result struct {
	Response        string             `json:"response"`
	Mood            sentiment.Mood     `json:"mood"`
	Confidence      float64            `json:"confidence"`
	NeedsHelp       bool               `json:"needsHelp"`
	Category        sentiment.Category `json:"category"`
	SpecificIssues  []string           `json:"specificIssues"`
	Severity        int                `json:"severity"`
	TreeContributed bool               `json:"treeContributed"`
	Timestamp       string             `json:"timestamp"`
	Source          string             `json:"source"`
}

// Service runs the analyze-then-respond pipeline for each vent. It is
// stateless per request; the only suspension point is the optional external
// generation call, bounded by a timeout.
type Service struct {
	responder    *Responder
	generator    ai.Generator
	metrics      *observability.Metrics
	timeout      time.Duration
	historyLimit int
}

// NewService wires the pipeline. generator may be nil, in which case every
// reply comes from the canned tables. metrics may be nil in tests.
func NewService(responder *Responder, generator ai.Generator, metrics *observability.Metrics, timeout time.Duration, historyLimit int) *Service {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if historyLimit <= 0 {
		historyLimit = 6
	}
	return &Service{
		responder:    responder,
		generator:    generator,
		metrics:      metrics,
		timeout:      timeout,
		historyLimit: historyLimit,
	}
}

// Responder exposes the canned-reply selector for callers that need the
// emergency text.
func (s *Service) Responder() *Responder {
	return s.responder
}

// Process analyzes one vent and produces a supportive reply. A detected
// crisis always gets the reviewed canned reply; the external generator is
// never consulted for it.
func (s *Service) Process(ctx context.Context, message string, history []chat.Turn) Result {
	assessment := sentiment.Analyze(message)
	s.metrics.CountVent(string(assessment.Mood), assessment.NeedsHelp)

	var reply string
	source := SourceCanned

	switch {
	case assessment.NeedsHelp:
		reply = s.responder.CrisisReply()
	case s.generator != nil && !isBareGreeting(message):
		if generated, ok := s.tryGenerate(ctx, message, assessment, history); ok {
			reply = generated
			source = SourceGenerated
		} else {
			reply = s.responder.Respond(message, assessment, history)
		}
	default:
		reply = s.responder.Respond(message, assessment, history)
	}

	return Result{
		Response:        reply,
		Mood:            assessment.Mood,
		Confidence:      assessment.Confidence,
		NeedsHelp:       assessment.NeedsHelp,
		Category:        assessment.Category,
		SpecificIssues:  assessment.SpecificIssues,
		Severity:        assessment.Severity,
		TreeContributed: true,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Source:          source,
	}
}

// tryGenerate makes a single bounded attempt against the external service.
// Any failure degrades to canned dispatch, never to a caller-visible error.
func (s *Service) tryGenerate(ctx context.Context, message string, assessment sentiment.Assessment, history []chat.Turn) (string, bool) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.generator.Generate(genCtx, ai.GenerateRequest{
		Message:    message,
		Assessment: assessment,
		History:    chat.Tail(history, s.historyLimit),
	})
	s.metrics.ObserveGeneratorLatency(time.Since(start))

	if err != nil {
		log.Printf("[vent] external generation failed, falling back to canned reply: %v", err)
		s.metrics.CountGenerator("error")
		return "", false
	}
	if reply == "" {
		log.Printf("[vent] external generation returned empty reply, falling back")
		s.metrics.CountGenerator("empty")
		return "", false
	}

	s.metrics.CountGenerator("ok")
	return reply, true
}
