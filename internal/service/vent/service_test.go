package vent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ScienHAC/ventspace/internal/model/chat"
	"github.com/ScienHAC/ventspace/internal/service/ai"
)

type stubGenerator struct {
	reply   string
	err     error
	calls   int
	lastReq ai.GenerateRequest
}

func (s *stubGenerator) Generate(_ context.Context, req ai.GenerateRequest) (string, error) {
	s.calls++
	s.lastReq = req
	return s.reply, s.err
}

func newTestService(generator ai.Generator) *Service {
	return NewService(NewResponderWithSeed(7), generator, nil, time.Second, 6)
}

func TestProcessWithoutGeneratorUsesCannedReply(t *testing.T) {
	svc := newTestService(nil)
	result := svc.Process(context.Background(), "I feel so lonely", nil)

	if result.Source != SourceCanned {
		t.Fatalf("source = %q, want %q", result.Source, SourceCanned)
	}
	if result.Response != lonelinessReply {
		t.Fatalf("response = %q, want loneliness reply", result.Response)
	}
	if !result.TreeContributed {
		t.Fatal("expected treeContributed to be set")
	}
	if _, err := time.Parse(time.RFC3339, result.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", result.Timestamp)
	}
}

func TestProcessRepeatedCallsStableWithoutGenerator(t *testing.T) {
	svc := newTestService(nil)
	first := svc.Process(context.Background(), "my anxiety is bad", nil)
	second := svc.Process(context.Background(), "my anxiety is bad", nil)
	if first.Response != second.Response {
		t.Fatalf("canned reply changed between calls: %q vs %q", first.Response, second.Response)
	}
}

func TestProcessUsesGeneratorWhenAvailable(t *testing.T) {
	gen := &stubGenerator{reply: "That sounds rough, want to talk it through? 💚"}
	svc := newTestService(gen)

	history := []chat.Turn{
		{Sender: chat.SenderUser, Text: "hi"},
		{Sender: chat.SenderAssistant, Text: "Hey! What's up?"},
	}
	result := svc.Process(context.Background(), "work has been stressful", history)

	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if result.Source != SourceGenerated {
		t.Fatalf("source = %q, want %q", result.Source, SourceGenerated)
	}
	if result.Response != gen.reply {
		t.Fatalf("response = %q, want generated reply", result.Response)
	}
	if len(gen.lastReq.History) != 2 {
		t.Fatalf("history window length = %d, want 2", len(gen.lastReq.History))
	}
}

func TestProcessGeneratorHistoryWindowBounded(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	svc := newTestService(gen)

	history := make([]chat.Turn, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, chat.Turn{Sender: chat.SenderUser, Text: "turn"})
	}
	svc.Process(context.Background(), "hello there friend", history)

	if len(gen.lastReq.History) != 6 {
		t.Fatalf("history window length = %d, want 6", len(gen.lastReq.History))
	}
}

func TestProcessGeneratorErrorFallsBackToCanned(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	svc := newTestService(gen)

	result := svc.Process(context.Background(), "I feel so lonely", nil)
	if result.Source != SourceCanned {
		t.Fatalf("source = %q, want canned fallback", result.Source)
	}
	if result.Response != lonelinessReply {
		t.Fatalf("response = %q, want loneliness reply", result.Response)
	}
}

func TestProcessGeneratorEmptyReplyFallsBackToCanned(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	svc := newTestService(gen)

	result := svc.Process(context.Background(), "I feel so lonely", nil)
	if result.Source != SourceCanned {
		t.Fatalf("source = %q, want canned fallback", result.Source)
	}
}

func TestProcessBareGreetingSkipsGenerator(t *testing.T) {
	gen := &stubGenerator{reply: "generated text"}
	svc := newTestService(gen)

	result := svc.Process(context.Background(), "hey", nil)

	if gen.calls != 0 {
		t.Fatalf("generator was consulted %d times for a bare greeting", gen.calls)
	}
	if result.Source != SourceCanned {
		t.Fatalf("source = %q, want canned", result.Source)
	}
	if !isGreetingReply(result.Response) {
		t.Fatalf("expected greeting-class reply, got %q", result.Response)
	}
}

func TestProcessCrisisNeverConsultsGenerator(t *testing.T) {
	gen := &stubGenerator{reply: "generated text that must not be used"}
	svc := newTestService(gen)

	result := svc.Process(context.Background(), "I want to die", nil)

	if gen.calls != 0 {
		t.Fatalf("generator was consulted %d times for a crisis vent", gen.calls)
	}
	if !result.NeedsHelp {
		t.Fatal("expected needsHelp to be set")
	}
	if result.Severity != 5 {
		t.Fatalf("severity = %d, want 5", result.Severity)
	}
	if !strings.Contains(result.Response, "741741") {
		t.Fatalf("crisis response missing hotline reference: %q", result.Response)
	}
	if result.Source != SourceCanned {
		t.Fatalf("source = %q, want canned", result.Source)
	}
}
