package vent

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
	"github.com/ScienHAC/ventspace/internal/model/chat"
)

var greetings = map[string]bool{
	"hi":      true,
	"hello":   true,
	"hey":     true,
	"hii":     true,
	"sup":     true,
	"whatsup": true,
}

// isBareGreeting reports whether the message is nothing but a greeting.
// Bare greetings always get a canned greeting reply, never a generated one.
func isBareGreeting(message string) bool {
	return greetings[strings.ToLower(strings.TrimSpace(message))]
}

// Responder selects canned replies for a vent. Selection is deterministic
// apart from template choice, which draws from the injected random source.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a Responder with a time-seeded random source.
func NewResponder() *Responder {
	return NewResponderWithSeed(time.Now().UnixNano())
}

// NewResponderWithSeed creates a Responder with a fixed seed so tests can
// assert exact template output.
func NewResponderWithSeed(seed int64) *Responder {
	return &Responder{rng: rand.New(rand.NewSource(seed))}
}

// CrisisReply returns the mandated crisis-intervention text. It is the one
// reply that may never come from the external generator.
func (r *Responder) CrisisReply() string {
	return crisisReply
}

// EmergencyReply returns the hardcoded last-resort reply for unexpected
// internal failures.
func (r *Responder) EmergencyReply() string {
	return emergencyReply
}

// Respond picks a reply for the message. Dispatch runs in strict priority
// order and the first match wins: crisis, bare greeting, specific issue,
// mood, generic support.
func (r *Responder) Respond(message string, a sentiment.Assessment, history []chat.Turn) string {
	if a.NeedsHelp {
		return crisisReply
	}

	lowered := strings.ToLower(strings.TrimSpace(message))
	if isBareGreeting(lowered) {
		if recentDistress(history) {
			return greetingCheckInReply
		}
		return r.pick(greetingReplies)
	}

	tagged := make(map[string]bool, len(a.SpecificIssues))
	for _, tag := range a.SpecificIssues {
		tagged[tag] = true
	}

	switch {
	case tagged["job_loss"] || tagged["job"] || strings.Contains(lowered, "job"):
		if strings.Contains(lowered, "motivat") {
			return jobMotivationReply
		}
		return jobReply
	case tagged["motivation"] || tagged["workout"]:
		return motivationReply
	case tagged["racism"]:
		return racismReply
	case tagged["loneliness"]:
		return lonelinessReply
	case tagged["depression"]:
		return depressionReply
	case tagged["anxiety"]:
		return anxietyReply
	case tagged["breakup"] || tagged["heartbreak"]:
		return breakupReply
	case tagged["parent_conflict"] || tagged["family_problems"]:
		return familyReply
	}

	switch a.Mood {
	case sentiment.Happy:
		return happyMoodReply
	case sentiment.Sad:
		return sadMoodReply
	case sentiment.Angry:
		return angryMoodReply
	case sentiment.Anxious:
		return anxiousMoodReply
	}

	return r.pick(genericReplies)
}

// recentDistress reports whether the trailing conversation window shows the
// user was struggling, so a bare greeting gets a check-in instead of small
// talk.
func recentDistress(history []chat.Turn) bool {
	for _, turn := range chat.Tail(history, 6) {
		if turn.Sender != chat.SenderUser {
			continue
		}
		a := sentiment.Analyze(turn.Text)
		if a.Severity >= 2 || a.Mood == sentiment.Sad || a.Mood == sentiment.Anxious {
			return true
		}
	}
	return false
}

func (r *Responder) pick(candidates []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return candidates[r.rng.Intn(len(candidates))]
}
