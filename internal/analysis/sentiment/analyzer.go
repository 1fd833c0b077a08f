package sentiment

import "strings"

// Mood is the coarse emotional classification derived from keyword frequency.
type Mood string

const (
	Neutral Mood = "neutral"
	Sad     Mood = "sad"
	Anxious Mood = "anxious"
	Angry   Mood = "angry"
	Happy   Mood = "happy"
)

// Category is the topical bucket derived from detected issue tags.
type Category string

const (
	General       Category = "general"
	Academic      Category = "academic"
	Social        Category = "social"
	Career        Category = "career"
	Family        Category = "family"
	MentalHealth  Category = "mental_health"
	Relationships Category = "relationships"
)

// Assessment is the structured result of analyzing one vent.
type Assessment struct {
	Mood           Mood     `json:"mood"`
	Confidence     float64  `json:"confidence"`
	NeedsHelp      bool     `json:"needsHelp"`
	Category       Category `json:"category"`
	SpecificIssues []string `json:"specificIssues"`
	Severity       int      `json:"severity"`
}

var crisisPhrases = []string{
	"suicide", "kill myself", "end it all", "can't go on", "want to die",
	"self harm", "hurt myself", "no point living", "better off dead",
}

// issueRule tags a vent when its predicate matches the lowered text.
// Rules run in declaration order; a tag is appended at most once.
type issueRule struct {
	tag   string
	match func(text string, tagged map[string]bool) bool
}

func anyOf(words ...string) func(string, map[string]bool) bool {
	return func(text string, _ map[string]bool) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

func qualified(word string, qualifiers ...string) func(string, map[string]bool) bool {
	return func(text string, _ map[string]bool) bool {
		if !strings.Contains(text, word) {
			return false
		}
		for _, q := range qualifiers {
			if strings.Contains(text, q) {
				return true
			}
		}
		return false
	}
}

var issueRules = []issueRule{
	// Academic
	{tag: "competitive_exams", match: anyOf("jee", "iit", "neet")},
	{tag: "academic_stress", match: anyOf("exam", "test", "study")},
	{tag: "college_issues", match: anyOf("college", "university", "admission")},
	{tag: "academic_performance", match: anyOf("grade", "marks", "score")},
	// Social
	{tag: "racism", match: anyOf("racism", "racist", "discriminat")},
	{tag: "bullying", match: anyOf("bully", "harassment", "teasing")},
	{tag: "loneliness", match: anyOf("lonely", "alone", "isolated")},
	{tag: "friendship_issues", match: qualified("friend", "no", "lost", "fight")},
	// Career
	{tag: "job_loss", match: anyOf("job loss", "fired", "unemployed")},
	{tag: "career_concerns", match: anyOf("interview", "job search", "career")},
	{tag: "internship_placement", match: anyOf("internship", "placement")},
	{tag: "job", match: func(text string, tagged map[string]bool) bool {
		return strings.Contains(text, "job") && !tagged["job_loss"] && !tagged["career_concerns"]
	}},
	// Motivation
	{tag: "motivation", match: anyOf("motivate", "motivation", "inspire")},
	{tag: "workout", match: anyOf("workout", "exercise", "gym", "run", "walk")},
	// Family
	{tag: "parent_conflict", match: qualified("parents", "fight", "don't understand", "pressure")},
	{tag: "family_problems", match: qualified("family", "problem", "issue", "tension")},
	// Health
	{tag: "depression", match: anyOf("depression", "depressed")},
	{tag: "anxiety", match: anyOf("anxiety", "anxious", "panic")},
	{tag: "sleep_issues", match: qualified("sleep", "can't", "insomnia", "trouble")},
	// Relationships
	{tag: "breakup", match: anyOf("breakup", "broke up", "relationship ended")},
	{tag: "heartbreak", match: func(text string, _ map[string]bool) bool {
		return strings.Contains(text, "heartbreak") ||
			(strings.Contains(text, "love") && strings.Contains(text, "hurt"))
	}},
	// Financial
	{tag: "financial_stress", match: qualified("money", "no", "need", "problem")},
	// Self-esteem
	{tag: "low_self_esteem", match: anyOf("worthless", "useless", "failure")},
	{tag: "body_image", match: anyOf("ugly", "fat", "body")},
}

var moodKeywords = map[Mood][]string{
	Sad: {
		"sad", "depressed", "down", "hopeless", "worthless", "empty", "hurt",
		"pain", "crying", "tears", "disappointed", "upset", "rejected", "failed",
		"disheartened",
	},
	Anxious: {
		"anxious", "worried", "scared", "panic", "stress", "overwhelmed",
		"nervous", "fear", "tension", "restless", "uneasy",
	},
	Angry: {
		"angry", "mad", "furious", "hate", "annoyed", "frustrated", "rage",
		"pissed", "irritated",
	},
	Happy: {
		"happy", "good", "great", "excited", "joy", "love", "amazing",
		"wonderful", "awesome", "fantastic", "glad", "pleased",
	},
}

// moodPriority breaks ties between equal keyword counts. The order matters:
// a vent that reads equally sad and happy is treated as sad.
var moodPriority = []Mood{Sad, Anxious, Angry, Happy}

// categoryBuckets map issue tags to topical categories. Buckets are tested
// in order and a later match overwrites an earlier one.
var categoryBuckets = []struct {
	category Category
	tags     []string
}{
	{Academic, []string{"competitive_exams", "academic_stress", "college_issues", "academic_performance"}},
	{Social, []string{"racism", "bullying", "loneliness", "friendship_issues"}},
	{Career, []string{"job_loss", "career_concerns", "internship_placement", "job", "motivation", "workout"}},
	{Family, []string{"parent_conflict", "family_problems"}},
	{MentalHealth, []string{"depression", "anxiety", "sleep_issues"}},
	{Relationships, []string{"breakup", "heartbreak"}},
}

// Analyze classifies a single vent. It never fails: blank input yields the
// neutral default assessment.
func Analyze(text string) Assessment {
	if strings.TrimSpace(text) == "" {
		return Assessment{
			Mood:           Neutral,
			Confidence:     0.3,
			NeedsHelp:      false,
			Category:       General,
			SpecificIssues: []string{},
			Severity:       1,
		}
	}

	lowered := strings.ToLower(text)

	needsHelp := false
	for _, phrase := range crisisPhrases {
		if strings.Contains(lowered, phrase) {
			needsHelp = true
			break
		}
	}

	issues := make([]string, 0, 4)
	tagged := make(map[string]bool, 4)
	for _, rule := range issueRules {
		if tagged[rule.tag] {
			continue
		}
		if rule.match(lowered, tagged) {
			issues = append(issues, rule.tag)
			tagged[rule.tag] = true
		}
	}

	mood, confidence := scoreMood(lowered)

	category := General
	for _, bucket := range categoryBuckets {
		for _, tag := range bucket.tags {
			if tagged[tag] {
				category = bucket.category
				break
			}
		}
	}

	severity := 1
	switch {
	case needsHelp:
		severity = 5
	case len(issues) > 2:
		severity = 4
	case len(issues) > 1:
		severity = 3
	case len(issues) > 0:
		severity = 2
	}

	return Assessment{
		Mood:           mood,
		Confidence:     confidence,
		NeedsHelp:      needsHelp,
		Category:       category,
		SpecificIssues: issues,
		Severity:       severity,
	}
}

func scoreMood(lowered string) (Mood, float64) {
	counts := make(map[Mood]int, len(moodKeywords))
	maxCount := 0
	for mood, words := range moodKeywords {
		for _, w := range words {
			if strings.Contains(lowered, w) {
				counts[mood]++
			}
		}
		if counts[mood] > maxCount {
			maxCount = counts[mood]
		}
	}

	if maxCount == 0 {
		return Neutral, 0.5
	}

	confidence := 0.6 + 0.2*float64(maxCount)
	if confidence > 0.95 {
		confidence = 0.95
	}

	for _, mood := range moodPriority {
		if counts[mood] == maxCount {
			return mood, confidence
		}
	}
	return Neutral, 0.5
}
