package chat

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Turn is one prior message in the conversation window supplied by the
// client. The server treats it as read-only context and never stores it
// beyond the current request.
type Turn struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Tail returns at most limit trailing turns, oldest first.
func Tail(turns []Turn, limit int) []Turn {
	if limit <= 0 || len(turns) <= limit {
		return turns
	}
	return turns[len(turns)-limit:]
}
