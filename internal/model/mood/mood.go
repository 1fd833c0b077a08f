package mood

import (
	"sync"

	"github.com/google/uuid"
)

// Entry is one logged mood check-in.
type Entry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

// Store keeps mood check-ins for the life of the process. There is no
// persistence layer; history resets on restart.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore returns a Store preloaded with the supplied entries.
func NewStore(entries []Entry) *Store {
	return &Store{entries: append([]Entry(nil), entries...)}
}

// Log appends a check-in, assigning an id when absent.
func (s *Store) Log(entry Entry) Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry
}

// Recent returns all logged entries, oldest first.
func (s *Store) Recent() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry(nil), s.entries...)
}

// Seed provides the demo mood history the product ships with.
func Seed() []Entry {
	return []Entry{
		{ID: "1", Date: "2024-06-10T00:00:00.000Z", Mood: "anxious", Intensity: 4, Notes: "Exam stress"},
		{ID: "2", Date: "2024-06-11T00:00:00.000Z", Mood: "sad", Intensity: 3, Notes: "College rejection"},
		{ID: "3", Date: "2024-06-12T00:00:00.000Z", Mood: "hopeful", Intensity: 4, Notes: "New opportunities"},
	}
}
