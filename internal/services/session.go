package services

import (
	"sync"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

// ChatSession holds one append-only transcript plus the in-flight flag that
// keeps submissions single-file. Transcripts live only in memory: a page
// reload starts a fresh session.
type ChatSession struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	busy     bool
}

func newChatSession() *ChatSession {
	return &ChatSession{
		messages: []models.ChatMessage{{Role: models.RoleModel, Text: Greeting}},
	}
}

// Snapshot returns a copy of the transcript.
func (s *ChatSession) Snapshot() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy reports whether a request is in flight.
func (s *ChatSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// beginTurn appends the user message and marks the session awaiting a
// response. It refuses (returning ok=false) when a request is already in
// flight, so duplicate submissions are dropped rather than queued.
func (s *ChatSession) beginTurn(text string) ([]models.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return nil, false
	}
	s.busy = true
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleUser, Text: text})

	history := make([]models.ChatMessage, len(s.messages))
	copy(history, s.messages)
	return history, true
}

// endTurn appends the model reply and returns the session to idle.
func (s *ChatSession) endTurn(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleModel, Text: reply})
	s.busy = false
}

// ChatSessionStore hands out per-session transcripts keyed by the browser
// session id.
type ChatSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*ChatSession
}

func NewChatSessionStore() *ChatSessionStore {
	return &ChatSessionStore{sessions: make(map[string]*ChatSession)}
}

// GetOrCreate returns the session for the id, seeding a new transcript with
// the assistant greeting on first touch.
func (s *ChatSessionStore) GetOrCreate(sessionID string) *ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = newChatSession()
		s.sessions[sessionID] = session
	}
	return session
}
