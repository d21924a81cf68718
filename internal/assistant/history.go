package assistant

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// StoredMessage is one transcript entry. Timestamps are unix milliseconds to
// match the web client's message shape.
type StoredMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "model"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Transcript is the message history of one chat session.
type Transcript struct {
	SessionID string          `json:"session_id"`
	Messages  []StoredMessage `json:"messages"`
	StartedAt time.Time       `json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at,omitempty"`
}

// TranscriptStore keeps per-session chat history in memory. History is never
// sent upstream; it exists so a reconnecting websocket client can restore
// its conversation view.
type TranscriptStore struct {
	sessions map[string]*Transcript
	mu       sync.RWMutex
}

// NewTranscriptStore creates an empty store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		sessions: make(map[string]*Transcript),
	}
}

// Begin starts a new session and returns its id.
func (s *TranscriptStore) Begin() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := generateID()
	s.sessions[id] = &Transcript{
		SessionID: id,
		Messages:  []StoredMessage{},
		StartedAt: time.Now(),
	}
	return id
}

// Append records a message in a session's transcript.
func (s *TranscriptStore) Append(sessionID, role, text string) (StoredMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr, ok := s.sessions[sessionID]
	if !ok {
		return StoredMessage{}, fmt.Errorf("session not found: %s", sessionID)
	}

	msg := StoredMessage{
		ID:        generateID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	tr.Messages = append(tr.Messages, msg)
	return msg, nil
}

// Messages returns a session's transcript in order.
func (s *TranscriptStore) Messages(sessionID string) ([]StoredMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tr, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return append([]StoredMessage(nil), tr.Messages...), true
}

// End marks a session finished. The transcript stays readable.
func (s *TranscriptStore) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr, ok := s.sessions[sessionID]; ok && tr.EndedAt == nil {
		now := time.Now()
		tr.EndedAt = &now
	}
}

func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
