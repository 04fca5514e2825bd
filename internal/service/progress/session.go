package progress

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lingokit/lingo-api/internal/domain"
)

// SessionState is the lifecycle state of a practice session.
type SessionState string

// Session lifecycle: a session is created in progress (the review batch
// is selected at creation) and moves to completed exactly once.
const (
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
)

// Session is the in-memory state of one practice session: the review
// batch handed to the client plus answer counters. Sessions live in the
// process only; the durable outcome of a session is the mastery records
// and stats it writes, not the session itself.
type Session struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LanguageID uuid.UUID
	Items      []domain.VocabularyItem
	StartedAt  time.Time

	mu          sync.Mutex
	state       SessionState
	itemSet     map[uuid.UUID]struct{}
	answeredSet map[uuid.UUID]struct{}
	answered    int
	correct     int
}

// NewSession creates an in-progress session for the given user over the
// selected review batch.
func NewSession(userID, languageID uuid.UUID, items []domain.VocabularyItem, now time.Time) *Session {
	itemSet := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		itemSet[item.ID] = struct{}{}
	}

	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		LanguageID:  languageID,
		Items:       items,
		StartedAt:   now,
		state:       SessionInProgress,
		itemSet:     itemSet,
		answeredSet: make(map[uuid.UUID]struct{}, len(items)),
	}
}

// CheckAnswerable reports whether an answer for the given vocabulary
// item can be accepted right now. It does not change session state, so
// the caller can persist the mastery update first and only count the
// answer once the write succeeded.
func (s *Session) CheckAnswerable(vocabularyID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == SessionCompleted {
		return ErrSessionCompleted
	}
	if _, ok := s.itemSet[vocabularyID]; !ok {
		return ErrItemNotInSession
	}
	if _, ok := s.answeredSet[vocabularyID]; ok {
		return ErrItemAlreadyAnswered
	}
	return nil
}

// CountAnswer records one answered item in the session counters. An
// item already counted is ignored, so a racing duplicate cannot inflate
// the totals or re-run the mastery update twice through the counters.
func (s *Session) CountAnswer(vocabularyID uuid.UUID, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answeredSet[vocabularyID]; ok {
		return
	}
	s.answeredSet[vocabularyID] = struct{}{}

	s.answered++
	if correct {
		s.correct++
	}
}

// Complete transitions the session to completed and returns its final
// counters. A second call returns ErrSessionCompleted.
func (s *Session) Complete() (answered, correct int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == SessionCompleted {
		return 0, 0, ErrSessionCompleted
	}
	s.state = SessionCompleted
	return s.answered, s.correct, nil
}

// Reopen reverts a completed session back to in progress. The service
// uses it when the completion's durable write fails after the state
// transition, so the client can retry instead of losing the session.
func (s *Session) Reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionInProgress
}

// State returns the session's current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SessionRegistry is a concurrency-safe in-memory index of live
// sessions by ID. It is a plain dependency handed to the service at
// construction, one registry per server process.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionRegistry creates an empty session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Add registers a session.
func (r *SessionRegistry) Add(session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

// Get looks up a session by ID.
func (r *SessionRegistry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Remove deletes a session from the registry.
func (r *SessionRegistry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
