package storage

import (
	"sync"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
)

// SessionStore keeps one ConversationState per chat, in memory. Updates
// for different chats arrive on the same polling goroutine today, but
// the map is still guarded so the store stays safe if delivery ever
// fans out.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.ConversationState
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.ConversationState),
	}
}

// GetOrCreate returns the state for the chat, creating a fresh one on
// first contact.
func (s *SessionStore) GetOrCreate(chatID int64) *entities.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[chatID]
	if !ok {
		state = entities.NewConversationState()
		s.sessions[chatID] = state
	}
	return state
}

// Get retrieves the state for a chat, if any.
func (s *SessionStore) Get(chatID int64) (*entities.ConversationState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[chatID]
	return state, ok
}

// Delete removes the state for a chat.
func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
