// Package session keeps the order wizard state of every chat in memory.
package session

import (
	"sync"
	"time"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/usecase/interfaces"
)

type entry struct {
	mu    sync.Mutex
	refs  int
	state entities.ConversationState
}

// Store serializes access per chat id. The per-chat lock is held for the whole
// callback, network calls included; different chats never share a lock.
// An entry disappears once nobody holds it and its wizard is done.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	now     func() time.Time
}

var _ interfaces.IConversationStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
		now:     time.Now,
	}
}

func (s *Store) acquire(chatID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chatID]
	if !ok {
		e = &entry{state: entities.ConversationState{ChatID: chatID}}
		s.entries[chatID] = e
	}
	e.refs++
	return e
}

// release must be called without e.mu held. With refs at zero nobody else can
// reach e, so reading its state under s.mu is safe.
func (s *Store) release(chatID int64, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.refs--
	if e.refs == 0 && !e.state.Active() {
		delete(s.entries, chatID)
	}
}

func (s *Store) Update(chatID int64, fn func(state *entities.ConversationState)) {
	e := s.acquire(chatID)
	defer s.release(chatID, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		// A panicking handler leaves the conversation reset, never half-updated.
		if r := recover(); r != nil {
			e.state = entities.ConversationState{ChatID: chatID, UpdatedAt: s.now().UTC()}
			panic(r)
		}
	}()

	state := e.state
	state.ChatID = chatID
	fn(&state)
	state.ChatID = chatID
	state.UpdatedAt = s.now().UTC()
	e.state = state
}

func (s *Store) Get(chatID int64) (entities.ConversationState, bool) {
	s.mu.Lock()
	e, ok := s.entries[chatID]
	if !ok {
		s.mu.Unlock()
		return entities.ConversationState{}, false
	}
	e.refs++
	s.mu.Unlock()
	defer s.release(chatID, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.state.Active()
}

// Len is the number of chats currently tracked.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
