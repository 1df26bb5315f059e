package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Session is the state owned by one browser session: a portfolio ledger and a
// favorites set. Nothing here survives a process restart.
type Session struct {
	Ledger    *Ledger
	Favorites *Favorites
}

func newSession() *Session {
	return &Session{
		Ledger:    NewLedger(),
		Favorites: NewFavorites(),
	}
}

// Store maps opaque session ids to sessions, creating on first use. The
// mutex only guards the map; each Session is mutated exclusively by its own
// session's sequential requests.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it when absent.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = newSession()
		s.sessions[id] = sess
	}
	return sess
}

// NewID generates an opaque session identifier.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure leaves nothing sensible to fall back on.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
