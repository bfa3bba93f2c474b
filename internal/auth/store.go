package auth

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/model"
)

// Store holds the process-wide authenticated-identity state. It has two
// states, anonymous and authenticated, and exactly two transitions:
// SetSession and Logout. The persisted record is written before the
// in-memory state is published, so observers never see a session that
// would not survive a restart.
type Store struct {
	mu        sync.RWMutex
	record    sessionRecord
	session   *model.Session
	listeners []func(*model.Session)
	log       zerolog.Logger
}

// NewStore creates a store hydrated from the session file at path.
// Corrupted or absent persisted state yields the anonymous state.
func NewStore(path string, log zerolog.Logger) *Store {
	s := &Store{
		record: sessionRecord{path: path},
		log:    log,
	}

	if sess, ok := s.record.load(); ok {
		s.session = &sess
		log.Debug().Str("email", sess.User.Email).Msg("session hydrated")
	} else {
		log.Debug().Msg("no persisted session, starting anonymous")
	}
	return s
}

// Current returns the active session, if any.
func (s *Store) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return model.Session{}, false
	}
	return *s.session, true
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// AccessToken returns the active bearer token, or "" when anonymous.
func (s *Store) AccessToken() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return sess.AccessToken
}

// SetSession transitions to the authenticated state. The session is
// persisted first; if that fails the in-memory state is left untouched
// and the error is returned.
func (s *Store) SetSession(sess model.Session) error {
	if err := s.record.save(sess); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = &sess
	listeners := append([]func(*model.Session){}, s.listeners...)
	s.mu.Unlock()

	s.log.Debug().Str("email", sess.User.Email).Msg("session set")
	for _, fn := range listeners {
		fn(&sess)
	}
	return nil
}

// Logout transitions to the anonymous state, clearing the persisted
// record first.
func (s *Store) Logout() error {
	if err := s.record.clear(); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = nil
	listeners := append([]func(*model.Session){}, s.listeners...)
	s.mu.Unlock()

	s.log.Debug().Msg("session cleared")
	for _, fn := range listeners {
		fn(nil)
	}
	return nil
}

// OnChange registers a listener called after each transition with the
// new session, or nil on logout.
func (s *Store) OnChange(fn func(*model.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
