package memcache

import (
	"sync"
)

// SessionLocks serializes submissions per assessment session. Submissions for
// different sessions proceed independently; two submissions for the same
// session token take turns so the read-decide-write cycle stays atomic.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{
		locks: make(map[string]*sessionLock),
	}
}

// Acquire blocks until the caller holds the lock for token and returns the
// release function. Entries are dropped once the last holder releases.
func (s *SessionLocks) Acquire(token string) func() {
	s.mu.Lock()
	l, ok := s.locks[token]
	if !ok {
		l = &sessionLock{}
		s.locks[token] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, token)
		}
		s.mu.Unlock()
	}
}
