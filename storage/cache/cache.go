package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kylycht/buysell/form"
	"github.com/kylycht/buysell/storage"
	"github.com/rs/zerolog/log"
)

const (
	evictInterval = time.Minute
)

type session struct {
	mu       sync.Mutex // serializes events of one page
	form     *form.Form
	lastSeen time.Time
}

type MCache struct {
	lock     sync.RWMutex        // rw lock guards store
	sessions map[string]*session // page sessions by id
	ttl      time.Duration       // idle time before session is dropped
	ticker   *time.Ticker        // ticker to evict idle sessions every X interval
	doneC    chan struct{}       // chan to signal ticker stoppage
	now      func() time.Time
}

func New(ttl time.Duration) *MCache {
	c := &MCache{
		sessions: make(map[string]*session),
		ttl:      ttl,
		doneC:    make(chan struct{}),
		now:      time.Now,
	}

	c.init()

	return c
}

var _ storage.Sessions = (*MCache)(nil)

// Create implements storage.Sessions.
func (m *MCache) Create(f *form.Form) string {
	id := uuid.NewString()

	m.lock.Lock()
	m.sessions[id] = &session{form: f, lastSeen: m.now()}
	m.lock.Unlock()

	return id
}

// With implements storage.Sessions.
func (m *MCache) With(id string, fn func(f *form.Form) error) error {
	m.lock.RLock()
	s, ok := m.sessions[id]
	m.lock.RUnlock()

	if !ok {
		return storage.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// evicted or deleted while waiting for the session lock
	m.lock.RLock()
	cur, ok := m.sessions[id]
	m.lock.RUnlock()

	if !ok || cur != s {
		return storage.ErrSessionNotFound
	}

	s.lastSeen = m.now()

	return fn(s.form)
}

// Delete implements storage.Sessions.
func (m *MCache) Delete(id string) {
	m.lock.Lock()
	delete(m.sessions, id)
	m.lock.Unlock()
}

// Len implements storage.Sessions.
func (m *MCache) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.sessions)
}

// Close stops eviction
func (m *MCache) Close() {
	m.ticker.Stop()
	close(m.doneC)
}

func (m *MCache) init() {
	m.ticker = time.NewTicker(evictInterval)

	go func() {
		for {
			select {
			case <-m.doneC:
				return

			case t := <-m.ticker.C:
				if n := m.evict(); n > 0 {
					log.Debug().Str("time", t.String()).Int("evicted", n).Msg("dropped idle sessions")
				}
			}
		}
	}()
}

func (m *MCache) evict() int {
	deadline := m.now().Add(-m.ttl)

	m.lock.Lock()
	defer m.lock.Unlock()

	evicted := 0

	for id, s := range m.sessions {
		if !s.mu.TryLock() {
			continue // event in progress
		}

		if s.lastSeen.Before(deadline) {
			delete(m.sessions, id)
			evicted++
		}

		s.mu.Unlock()
	}

	return evicted
}
