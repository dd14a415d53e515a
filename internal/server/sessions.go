// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/accesspaper/internal/ui"
)

// session is one browser's page state.
type session struct {
	id         string
	controller *ui.Controller
	alerts     *ui.AlertQueue
	lastSeen   time.Time
}

// sessionTable maps session cookies to page state. Idle sessions are
// dropped lazily on access.
type sessionTable struct {
	mu    sync.Mutex
	items map[string]*session
	ttl   time.Duration
	now   func() time.Time
	build func(ui.Alerter) *ui.Controller
}

func newSessionTable(ttl time.Duration, build func(ui.Alerter) *ui.Controller) *sessionTable {
	return &sessionTable{
		items: make(map[string]*session),
		ttl:   ttl,
		now:   time.Now,
		build: build,
	}
}

// get returns the session for id, creating a new one (with a fresh id) when
// id is unknown or expired. created reports whether a cookie must be set.
func (t *sessionTable) get(id string) (s *session, created bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.prune(now)

	if s, ok := t.items[id]; ok {
		s.lastSeen = now
		return s, false
	}

	alerts := &ui.AlertQueue{}
	s = &session{
		id:         uuid.NewString(),
		controller: t.build(alerts),
		alerts:     alerts,
		lastSeen:   now,
	}
	t.items[s.id] = s
	return s, true
}

func (t *sessionTable) prune(now time.Time) {
	if t.ttl <= 0 {
		return
	}
	for id, s := range t.items {
		if now.Sub(s.lastSeen) > t.ttl {
			delete(t.items, id)
		}
	}
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}
