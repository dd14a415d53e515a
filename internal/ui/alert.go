// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import "sync"

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

// Alert calls f(msg).
func (f AlertFunc) Alert(msg string) { f(msg) }

// AlertQueue collects alerts until the next page render drains them.
type AlertQueue struct {
	mu      sync.Mutex
	pending []string
}

// Alert queues msg.
func (q *AlertQueue) Alert(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, msg)
}

// Drain returns the queued alerts and empties the queue.
func (q *AlertQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
