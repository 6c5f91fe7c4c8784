// Package inflight tracks mutations that are still outstanding per entity
// id, so a double-submitted action for the same row is dropped while two
// different rows may still be mutated concurrently.
package inflight

import "sync"

type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func New() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// Begin marks id as in flight. It returns false when a mutation for the same
// id has already begun and not yet ended.
func (g *Guard) Begin(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.busy[id]; ok {
		return false
	}
	g.busy[id] = struct{}{}
	return true
}

func (g *Guard) End(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, id)
}
