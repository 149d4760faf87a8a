package cmd

import (
	"sync"

	"github.com/bnema/lets-share-cli/internal/ports"
)

// routeTracker is the CLI's Navigator. There is no router to drive in a
// terminal, so it records the signals and lets each command translate
// the last one into a user-facing hint.
type routeTracker struct {
	mu       sync.Mutex
	last     string
	visited  bool
	intended string
	recorded bool
}

var _ ports.Navigator = (*routeTracker)(nil)

func newRouteTracker() *routeTracker {
	return &routeTracker{}
}

func (r *routeTracker) NavigateTo(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = route
	r.visited = true
}

func (r *routeTracker) RecordIntended(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intended = route
	r.recorded = true
}

func (r *routeTracker) ConsumeIntended() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recorded {
		return "", false
	}
	r.recorded = false
	return r.intended, true
}

func (r *routeTracker) lastVisited() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.visited
}
