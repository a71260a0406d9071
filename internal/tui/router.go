package tui

import "sync"

type screen int

const (
	screenList screen = iota
	screenAdd
	screenEdit
)

type route struct {
	screen screen
	id     int
}

// router implements pages.Navigator. Pages may navigate from the goroutine
// that resolves a deferred operation, so the requested route is parked here
// and the model picks it up on its next Update.
type router struct {
	mu      sync.Mutex
	pending []route
}

func (r *router) ToList()       { r.push(route{screen: screenList}) }
func (r *router) ToAdd()        { r.push(route{screen: screenAdd}) }
func (r *router) ToEdit(id int) { r.push(route{screen: screenEdit, id: id}) }

func (r *router) push(rt route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, rt)
}

// take returns the routes requested since the last call, oldest first.
func (r *router) take() []route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}
