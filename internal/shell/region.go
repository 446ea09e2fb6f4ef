package shell

import (
	"sync"

	"github.com/ziadkadry99/camino/internal/pages"
)

// View is one rendered document placed in the content region.
type View struct {
	ID    string // unique per activation
	DocID string
	Page  pages.Page
}

// Region is the single-slot content area. It holds zero or one View.
type Region struct {
	mu       sync.Mutex
	children []View
	subs     map[int]func(View)
	nextSub  int
}

// NewRegion returns an empty region.
func NewRegion() *Region {
	return &Region{subs: make(map[int]func(View))}
}

// Replace evicts every child, inserts v and then asks subscribers to
// refresh. Subscribers run outside the lock.
func (r *Region) Replace(v View) {
	r.mu.Lock()
	r.children = nil
	r.children = append(r.children, v)
	subs := make([]func(View), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Current returns the displayed view, if any.
func (r *Region) Current() (View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.children) == 0 {
		return View{}, false
	}
	return r.children[len(r.children)-1], true
}

// Children returns a copy of the region's children.
func (r *Region) Children() []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]View, len(r.children))
	copy(out, r.children)
	return out
}

// Len returns the number of children (0 or 1).
func (r *Region) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.children)
}

// Subscribe registers fn to be called after every Replace. The returned
// function removes the subscription.
func (r *Region) Subscribe(fn func(View)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}
