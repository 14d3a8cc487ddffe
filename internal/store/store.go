// Package store holds in-memory mirrors of server data for one client
// session. Each store wraps an immutable snapshot; actions are reducers that
// replace the snapshot and notify subscribers with the new value.
package store

import "sync"

// Container is a reactive state cell. All mutation goes through Update; reads
// always see a complete snapshot.
type Container[S any] struct {
	mu      sync.RWMutex
	state   S
	subs    map[int]func(S)
	nextSub int
}

// NewContainer creates a container seeded with the initial state.
func NewContainer[S any](initial S) *Container[S] {
	return &Container[S]{state: initial, subs: make(map[int]func(S))}
}

// Get returns the current snapshot.
func (c *Container[S]) Get() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Update applies a reducer to the current snapshot and notifies subscribers.
// Reducers must not mutate the old snapshot in place.
func (c *Container[S]) Update(reduce func(S) S) {
	c.mu.Lock()
	c.state = reduce(c.state)
	next := c.state
	subs := make([]func(S), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn to run after every update. The returned function
// removes the subscription.
func (c *Container[S]) Subscribe(fn func(S)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
