// Package syncx provides extended synchronization primitives
package syncx

import "sync"

// Guard wraps a mutex-protected value with scoped lock helpers.
// Callers never touch the lock directly; the value is only reachable
// inside the closures, which run for the full duration of the hold.
type Guard[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewGuard creates a guarded value.
func NewGuard[T any](initial T) *Guard[T] {
	return &Guard[T]{value: initial}
}

// Read executes fn while holding the read lock, returns its result.
func (g *Guard[T]) Read(fn func(T) any) any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn(g.value)
}

// Write executes fn while holding the write lock; fn receives a pointer
// for mutation.
func (g *Guard[T]) Write(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.value)
}

// Update executes fn while holding the write lock, returning a result.
func (g *Guard[T]) Update(fn func(*T) any) any {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(&g.value)
}

// Get returns a copy of the value (T should be a value type or immutable).
func (g *Guard[T]) Get() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}

// Set atomically replaces the value.
func (g *Guard[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}
