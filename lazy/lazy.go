// Package lazy provides deferred computations: unmemoized thunks and
// memoized lazy values.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Thunk represents a deferred computation without memoization.
// It is the parameter shape for lazily supplied defaults: callees force a
// thunk at most once, and only on the branch that needs its value.
type Thunk[T any] func() T

// Force evaluates the thunk.
func (t Thunk[T]) Force() T {
	return t()
}

// Const creates a thunk that returns a fixed value.
func Const[T any](value T) Thunk[T] {
	return func() T {
		return value
	}
}

// MapThunk applies a function to the result of a thunk.
func MapThunk[T, U any](t Thunk[T], fn func(T) U) Thunk[U] {
	return func() U {
		return fn(t())
	}
}

// Memoize converts a Thunk to a Lazy value.
func (t Thunk[T]) Memoize() *Lazy[T] {
	return New(t)
}

// Lazy represents a lazily evaluated value with thread-safe memoization.
type Lazy[T any] struct {
	compute func() T
	value   T
	once    sync.Once
	done    uint32
}

// New creates a new lazy value.
func New[T any](compute func() T) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Get returns the value, computing it on first use.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.compute()
		atomic.StoreUint32(&l.done, 1)
	})
	return l.value
}

// IsInitialized returns true if the value has been computed.
func (l *Lazy[T]) IsInitialized() bool {
	return atomic.LoadUint32(&l.done) == 1
}

// Map applies a function to a lazy value without forcing it.
func Map[T, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	return New(func() U {
		return fn(l.Get())
	})
}
