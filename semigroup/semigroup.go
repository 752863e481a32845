// Package semigroup provides associative binary operations and helpers
// for combining sequences of values.
package semigroup

// Semigroup is a binary operation on T. Associativity is the caller's
// contract: Combine(Combine(a, b), c) must equal Combine(a, Combine(b, c)).
type Semigroup[T any] func(x, y T) T

// Reverse returns the operation with its arguments swapped.
func Reverse[T any](s Semigroup[T]) Semigroup[T] {
	return func(x, y T) T {
		return s(y, x)
	}
}

// ConcatAll left-folds items into a single value starting from seed.
// An empty slice returns seed unchanged.
func ConcatAll[T any](s Semigroup[T], seed T, items []T) T {
	acc := seed
	for _, item := range items {
		acc = s(acc, item)
	}
	return acc
}

// First returns a semigroup that always keeps its first argument.
func First[T any]() Semigroup[T] {
	return func(x, _ T) T {
		return x
	}
}

// Last returns a semigroup that always keeps its second argument.
func Last[T any]() Semigroup[T] {
	return func(_, y T) T {
		return y
	}
}

// Monoid is a semigroup with an identity element.
type Monoid[T any] struct {
	Combine Semigroup[T]
	Empty   T
}

// NewMonoid creates a Monoid from a semigroup and its identity element.
func NewMonoid[T any](combine Semigroup[T], empty T) Monoid[T] {
	return Monoid[T]{Combine: combine, Empty: empty}
}
