// Package tuple provides a generic pair of two values.
package tuple

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapFirst applies a function to the first element.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies a function to the second element.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// MapBoth applies functions to both elements.
func MapBoth[A, B, C, D any](p Pair[A, B], fnA func(A) C, fnB func(B) D) Pair[C, D] {
	return Pair[C, D]{First: fnA(p.First), Second: fnB(p.Second)}
}
