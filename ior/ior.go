// Package ior provides an inclusive-or of two types: a value that carries a
// left payload, a right payload, or both at once.
//
// By convention the left side carries diagnostics and the right side carries
// a result, so a Both value represents a computation that produced warnings
// while still making progress. Unlike either.Either, combining two values
// never discards a payload: left payloads accumulate through Semigroup, Ap
// and FlatMap instead of short-circuiting the whole computation.
package ior

import (
	"fmt"

	"github.com/auth-platform/libs/go/functional/either"
	"github.com/auth-platform/libs/go/functional/lazy"
	"github.com/auth-platform/libs/go/functional/option"
	"github.com/auth-platform/libs/go/functional/tuple"
)

type kind uint8

const (
	kindLeft kind = iota
	kindRight
	kindBoth
)

// Ior represents an inclusive-or of E and A. Exactly one of the three
// variants holds: Left carries only E, Right carries only A, Both carries
// E and A together. Values are immutable once constructed.
type Ior[E, A any] struct {
	left  E
	right A
	k     kind
}

// Left creates an Ior carrying only a left payload.
func Left[E, A any](value E) Ior[E, A] {
	return Ior[E, A]{left: value, k: kindLeft}
}

// Right creates an Ior carrying only a right payload.
func Right[E, A any](value A) Ior[E, A] {
	return Ior[E, A]{right: value, k: kindRight}
}

// Both creates an Ior carrying both payloads.
func Both[E, A any](left E, right A) Ior[E, A] {
	return Ior[E, A]{left: left, right: right, k: kindBoth}
}

// IsLeft returns true if only the left payload is present.
func (i Ior[E, A]) IsLeft() bool {
	return i.k == kindLeft
}

// IsRight returns true if only the right payload is present.
func (i Ior[E, A]) IsRight() bool {
	return i.k == kindRight
}

// IsBoth returns true if both payloads are present.
func (i Ior[E, A]) IsBoth() bool {
	return i.k == kindBoth
}

// Match executes exactly one of three functions based on the variant.
func (i Ior[E, A]) Match(onLeft func(E), onRight func(A), onBoth func(E, A)) {
	switch i.k {
	case kindRight:
		onRight(i.right)
	case kindBoth:
		onBoth(i.left, i.right)
	default:
		onLeft(i.left)
	}
}

// Fold eliminates the value by applying exactly one of three functions and
// returning its result. Every read-only operation on Ior can be expressed
// through Fold.
func Fold[E, A, B any](i Ior[E, A], onLeft func(E) B, onRight func(A) B, onBoth func(E, A) B) B {
	switch i.k {
	case kindRight:
		return onRight(i.right)
	case kindBoth:
		return onBoth(i.left, i.right)
	default:
		return onLeft(i.left)
	}
}

// Swap exchanges the roles of the left and right payloads.
func (i Ior[E, A]) Swap() Ior[A, E] {
	return Fold(i,
		func(e E) Ior[A, E] { return Right[A, E](e) },
		func(a A) Ior[A, E] { return Left[A, E](a) },
		func(e E, a A) Ior[A, E] { return Both(a, e) },
	)
}

// ToPair converts the value to a pair, substituting a lazily supplied
// default for whichever payload is absent. Each thunk is forced at most
// once, and only when its payload is missing.
func (i Ior[E, A]) ToPair(onNoLeft lazy.Thunk[E], onNoRight lazy.Thunk[A]) tuple.Pair[E, A] {
	switch i.k {
	case kindRight:
		return tuple.NewPair(onNoLeft.Force(), i.right)
	case kindBoth:
		return tuple.NewPair(i.left, i.right)
	default:
		return tuple.NewPair(i.left, onNoRight.Force())
	}
}

// GetLeft returns the left payload if any variant carries it.
func (i Ior[E, A]) GetLeft() option.Option[E] {
	if i.k == kindRight {
		return option.None[E]()
	}
	return option.Some(i.left)
}

// GetRight returns the right payload if any variant carries it.
func (i Ior[E, A]) GetRight() option.Option[A] {
	if i.k == kindLeft {
		return option.None[A]()
	}
	return option.Some(i.right)
}

// GetLeftOnly returns the left payload only for the Left variant.
func (i Ior[E, A]) GetLeftOnly() option.Option[E] {
	if i.k == kindLeft {
		return option.Some(i.left)
	}
	return option.None[E]()
}

// GetRightOnly returns the right payload only for the Right variant.
func (i Ior[E, A]) GetRightOnly() option.Option[A] {
	if i.k == kindRight {
		return option.Some(i.right)
	}
	return option.None[A]()
}

// LeftOrBoth pairs a mandatory left payload with an optional right payload:
// Left(e) when fa is empty, Both(e, a) otherwise.
func LeftOrBoth[E, A any](e lazy.Thunk[E], fa option.Option[A]) Ior[E, A] {
	if fa.IsNone() {
		return Left[E, A](e.Force())
	}
	return Both(e.Force(), fa.Unwrap())
}

// RightOrBoth pairs a mandatory right payload with an optional left payload:
// Right(a) when fe is empty, Both(e, a) otherwise.
func RightOrBoth[E, A any](a lazy.Thunk[A], fe option.Option[E]) Ior[E, A] {
	if fe.IsNone() {
		return Right[E, A](a.Force())
	}
	return Both(fe.Unwrap(), a.Force())
}

// FromOptions bridges two independent optionals into one inclusive-or value:
// None when both are empty, otherwise Left, Right or Both depending on which
// inputs are present.
func FromOptions[E, A any](fe option.Option[E], fa option.Option[A]) option.Option[Ior[E, A]] {
	switch {
	case fe.IsNone() && fa.IsNone():
		return option.None[Ior[E, A]]()
	case fe.IsNone():
		return option.Some(Right[E](fa.Unwrap()))
	case fa.IsNone():
		return option.Some(Left[E, A](fe.Unwrap()))
	default:
		return option.Some(Both(fe.Unwrap(), fa.Unwrap()))
	}
}

// FromEither widens an exclusive-or into an inclusive-or. The result is
// never Both.
func FromEither[E, A any](e either.Either[E, A]) Ior[E, A] {
	if e.IsLeft() {
		return Left[E, A](e.LeftValue())
	}
	return Right[E](e.RightValue())
}

// Exists returns true if a right payload is present and satisfies the
// predicate.
func (i Ior[E, A]) Exists(predicate func(A) bool) bool {
	if i.k == kindLeft {
		return false
	}
	return predicate(i.right)
}

// Elem returns true if a right payload is present and equal to a under the
// supplied equality.
func Elem[E, A any](eq func(A, A) bool, a A, i Ior[E, A]) bool {
	return i.Exists(func(x A) bool { return eq(a, x) })
}

// String renders the value as Left(l), Right(r) or Both(l, r).
func (i Ior[E, A]) String() string {
	switch i.k {
	case kindRight:
		return fmt.Sprintf("Right(%v)", i.right)
	case kindBoth:
		return fmt.Sprintf("Both(%v, %v)", i.left, i.right)
	default:
		return fmt.Sprintf("Left(%v)", i.left)
	}
}
