package ior

import (
	"iter"

	"github.com/auth-platform/libs/go/functional/either"
	"github.com/auth-platform/libs/go/functional/option"
	"github.com/auth-platform/libs/go/functional/semigroup"
)

// Folding treats an Ior as a container of at most one right payload: the
// left payload is never foldable data, so Left contributes nothing while
// Right and Both fold exactly the right payload.

// Reduce left-folds the right payload into seed, if present.
func Reduce[E, A, B any](i Ior[E, A], seed B, fn func(B, A) B) B {
	if i.k == kindLeft {
		return seed
	}
	return fn(seed, i.right)
}

// ReduceRight right-folds the right payload into seed, if present.
func ReduceRight[E, A, B any](i Ior[E, A], seed B, fn func(A, B) B) B {
	if i.k == kindLeft {
		return seed
	}
	return fn(i.right, seed)
}

// FoldMap maps the right payload into the monoid, or returns the monoid's
// identity when only a left payload is present.
func FoldMap[E, A, M any](m semigroup.Monoid[M], i Ior[E, A], fn func(A) M) M {
	if i.k == kindLeft {
		return m.Empty
	}
	return fn(i.right)
}

// All returns a Go 1.23+ iterator over the right payload (0 or 1 element).
func (i Ior[E, A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if i.k != kindLeft {
			yield(i.right)
		}
	}
}

// ToSlice returns the right payload as a slice (empty if absent).
func (i Ior[E, A]) ToSlice() []A {
	if i.k == kindLeft {
		return []A{}
	}
	return []A{i.right}
}

// TraverseOption runs an optional-producing function against the right
// payload. Left short-circuits: it is lifted into the option unchanged
// without invoking fn. For Both the left payload is preserved alongside
// the function's result.
func TraverseOption[E, A, B any](i Ior[E, A], fn func(A) option.Option[B]) option.Option[Ior[E, B]] {
	switch i.k {
	case kindLeft:
		return option.Some(Left[E, B](i.left))
	case kindRight:
		return option.Map(fn(i.right), func(b B) Ior[E, B] {
			return Right[E](b)
		})
	default:
		left := i.left
		return option.Map(fn(i.right), func(b B) Ior[E, B] {
			return Both(left, b)
		})
	}
}

// SequenceOption turns an Ior of an optional inside-out.
func SequenceOption[E, A any](i Ior[E, option.Option[A]]) option.Option[Ior[E, A]] {
	return TraverseOption(i, func(fa option.Option[A]) option.Option[A] {
		return fa
	})
}

// TraverseEither runs an either-producing function against the right
// payload, with the same short-circuit rule as TraverseOption.
func TraverseEither[E, L, A, B any](i Ior[E, A], fn func(A) either.Either[L, B]) either.Either[L, Ior[E, B]] {
	switch i.k {
	case kindLeft:
		return either.Right[L](Left[E, B](i.left))
	case kindRight:
		return either.Map(fn(i.right), func(b B) Ior[E, B] {
			return Right[E](b)
		})
	default:
		left := i.left
		return either.Map(fn(i.right), func(b B) Ior[E, B] {
			return Both(left, b)
		})
	}
}

// SequenceEither turns an Ior of an either inside-out.
func SequenceEither[E, L, A any](i Ior[E, either.Either[L, A]]) either.Either[L, Ior[E, A]] {
	return TraverseEither(i, func(fa either.Either[L, A]) either.Either[L, A] {
		return fa
	})
}
