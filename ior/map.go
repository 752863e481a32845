package ior

import (
	"github.com/auth-platform/libs/go/functional/semigroup"
)

// Map applies a function to the right payload, leaving any left payload and
// the variant shape unchanged.
func Map[E, A, B any](i Ior[E, A], fn func(A) B) Ior[E, B] {
	switch i.k {
	case kindRight:
		return Right[E](fn(i.right))
	case kindBoth:
		return Both(i.left, fn(i.right))
	default:
		return Left[E, B](i.left)
	}
}

// MapLeft applies a function to the left payload, leaving any right payload
// and the variant shape unchanged.
func MapLeft[E, F, A any](i Ior[E, A], fn func(E) F) Ior[F, A] {
	switch i.k {
	case kindRight:
		return Right[F](i.right)
	case kindBoth:
		return Both(fn(i.left), i.right)
	default:
		return Left[F, A](fn(i.left))
	}
}

// BiMap applies fnLeft to any left payload and fnRight to any right payload,
// preserving the variant shape.
func BiMap[E, F, A, B any](i Ior[E, A], fnLeft func(E) F, fnRight func(A) B) Ior[F, B] {
	switch i.k {
	case kindRight:
		return Right[F](fnRight(i.right))
	case kindBoth:
		return Both(fnLeft(i.left), fnRight(i.right))
	default:
		return Left[F, B](fnLeft(i.left))
	}
}

// FlatMap sequences a computation that depends on the right payload,
// accumulating left payloads through se. Left short-circuits unchanged;
// a Both input merges its left payload with whatever left payload the
// continuation produces, so diagnostics from earlier steps are never
// discarded by later successful ones.
func FlatMap[E, A, B any](se semigroup.Semigroup[E], i Ior[E, A], fn func(A) Ior[E, B]) Ior[E, B] {
	switch i.k {
	case kindLeft:
		return Left[E, B](i.left)
	case kindRight:
		return fn(i.right)
	default:
		fb := fn(i.right)
		switch fb.k {
		case kindLeft:
			return Left[E, B](se(i.left, fb.left))
		case kindRight:
			return Both(i.left, fb.right)
		default:
			return Both(se(i.left, fb.left), fb.right)
		}
	}
}

// Ap applies a function-carrying value to a value-carrying one. The function
// runs only when both sides carry a right payload; left payloads present on
// either side are merged through se. Right is the applicative identity:
// Ap(se, Right(id), fa) equals fa.
func Ap[E, A, B any](se semigroup.Semigroup[E], ff Ior[E, func(A) B], fa Ior[E, A]) Ior[E, B] {
	switch ff.k {
	case kindLeft:
		if fa.k == kindRight {
			return Left[E, B](ff.left)
		}
		return Left[E, B](se(ff.left, fa.left))
	case kindRight:
		switch fa.k {
		case kindLeft:
			return Left[E, B](fa.left)
		case kindRight:
			return Right[E](ff.right(fa.right))
		default:
			return Both(fa.left, ff.right(fa.right))
		}
	default:
		switch fa.k {
		case kindLeft:
			return Left[E, B](se(ff.left, fa.left))
		case kindRight:
			return Both(ff.left, ff.right(fa.right))
		default:
			return Both(se(ff.left, fa.left), ff.right(fa.right))
		}
	}
}
