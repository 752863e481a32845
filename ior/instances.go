package ior

import (
	"fmt"

	"github.com/auth-platform/libs/go/functional/semigroup"
)

// Eq builds an equality for Ior from payload equalities. Two values are
// equal iff they share the same variant and the present payloads compare
// equal; cross-variant comparisons are always unequal.
func Eq[E, A any](eqLeft func(E, E) bool, eqRight func(A, A) bool) func(x, y Ior[E, A]) bool {
	return func(x, y Ior[E, A]) bool {
		if x.k != y.k {
			return false
		}
		switch x.k {
		case kindRight:
			return eqRight(x.right, y.right)
		case kindBoth:
			return eqLeft(x.left, y.left) && eqRight(x.right, y.right)
		default:
			return eqLeft(x.left, y.left)
		}
	}
}

// Show builds a renderer for Ior from payload renderers.
func Show[E, A any](showLeft func(E) string, showRight func(A) string) func(Ior[E, A]) string {
	return func(i Ior[E, A]) string {
		switch i.k {
		case kindRight:
			return fmt.Sprintf("Right(%s)", showRight(i.right))
		case kindBoth:
			return fmt.Sprintf("Both(%s, %s)", showLeft(i.left), showRight(i.right))
		default:
			return fmt.Sprintf("Left(%s)", showLeft(i.left))
		}
	}
}

// Semigroup builds a variant-aware combination for Ior from payload
// semigroups. Payloads present on the same side of both operands are
// combined; a payload present on exactly one side survives unchanged into
// a Both result. The operation is associative whenever se and sa are.
func Semigroup[E, A any](se semigroup.Semigroup[E], sa semigroup.Semigroup[A]) semigroup.Semigroup[Ior[E, A]] {
	return func(x, y Ior[E, A]) Ior[E, A] {
		switch x.k {
		case kindLeft:
			switch y.k {
			case kindLeft:
				return Left[E, A](se(x.left, y.left))
			case kindRight:
				return Both(x.left, y.right)
			default:
				return Both(se(x.left, y.left), y.right)
			}
		case kindRight:
			switch y.k {
			case kindLeft:
				return Both(y.left, x.right)
			case kindRight:
				return Right[E](sa(x.right, y.right))
			default:
				return Both(y.left, sa(x.right, y.right))
			}
		default:
			switch y.k {
			case kindLeft:
				return Both(se(x.left, y.left), x.right)
			case kindRight:
				return Both(x.left, sa(x.right, y.right))
			default:
				return Both(se(x.left, y.left), sa(x.right, y.right))
			}
		}
	}
}
