package either

import (
	"fmt"

	"github.com/ib-77/either/pkg/fp"
)

// GetEq compares two Eithers: same side and equal values under eqE or eqA
func GetEq[E, A any](eqE fp.Eq[E], eqA fp.Eq[A]) fp.Eq[Either[E, A]] {
	return fp.EqFunc[Either[E, A]](func(x, y Either[E, A]) bool {
		if x.isRight != y.isRight {
			return false
		}
		if x.isRight {
			return eqA.Equals(x.right, y.right)
		}
		return eqE.Equals(x.left, y.left)
	})
}

// GetShow renders left(<e>) or right(<a>)
func GetShow[E, A any](showE fp.Show[E], showA fp.Show[A]) fp.Show[Either[E, A]] {
	return fp.ShowFunc[Either[E, A]](func(fa Either[E, A]) string {
		if fa.isRight {
			return fmt.Sprintf("right(%s)", showA.Show(fa.right))
		}
		return fmt.Sprintf("left(%s)", showE.Show(fa.left))
	})
}

// GetSemigroup concatenates two Rights with s. A Right combined with a Left,
// in either order, yields that Right. Two Lefts yield the first one.
func GetSemigroup[E, A any](s fp.Semigroup[A]) fp.Semigroup[Either[E, A]] {
	return fp.SemigroupFunc[Either[E, A]](func(x, y Either[E, A]) Either[E, A] {
		if !y.isRight {
			return x
		}
		if !x.isRight {
			return y
		}
		return Right[E](s.Concat(x.right, y.right))
	})
}
