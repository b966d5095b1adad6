package either

import (
	"github.com/ib-77/either/pkg/fp"
)

// ApplicativeValidation is an applicative that keeps every Left instead of
// stopping at the first one
type ApplicativeValidation[E any] struct {
	semigroup fp.Semigroup[E]
}

func GetApplicativeValidation[E any](s fp.Semigroup[E]) ApplicativeValidation[E] {
	return ApplicativeValidation[E]{semigroup: s}
}

// ApAccumulate behaves like Ap except that two Lefts are combined into
// Left(concat(fab's Left, fa's Left))
func ApAccumulate[E, A, B any](v ApplicativeValidation[E],
	fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {

	if !fab.isRight {
		if !fa.isRight {
			return Left[E, B](v.semigroup.Concat(fab.left, fa.left))
		}
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// AltValidation is an alternative that combines two Lefts instead of keeping
// the last one
type AltValidation[E any] struct {
	semigroup fp.Semigroup[E]
}

func GetAltValidation[E any](s fp.Semigroup[E]) AltValidation[E] {
	return AltValidation[E]{semigroup: s}
}

// AltAccumulate returns fa if it is a Right, otherwise that(). When both are
// Lefts the result is Left(concat(fa's Left, that's Left)).
func AltAccumulate[E, A any](v AltValidation[E], fa Either[E, A], that func() Either[E, A]) Either[E, A] {
	if fa.isRight {
		return fa
	}
	fb := that()
	if fb.isRight {
		return fb
	}
	return Left[E, A](v.semigroup.Concat(fa.left, fb.left))
}
