package either

import (
	"github.com/ib-77/either/pkg/fp"
)

// Alt returns fa if it is a Right, otherwise the result of that
func Alt[E, A any](fa Either[E, A], that func() Either[E, A]) Either[E, A] {
	if fa.isRight {
		return fa
	}
	return that()
}

// OrElse recovers from a Left with a function of the Left value
func OrElse[E, A, G any](fa Either[E, A], onLeft func(E) Either[G, A]) Either[G, A] {
	if fa.isRight {
		return Right[G](fa.right)
	}
	return onLeft(fa.left)
}

func Swap[E, A any](fa Either[E, A]) Either[A, E] {
	if fa.isRight {
		return Left[A, E](fa.right)
	}
	return Right[A](fa.left)
}

// Elem reports whether fa is a Right holding a value equal to a
func Elem[E, A any](fa Either[E, A], eq fp.Eq[A], a A) bool {
	return fa.isRight && eq.Equals(fa.right, a)
}

// Exists reports whether fa is a Right whose value satisfies pred
func Exists[E, A any](fa Either[E, A], pred func(A) bool) bool {
	return fa.isRight && pred(fa.right)
}

// FilterOrElse turns a Right failing pred into Left(onFalse(a))
func FilterOrElse[E, A any](fa Either[E, A], pred func(A) bool, onFalse func(A) E) Either[E, A] {
	return Chain(fa, FromPredicateK(pred, onFalse))
}
