package either

import (
	"github.com/ib-77/either/pkg/fp"
)

// Fold reduces fa to a B with the handler matching its side
func Fold[E, A, B any](fa Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if fa.isRight {
		return onRight(fa.right)
	}
	return onLeft(fa.left)
}

func GetOrElse[E, A any](fa Either[E, A], onLeft func(E) A) A {
	if fa.isRight {
		return fa.right
	}
	return onLeft(fa.left)
}

// Reduce returns b for a Left and f(b, a) for Right(a)
func Reduce[E, A, B any](fa Either[E, A], b B, f func(B, A) B) B {
	if fa.isRight {
		return f(b, fa.right)
	}
	return b
}

// ReduceRight returns b for a Left and f(a, b) for Right(a)
func ReduceRight[E, A, B any](fa Either[E, A], b B, f func(A, B) B) B {
	if fa.isRight {
		return f(fa.right, b)
	}
	return b
}

// FoldMap returns f(a) for Right(a) and m.Empty() for a Left
func FoldMap[E, A, M any](fa Either[E, A], m fp.Monoid[M], f func(A) M) M {
	if fa.isRight {
		return f(fa.right)
	}
	return m.Empty()
}

// ToUnion returns whichever value fa holds
func ToUnion[E, A any](fa Either[E, A]) any {
	if fa.isRight {
		return fa.right
	}
	return fa.left
}
