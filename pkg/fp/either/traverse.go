package either

import (
	"github.com/ib-77/either/pkg/fp"
)

// Traverse maps a Right through the effectful f and lifts the result back
// into a Right inside the effect. A Left is lifted unchanged with app.Of.
func Traverse[E, A, B, FB, FR any](app fp.Applicative[B, FB, Either[E, B], FR],
	fa Either[E, A], f func(A) FB) FR {

	if fa.isRight {
		return app.Map(f(fa.right), Right[E, B])
	}
	return app.Of(Left[E, B](fa.left))
}

// Sequence turns an Either holding an effect into an effect holding an Either
func Sequence[E, A, FA, FR any](app fp.Applicative[A, FA, Either[E, A], FR], fa Either[E, FA]) FR {
	return Traverse(app, fa, fp.Identity[FA])
}

// TraverseSlice applies f to each element in order and stops at the first
// Left, which is returned. Otherwise every Right value is collected.
func TraverseSlice[E, A, B any](as []A, f func(A) Either[E, B]) Either[E, []B] {
	return TraverseSliceWithIndex(as, func(_ int, a A) Either[E, B] {
		return f(a)
	})
}

func TraverseSliceWithIndex[E, A, B any](as []A, f func(int, A) Either[E, B]) Either[E, []B] {
	out := make([]B, 0, len(as))
	for i, a := range as {
		fb := f(i, a)
		if !fb.isRight {
			return Left[E, []B](fb.left)
		}
		out = append(out, fb.right)
	}
	return Right[E](out)
}

func SequenceSlice[E, A any](es []Either[E, A]) Either[E, []A] {
	return TraverseSlice(es, fp.Identity[Either[E, A]])
}
