package either

import (
	"github.com/ib-77/either/pkg/fp/option"
)

// FromPredicate returns Right(a) if pred holds, Left(onFalse(a)) otherwise
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) Either[E, A] {
	if pred(a) {
		return Right[E](a)
	}
	return Left[E, A](onFalse(a))
}

func FromPredicateK[E, A any](pred func(A) bool, onFalse func(A) E) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		return FromPredicate(a, pred, onFalse)
	}
}

// FromNullable returns Left(onNullish()) for a nil pointer and Right of the
// pointed value otherwise
func FromNullable[E, A any](p *A, onNullish func() E) Either[E, A] {
	if p == nil {
		return Left[E, A](onNullish())
	}
	return Right[E](*p)
}

// FromNullableK lifts a function returning a possibly nil pointer
func FromNullableK[E, A, B any](onNullish func() E, f func(A) *B) func(A) Either[E, B] {
	return func(a A) Either[E, B] {
		return FromNullable(f(a), onNullish)
	}
}

func ChainNullableK[E, A, B any](onNullish func() E, f func(A) *B) func(Either[E, A]) Either[E, B] {
	from := FromNullableK(onNullish, f)
	return func(fa Either[E, A]) Either[E, B] {
		return Chain(fa, from)
	}
}

func FromOption[E, A any](o option.Option[A], onNone func() E) Either[E, A] {
	if a, ok := o.Get(); ok {
		return Right[E](a)
	}
	return Left[E, A](onNone())
}

// ToOption keeps the Right value, a Left becomes None
func ToOption[E, A any](fa Either[E, A]) option.Option[A] {
	if fa.isRight {
		return option.Some(fa.right)
	}
	return option.None[A]()
}

// GetLeft keeps the Left value, a Right becomes None
func GetLeft[E, A any](fa Either[E, A]) option.Option[E] {
	if fa.isRight {
		return option.None[E]()
	}
	return option.Some(fa.left)
}

// TryCatch runs f and turns a panic into a Left holding the recovered value
func TryCatch[A any](f func() A) Either[any, A] {
	return TryCatchWith(f, func(r any) any { return r })
}

// TryCatchWith runs f and turns a panic into Left(onThrow(recovered))
func TryCatchWith[E, A any](f func() A, onThrow func(any) E) (res Either[E, A]) {
	defer func() {
		if r := recover(); r != nil {
			res = Left[E, A](onThrow(r))
		}
	}()

	return Right[E](f())
}

// Try calls f and converts a non-nil error to a Left
func Try[A any](f func() (A, error)) Either[error, A] {
	a, err := f()
	return FromErr(a, err)
}

func FromErr[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}
