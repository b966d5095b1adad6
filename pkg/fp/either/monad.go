package either

// Chain returns f(a) for Right(a) and passes a Left through
func Chain[E, A, B any](fa Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if fa.isRight {
		return f(fa.right)
	}
	return Left[E, B](fa.left)
}

// ChainW is Chain where f may fail with another error type,
// both error types are widened to any
func ChainW[E1, E2, A, B any](fa Either[E1, A], f func(A) Either[E2, B]) Either[any, B] {
	if fa.isRight {
		return widen(f(fa.right))
	}
	return Left[any, B](fa.left)
}

// ChainFirst runs f for its failure only and keeps the original Right value
func ChainFirst[E, A, B any](fa Either[E, A], f func(A) Either[E, B]) Either[E, A] {
	return Chain(fa, func(a A) Either[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

func ChainFirstW[E1, E2, A, B any](fa Either[E1, A], f func(A) Either[E2, B]) Either[any, A] {
	return ChainW(fa, func(a A) Either[E2, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Ap applies the function held by fab to the value held by fa.
// A Left on the function side wins over a Left on the value side.
func Ap[E, A, B any](fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	if !fab.isRight {
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E](fab.right(fa.right))
}

// ApFirst keeps the value of fa when both sides are Right
func ApFirst[E, A, B any](fa Either[E, A], fb Either[E, B]) Either[E, A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond keeps the value of fb when both sides are Right
func ApSecond[E, A, B any](fa Either[E, A], fb Either[E, B]) Either[E, B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

func Flatten[E, A any](mma Either[E, Either[E, A]]) Either[E, A] {
	return Chain(mma, func(ma Either[E, A]) Either[E, A] { return ma })
}

// Duplicate wraps a Right into another Right
func Duplicate[E, A any](fa Either[E, A]) Either[E, Either[E, A]] {
	return Extend(fa, func(ma Either[E, A]) Either[E, A] { return ma })
}

// Extend applies f to the whole Either when it is a Right
func Extend[E, A, B any](fa Either[E, A], f func(Either[E, A]) B) Either[E, B] {
	if fa.isRight {
		return Right[E](f(fa))
	}
	return Left[E, B](fa.left)
}

func widen[E, A any](fa Either[E, A]) Either[any, A] {
	if fa.isRight {
		return Right[any](fa.right)
	}
	return Left[any, A](fa.left)
}
