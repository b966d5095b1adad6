package either

// Map applies f to a Right value, a Left is returned unchanged
func Map[E, A, B any](fa Either[E, A], f func(A) B) Either[E, B] {
	if fa.isRight {
		return Right[E](f(fa.right))
	}
	return Left[E, B](fa.left)
}

// MapLeft applies f to a Left value, a Right is returned unchanged
func MapLeft[E, A, G any](fa Either[E, A], f func(E) G) Either[G, A] {
	if fa.isRight {
		return Right[G](fa.right)
	}
	return Left[G, A](f(fa.left))
}

// Bimap maps a Left with f and a Right with g
func Bimap[E, A, G, B any](fa Either[E, A], f func(E) G, g func(A) B) Either[G, B] {
	if fa.isRight {
		return Right[G](g(fa.right))
	}
	return Left[G, B](f(fa.left))
}
