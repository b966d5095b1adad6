package either

import (
	"github.com/ib-77/either/pkg/fp"
	"github.com/ib-77/either/pkg/fp/option"
)

// Compactable fills the side a filter removed with the monoid's empty value
type Compactable[E any] struct {
	monoid fp.Monoid[E]
}

func GetCompactable[E any](m fp.Monoid[E]) Compactable[E] {
	return Compactable[E]{monoid: m}
}

func (c Compactable[E]) empty() E {
	return c.monoid.Empty()
}

// Filterable adds predicate based filtering and partitioning to Compactable
type Filterable[E any] struct {
	Compactable[E]
}

func GetFilterable[E any](m fp.Monoid[E]) Filterable[E] {
	return Filterable[E]{Compactable: GetCompactable(m)}
}

// Compact turns Right(None) into Left(empty) and Right(Some(a)) into Right(a)
func Compact[E, A any](c Compactable[E], fa Either[E, option.Option[A]]) Either[E, A] {
	if !fa.isRight {
		return Left[E, A](fa.left)
	}
	if a, ok := fa.right.Get(); ok {
		return Right[E](a)
	}
	return Left[E, A](c.empty())
}

// Separate splits a Right(Either[A, B]) into its two sides. The side that is
// not present becomes Left(empty). A Left ends up on both sides.
func Separate[E, A, B any](c Compactable[E], fa Either[E, Either[A, B]]) fp.Separated[Either[E, A], Either[E, B]] {
	if !fa.isRight {
		return fp.NewSeparated(Left[E, A](fa.left), Left[E, B](fa.left))
	}
	inner := fa.right
	if inner.isRight {
		return fp.NewSeparated(Left[E, A](c.empty()), Right[E](inner.right))
	}
	return fp.NewSeparated(Right[E](inner.left), Left[E, B](c.empty()))
}

// Filter turns a Right failing pred into Left(empty)
func Filter[E, A any](f Filterable[E], fa Either[E, A], pred func(A) bool) Either[E, A] {
	return FilterOrElse(fa, pred, func(A) E { return f.empty() })
}

func FilterMap[E, A, B any](f Filterable[E], fa Either[E, A], g func(A) option.Option[B]) Either[E, B] {
	return Compact(f.Compactable, Map(fa, g))
}

// Partition puts a Right failing pred on the Left side and a Right passing it
// on the Right side
func Partition[E, A any](f Filterable[E], fa Either[E, A], pred func(A) bool) fp.Separated[Either[E, A], Either[E, A]] {
	return PartitionMap(f, fa, func(a A) Either[A, A] {
		if pred(a) {
			return Right[A](a)
		}
		return Left[A, A](a)
	})
}

func PartitionMap[E, A, B, C any](f Filterable[E], fa Either[E, A],
	g func(A) Either[B, C]) fp.Separated[Either[E, B], Either[E, C]] {

	return Separate(f.Compactable, Map(fa, g))
}
