package chain

import (
	"github.com/ib-77/either/pkg/fp/either"
)

// Chain wraps an either.Either to enable fluent chaining
type Chain[E, A any] struct {
	value either.Either[E, A]
}

// Start creates a new chain from an either.Either
func Start[E, A any](value either.Either[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		value: value,
	}
}

// FromValue creates a new chain from a Right value
func FromValue[E, A any](value A) *Chain[E, A] {
	return &Chain[E, A]{
		value: either.Right[E](value),
	}
}

// Either returns the underlying either.Either
func (c *Chain[E, A]) Either() either.Either[E, A] {
	return c.value
}

// Then chains a function that returns either.Either[E, B]
func Then[E, A, B any](c *Chain[E, A], onRight func(A) either.Either[E, B]) *Chain[E, B] {
	return &Chain[E, B]{
		value: either.Chain(c.value, onRight),
	}
}

// ThenTry chains a function that returns (B, error)
func ThenTry[A, B any](c *Chain[error, A], tryOnRight func(A) (B, error)) *Chain[error, B] {
	return &Chain[error, B]{
		value: either.Chain(c.value, func(a A) either.Either[error, B] {
			return either.Try(func() (B, error) { return tryOnRight(a) })
		}),
	}
}

// Map chains a pure transformation function
func Map[E, A, B any](c *Chain[E, A], onRight func(A) B) *Chain[E, B] {
	return &Chain[E, B]{
		value: either.Map(c.value, onRight),
	}
}

// Ensure performs a side effect without changing the value
func (c *Chain[E, A]) Ensure(onRight func(A)) *Chain[E, A] {
	if a, ok := c.value.RightValue(); ok {
		onRight(a)
	}
	return c
}

// Recover replaces a Left with the Either built from it
func (c *Chain[E, A]) Recover(onLeft func(E) either.Either[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		value: either.OrElse(c.value, onLeft),
	}
}

// Finally collapses the chain into a final value using either.Fold
func Finally[E, A, B any](c *Chain[E, A], onRight func(A) B, onLeft func(E) B) B {
	return either.Fold(c.value, onLeft, onRight)
}
