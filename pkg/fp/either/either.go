package either

import (
	"fmt"
)

type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a, isRight: true}
}

// Of lifts a into a Right
func Of[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the Left value and true, or the zero E and false
func (e Either[E, A]) LeftValue() (E, bool) {
	if e.isRight {
		return *new(E), false
	}
	return e.left, true
}

// RightValue returns the Right value and true, or the zero A and false
func (e Either[E, A]) RightValue() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	return *new(A), false
}

func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("right(%v)", e.right)
	}
	return fmt.Sprintf("left(%v)", e.left)
}
