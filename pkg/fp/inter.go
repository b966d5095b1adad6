package fp

// Eq defines equality for values of type A
type Eq[A any] interface {
	// Equals returns true if x and y are equal
	Equals(x, y A) bool
}

// Show renders a value of type A as a string
type Show[A any] interface {
	Show(a A) string
}

// Semigroup defines an associative binary operation
type Semigroup[A any] interface {
	// Concat combines x and y, x first
	Concat(x, y A) A
}

// Monoid extends Semigroup with an identity element
type Monoid[A any] interface {
	Semigroup[A]
	// Empty returns the identity element for Concat
	Empty() A
}

// Applicative is the part of an applicative functor a traversal needs:
// lifting a B into FB and mapping an FA into FB.
// FA stands for F[A] and FB for F[B] of the same effect F.
type Applicative[A, FA, B, FB any] struct {
	Of  func(b B) FB
	Map func(fa FA, f func(A) B) FB
}

type EqFunc[A any] func(x, y A) bool

func (f EqFunc[A]) Equals(x, y A) bool {
	return f(x, y)
}

type ShowFunc[A any] func(a A) string

func (f ShowFunc[A]) Show(a A) string {
	return f(a)
}

type SemigroupFunc[A any] func(x, y A) A

func (f SemigroupFunc[A]) Concat(x, y A) A {
	return f(x, y)
}

type monoid[A any] struct {
	concat func(x, y A) A
	empty  A
}

func (m monoid[A]) Concat(x, y A) A {
	return m.concat(x, y)
}

func (m monoid[A]) Empty() A {
	return m.empty
}

// NewMonoid builds a Monoid from a concat function and its identity element
func NewMonoid[A any](concat func(x, y A) A, empty A) Monoid[A] {
	return monoid[A]{concat: concat, empty: empty}
}
