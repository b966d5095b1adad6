package option

import (
	"fmt"

	"github.com/ib-77/either/pkg/fp"
)

type Option[A any] struct {
	value  A
	isSome bool
}

func Some[A any](a A) Option[A] {
	return Option[A]{value: a, isSome: true}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr returns None for a nil pointer, Some of the pointed value otherwise
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

func (o Option[A]) IsSome() bool {
	return o.isSome
}

func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the held value and whether it is present
func (o Option[A]) Get() (A, bool) {
	return o.value, o.isSome
}

func (o Option[A]) GetOrElse(onNone func() A) A {
	if o.isSome {
		return o.value
	}
	return onNone()
}

func (o Option[A]) String() string {
	if o.isSome {
		return fmt.Sprintf("some(%v)", o.value)
	}
	return "none"
}

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[B]()
}

func Chain[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.isSome {
		return f(o.value)
	}
	return None[B]()
}

func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// Applicative returns the dictionary used to traverse into Option
func Applicative[A, B any]() fp.Applicative[A, Option[A], B, Option[B]] {
	return fp.Applicative[A, Option[A], B, Option[B]]{
		Of:  Some[B],
		Map: Map[A, B],
	}
}

func GetEq[A any](eq fp.Eq[A]) fp.Eq[Option[A]] {
	return fp.EqFunc[Option[A]](func(x, y Option[A]) bool {
		if x.isSome && y.isSome {
			return eq.Equals(x.value, y.value)
		}
		return x.isSome == y.isSome
	})
}
