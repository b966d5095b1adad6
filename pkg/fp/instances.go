package fp

import (
	"errors"
	"fmt"
	"strconv"
)

// Number is the set of builtin numeric types
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var (
	EqString = EqStrict[string]()
	EqInt    = EqStrict[int]()

	// ShowString renders a string as a double-quoted Go literal
	ShowString Show[string] = ShowFunc[string](strconv.Quote)
	ShowInt                 = ShowNumber[int]()

	MonoidString = NewMonoid(func(x, y string) string { return x + y }, "")
	MonoidError  = NewMonoid[error](joinErrors, nil)
)

// EqStrict compares with ==
func EqStrict[A comparable]() Eq[A] {
	return EqFunc[A](func(x, y A) bool { return x == y })
}

func ShowNumber[T Number]() Show[T] {
	return ShowFunc[T](func(n T) string { return fmt.Sprint(n) })
}

func SemigroupSum[T Number]() Semigroup[T] {
	return SemigroupFunc[T](func(x, y T) T { return x + y })
}

func MonoidSum[T Number]() Monoid[T] {
	return NewMonoid[T](func(x, y T) T { return x + y }, 0)
}

// SemigroupFirst always keeps the first operand
func SemigroupFirst[A any]() Semigroup[A] {
	return SemigroupFunc[A](func(x, _ A) A { return x })
}

// SemigroupLast always keeps the second operand
func SemigroupLast[A any]() Semigroup[A] {
	return SemigroupFunc[A](func(_, y A) A { return y })
}

// MonoidSlice concatenates slices, the empty element is nil
func MonoidSlice[A any]() Monoid[[]A] {
	return NewMonoid(func(x, y []A) []A {
		out := make([]A, 0, len(x)+len(y))
		out = append(out, x...)
		return append(out, y...)
	}, nil)
}

// joinErrors keeps joined errors flat so GetErrors returns every leaf error
func joinErrors(x, y error) error {
	e := GetErrors(x)
	e = append(e, GetErrors(y)...)
	if len(e) == 0 {
		return nil
	}
	return errors.Join(e...)
}
