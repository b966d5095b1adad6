package either

import (
	"github.com/ib-77/either/pkg/fp"
)

// Do starts a record-building chain from an empty record
func Do[E, S any](empty S) Either[E, S] {
	return Right[E](empty)
}

// BindTo starts a record-building chain by storing a into a new record
func BindTo[E, A, S any](fa Either[E, A], setter func(A) S) Either[E, S] {
	return Map(fa, setter)
}

// Bind runs f on the record built so far and stores its value with setter
func Bind[E, S1, S2, B any](fs Either[E, S1], setter func(S1, B) S2, f func(S1) Either[E, B]) Either[E, S2] {
	return Chain(fs, func(s S1) Either[E, S2] {
		return Map(f(s), func(b B) S2 { return setter(s, b) })
	})
}

// Let stores a pure value computed from the record
func Let[E, S1, S2, B any](fs Either[E, S1], setter func(S1, B) S2, f func(S1) B) Either[E, S2] {
	return Map(fs, func(s S1) S2 { return setter(s, f(s)) })
}

// ApS stores the value of fb, which does not depend on the record
func ApS[E, S1, S2, B any](fs Either[E, S1], setter func(S1, B) S2, fb Either[E, B]) Either[E, S2] {
	return Ap(Map(fs, func(s S1) func(B) S2 {
		return func(b B) S2 { return setter(s, b) }
	}), fb)
}

// Tupled wraps a Right value into a one element tuple
func Tupled[E, A any](fa Either[E, A]) Either[E, fp.Tuple1[A]] {
	return Map(fa, func(a A) fp.Tuple1[A] { return fp.Tuple1[A]{F1: a} })
}

// ApT appends the value of fb to a one element tuple
func ApT[E, A, B any](ft Either[E, fp.Tuple1[A]], fb Either[E, B]) Either[E, fp.Tuple2[A, B]] {
	return Ap(Map(ft, func(t fp.Tuple1[A]) func(B) fp.Tuple2[A, B] {
		return func(b B) fp.Tuple2[A, B] { return fp.Tuple2[A, B]{F1: t.F1, F2: b} }
	}), fb)
}

// ApT3 appends the value of fc to a two element tuple
func ApT3[E, A, B, C any](ft Either[E, fp.Tuple2[A, B]], fc Either[E, C]) Either[E, fp.Tuple3[A, B, C]] {
	return Ap(Map(ft, func(t fp.Tuple2[A, B]) func(C) fp.Tuple3[A, B, C] {
		return func(c C) fp.Tuple3[A, B, C] { return fp.Tuple3[A, B, C]{F1: t.F1, F2: t.F2, F3: c} }
	}), fc)
}
