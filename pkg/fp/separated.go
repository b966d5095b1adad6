package fp

// Separated holds the two sides produced by a partition
type Separated[L, R any] struct {
	Left  L
	Right R
}

func NewSeparated[L, R any](left L, right R) Separated[L, R] {
	return Separated[L, R]{Left: left, Right: right}
}

type Tuple1[A any] struct {
	F1 A
}

type Tuple2[A, B any] struct {
	F1 A
	F2 B
}

type Tuple3[A, B, C any] struct {
	F1 A
	F2 B
	F3 C
}
