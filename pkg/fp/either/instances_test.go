package either

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/either/pkg/fp"
)

func TestGetEq(t *testing.T) {
	t.Parallel()

	eq := GetEq(fp.EqString, fp.EqInt)
	assert.True(t, eq.Equals(Right[string](1), Right[string](1)))
	assert.False(t, eq.Equals(Right[string](1), Right[string](2)))
	assert.False(t, eq.Equals(Right[string](1), Left[string, int]("foo")))
	assert.True(t, eq.Equals(Left[string, int]("foo"), Left[string, int]("foo")))
	assert.False(t, eq.Equals(Left[string, int]("foo"), Left[string, int]("bar")))
	assert.False(t, eq.Equals(Left[string, int]("foo"), Right[string](1)))
}

func TestGetEqUsesSideInstances(t *testing.T) {
	t.Parallel()

	var sameLength fp.Eq[string] = fp.EqFunc[string](func(x, y string) bool { return len(x) == len(y) })
	eq := GetEq(sameLength, fp.EqInt)
	assert.True(t, eq.Equals(Left[string, int]("abc"), Left[string, int]("xyz")))
	assert.Equal(t, sameLength.Equals("abc", "xy"), eq.Equals(Left[string, int]("abc"), Left[string, int]("xy")))
}

func TestGetShow(t *testing.T) {
	t.Parallel()

	s := GetShow(fp.ShowString, fp.ShowString)
	assert.Equal(t, `left("a")`, s.Show(Left[string, string]("a")))
	assert.Equal(t, `right("a")`, s.Show(Right[string]("a")))

	n := GetShow(fp.ShowString, fp.ShowInt)
	assert.Equal(t, `right(42)`, n.Show(Right[string](42)))
}

func TestGetSemigroup(t *testing.T) {
	t.Parallel()

	s := GetSemigroup[string](fp.SemigroupSum[int]())
	assert.Equal(t, Left[string, int]("a"), s.Concat(Left[string, int]("a"), Left[string, int]("b")))
	assert.Equal(t, Right[string](2), s.Concat(Left[string, int]("a"), Right[string](2)))
	assert.Equal(t, Right[string](1), s.Concat(Right[string](1), Left[string, int]("b")))
	assert.Equal(t, Right[string](3), s.Concat(Right[string](1), Right[string](2)))
}

// apT appends the value of fb to the slice held by fas, accumulating Lefts
func apT[B any](v ApplicativeValidation[string], fas Either[string, []B], fb Either[string, B]) Either[string, []B] {
	return ApAccumulate(v, Map(fas, func(as []B) func(B) []B {
		return func(b B) []B {
			out := append([]B{}, as...)
			return append(out, b)
		}
	}), fb)
}

func TestGetApplicativeValidation(t *testing.T) {
	t.Parallel()

	v := GetApplicativeValidation[string](fp.MonoidString)
	assert.Equal(t, Left[string, []int]("ab"), apT(v, Left[string, []int]("a"), Left[string, int]("b")))
	assert.Equal(t, Left[string, []int]("b"), apT(v, Right[string]([]int{1}), Left[string, int]("b")))
	assert.Equal(t, Left[string, []int]("a"), apT(v, Left[string, []int]("a"), Right[string](2)))
	assert.Equal(t, Right[string]([]int{1, 2}), apT(v, Right[string]([]int{1}), Right[string](2)))
}

func TestApAccumulateOperandOrder(t *testing.T) {
	t.Parallel()

	first := GetApplicativeValidation[string](fp.SemigroupFirst[string]())
	last := GetApplicativeValidation[string](fp.SemigroupLast[string]())
	fab := Left[string, func(int) int]("function side")
	fa := Left[string, int]("value side")

	assert.Equal(t, Left[string, int]("function side"), ApAccumulate(first, fab, fa))
	assert.Equal(t, Left[string, int]("value side"), ApAccumulate(last, fab, fa))
}

func TestGetAltValidation(t *testing.T) {
	t.Parallel()

	v := GetAltValidation[string](fp.MonoidString)
	assert.Equal(t, Left[string, int]("ab"),
		AltAccumulate(v, Left[string, int]("a"), func() Either[string, int] { return Left[string, int]("b") }))
	assert.Equal(t, Right[string](1),
		AltAccumulate(v, Right[string](1), func() Either[string, int] { return Left[string, int]("b") }))
	assert.Equal(t, Right[string](2),
		AltAccumulate(v, Left[string, int]("a"), func() Either[string, int] { return Right[string](2) }))
}

func TestAccumulateErrors(t *testing.T) {
	t.Parallel()

	v := GetAltValidation[error](fp.MonoidError)
	e1 := errors.New("first")
	e2 := errors.New("second")

	res := AltAccumulate(v, Left[error, int](e1), func() Either[error, int] { return Left[error, int](e2) })
	err, ok := res.LeftValue()
	assert.True(t, ok)
	assert.Equal(t, []error{e1, e2}, fp.GetErrors(err))
	assert.ErrorIs(t, err, e2)
}
