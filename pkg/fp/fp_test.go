package fp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	t.Parallel()

	assert.True(t, EqString.Equals("a", "a"))
	assert.False(t, EqString.Equals("a", "b"))
	assert.True(t, EqInt.Equals(3, 3))
	assert.True(t, EqStrict[float64]().Equals(1.5, 1.5))
}

func TestShow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a"`, ShowString.Show("a"))
	assert.Equal(t, `12`, ShowInt.Show(12))
	assert.Equal(t, `1.5`, ShowNumber[float64]().Show(1.5))
}

func TestSemigroups(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, SemigroupSum[int]().Concat(2, 3))
	assert.Equal(t, "x", SemigroupFirst[string]().Concat("x", "y"))
	assert.Equal(t, "y", SemigroupLast[string]().Concat("x", "y"))
}

func TestMonoids(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", MonoidString.Concat("a", "b"))
	assert.Equal(t, "", MonoidString.Empty())
	assert.Equal(t, 0, MonoidSum[int]().Empty())
	assert.Equal(t, []int{1, 2, 3}, MonoidSlice[int]().Concat([]int{1}, []int{2, 3}))
	assert.Nil(t, MonoidSlice[int]().Empty())
}

func TestMonoidError(t *testing.T) {
	t.Parallel()

	e1 := errors.New("e1")
	e2 := errors.New("e2")
	e3 := errors.New("e3")

	assert.NoError(t, MonoidError.Empty())
	assert.NoError(t, MonoidError.Concat(nil, nil))
	assert.Equal(t, []error{e1}, GetErrors(MonoidError.Concat(nil, e1)))

	joined := MonoidError.Concat(MonoidError.Concat(e1, e2), e3)
	assert.Equal(t, []error{e1, e2, e3}, GetErrors(joined))
	assert.ErrorIs(t, joined, e2)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	e1 := errors.New("e1")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{e1}, GetErrors(e1))
}

func TestSeparated(t *testing.T) {
	t.Parallel()

	s := NewSeparated(1, "a")
	assert.Equal(t, 1, s.Left)
	assert.Equal(t, "a", s.Right)
}
