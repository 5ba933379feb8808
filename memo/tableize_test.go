package memo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/xtools/memo"

	"github.com/stretchr/testify/assert"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 2)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O1(func(a, b int) int {
		count++
		return a + b
	}, 2)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)
}

func TestTableizeI3O1(t *testing.T) {
	count := 0
	fn := memo.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	}, 2)

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 2)

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableizeI2O2(t *testing.T) {
	count := 0
	fn := memo.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	}, 2)

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI1E_FailuresAreRetried(t *testing.T) {
	count := 0
	fn := memo.TableizeI1E(func(i int) (int, error) {
		count++
		if count == 1 {
			return 0, errors.New("flaky")
		}
		return i + 1, nil
	}, 4)

	_, err := fn(1)
	assert.Error(t, err)
	v, err := fn(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	v, _ = fn(1)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, count)
}

func TestTableize_BoundedGenerations(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(i int) int {
		count++
		return i
	}, 2)

	fn(1)
	fn(2) // head full, rotates: {1,2} become the previous generation
	fn(1) // still served by the previous generation
	assert.Equal(t, 2, count)

	fn(3)
	fn(4) // rotates again, dropping {1,2}
	fn(1)
	assert.Equal(t, 5, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := memo.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	}, 2)

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := memo.TableizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	}, 2)

	assert.Panics(t, func() { _ = fn(TotallyInvalid{Field: []int{1}}) })
}

func TestTableize_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.TableizeI1O1(func(i int) int { return i }, 0)
	})
}
