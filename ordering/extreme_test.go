package ordering_test

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/on-the-ground/xtools/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSeq yields values and counts how often it was enumerated.
func countingSeq(values []any, passes *int) iter.Seq[any] {
	return func(yield func(any) bool) {
		*passes++
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestMax_MixedIntAndText(t *testing.T) {
	v, err := ordering.Max([]any{3, "10", 2})
	require.NoError(t, err)
	assert.Equal(t, "10", v)
}

func TestMax_PureText(t *testing.T) {
	v, err := ordering.Max([]string{"banana", "apple"})
	require.NoError(t, err)
	assert.Equal(t, "banana", v)

	v2, mode, err := ordering.MaxMode([]any{"banana", "apple"}, ordering.Default)
	require.NoError(t, err)
	assert.Equal(t, "banana", v2)
	assert.Equal(t, ordering.Default, mode)
}

func TestMax_Empty(t *testing.T) {
	_, err := ordering.Max([]any{})
	assert.ErrorIs(t, err, ordering.ErrEmptySequence)

	_, err = ordering.Min[int](nil)
	assert.ErrorIs(t, err, ordering.ErrEmptySequence)

	_, _, err = ordering.MaxMode([]any{}, ordering.String)
	assert.ErrorIs(t, err, ordering.ErrEmptySequence)
}

func TestMax_Dates(t *testing.T) {
	dateA := time.Date(2019, time.December, 31, 23, 59, 59, 0, time.UTC)
	dateB := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	v, err := ordering.Max([]time.Time{dateA, dateB})
	require.NoError(t, err)
	assert.Equal(t, dateB, v)

	w, mode, err := ordering.MaxMode([]any{dateA, dateB}, ordering.Numeric)
	require.NoError(t, err)
	assert.Equal(t, dateB, w)
	assert.Equal(t, ordering.Numeric, mode)
}

func TestMax_SingleElement(t *testing.T) {
	v, mode, err := ordering.MaxMode([]any{"only"}, ordering.Default)
	require.NoError(t, err)
	assert.Equal(t, "only", v)
	assert.Equal(t, ordering.Default, mode)
}

func TestExtreme_MixedNativeAndNumericRescans(t *testing.T) {
	// Natively "9" > "10", but numerically 10 is the largest.
	values := []any{"9", "10", 5}
	passes := 0

	v, mode, err := ordering.Extreme(countingSeq(values, &passes), ordering.Default, true)
	require.NoError(t, err)
	assert.Equal(t, "10", v)
	assert.Equal(t, ordering.Numeric, mode)
	assert.Equal(t, 3, passes, "default pass, coercibility check, numeric pass")

	v, err = ordering.Min(values)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestExtreme_EscalatesToString(t *testing.T) {
	values := []any{10, 9, "x"}
	passes := 0

	v, mode, err := ordering.Extreme(countingSeq(values, &passes), ordering.Default, true)
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Equal(t, ordering.String, mode)
	assert.Equal(t, 2, passes)

	// In String mode "10" < "9" < "x".
	v, mode, err = ordering.MinMode(values, ordering.Default)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, ordering.String, mode)
}

func TestExtreme_NumericOnlyPassIsFinal(t *testing.T) {
	values := []any{3, "10", 2}
	passes := 0

	v, mode, err := ordering.Extreme(countingSeq(values, &passes), ordering.Default, true)
	require.NoError(t, err)
	assert.Equal(t, "10", v)
	assert.Equal(t, ordering.Numeric, mode)
	assert.Equal(t, 1, passes)
}

func TestExtreme_ForcedModes(t *testing.T) {
	values := []any{"2", "10", "abc"}

	v, mode, err := ordering.MaxMode(values, ordering.Numeric)
	require.NoError(t, err)
	assert.Equal(t, "10", v)
	assert.Equal(t, ordering.Numeric, mode)

	v, mode, err = ordering.MaxMode(values, ordering.String)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, ordering.String, mode)
}

func TestExtreme_TiesKeepEarlierElement(t *testing.T) {
	v, err := ordering.Max([]any{1, 1.0, "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	w, _, err := ordering.MaxMode([]any{"1.0", "1", "1.00"}, ordering.Numeric)
	require.NoError(t, err)
	assert.Equal(t, "1.0", w)
}

func TestExtreme_TinyFloats(t *testing.T) {
	v, mode, err := ordering.MaxMode([]any{0, 1e-21, 3e-21}, ordering.Default)
	require.NoError(t, err)
	assert.Equal(t, 3e-21, v)
	assert.Equal(t, ordering.Numeric, mode)

	v, err = ordering.Min([]any{3e-21, 1e-21, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestExtreme_NullsSortFirst(t *testing.T) {
	values := []any{nil, 4, nil, 7}

	v, err := ordering.Min(values)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ordering.Max(values)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMaxSeq_MinSeq(t *testing.T) {
	values := []int{4, 1, 9, 3}

	v, err := ordering.MaxSeq(slices.Values(values))
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = ordering.MinSeq(slices.Values(values))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
