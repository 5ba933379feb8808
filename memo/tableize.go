package memo

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ComparableOrStringer documents what Tableize accepts as arguments:
// either a comparable value, or a fmt.Stringer whose String() is used as the key.
type ComparableOrStringer any

func tableKey(i ComparableOrStringer) any {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// table is a bounded memo made of two Cache generations.
// When the head generation reaches maxSize, the older one is cleared and becomes the head.
type table[K comparable, O any] struct {
	mu      sync.Mutex
	gens    [2]*Cache[K, O]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func newTable[K comparable, O any](maxSize uint32) *table[K, O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &table[K, O]{
		gens:    [2]*Cache[K, O]{New[K, O](), New[K, O]()},
		maxSize: maxSize,
	}
}

func (t *table[K, O]) load(k K, compute func() (O, error)) (O, error) {
	headIdx := t.headIdx.Load()
	if v, ok := t.gens[1-headIdx].Lookup(k); ok {
		return v, nil
	}
	v, err := t.gens[headIdx].GetWith(k, func() (O, error) {
		v, err := compute()
		if err == nil {
			t.size.Add(1)
		}
		return v, err
	})
	if t.size.Load() >= t.maxSize {
		t.rotate()
	}
	return v, err
}

func (t *table[K, O]) rotate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size.Load() < t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.gens[next].Clear()
	t.headIdx.Store(next)
	t.size.Store(0)
}

// TableizeI1O1 memoizes a pure single-argument function.
// At most about 2*maxTableSize results are retained.
func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := newTable[[1]any, O1](maxTableSize)
	return func(i1 I1) O1 {
		v, _ := memo.load([1]any{tableKey(i1)}, func() (O1, error) {
			return pureFn(i1), nil
		})
		return v
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memo := newTable[[2]any, O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		v, _ := memo.load([2]any{tableKey(i1), tableKey(i2)}, func() (O1, error) {
			return pureFn(i1, i2), nil
		})
		return v
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	memo := newTable[[3]any, O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		v, _ := memo.load([3]any{tableKey(i1), tableKey(i2), tableKey(i3)}, func() (O1, error) {
			return pureFn(i1, i2, i3), nil
		})
		return v
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	memo := newTable[[1]any, result[O1, O2]](maxTableSize)
	return func(i1 I1) (O1, O2) {
		res, _ := memo.load([1]any{tableKey(i1)}, func() (result[O1, O2], error) {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{O1: v1, O2: v2}, nil
		})
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	memo := newTable[[2]any, result[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		res, _ := memo.load([2]any{tableKey(i1), tableKey(i2)}, func() (result[O1, O2], error) {
			v1, v2 := pureFn(i1, i2)
			return result[O1, O2]{O1: v1, O2: v2}, nil
		})
		return res.O1, res.O2
	}
}

// TableizeI1E memoizes a function that may fail. Failures are not remembered.
func TableizeI1E[I1 ComparableOrStringer, O1 any](
	fn func(I1) (O1, error),
	maxTableSize uint32,
) func(I1) (O1, error) {
	memo := newTable[[1]any, O1](maxTableSize)
	return func(i1 I1) (O1, error) {
		return memo.load([1]any{tableKey(i1)}, func() (O1, error) {
			return fn(i1)
		})
	}
}
