package orderedbuffer

import (
	"context"
	"slices"
	"sync"

	"github.com/on-the-ground/xtools/ordering"
)

// OrderedBoundedBuffer keeps at most maxBufLen values sorted by compare.
// Inserting past the bound evicts the smallest value to Source.
// Close flushes the rest in order and closes Source.
type OrderedBoundedBuffer[T any] struct {
	mu        sync.Mutex
	data      []T
	maxBufLen int
	compare   func(a, b T) int

	sink    chan T
	closed  bool
	sending sync.WaitGroup // evictions on their way to sink
	abort   chan struct{}  // closed when Close gives up
}

// New orders values with the dynamic comparison of ordering in the given mode.
func New[T any](maxBufLen int, mode ordering.Mode) *OrderedBoundedBuffer[T] {
	return NewFunc(maxBufLen, ordering.CompareFunc[T](mode))
}

func NewFunc[T any](maxBufLen int, cmp func(a, b T) int) *OrderedBoundedBuffer[T] {
	if maxBufLen <= 0 {
		panic("maxBufLen should be greater than 0")
	}
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen+1),
		maxBufLen: maxBufLen,
		compare:   cmp,
		sink:      make(chan T, maxBufLen*2),
		abort:     make(chan struct{}),
	}
}

// insert places val after equal values, or before them when first is set.
// Callers hold mu.
func (b *OrderedBoundedBuffer[T]) insert(val T, first bool) {
	idx, found := slices.BinarySearchFunc(b.data, val, b.compare)
	for !first && found && idx < len(b.data) && b.compare(b.data[idx], val) == 0 {
		idx++
	}
	b.data = slices.Insert(b.data, idx, val)
}

// Insert adds val after any equal values already buffered.
//
// It returns false once the buffer is closed, or when ctx ends before an
// evicted value reaches Source. An eviction that did not get through is put
// back, so the buffer may briefly hold one value over its bound.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	b.insert(val, false)
	if len(b.data) <= b.maxBufLen {
		b.mu.Unlock()
		return true
	}
	evicted := b.data[0]
	b.data = b.data[1:]
	b.sending.Add(1)
	b.mu.Unlock()
	defer b.sending.Done()

	select {
	case b.sink <- evicted:
		return true
	case <-ctx.Done():
	case <-b.abort:
	}

	b.mu.Lock()
	b.insert(evicted, true)
	b.mu.Unlock()
	return false
}

// Len returns the number of values still buffered.
func (b *OrderedBoundedBuffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close stops inserts and flushes the buffered values to Source in order.
// When ctx ends first, unflushed values are dropped. Source is closed either way.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(b.sink)

		b.sending.Wait()
		b.mu.Lock()
		rest := b.data
		b.data = nil
		b.mu.Unlock()

		for _, v := range rest {
			select {
			case <-b.abort:
				return
			case b.sink <- v:
			}
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		close(b.abort)
		<-done
	}
}
