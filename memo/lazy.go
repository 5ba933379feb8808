package memo

// lazy is the per-key handle. Exactly one goroutine completes it.
type lazy[V any] struct {
	done  chan struct{}
	value V
	err   error
}

func newLazy[V any]() *lazy[V] {
	return &lazy[V]{done: make(chan struct{})}
}

func completed[V any](v V) *lazy[V] {
	l := &lazy[V]{done: make(chan struct{}), value: v}
	close(l.done)
	return l
}

func (l *lazy[V]) complete(v V, err error) {
	l.value = v
	l.err = err
	close(l.done)
}

func (l *lazy[V]) wait() (V, error) {
	<-l.done
	return l.value, l.err
}

func (l *lazy[V]) ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
