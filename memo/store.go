package memo

// Store is an optional second tier behind the in-memory entries,
// for example a size-bounded cache shared with other processes' data.
//
// The goroutine that wins initialization of a key asks the store first and
// only runs the initializer on a store miss.
type Store[K comparable, V any] interface {
	Get(key K) (value V, ok bool, err error)
	Set(key K, value V) error
	Delete(key K) error
}

// WithStore sets the second tier.
// Put writes through to it and Remove deletes from it. Clear leaves it untouched,
// so a Get after Clear is served from the store without running the initializer.
func WithStore[K comparable, V any](s Store[K, V]) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.store = s
	}
}
