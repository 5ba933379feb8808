package memo

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/xtools/internal/partition"
	"go.uber.org/zap"
)

// ErrMissingInitializer is returned by Get for an absent key when neither a
// per-call nor a default initializer is available.
var ErrMissingInitializer = errors.New("no initializer for absent key")

// Cache is a concurrent key/value memo.
//
// Each absent key is initialized at most once at a time: the first caller
// installs a pending handle with an atomic insert-if-absent and runs the
// initializer, later callers block on that handle only. Unrelated keys never
// wait on each other.
//
// A failed initialization is not cached. Its error goes to every caller
// waiting on that handle, and the next Get runs the initializer again.
//
// Put replaces the handle of a key unconditionally. If an initializer for the
// same key is still running, its waiters receive its result but the cache
// keeps the put value.
type Cache[K comparable, V any] struct {
	id          string
	shards      []*sync.Map // K -> *lazy[V]
	initializer atomic.Pointer[Initializer[K, V]]
	store       Store[K, V]
	logger      *zap.Logger
	stats       Stats
}

// New creates a Cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New().String()
	c := &Cache[K, V]{
		id:     id,
		shards: make([]*sync.Map, cfg.Shards),
		store:  cfg.store,
		logger: cfg.logger.With(zap.String("cache_id", id)),
	}
	for i := range c.shards {
		c.shards[i] = &sync.Map{}
	}
	if cfg.initializer != nil {
		c.SetInitializer(cfg.initializer)
	}
	c.logger.Debug("created cache", zap.Int("shards", cfg.Shards))
	return c
}

// ID identifies the cache in log output.
func (c *Cache[K, V]) ID() string {
	return c.id
}

// SetInitializer replaces the default initializer. A nil fn removes it.
func (c *Cache[K, V]) SetInitializer(fn Initializer[K, V]) {
	if fn == nil {
		c.initializer.Store(nil)
		return
	}
	c.initializer.Store(&fn)
}

func (c *Cache[K, V]) defaultInitializer() Initializer[K, V] {
	if fn := c.initializer.Load(); fn != nil {
		return *fn
	}
	return nil
}

func (c *Cache[K, V]) shard(key K) *sync.Map {
	return c.shards[partition.Index(key, len(c.shards))]
}

// Get returns the value of key, running the default initializer if the key is absent.
func (c *Cache[K, V]) Get(key K) (V, error) {
	return c.get(key, c.defaultInitializer())
}

// MustGet is Get for call sites that treat a failure as a bug.
func (c *Cache[K, V]) MustGet(key K) V {
	v, err := c.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// GetWith returns the value of key, running init if the key is absent.
// A nil init falls back to the default initializer.
func (c *Cache[K, V]) GetWith(key K, init func() (V, error)) (V, error) {
	if init == nil {
		return c.Get(key)
	}
	return c.get(key, func(K) (V, error) { return init() })
}

// GetWithKey is GetWith for initializers that need the key.
func (c *Cache[K, V]) GetWithKey(key K, init Initializer[K, V]) (V, error) {
	if init == nil {
		return c.Get(key)
	}
	return c.get(key, init)
}

func (c *Cache[K, V]) get(key K, init Initializer[K, V]) (V, error) {
	shard := c.shard(key)
	if raw, ok := shard.Load(key); ok {
		c.stats.hit()
		return raw.(*lazy[V]).wait()
	}

	if init == nil {
		c.stats.miss()
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrMissingInitializer, key)
	}

	handle := newLazy[V]()
	if raw, loaded := shard.LoadOrStore(key, handle); loaded {
		c.stats.hit()
		return raw.(*lazy[V]).wait()
	}
	c.stats.miss()

	c.populate(shard, key, handle, init)
	return handle.wait()
}

// populate completes handle. It runs only in the goroutine whose handle won LoadOrStore.
func (c *Cache[K, V]) populate(shard *sync.Map, key K, handle *lazy[V], init Initializer[K, V]) {
	defer func() {
		if r := recover(); r != nil {
			shard.CompareAndDelete(key, handle)
			c.stats.failure()
			var zero V
			handle.complete(zero, fmt.Errorf("initializer panicked: %v", r))
			c.logger.Error("cache initializer panicked", zap.Any("key", key), zap.Any("panic", r))
			panic(r)
		}
	}()

	v, err := c.load(key, init)
	if err != nil {
		// Delete before completing so that no caller arriving afterwards
		// can observe the failed handle.
		shard.CompareAndDelete(key, handle)
		c.stats.failure()
		c.logger.Debug("cache initializer failed", zap.Any("key", key), zap.Error(err))
		var zero V
		handle.complete(zero, err)
		return
	}

	c.stats.initialized()
	c.logger.Debug("initialized cache entry", zap.Any("key", key))
	handle.complete(v, nil)
}

func (c *Cache[K, V]) load(key K, init Initializer[K, V]) (V, error) {
	if c.store == nil {
		return init(key)
	}

	v, ok, err := c.store.Get(key)
	if err != nil {
		return v, err
	}
	if ok {
		c.logger.Debug("cache entry loaded from store", zap.Any("key", key))
		return v, nil
	}

	v, err = init(key)
	if err != nil {
		return v, err
	}
	if err := c.store.Set(key, v); err != nil {
		c.logger.Warn("failed to write cache entry to store", zap.Any("key", key), zap.Error(err))
	}
	return v, nil
}

// Lookup returns the value of key without initializing it.
// It waits for an initialization already in flight.
func (c *Cache[K, V]) Lookup(key K) (V, bool) {
	var zero V
	raw, ok := c.shard(key).Load(key)
	if !ok {
		return zero, false
	}
	v, err := raw.(*lazy[V]).wait()
	if err != nil {
		return zero, false
	}
	return v, true
}

// Has reports whether key holds a completed value.
func (c *Cache[K, V]) Has(key K) bool {
	raw, ok := c.shard(key).Load(key)
	if !ok {
		return false
	}
	l := raw.(*lazy[V])
	return l.ready() && l.err == nil
}

// Put installs value for key, replacing any previous value. Last write wins.
func (c *Cache[K, V]) Put(key K, value V) {
	c.shard(key).Store(key, completed(value))
	if c.store == nil {
		return
	}
	if err := c.store.Set(key, value); err != nil {
		c.logger.Warn("failed to write cache entry to store", zap.Any("key", key), zap.Error(err))
	}
}

// Remove makes key absent. The next Get initializes it again.
func (c *Cache[K, V]) Remove(key K) {
	c.shard(key).Delete(key)
	if c.store == nil {
		return
	}
	if err := c.store.Delete(key); err != nil {
		c.logger.Warn("failed to delete cache entry from store", zap.Any("key", key), zap.Error(err))
	}
}

// Clear removes every in-memory entry. The store, if any, is not affected.
func (c *Cache[K, V]) Clear() {
	for _, shard := range c.shards {
		shard.Clear()
	}
	c.logger.Debug("cleared cache")
}

// Len returns the number of entries, including those still initializing.
func (c *Cache[K, V]) Len() int {
	n := 0
	for _, shard := range c.shards {
		shard.Range(func(_, _ any) bool {
			n++
			return true
		})
	}
	return n
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.snapshot()
}
