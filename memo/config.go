package memo

import (
	"github.com/on-the-ground/xtools/shared/logging"
	"go.uber.org/zap"
)

// Config holds the structural settings of a Cache.
type Config struct {
	Shards int // default: 1
}

// NewConfig returns a Config with non-positive values replaced by their defaults.
func NewConfig(shards int) Config {
	if shards <= 0 {
		shards = 1
	}
	return Config{
		Shards: shards,
	}
}

// Initializer computes the value of an absent key.
type Initializer[K comparable, V any] func(K) (V, error)

type config[K comparable, V any] struct {
	Config
	initializer Initializer[K, V]
	logger      *zap.Logger
	store       Store[K, V]
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		Config: NewConfig(1),
		logger: zap.NewNop(),
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithConfig replaces the structural settings.
func WithConfig[K comparable, V any](c Config) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.Config = NewConfig(c.Shards)
	}
}

// WithShards sets how many independent maps the keys are spread over.
func WithShards[K comparable, V any](n int) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.Config = NewConfig(n)
	}
}

// WithInitializer sets the default initializer used by Get.
func WithInitializer[K comparable, V any](fn Initializer[K, V]) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.initializer = fn
	}
}

// WithLogger sets the logger. A nil logger means no logging.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(cfg *config[K, V]) {
		cfg.logger = logging.OrNop(logger)
	}
}
