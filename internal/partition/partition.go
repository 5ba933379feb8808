package partition

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Partitionable lets a key choose the string it is routed by.
// Keys that are == must return the same PartitionKey.
type Partitionable interface {
	PartitionKey() string
}

var seed = maphash.MakeSeed()

// hash depends only on the identity of k, so keys that are == always
// hash alike: 0.0 and -0.0 collide, and pointers hash by address.
func hash[K comparable](k K) uint64 {
	switch k := any(k).(type) {
	case Partitionable:
		return xxhash.Sum64String(k.PartitionKey())
	case string:
		return xxhash.Sum64String(k)
	default:
		return maphash.Comparable(seed, k)
	}
}

// Index maps k onto one of n shards.
// A single shard never hashes.
func Index[K comparable](k K, n int) int {
	switch n {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(k) % uint64(n))
	}
}
