// Package memo provides a concurrent memoizing cache and memoizers for pure functions.
//
// The centerpiece is Cache, a generic key/value store whose values are
// computed lazily, at most once per key, no matter how many goroutines ask
// for the same absent key at the same time:
//
//	types := memo.New[reflect.Type, []string](
//		memo.WithInitializer(func(t reflect.Type) ([]string, error) {
//			return fieldNames(t), nil
//		}),
//	)
//	names, err := types.Get(reflect.TypeOf(user))
//
// Values can also be computed per call with GetWith, installed with Put and
// dropped with Remove or Clear. A Get on an absent key with no initializer at
// all fails with ErrMissingInitializer rather than returning a zero value.
//
// Errors returned by an initializer reach every waiting caller unchanged and
// are never cached, so the next Get retries.
//
// The Tableize family builds on Cache to memoize pure functions by their
// arguments:
//
//	square := memo.TableizeI1O1(func(i int) int { return i * i }, 1024)
//
// Tableize assumes purity: not just determinism, but referential
// transparency. Do not use it on functions depending on time or I/O.
package memo
