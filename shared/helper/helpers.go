package helper

import (
	"errors"
	"fmt"
)

// GetTypedValueOf asserts the result of a getter to T.
// Returns an error if the getter fails or the value has another type.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

var ErrMaxAttempts = errors.New("max attempts reached")

// Retry calls fn until it succeeds, at most maxAttempts times.
func Retry(maxAttempts int, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, maxAttempts, err)
}
