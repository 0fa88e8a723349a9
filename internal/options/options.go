// Package options implements the functional options used by decoders,
// fetchers and the dataset loader.
package options

import (
	"fmt"

	"github.com/arloliu/idxset/errs"
)

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return Func[T](fn)
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return Func[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies options in order and stops at the first failure.
// Nil options are skipped. Failures are wrapped with errs.ErrInvalidConfig.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("%w: option %d: %w", errs.ErrInvalidConfig, i, err)
		}
	}

	return nil
}
