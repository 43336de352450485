package futurex

import (
	"context"

	"github.com/pkg/errors"
)

type outcome struct {
	value any
	err   error
}

// Await blocks until the future settles or ctx is done. Rejection reasons are
// returned as errors, non-error reasons are wrapped.
// Delivery happens on the loop goroutine, so Await must not be called from it.
func (f *Future) Await(ctx context.Context) (any, error) {
	settled := make(chan outcome, 1)
	f.Observe(
		func(value any) {
			settled <- outcome{value: value}
		},
		func(reason any) {
			settled <- outcome{err: ReasonError(reason)}
		},
	)

	select {
	case result := <-settled:
		return result.value, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ReasonError converts a rejection reason to an error.
func ReasonError(reason any) error {
	err, ok := reason.(error)
	if ok {
		return err
	}
	return errors.Errorf("rejected: %v", reason)
}
