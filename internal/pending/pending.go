// Package pending provides a single-assignment future for content that is
// being produced asynchronously, typically by the definition-file parser
// running during application startup. A Pending yields its value exactly
// once; consumers that reach it before the producer finishes block until it
// does.
package pending

import (
	"context"
	"time"

	"github.com/vk/contentsync/internal/ctxlog"
)

// waitReportInterval is how often Wait logs that it is still blocked on the
// producer. Long waits usually mean a stuck or very slow parse and should be
// visible in the logs.
const waitReportInterval = 10 * time.Second

// Pending is a handle to a value that a producer goroutine is still building.
// It is created by Start and consumed by Wait.
type Pending[T any] struct {
	name  string
	done  chan struct{}
	value T
	err   error
}

// Start launches produce in its own goroutine and returns the handle the
// consumer will eventually wait on. The name identifies the content in logs.
func Start[T any](ctx context.Context, name string, produce func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{name: name, done: make(chan struct{})}
	logger := ctxlog.FromContext(ctx).With("content", name)
	go func() {
		defer close(p.done)
		logger.Debug("Content production started.")
		p.value, p.err = produce(ctx)
		if p.err != nil {
			logger.Error("Content production failed.", "error", p.err)
			return
		}
		logger.Debug("Content production finished.")
	}()
	return p
}

// Name returns the identifier the Pending was started with.
func (p *Pending[T]) Name() string {
	return p.name
}

// Ready reports whether the producer has finished, without blocking. Callers
// that cannot afford to block in Wait can poll this first.
func (p *Pending[T]) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the producer completes and returns its result. There is
// no cancellation: once a consumer commits to waiting, it waits for the
// producer, and any timeout policy belongs to the producer itself. The
// context is used only for logging. Wait may be called any number of times;
// every call returns the same result.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	logger := ctxlog.FromContext(ctx).With("content", p.name)
	waited := time.Duration(0)
	for {
		select {
		case <-p.done:
			return p.value, p.err
		case <-time.After(waitReportInterval):
			waited += waitReportInterval
			logger.Warn("Still waiting for content production.", "waited", waited.String())
		}
	}
}
