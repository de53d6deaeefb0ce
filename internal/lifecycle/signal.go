// Package lifecycle ties the process context to shutdown signals.
package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignals returns a copy of parent that is cancelled on SIGTERM or
// SIGINT. Calling stop releases the signal registration and cancels the
// context; it is safe to call more than once.
func WithSignals(parent context.Context) (ctx context.Context, stop func()) {
	return WithSignalsCallback(parent, nil)
}

// WithSignalsCallback behaves like WithSignals and calls callback with the
// received signal before cancelling.
func WithSignalsCallback(parent context.Context, callback func(os.Signal)) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-sigChan:
			if callback != nil {
				callback(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigChan)
		cancel()
		<-done
	}
	return ctx, stop
}
