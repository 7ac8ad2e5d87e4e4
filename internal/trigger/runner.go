package trigger

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Runner runs pipeline work detached from the request that triggered it.
type Runner struct {
	group errgroup.Group
}

// Go runs fn in the background with a context that keeps the values of ctx
// but is never cancelled when ctx is.
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context)) {
	detached := context.WithoutCancel(ctx)
	r.group.Go(func() error {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Background task panicked.", "task", name, "panic", rec)
			}
		}()
		fn(detached)
		return nil
	})
}

// Wait blocks until every task started with Go has returned.
func (r *Runner) Wait() {
	_ = r.group.Wait()
}
