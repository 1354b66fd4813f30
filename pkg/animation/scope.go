package animation

import (
	"context"
	"sync"
	"time"
)

// Scope owns the goroutines and timers started for one component instance.
// Cancel stops all of them; Close also waits until they returned.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Go runs fn on its own goroutine with the scope context.
func (s *Scope) Go(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// After calls fn once d elapsed unless the scope is cancelled first.
func (s *Scope) After(d time.Duration, fn func()) {
	s.Go(func(ctx context.Context) {
		if Wait(ctx, d) == nil {
			fn()
		}
	})
}

// Cancel stops every timer of the scope without waiting.
func (s *Scope) Cancel() {
	s.cancel()
}

// Close cancels the scope and blocks until its goroutines returned. It must
// not be called from inside one of them.
func (s *Scope) Close() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ctx.Err()
	}
}
