package animation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScopeAfterFires(t *testing.T) {
	scope := NewScope(context.Background())
	fired := make(chan struct{})

	scope.After(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	scope.Close()
}

func TestScopeCloseCancelsPendingTimers(t *testing.T) {
	scope := NewScope(context.Background())
	var calls atomic.Int32

	scope.After(time.Hour, func() { calls.Add(1) })
	var ctxErr error
	scope.Go(func(ctx context.Context) {
		<-ctx.Done()
		ctxErr = ctx.Err()
	})

	done := make(chan struct{})
	go func() {
		scope.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close did not return")
	}
	assert.Equal(t, int32(0), calls.Load())
	assert.ErrorIs(t, ctxErr, context.Canceled)
}

func TestWait(t *testing.T) {
	assert.NoError(t, Wait(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
}
