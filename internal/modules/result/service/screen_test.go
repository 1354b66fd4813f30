package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastScreenOptions() ScreenOptions {
	return ScreenOptions{
		Duration:     30 * time.Millisecond,
		Steps:        30,
		RankingDelay: 5 * time.Millisecond,
	}
}

func newRecordedScreen(xp int, opts ScreenOptions) (*Screen, chan ScreenEvent) {
	events := make(chan ScreenEvent, 1024)
	return NewScreen(xp, opts, func(e ScreenEvent) { events <- e }), events
}

func waitForScreen(t *testing.T, events <-chan ScreenEvent, match func(ScreenEvent) bool) []ScreenEvent {
	t.Helper()

	var seen []ScreenEvent
	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-events:
			seen = append(seen, e)
			if match(e) {
				return seen
			}
		case <-deadline:
			t.Fatalf("no matching event, saw %d events", len(seen))
			return nil
		}
	}
}

func TestScreenCountsToTarget(t *testing.T) {
	screen, events := newRecordedScreen(85, fastScreenOptions())
	defer screen.Close()

	screen.Start()
	seen := waitForScreen(t, events, func(e ScreenEvent) bool { return e.Settled })

	last := -1
	frames := 0
	for _, e := range seen {
		assert.GreaterOrEqual(t, e.Displayed, last)
		last = e.Displayed
		frames++
	}
	assert.Equal(t, 85, last)
	// initial event plus at most 30 frames and the reveal
	assert.LessOrEqual(t, frames, 32)

	select {
	case e := <-events:
		// only the ranking reveal may still arrive
		assert.True(t, e.RankingVisible)
		assert.Equal(t, 85, e.Displayed)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestScreenRevealsRankingIndependently(t *testing.T) {
	opts := fastScreenOptions()
	opts.Duration = time.Hour
	screen, events := newRecordedScreen(100, opts)
	defer screen.Close()

	screen.Start()
	seen := waitForScreen(t, events, func(e ScreenEvent) bool { return e.RankingVisible })

	assert.False(t, seen[len(seen)-1].Settled)
}

func TestScreenSetXPRestartsCounter(t *testing.T) {
	opts := fastScreenOptions()
	opts.RankingDelay = time.Hour
	screen, events := newRecordedScreen(50, opts)
	defer screen.Close()

	screen.Start()
	waitForScreen(t, events, func(e ScreenEvent) bool { return e.Settled })

	screen.SetXP(120)
	seen := waitForScreen(t, events, func(e ScreenEvent) bool { return e.Settled })

	require.NotEmpty(t, seen)
	assert.Equal(t, 0, seen[0].Displayed)
	assert.Equal(t, 120, seen[0].Target)
	assert.Equal(t, 120, seen[len(seen)-1].Displayed)
	assert.False(t, screen.Snapshot().RankingVisible)
}

func TestScreenCloseCancelsTimers(t *testing.T) {
	opts := fastScreenOptions()
	opts.Duration = time.Hour
	opts.RankingDelay = time.Hour
	screen, events := newRecordedScreen(10, opts)

	screen.Start()
	<-events

	done := make(chan struct{})
	go func() {
		screen.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close blocked")
	}

	select {
	case e := <-events:
		t.Fatalf("event after close: %+v", e)
	default:
	}
}
