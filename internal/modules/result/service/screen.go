package service

import (
	"context"
	"sync"
	"time"

	"spanischmitbelu.com/gamification/pkg/animation"
)

// ScreenOptions controls the timing of the result screen. The ranking reveal
// runs on its own timer and does not wait for the counter.
type ScreenOptions struct {
	Duration     time.Duration
	Steps        int
	RankingDelay time.Duration
}

func DefaultScreenOptions() ScreenOptions {
	return ScreenOptions{
		Duration:     1200 * time.Millisecond,
		Steps:        30,
		RankingDelay: 800 * time.Millisecond,
	}
}

func (o ScreenOptions) tick() time.Duration {
	return animation.TickInterval(o.Duration, o.Steps)
}

// ScreenEvent is delivered on every counter frame and on the ranking reveal.
type ScreenEvent struct {
	Target         int  `json:"target"`
	Displayed      int  `json:"displayed"`
	Settled        bool `json:"settled"`
	RankingVisible bool `json:"ranking_visible"`
}

// Screen animates the XP counter and the delayed ranking list of the result
// screen. Like Popup, its listener runs with the lock held.
type Screen struct {
	mu       sync.Mutex
	opts     ScreenOptions
	listener func(ScreenEvent)

	target         int
	displayed      int
	settled        bool
	rankingVisible bool

	gen   uint64
	scope *animation.Scope
}

func NewScreen(xp int, opts ScreenOptions, listener func(ScreenEvent)) *Screen {
	if listener == nil {
		listener = func(ScreenEvent) {}
	}
	return &Screen{opts: opts, listener: listener, target: max(xp, 0)}
}

// Start runs the counter from 0 and schedules the ranking reveal.
func (s *Screen) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restartLocked()
}

// SetXP restarts the counter for a new target. An already revealed ranking
// stays visible; a pending reveal is rescheduled.
func (s *Screen) SetXP(xp int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	xp = max(xp, 0)
	if xp == s.target {
		return
	}
	s.target = xp
	s.restartLocked()
}

func (s *Screen) Snapshot() ScreenEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventLocked()
}

// Close cancels both timers and waits for them. It must not be called from the
// listener.
func (s *Screen) Close() {
	s.mu.Lock()
	s.gen++
	scope := s.scope
	s.scope = nil
	s.mu.Unlock()

	if scope != nil {
		scope.Close()
	}
}

func (s *Screen) restartLocked() {
	s.gen++
	if s.scope != nil {
		s.scope.Cancel()
	}

	s.displayed = 0
	s.settled = false
	s.emitLocked()

	scope := animation.NewScope(context.Background())
	s.scope = scope
	gen := s.gen
	counter := animation.Counter{
		Target:   s.target,
		Steps:    s.opts.Steps,
		Interval: s.opts.tick(),
	}

	scope.Go(func(ctx context.Context) {
		_ = counter.Run(ctx, func(f animation.Frame) {
			s.update(gen, func() {
				s.displayed = f.Value
				s.settled = f.Done
			})
		})
	})
	if !s.rankingVisible {
		scope.After(s.opts.RankingDelay, func() {
			s.update(gen, func() { s.rankingVisible = true })
		})
	}
}

func (s *Screen) update(gen uint64, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	apply()
	s.emitLocked()
}

func (s *Screen) emitLocked() {
	s.listener(s.eventLocked())
}

func (s *Screen) eventLocked() ScreenEvent {
	return ScreenEvent{
		Target:         s.target,
		Displayed:      s.displayed,
		Settled:        s.settled,
		RankingVisible: s.rankingVisible,
	}
}
