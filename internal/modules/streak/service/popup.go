package service

import (
	"context"
	"sync"
	"time"

	"spanischmitbelu.com/gamification/pkg/animation"
)

// State is the phase of the streak popup animation.
type State string

const (
	StateIdle      State = "idle"
	StateCounting  State = "counting"
	StateSettled   State = "settled"
	StateRevealing State = "revealing"
	StateRevealed  State = "revealed"
)

// Event is a snapshot of the popup, delivered on every frame and state change.
type Event struct {
	State     State `json:"state"`
	Visible   bool  `json:"visible"`
	Days      int   `json:"days"`
	Displayed int   `json:"displayed"`
	Milestone bool  `json:"milestone"`
	Badge     Badge `json:"badge"`
}

// PopupOptions controls the counter timing of a Popup.
type PopupOptions struct {
	TickInterval time.Duration
	MaxSteps     int
	RevealDelay  time.Duration
}

// DefaultPopupOptions counts in at most 25 steps of 40ms and reveals an
// unlocked badge 600ms after the counter settled.
func DefaultPopupOptions() PopupOptions {
	return PopupOptions{
		TickInterval: 40 * time.Millisecond,
		MaxSteps:     25,
		RevealDelay:  600 * time.Millisecond,
	}
}

// Popup is one instance of the daily streak dialog. While visible it counts
// the displayed days up from 0 and, if the streak is exactly a milestone,
// reveals the unlocked badge once the counter settled.
//
// The listener is called with the popup lock held and must not call back into
// the Popup.
type Popup struct {
	mu       sync.Mutex
	opts     PopupOptions
	listener func(Event)

	days      int
	visible   bool
	state     State
	displayed int
	milestone bool

	// gen is bumped whenever the running animation is abandoned; callbacks
	// of an older generation are dropped.
	gen   uint64
	scope *animation.Scope
}

func NewPopup(days int, opts PopupOptions, listener func(Event)) *Popup {
	if listener == nil {
		listener = func(Event) {}
	}
	return &Popup{
		opts:     opts,
		listener: listener,
		days:     ClampDays(days),
		state:    StateIdle,
	}
}

// Show makes the popup visible and starts the animation from zero. Showing an
// already visible popup does nothing.
func (p *Popup) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.visible {
		return
	}
	p.visible = true
	p.restartLocked()
}

// Hide cancels the counter and any pending reveal.
func (p *Popup) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.visible {
		return
	}
	p.visible = false
	p.stopLocked()
	p.state = StateIdle
	p.emitLocked()
}

// SetStreak changes the streak value. A visible popup restarts its animation
// for the new value; pending callbacks of the old value are cancelled.
func (p *Popup) SetStreak(days int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	days = ClampDays(days)
	if days == p.days {
		return
	}
	p.days = days
	if p.visible {
		p.restartLocked()
		return
	}
	p.milestone = IsMilestone(days)
}

// Snapshot returns the current state without waiting for the next frame.
func (p *Popup) Snapshot() Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eventLocked()
}

// Close tears the popup down and waits until its timers stopped. It must not
// be called from the listener.
func (p *Popup) Close() {
	p.mu.Lock()
	p.visible = false
	p.state = StateIdle
	p.gen++
	scope := p.scope
	p.scope = nil
	p.mu.Unlock()

	if scope != nil {
		scope.Close()
	}
}

func (p *Popup) restartLocked() {
	p.stopLocked()

	p.displayed = 0
	p.milestone = IsMilestone(p.days)
	p.state = StateCounting
	p.emitLocked()

	scope := animation.NewScope(context.Background())
	p.scope = scope
	gen := p.gen
	counter := animation.Counter{
		Target:   p.days,
		Steps:    min(p.days, p.opts.MaxSteps),
		Interval: p.opts.TickInterval,
	}
	reveal := p.milestone

	scope.Go(func(ctx context.Context) {
		err := counter.Run(ctx, func(f animation.Frame) {
			p.update(gen, func() {
				p.displayed = f.Value
				if f.Done {
					p.state = StateSettled
				}
			})
		})
		if err != nil || !reveal {
			return
		}

		p.update(gen, func() { p.state = StateRevealing })
		scope.After(p.opts.RevealDelay, func() {
			p.update(gen, func() { p.state = StateRevealed })
		})
	})
}

// stopLocked abandons the running animation without waiting for it; the
// generation bump keeps any in-flight callback from landing.
func (p *Popup) stopLocked() {
	p.gen++
	if p.scope != nil {
		p.scope.Cancel()
		p.scope = nil
	}
}

func (p *Popup) update(gen uint64, apply func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		return
	}
	apply()
	p.emitLocked()
}

func (p *Popup) emitLocked() {
	p.listener(p.eventLocked())
}

func (p *Popup) eventLocked() Event {
	return Event{
		State:     p.state,
		Visible:   p.visible,
		Days:      p.days,
		Displayed: p.displayed,
		Milestone: p.milestone,
		Badge:     ResolveBadge(p.days),
	}
}
