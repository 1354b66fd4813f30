// Package animation drives the timer based counters of the presentation
// components: a counter that climbs from 0 to a target on a fixed tick, and a
// Scope that owns every interval and one-shot timer of a component instance so
// they can be cancelled together.
package animation

import (
	"context"
	"math"
	"time"
)

// Frame is one displayed value of a running counter.
type Frame struct {
	Step  int  `json:"step"`
	Value int  `json:"value"`
	Done  bool `json:"done"`
}

// Plan returns the values a counter shows on each tick when it climbs to
// target in at most steps increments. Intermediate values are rounded to the
// nearest integer and the last value is always exactly target. A target or
// step count of zero settles on the first tick.
func Plan(target, steps int) []int {
	if target <= 0 || steps <= 0 {
		return []int{max(target, 0)}
	}

	increment := float64(target) / float64(steps)
	values := make([]int, 0, steps)
	for i := 1; ; i++ {
		current := increment * float64(i)
		if i >= steps || current >= float64(target) {
			values = append(values, target)
			return values
		}
		values = append(values, int(math.Round(current)))
	}
}

// Counter ticks through a Plan every Interval.
type Counter struct {
	Target   int
	Steps    int
	Interval time.Duration
}

// Run emits one frame per tick and returns nil once the target frame was
// emitted. The ticker is stopped before Run returns. If ctx is cancelled first
// Run returns ctx.Err() and emits nothing more.
func (c Counter) Run(ctx context.Context, emit func(Frame)) error {
	values := Plan(c.Target, c.Steps)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for i, v := range values {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		// a tick and a cancel can be ready together
		if ctx.Err() != nil {
			return ctx.Err()
		}
		emit(Frame{Step: i + 1, Value: v, Done: i == len(values)-1})
	}
	return nil
}

// TickInterval splits a total animation duration into steps equal ticks.
func TickInterval(total time.Duration, steps int) time.Duration {
	if steps <= 0 {
		return total
	}
	return total / time.Duration(steps)
}
