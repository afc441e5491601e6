// Package sched schedules deferred tasks on real time. Timers fire on their
// own goroutine; callers serialize in their handlers.
package sched

import (
	"time"

	"qr-register/internal/core/ports"
)

type timerHandle struct {
	t *time.Timer
}

// Cancel stops the timer if it has not fired yet. No-op after the fire.
func (h timerHandle) Cancel() {
	h.t.Stop()
}

// Clock implements ports.Scheduler over time.AfterFunc.
type Clock struct{}

// New creates a Clock.
func New() Clock {
	return Clock{}
}

// AfterFunc arms fn to run once after d.
func (Clock) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}
