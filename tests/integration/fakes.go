package integration

import (
	"sync"
	"time"

	"qr-register/internal/core/ports"
)

// fakeDecoder is a scripted stand-in for the serial scanner. Inject delivers
// one decoded frame as if the hardware had read a code; frames are only
// delivered while capture is active, like the real device.
type fakeDecoder struct {
	mu        sync.Mutex
	fn        func(string)
	active    bool
	available bool
	cfg       ports.DecoderConfig
	starts    int
	stops     int
}

func newFakeDecoder() *fakeDecoder {
	return &fakeDecoder{available: true}
}

func (d *fakeDecoder) Attach(fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fn = fn
}

func (d *fakeDecoder) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = true
	d.starts++
	return nil
}

func (d *fakeDecoder) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active {
		d.active = false
		d.stops++
	}
}

func (d *fakeDecoder) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.available
}

func (d *fakeDecoder) Rebind(cfg ports.DecoderConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = false
	d.cfg = cfg
	return nil
}

// Inject delivers one decoded frame to the attached callback.
func (d *fakeDecoder) Inject(frame string) {
	d.mu.Lock()
	fn, active := d.fn, d.active
	d.mu.Unlock()
	if active && fn != nil {
		fn(frame)
	}
}

// manualScheduler records armed timers and fires them on demand, so tests
// control time.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d         time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{d: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// fire runs every pending timer once, in arming order.
func (s *manualScheduler) fire() {
	s.mu.Lock()
	pending := make([]*manualTimer, len(s.timers))
	copy(pending, s.timers)
	s.mu.Unlock()

	for _, t := range pending {
		t.fire()
	}
}

func (t *manualTimer) fire() {
	if t.fired || t.cancelled {
		return
	}
	t.fired = true
	t.fn()
}

func (t *manualTimer) Cancel() {
	t.cancelled = true
}
