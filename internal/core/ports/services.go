package ports

import (
	"time"

	"qr-register/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// ViewSink receives render events from the register. Implementations render
// synchronously relative to the triggering submit; the register never exposes
// an intermediate inconsistent state to a sink.
type ViewSink interface {
	RenderLogin(employee domain.Employee)
	RenderCart(lines []domain.CartLine, totals domain.Totals)
	RenderPayment(record domain.PaymentRecord)
	ClearPayment()
}

// CuePlayer plays the terminal's two audio cues: a short beep on any decoded
// scan and a register chime after an accepted tender. Both are fire-and-forget.
type CuePlayer interface {
	Beep()
	Chime()
}

// TimerHandle is an armed deferred task. Cancel prevents a timer that has not
// fired yet from firing; cancelling after the fire is a no-op.
type TimerHandle interface {
	Cancel()
}

// Scheduler defers work. The scan timeout is the only handle ever cancelled;
// tender cues always fire.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// RegisterService is the transaction core: the state machine and cart model
// that interprets parsed payloads into authoritative session state.
type RegisterService interface {
	// Submit validates one payload against the current phase and mutates
	// state if it is accepted. It never returns an error; every failure is
	// locally recovered and classified by the outcome.
	Submit(p domain.Payload) domain.SubmitOutcome
	// RemoveLine removes the cart line with the given id if present.
	RemoveLine(id string)
	// Snapshot returns a consistent copy of the register state.
	Snapshot() domain.RegisterState
}

// SessionService gates scanner activity around the register: start/stop,
// auto-timeout, and the single-in-flight guarantee.
type SessionService interface {
	// StartScan arms the decoder and the scan timeout. While a scan is in
	// flight a second call is a no-op.
	StartScan() error
	// StopScan cancels the timeout and deactivates the decoder.
	StopScan()
	// Scanning reports whether a scanning episode is in flight.
	Scanning() bool
	// Rebind reconfigures the decoder device. Rejected while scanning.
	Rebind(cfg DecoderConfig) error
}
