package service

import (
	"time"

	"qr-register/internal/core/domain"
	"qr-register/internal/core/ports"

	"github.com/shopspring/decimal"
)

// --- Capture sink ---

type renderCall struct {
	event    string
	employee domain.Employee
	lines    []domain.CartLine
	totals   domain.Totals
	record   domain.PaymentRecord
}

type captureSink struct {
	calls []renderCall
}

func (s *captureSink) RenderLogin(employee domain.Employee) {
	s.calls = append(s.calls, renderCall{event: "login", employee: employee})
}

func (s *captureSink) RenderCart(lines []domain.CartLine, totals domain.Totals) {
	s.calls = append(s.calls, renderCall{event: "cart", lines: lines, totals: totals})
}

func (s *captureSink) RenderPayment(record domain.PaymentRecord) {
	s.calls = append(s.calls, renderCall{event: "payment", record: record})
}

func (s *captureSink) ClearPayment() {
	s.calls = append(s.calls, renderCall{event: "payment_clear"})
}

func (s *captureSink) last() renderCall {
	return s.calls[len(s.calls)-1]
}

// --- Cue counter ---

type fakeCues struct {
	beeps  int
	chimes int
}

func (c *fakeCues) Beep()  { c.beeps++ }
func (c *fakeCues) Chime() { c.chimes++ }

// --- Manual scheduler ---

type manualTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTimer) Cancel() { t.cancelled = true }

func (t *manualTimer) fire() {
	if !t.cancelled {
		t.fn()
	}
}

// manualScheduler records armed timers; tests fire them explicitly.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	t := &manualTimer{d: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// --- Payload builders ---

func employeePayload(name, store string) domain.Payload {
	return domain.Payload{
		Kind:     domain.PayloadKindEmployee,
		Employee: &domain.EmployeePayload{Name: name, Store: store},
	}
}

func itemPayload(id, name, price string) domain.Payload {
	p := domain.ItemPayload{ID: id, Name: name}
	if price != "" {
		if d, err := decimal.NewFromString(price); err == nil {
			p.Price = domain.PriceField{Amount: d, Valid: true}
		}
	}
	return domain.Payload{Kind: domain.PayloadKindItem, Item: &p}
}

func paymentPayload(name, number string) domain.Payload {
	return domain.Payload{
		Kind:    domain.PayloadKindPayment,
		Payment: &domain.PaymentPayload{Name: name, Number: number},
	}
}
