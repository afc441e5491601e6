package view

import (
	"qr-register/internal/core/domain"
	"qr-register/internal/core/ports"
)

// Fanout forwards each render event to every sink, in order. It lets the
// register drive the local hub and a remote display through one ViewSink.
type Fanout struct {
	sinks []ports.ViewSink
}

// NewFanout creates a Fanout over the given sinks.
func NewFanout(sinks ...ports.ViewSink) *Fanout {
	return &Fanout{sinks: sinks}
}

// RenderLogin implements ports.ViewSink.
func (f *Fanout) RenderLogin(employee domain.Employee) {
	for _, s := range f.sinks {
		s.RenderLogin(employee)
	}
}

// RenderCart implements ports.ViewSink.
func (f *Fanout) RenderCart(lines []domain.CartLine, totals domain.Totals) {
	for _, s := range f.sinks {
		s.RenderCart(lines, totals)
	}
}

// RenderPayment implements ports.ViewSink.
func (f *Fanout) RenderPayment(record domain.PaymentRecord) {
	for _, s := range f.sinks {
		s.RenderPayment(record)
	}
}

// ClearPayment implements ports.ViewSink.
func (f *Fanout) ClearPayment() {
	for _, s := range f.sinks {
		s.ClearPayment()
	}
}
