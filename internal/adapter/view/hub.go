// Package view carries render events and audio cues from the register to the
// display layer. Displays own the speakers, so beep and chime travel the same
// stream as render events.
package view

import (
	"sync"

	"qr-register/internal/core/domain"

	"github.com/rs/zerolog"
)

// Event types pushed to attached displays.
const (
	EventLogin        = "login"
	EventCart         = "cart"
	EventPayment      = "payment"
	EventPaymentClear = "payment_clear"
	EventBeep         = "beep"
	EventChime        = "chime"
)

// Event is one render or cue event.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// subscriberBuffer bounds a slow display's queue; events beyond it are
// dropped for that subscriber only.
const subscriberBuffer = 16

// Hub fans events out to subscribed displays. It implements both
// ports.ViewSink and ports.CuePlayer.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
	log  zerolog.Logger
}

// NewHub creates an empty Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[chan Event]struct{}),
		log:  log.With().Str("component", "view").Logger(),
	}
}

// Subscribe registers a display. The returned cancel function must be called
// when the display detaches.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// RenderLogin implements ports.ViewSink.
func (h *Hub) RenderLogin(employee domain.Employee) {
	h.publish(Event{Type: EventLogin, Data: NewEmployeeView(employee)})
}

// RenderCart implements ports.ViewSink.
func (h *Hub) RenderCart(lines []domain.CartLine, totals domain.Totals) {
	h.publish(Event{Type: EventCart, Data: NewCartView(lines, totals)})
}

// RenderPayment implements ports.ViewSink.
func (h *Hub) RenderPayment(record domain.PaymentRecord) {
	h.publish(Event{Type: EventPayment, Data: NewPaymentView(record)})
}

// ClearPayment implements ports.ViewSink.
func (h *Hub) ClearPayment() {
	h.publish(Event{Type: EventPaymentClear})
}

// Beep implements ports.CuePlayer.
func (h *Hub) Beep() {
	h.publish(Event{Type: EventBeep})
}

// Chime implements ports.CuePlayer.
func (h *Hub) Chime() {
	h.publish(Event{Type: EventChime})
}

func (h *Hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.log.Debug().Str("event", ev.Type).Msg("slow display, event dropped")
		}
	}
}
