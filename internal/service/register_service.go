package service

import (
	"sync"
	"time"

	"qr-register/internal/core/domain"
	"qr-register/internal/core/ports"
	"qr-register/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// chimeDelay is how long after an accepted tender the register chime plays.
	chimeDelay = 2 * time.Second
	// paymentDisplayTTL is how long the payment confirmation stays visible.
	paymentDisplayTTL = 10 * time.Second
)

// RegisterServiceImpl implements ports.RegisterService: the transaction state
// machine and cart model. It exclusively owns the employee, the cart and the
// most recent payment record. Submits run to completion under one lock, so a
// sink never observes intermediate state.
type RegisterServiceImpl struct {
	mu       sync.Mutex
	phase    domain.Phase
	employee domain.Employee
	cart     domain.Cart
	payment  *domain.PaymentRecord

	view  ports.ViewSink
	cues  ports.CuePlayer
	sched ports.Scheduler
	log   zerolog.Logger
}

// NewRegisterService creates a new RegisterServiceImpl in the logged-out
// phase with an empty cart.
func NewRegisterService(view ports.ViewSink, cues ports.CuePlayer, sched ports.Scheduler, log zerolog.Logger) *RegisterServiceImpl {
	return &RegisterServiceImpl{
		phase: domain.PhaseLoggedOut,
		cart:  domain.NewCart(),
		view:  view,
		cues:  cues,
		sched: sched,
		log:   log.With().Str("component", "register").Logger(),
	}
}

// Submit validates one payload against the current phase and mutates state if
// accepted. Every failure is locally recovered; nothing propagates.
func (s *RegisterServiceImpl) Submit(p domain.Payload) domain.SubmitOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outcome domain.SubmitOutcome
	switch p.Kind {
	case domain.PayloadKindEmployee:
		outcome = s.submitEmployee(p.Employee)
	case domain.PayloadKindItem:
		outcome = s.submitItem(p.Item)
	case domain.PayloadKindPayment:
		outcome = s.submitPayment(p.Payment)
	default:
		s.log.Warn().Msg("No valid type")
		outcome = domain.SubmitInvalidType
	}

	metrics.PayloadsTotal.WithLabelValues(string(p.Kind), string(outcome)).Inc()
	return outcome
}

func (s *RegisterServiceImpl) submitEmployee(p *domain.EmployeePayload) domain.SubmitOutcome {
	if s.phase != domain.PhaseLoggedOut {
		return domain.SubmitOutOfPhase
	}
	if !p.Complete() {
		s.log.Warn().Msg("employee missing data")
		return domain.SubmitIncomplete
	}

	s.employee = domain.Employee{Name: p.Name, Store: p.Store}
	s.phase = domain.PhaseLoggedIn
	s.cart = domain.NewCart()
	s.view.RenderLogin(s.employee)

	s.log.Info().
		Str("employee", s.employee.Name).
		Str("store", s.employee.Store).
		Msg("employee logged in")
	return domain.SubmitAccepted
}

func (s *RegisterServiceImpl) submitItem(p *domain.ItemPayload) domain.SubmitOutcome {
	if s.phase != domain.PhaseLoggedIn {
		return domain.SubmitOutOfPhase
	}
	if !p.Complete() {
		s.log.Warn().Msg("item missing data")
		return domain.SubmitIncomplete
	}

	s.cart.AddItem(p.ID, p.Name, p.Price.Amount, p.Image)
	s.renderCart()

	s.log.Info().
		Str("item_id", p.ID).
		Str("name", p.Name).
		Str("subtotal", s.cart.Totals.Subtotal.StringFixed(2)).
		Msg("item added to cart")
	return domain.SubmitAccepted
}

func (s *RegisterServiceImpl) submitPayment(p *domain.PaymentPayload) domain.SubmitOutcome {
	if s.phase != domain.PhaseLoggedIn || s.cart.IsEmpty() {
		return domain.SubmitOutOfPhase
	}
	if !p.Complete() {
		s.log.Warn().Msg("payment missing data")
		return domain.SubmitIncomplete
	}

	// Stamp the grand total before the cart reset.
	record := domain.PaymentRecord{
		ID:         uuid.New(),
		Name:       p.Name,
		Number:     p.Number,
		Total:      s.cart.Totals.Grand,
		TenderedAt: time.Now().UTC(),
	}
	s.payment = &record
	s.view.RenderPayment(record)

	s.cart = domain.NewCart()
	s.renderCart()

	// Fire-and-forget cues; neither handle is ever cancelled. An uncancelled
	// clear from a previous tender is harmless: the display fields are
	// idempotent and overwritten on the next tender.
	s.sched.AfterFunc(chimeDelay, s.cues.Chime)
	s.sched.AfterFunc(paymentDisplayTTL, s.clearPayment)

	metrics.TendersTotal.Inc()
	metrics.TenderAmount.Observe(record.Total.InexactFloat64())

	s.log.Info().
		Str("payment_id", record.ID.String()).
		Str("total", record.Total.StringFixed(2)).
		Msg("tender accepted")
	return domain.SubmitAccepted
}

// RemoveLine removes the cart line with the given id if present. Absent ids
// are a no-op; the register only renders when logged in.
func (s *RegisterServiceImpl) RemoveLine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseLoggedIn {
		return
	}
	if !s.cart.RemoveLine(id) {
		return
	}
	s.renderCart()

	s.log.Info().Str("item_id", id).Msg("cart line removed")
}

// Snapshot returns a consistent copy of the register state.
func (s *RegisterServiceImpl) Snapshot() domain.RegisterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.RegisterState{
		Phase:    s.phase,
		Employee: s.employee,
		Lines:    s.cart.CopyLines(),
		Totals:   s.cart.Totals,
	}
	if s.payment != nil {
		record := *s.payment
		state.Payment = &record
	}
	return state
}

// renderCart pushes the current lines and totals to the sink and refreshes
// the cart gauge. Callers hold the lock.
func (s *RegisterServiceImpl) renderCart() {
	s.view.RenderCart(s.cart.CopyLines(), s.cart.Totals)
	metrics.CartLines.Set(float64(len(s.cart.Lines)))
}

// clearPayment drops the payment record after its display window.
func (s *RegisterServiceImpl) clearPayment() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payment = nil
	s.view.ClearPayment()
}
