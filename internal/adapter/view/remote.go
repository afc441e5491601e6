package view

import (
	"time"

	"qr-register/internal/core/domain"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// RemoteDisplay pushes render events to a customer-facing display service
// over HTTP. The display is advisory: delivery failures are logged and never
// propagate into the register.
type RemoteDisplay struct {
	client *resty.Client
	log    zerolog.Logger
}

// NewRemoteDisplay creates a RemoteDisplay for the given base URL.
func NewRemoteDisplay(baseURL string, timeout time.Duration, log zerolog.Logger) *RemoteDisplay {
	return &RemoteDisplay{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetRetryCount(0),
		log: log.With().Str("component", "remote_display").Logger(),
	}
}

// RenderLogin implements ports.ViewSink.
func (r *RemoteDisplay) RenderLogin(employee domain.Employee) {
	r.post("/display/login", NewEmployeeView(employee))
}

// RenderCart implements ports.ViewSink.
func (r *RemoteDisplay) RenderCart(lines []domain.CartLine, totals domain.Totals) {
	r.post("/display/cart", NewCartView(lines, totals))
}

// RenderPayment implements ports.ViewSink.
func (r *RemoteDisplay) RenderPayment(record domain.PaymentRecord) {
	r.post("/display/payment", NewPaymentView(record))
}

// ClearPayment implements ports.ViewSink.
func (r *RemoteDisplay) ClearPayment() {
	r.post("/display/payment/clear", nil)
}

func (r *RemoteDisplay) post(path string, body any) {
	req := r.client.R()
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		r.log.Warn().Err(err).Str("path", path).Msg("display push failed")
		return
	}
	if resp.IsError() {
		r.log.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("display rejected push")
	}
}
