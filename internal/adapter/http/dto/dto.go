package dto

import (
	"qr-register/internal/adapter/view"
	"qr-register/internal/core/domain"
)

// RebindRequest is the request body for rebinding the scanner device.
type RebindRequest struct {
	Port string `json:"port" binding:"required"`
	Baud int    `json:"baud" binding:"required,gt=0"`
}

// SessionStatusResponse reports the session controller state.
type SessionStatusResponse struct {
	Scanning bool `json:"scanning"`
}

// StateResponse is the register snapshot for the operator UI. Money fields
// reuse the display views and carry two fraction digits.
type StateResponse struct {
	Phase    string             `json:"phase"`
	Employee *view.EmployeeView `json:"employee,omitempty"`
	Cart     view.CartView      `json:"cart"`
	Payment  *view.PaymentView  `json:"payment,omitempty"`
}

// NewStateResponse builds a StateResponse from a register snapshot.
func NewStateResponse(st domain.RegisterState) StateResponse {
	resp := StateResponse{
		Phase: string(st.Phase),
		Cart:  view.NewCartView(st.Lines, st.Totals),
	}
	if st.Phase == domain.PhaseLoggedIn {
		ev := view.NewEmployeeView(st.Employee)
		resp.Employee = &ev
	}
	if st.Payment != nil {
		pv := view.NewPaymentView(*st.Payment)
		resp.Payment = &pv
	}
	return resp
}
