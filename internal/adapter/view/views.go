package view

import "qr-register/internal/core/domain"

// Presentation shapes for the display layer. Money renders with two fraction
// digits here and nowhere earlier; the domain keeps full precision.

// EmployeeView is the rendered operator identity.
type EmployeeView struct {
	Name  string `json:"name"`
	Store string `json:"store"`
}

// NewEmployeeView builds the rendered operator identity.
func NewEmployeeView(e domain.Employee) EmployeeView {
	return EmployeeView{Name: e.Name, Store: e.Store}
}

// CartLineView is one rendered cart line.
type CartLineView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// TotalsView is the rendered totals triple.
type TotalsView struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Grand    string `json:"grand"`
}

// CartView is the rendered cart.
type CartView struct {
	Lines  []CartLineView `json:"lines"`
	Totals TotalsView     `json:"totals"`
}

// NewCartView builds the rendered cart.
func NewCartView(lines []domain.CartLine, totals domain.Totals) CartView {
	v := CartView{
		Lines: make([]CartLineView, 0, len(lines)),
		Totals: TotalsView{
			Subtotal: totals.Subtotal.StringFixed(2),
			Tax:      totals.Tax.StringFixed(2),
			Grand:    totals.Grand.StringFixed(2),
		},
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, CartLineView{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price.StringFixed(2),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}
	return v
}

// PaymentView is the rendered tender confirmation.
type PaymentView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Total  string `json:"total"`
}

// NewPaymentView builds the rendered tender confirmation.
func NewPaymentView(r domain.PaymentRecord) PaymentView {
	return PaymentView{
		ID:     r.ID.String(),
		Name:   r.Name,
		Number: r.Number,
		Total:  r.Total.StringFixed(2),
	}
}
