package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRecord is the transient confirmation produced by an accepted tender.
// Total carries the grand total stamped before the cart reset. The record is
// display-visible for a fixed window and discarded afterward.
type PaymentRecord struct {
	ID         uuid.UUID
	Name       string
	Number     string
	Total      decimal.Decimal
	TenderedAt time.Time
}
