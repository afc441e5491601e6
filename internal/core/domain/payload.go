package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PayloadKind discriminates decoded QR payloads.
type PayloadKind string

const (
	PayloadKindEmployee PayloadKind = "employee"
	PayloadKindItem     PayloadKind = "item"
	PayloadKindPayment  PayloadKind = "payment"
	PayloadKindInvalid  PayloadKind = "invalid"
)

// Payload is one decoded QR code parsed into its tagged variant. Exactly one
// of Employee, Item, Payment is non-nil and matches Kind; well-formed JSON
// with an unknown or absent type yields PayloadKindInvalid with all three nil.
type Payload struct {
	Kind     PayloadKind
	Employee *EmployeePayload
	Item     *ItemPayload
	Payment  *PaymentPayload
}

// EmployeePayload is the badge code shape.
type EmployeePayload struct {
	Name  string `json:"name"`
	Store string `json:"store"`
}

// Complete reports whether all required badge fields are present.
func (p EmployeePayload) Complete() bool {
	return p.Name != "" && p.Store != ""
}

// ItemPayload is the item code shape. The price field arrives as either a
// JSON number or a numeric string on the wire.
type ItemPayload struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Price PriceField `json:"price"`
	Image string     `json:"image"`
}

// Complete reports whether id, name and a parseable price are present.
// A price that fails numeric coercion counts as missing, which keeps a
// poisoned (non-numeric) amount out of the cart entirely.
func (p ItemPayload) Complete() bool {
	return p.ID != "" && p.Name != "" && p.Price.Valid
}

// PaymentPayload is the payment code shape. The card number is opaque to the
// register; the code is accepted as already authorized.
type PaymentPayload struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Complete reports whether all required tender fields are present.
func (p PaymentPayload) Complete() bool {
	return p.Name != "" && p.Number != ""
}

// PriceField coerces a JSON number or numeric string into an exact decimal.
// Coercion failure is recorded in Valid rather than failing the envelope
// parse, so a bad price surfaces as an incomplete item, not a malformed scan.
type PriceField struct {
	Amount decimal.Decimal
	Valid  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *PriceField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(b, &quoted); err != nil {
			return nil
		}
		s = strings.TrimSpace(quoted)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	f.Amount = d
	f.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f PriceField) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(f.Amount.String()), nil
}

// ParsePayload decodes one QR frame into a Payload. It returns an error only
// for malformed JSON; recognised shapes with missing fields still parse and
// are judged by the register.
func ParsePayload(raw []byte) (Payload, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Payload{}, fmt.Errorf("parse payload: %w", err)
	}

	switch PayloadKind(envelope.Type) {
	case PayloadKindEmployee:
		var p EmployeePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return Payload{}, fmt.Errorf("parse employee payload: %w", err)
		}
		return Payload{Kind: PayloadKindEmployee, Employee: &p}, nil
	case PayloadKindItem:
		var p ItemPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return Payload{}, fmt.Errorf("parse item payload: %w", err)
		}
		return Payload{Kind: PayloadKindItem, Item: &p}, nil
	case PayloadKindPayment:
		var p PaymentPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return Payload{}, fmt.Errorf("parse payment payload: %w", err)
		}
		return Payload{Kind: PayloadKindPayment, Payment: &p}, nil
	default:
		return Payload{Kind: PayloadKindInvalid}, nil
	}
}

// SubmitOutcome classifies how the register handled one payload.
type SubmitOutcome string

const (
	SubmitAccepted    SubmitOutcome = "ACCEPTED"
	SubmitOutOfPhase  SubmitOutcome = "OUT_OF_PHASE"
	SubmitIncomplete  SubmitOutcome = "INCOMPLETE"
	SubmitInvalidType SubmitOutcome = "INVALID_TYPE"
)
