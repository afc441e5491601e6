package domain

// Phase is the register's authentication state. There is no logout path: a
// session ends with the process.
type Phase string

const (
	PhaseLoggedOut Phase = "LOGGED_OUT"
	PhaseLoggedIn  Phase = "LOGGED_IN"
)

// Employee is the operator identified by a badge scan. At most one is active.
type Employee struct {
	Name  string `json:"name"`
	Store string `json:"store"`
}

// RegisterState is a consistent snapshot of the register for the read side.
type RegisterState struct {
	Phase    Phase
	Employee Employee
	Lines    []CartLine
	Totals   Totals
	Payment  *PaymentRecord
}
