package wallet

import "fmt"

var (
	ErrWalletNotFound = fmt.Errorf("wallet not found")
	ErrWalletExists   = fmt.Errorf("wallet already exists for this user")
)

// IneligibleError is a business-rule rejection. The reason is safe to
// surface to the user verbatim.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return e.Reason
}

func NewIneligibleError(reason string) *IneligibleError {
	return &IneligibleError{Reason: reason}
}
