package withdrawal

import "errors"

var (
	// ErrBalanceConflict means the balance changed between the
	// eligibility check and the debit. Retryable.
	ErrBalanceConflict = errors.New("balance changed, please retry")

	ErrNotFound         = errors.New("withdrawal not found")
	ErrNotWithdrawal    = errors.New("transaction is not a withdrawal")
	ErrAlreadyReviewed  = errors.New("withdrawal was already reviewed")
	ErrInvalidAdminUser = errors.New("a reviewing admin is required")
)
