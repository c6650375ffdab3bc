package loan

import "errors"

var (
	ErrNotFound         = errors.New("loan application not found")
	ErrAlreadyDecided   = errors.New("loan application was already decided")
	ErrBalanceConflict  = errors.New("balance changed, please retry")
	ErrInvalidAdminUser = errors.New("a deciding admin is required")
)
