package db

import "errors"

// Semantic outcomes of the composite transaction helpers. The workflow
// services translate these into their own error taxonomy.
var (
	ErrInsufficientBalance  = errors.New("balance does not cover the requested amount")
	ErrTransactionSettled   = errors.New("transaction is no longer pending")
	ErrWrongTransactionType = errors.New("transaction is not of the expected type")
	ErrLoanNotPending       = errors.New("loan application is no longer pending")
	ErrRewardProcessed      = errors.New("affiliate reward was already processed")
)
