package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of ledger entry types. Values are
// validated at the boundary; nothing else reaches the table.
type TransactionType string

const (
	TypeDeposit         TransactionType = "deposit"
	TypeWithdrawal      TransactionType = "withdrawal"
	TypeFee             TransactionType = "fee"
	TypeLoan            TransactionType = "loan"
	TypeInvestment      TransactionType = "investment"
	TypeProfit          TransactionType = "profit"
	TypeAffiliateReward TransactionType = "affiliate_reward"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeFee, TypeLoan, TypeInvestment, TypeProfit, TypeAffiliateReward:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

type TransactionModel struct {
	ID          uuid.UUID         `json:"id"`
	UserID      int64             `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Direction   Direction         `json:"direction"`
	Amount      decimal.Decimal   `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description"`
	Reference   *uuid.UUID        `json:"reference,omitempty"`
	CreatedBy   *int64            `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ReconciliationReport compares a wallet balance against the ledger it
// should be derived from. Elements are computed, never stored.
type ReconciliationReport struct {
	UserID        int64           `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	CompletedNet  decimal.Decimal `json:"completed_net"`
	PendingDebits decimal.Decimal `json:"pending_debits"`
	Consistent    bool            `json:"consistent"`
}
