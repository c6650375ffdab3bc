package db

// Ledger entry types.
const (
	TxTypeDeposit         = "deposit"
	TxTypeWithdrawal      = "withdrawal"
	TxTypeFee             = "fee"
	TxTypeLoan            = "loan"
	TxTypeInvestment      = "investment"
	TxTypeProfit          = "profit"
	TxTypeAffiliateReward = "affiliate_reward"
)

// Ledger entry directions.
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

// Ledger entry statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Workflow statuses.
const (
	LoanStatusPending  = "pending"
	LoanStatusApproved = "approved"
	LoanStatusRejected = "rejected"

	RewardStatusPending   = "pending"
	RewardStatusProcessed = "processed"
)
