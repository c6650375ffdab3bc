package wallet

import (
	"fmt"
	"time"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

type WalletModel struct {
	UserID               int64           `json:"user_id"`
	Balance              decimal.Decimal `json:"balance"`
	AccruedProfits       decimal.Decimal `json:"accrued_profits"`
	WithdrawalFeePercent decimal.Decimal `json:"withdrawal_fee_percent"`
	TotalDeposits        decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals     decimal.Decimal `json:"total_withdrawals"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// WithdrawalQuote is the read-only preview of a withdrawal: the fee
// split plus the eligibility verdict. Nothing is persisted for it.
type WithdrawalQuote struct {
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	NetAmount decimal.Decimal `json:"net_amount"`
	Eligible  bool            `json:"eligible"`
	Reason    string          `json:"reason,omitempty"`
}

func ToWalletModel(w db.Wallet) (*WalletModel, error) {
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	profits, err := decimal.NewFromString(w.AccruedProfits)
	if err != nil {
		return nil, fmt.Errorf("parse accrued profits: %w", err)
	}
	feePercent, err := decimal.NewFromString(w.WithdrawalFeePercent)
	if err != nil {
		return nil, fmt.Errorf("parse withdrawal fee percent: %w", err)
	}
	deposits, err := decimal.NewFromString(w.TotalDeposits)
	if err != nil {
		return nil, fmt.Errorf("parse total deposits: %w", err)
	}
	withdrawals, err := decimal.NewFromString(w.TotalWithdrawals)
	if err != nil {
		return nil, fmt.Errorf("parse total withdrawals: %w", err)
	}

	return &WalletModel{
		UserID:               w.UserID,
		Balance:              balance,
		AccruedProfits:       profits,
		WithdrawalFeePercent: feePercent,
		TotalDeposits:        deposits,
		TotalWithdrawals:     withdrawals,
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}, nil
}
