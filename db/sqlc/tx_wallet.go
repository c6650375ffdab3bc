package db

import (
	"context"
	"database/sql"
	"fmt"
)

type CreditTxParams struct {
	UserID      int64
	Amount      string
	Type        string
	Description string
	CreatedBy   sql.NullInt64
}

type CreditTxResult struct {
	Wallet      Wallet
	Transaction Transaction
}

// CreditTx credits a wallet and writes the matching completed ledger row
// in one database transaction. Deposits and profits also move their
// running counters.
func (s *Store) CreditTx(ctx context.Context, arg CreditTxParams) (CreditTxResult, error) {
	var result CreditTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		switch arg.Type {
		case TxTypeDeposit:
			result.Wallet, err = q.AddWalletDeposit(ctx, AddWalletDepositParams{
				UserID: arg.UserID,
				Amount: arg.Amount,
			})
		case TxTypeProfit:
			result.Wallet, err = q.CreditWalletProfit(ctx, CreditWalletProfitParams{
				UserID: arg.UserID,
				Amount: arg.Amount,
			})
		case TxTypeLoan, TxTypeAffiliateReward:
			result.Wallet, err = q.CreditWalletBalance(ctx, CreditWalletBalanceParams{
				UserID: arg.UserID,
				Amount: arg.Amount,
			})
		default:
			return fmt.Errorf("credit not supported for transaction type %q", arg.Type)
		}
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		result.Transaction, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      arg.UserID,
			Type:        arg.Type,
			Direction:   DirectionCredit,
			Amount:      arg.Amount,
			Status:      StatusCompleted,
			Description: arg.Description,
			CreatedBy:   arg.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}

		return nil
	})

	return result, err
}
