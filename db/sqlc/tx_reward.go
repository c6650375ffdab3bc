package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type ProcessRewardTxResult struct {
	Wallet      Wallet
	Reward      AffiliateReward
	Transaction Transaction
}

// ProcessRewardTx credits a pending affiliate reward to its wallet. The
// conditional status flip makes processing idempotent: a reward that was
// already processed returns ErrRewardProcessed and credits nothing.
func (s *Store) ProcessRewardTx(ctx context.Context, rewardID int64) (ProcessRewardTxResult, error) {
	var result ProcessRewardTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		result.Reward, err = q.MarkAffiliateRewardProcessed(ctx, rewardID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRewardProcessed
		} else if err != nil {
			return fmt.Errorf("mark reward processed: %w", err)
		}

		result.Wallet, err = q.CreditWalletBalance(ctx, CreditWalletBalanceParams{
			UserID: result.Reward.UserID,
			Amount: result.Reward.Amount,
		})
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		result.Transaction, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      result.Reward.UserID,
			Type:        TxTypeAffiliateReward,
			Direction:   DirectionCredit,
			Amount:      result.Reward.Amount,
			Status:      StatusCompleted,
			Description: fmt.Sprintf("Referral reward (level %d)", result.Reward.Level),
		})
		if err != nil {
			return fmt.Errorf("create reward entry: %w", err)
		}

		return nil
	})

	return result, err
}
