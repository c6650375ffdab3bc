package withdrawal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/transaction"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type withdrawalStore interface {
	GetWallet(ctx context.Context, userID int64) (db.Wallet, error)
	WithdrawTx(ctx context.Context, arg db.WithdrawTxParams) (db.WithdrawTxResult, error)
	ApproveWithdrawalTx(ctx context.Context, arg db.ApproveWithdrawalTxParams) (db.Transaction, error)
	RejectWithdrawalTx(ctx context.Context, arg db.RejectWithdrawalTxParams) (db.RejectWithdrawalTxResult, error)
}

// Result is what a successful submission hands back to the caller: the
// pending ledger entry plus the fee split that was applied.
type Result struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	Balance       decimal.Decimal `json:"balance"`
}

type Service struct {
	store  withdrawalStore
	logger *logging.Logger
}

func NewService(store withdrawalStore, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Submit runs the withdrawal workflow up to the admin queue: eligibility
// check, then one atomic debit of the gross amount with its two ledger
// rows (pending withdrawal for the net, completed fee).
func (s *Service) Submit(ctx context.Context, userID int64, amount decimal.Decimal, destination string) (*Result, error) {
	dbWallet, err := s.store.GetWallet(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallet.ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	model, err := wallet.ToWalletModel(dbWallet)
	if err != nil {
		return nil, err
	}

	if verdict := wallet.CheckWithdrawalEligibility(model, amount); !verdict.Eligible {
		return nil, wallet.NewIneligibleError(verdict.Reason)
	}

	breakdown := fee.Compute(amount, model.WithdrawalFeePercent)

	result, err := s.store.WithdrawTx(ctx, db.WithdrawTxParams{
		UserID:      userID,
		Amount:      amount.String(),
		Fee:         breakdown.Fee.String(),
		Net:         breakdown.Net.String(),
		Destination: destination,
	})
	if errors.Is(err, db.ErrInsufficientBalance) {
		// The eligibility check passed against a balance another request
		// has since drained.
		return nil, ErrBalanceConflict
	} else if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	balance, err := decimal.NewFromString(result.Wallet.Balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":        userID,
		"transaction_id": result.Withdrawal.ID,
		"amount":         amount.String(),
	}).Info("withdrawal submitted for review")

	return &Result{
		TransactionID: result.Withdrawal.ID,
		Amount:        amount,
		Fee:           breakdown.Fee,
		NetAmount:     breakdown.Net,
		Balance:       balance,
	}, nil
}

// Approve completes a pending withdrawal; the funds are considered sent
// externally after this point.
func (s *Service) Approve(ctx context.Context, transactionID uuid.UUID, adminID int64) (*transaction.TransactionModel, error) {
	if adminID == 0 {
		return nil, ErrInvalidAdminUser
	}

	tx, err := s.store.ApproveWithdrawalTx(ctx, db.ApproveWithdrawalTxParams{
		TransactionID: transactionID,
		AdminID:       adminID,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case errors.Is(err, db.ErrWrongTransactionType):
		return nil, ErrNotWithdrawal
	case errors.Is(err, db.ErrTransactionSettled):
		return nil, ErrAlreadyReviewed
	case err != nil:
		return nil, fmt.Errorf("approve withdrawal: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"admin_id":       adminID,
	}).Info("withdrawal approved")

	return transaction.ToTransactionModel(tx)
}

// Reject fails a pending withdrawal and restores the gross amount; the
// fee is reversed with an append-only credit so the ledger reconciles.
func (s *Service) Reject(ctx context.Context, transactionID uuid.UUID, adminID int64) (*transaction.TransactionModel, error) {
	if adminID == 0 {
		return nil, ErrInvalidAdminUser
	}

	result, err := s.store.RejectWithdrawalTx(ctx, db.RejectWithdrawalTxParams{
		TransactionID: transactionID,
		AdminID:       adminID,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case errors.Is(err, db.ErrWrongTransactionType):
		return nil, ErrNotWithdrawal
	case errors.Is(err, db.ErrTransactionSettled):
		return nil, ErrAlreadyReviewed
	case err != nil:
		return nil, fmt.Errorf("reject withdrawal: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"admin_id":       adminID,
	}).Info("withdrawal rejected, funds restored")

	return transaction.ToTransactionModel(result.Withdrawal)
}
