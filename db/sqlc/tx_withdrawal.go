package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawTxParams struct {
	UserID      int64
	Amount      string
	Fee         string
	Net         string
	Destination string
}

type WithdrawTxResult struct {
	Wallet         Wallet
	Withdrawal     Transaction
	FeeTransaction Transaction
}

// WithdrawTx debits the gross amount from the wallet and writes two
// ledger rows: the pending withdrawal (net) and the completed fee. The
// conditional debit is the double-spend guard; if another request
// drained the balance first this returns ErrInsufficientBalance and
// nothing is written.
func (s *Store) WithdrawTx(ctx context.Context, arg WithdrawTxParams) (WithdrawTxResult, error) {
	var result WithdrawTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		result.Wallet, err = q.DebitWalletBalance(ctx, DebitWalletBalanceParams{
			UserID: arg.UserID,
			Amount: arg.Amount,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientBalance
		} else if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		result.Wallet, err = q.AddWalletWithdrawalTotal(ctx, AddWalletWithdrawalTotalParams{
			UserID: arg.UserID,
			Amount: arg.Amount,
		})
		if err != nil {
			return fmt.Errorf("update withdrawal total: %w", err)
		}

		result.Withdrawal, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      arg.UserID,
			Type:        TxTypeWithdrawal,
			Direction:   DirectionDebit,
			Amount:      arg.Net,
			Status:      StatusPending,
			Description: fmt.Sprintf("Withdrawal to %s", arg.Destination),
		})
		if err != nil {
			return fmt.Errorf("create withdrawal entry: %w", err)
		}

		result.FeeTransaction, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      arg.UserID,
			Type:        TxTypeFee,
			Direction:   DirectionDebit,
			Amount:      arg.Fee,
			Status:      StatusCompleted,
			Description: "Withdrawal fee",
			Reference:   uuid.NullUUID{UUID: result.Withdrawal.ID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("create fee entry: %w", err)
		}

		return nil
	})

	return result, err
}

type ApproveWithdrawalTxParams struct {
	TransactionID uuid.UUID
	AdminID       int64
}

// ApproveWithdrawalTx completes a pending withdrawal. The funds were
// already debited at submission; the payout itself happens outside the
// ledger.
func (s *Store) ApproveWithdrawalTx(ctx context.Context, arg ApproveWithdrawalTxParams) (Transaction, error) {
	var approved Transaction

	err := s.ExecTx(ctx, func(q Querier) error {
		tx, err := q.GetTransaction(ctx, arg.TransactionID)
		if err != nil {
			return fmt.Errorf("get transaction: %w", err)
		}
		if tx.Type != TxTypeWithdrawal {
			return ErrWrongTransactionType
		}

		approved, err = q.TransitionPendingTransaction(ctx, TransitionPendingTransactionParams{
			ID:     arg.TransactionID,
			Status: StatusCompleted,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionSettled
		} else if err != nil {
			return fmt.Errorf("complete withdrawal: %w", err)
		}

		return nil
	})

	return approved, err
}

type RejectWithdrawalTxParams struct {
	TransactionID uuid.UUID
	AdminID       int64
}

type RejectWithdrawalTxResult struct {
	Wallet      Wallet
	Withdrawal  Transaction
	FeeReversal Transaction
}

// RejectWithdrawalTx fails a pending withdrawal and restores the gross
// amount to the wallet. The fee line is not edited; a reversal credit is
// appended so the ledger still reconciles against the balance.
func (s *Store) RejectWithdrawalTx(ctx context.Context, arg RejectWithdrawalTxParams) (RejectWithdrawalTxResult, error) {
	var result RejectWithdrawalTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		tx, err := q.GetTransaction(ctx, arg.TransactionID)
		if err != nil {
			return fmt.Errorf("get transaction: %w", err)
		}
		if tx.Type != TxTypeWithdrawal {
			return ErrWrongTransactionType
		}

		result.Withdrawal, err = q.TransitionPendingTransaction(ctx, TransitionPendingTransactionParams{
			ID:     arg.TransactionID,
			Status: StatusFailed,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionSettled
		} else if err != nil {
			return fmt.Errorf("fail withdrawal: %w", err)
		}

		feeTx, err := q.GetTransactionByReferenceAndType(ctx, GetTransactionByReferenceAndTypeParams{
			Reference: uuid.NullUUID{UUID: arg.TransactionID, Valid: true},
			Type:      TxTypeFee,
		})
		if err != nil {
			return fmt.Errorf("get fee entry: %w", err)
		}

		net, err := decimal.NewFromString(result.Withdrawal.Amount)
		if err != nil {
			return fmt.Errorf("parse withdrawal amount: %w", err)
		}
		feeAmount, err := decimal.NewFromString(feeTx.Amount)
		if err != nil {
			return fmt.Errorf("parse fee amount: %w", err)
		}

		result.FeeReversal, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      result.Withdrawal.UserID,
			Type:        TxTypeFee,
			Direction:   DirectionCredit,
			Amount:      feeTx.Amount,
			Status:      StatusCompleted,
			Description: "Withdrawal fee reversal",
			Reference:   uuid.NullUUID{UUID: arg.TransactionID, Valid: true},
			CreatedBy:   sql.NullInt64{Int64: arg.AdminID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("create fee reversal: %w", err)
		}

		result.Wallet, err = q.CreditWalletBalance(ctx, CreditWalletBalanceParams{
			UserID: result.Withdrawal.UserID,
			Amount: net.Add(feeAmount).String(),
		})
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		return nil
	})

	return result, err
}
