package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type LoanApplyTxParams struct {
	UserID             int64
	Amount             string
	ProposedInvestment string
	CommitmentFee      string
	Purpose            string
}

type LoanApplyTxResult struct {
	Wallet         Wallet
	Application    LoanApplication
	FeeTransaction Transaction
}

// LoanApplyTx deducts the commitment fee and files the application in
// one database transaction. The fee ledger row is written completed
// immediately; it is not refunded if the loan is later rejected.
func (s *Store) LoanApplyTx(ctx context.Context, arg LoanApplyTxParams) (LoanApplyTxResult, error) {
	var result LoanApplyTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		result.Wallet, err = q.DebitWalletBalance(ctx, DebitWalletBalanceParams{
			UserID: arg.UserID,
			Amount: arg.CommitmentFee,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientBalance
		} else if err != nil {
			return fmt.Errorf("debit commitment fee: %w", err)
		}

		result.Application, err = q.CreateLoanApplication(ctx, CreateLoanApplicationParams{
			UserID:             arg.UserID,
			Amount:             arg.Amount,
			ProposedInvestment: arg.ProposedInvestment,
			CommitmentFee:      arg.CommitmentFee,
			Purpose:            arg.Purpose,
		})
		if err != nil {
			return fmt.Errorf("create loan application: %w", err)
		}

		result.FeeTransaction, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      arg.UserID,
			Type:        TxTypeFee,
			Direction:   DirectionDebit,
			Amount:      arg.CommitmentFee,
			Status:      StatusCompleted,
			Description: fmt.Sprintf("Loan commitment fee (application #%d)", result.Application.ID),
		})
		if err != nil {
			return fmt.Errorf("create fee entry: %w", err)
		}

		return nil
	})

	return result, err
}

type LoanDecisionTxParams struct {
	LoanID  int64
	AdminID int64
	Notes   string
}

type ApproveLoanTxResult struct {
	Wallet      Wallet
	Application LoanApplication
	LoanEntry   Transaction
}

// ApproveLoanTx flips the application to approved and disburses the
// loan amount to the wallet with its completed ledger row.
func (s *Store) ApproveLoanTx(ctx context.Context, arg LoanDecisionTxParams) (ApproveLoanTxResult, error) {
	var result ApproveLoanTxResult

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		result.Application, err = q.ApproveLoanApplication(ctx, ApproveLoanApplicationParams{
			ID:         arg.LoanID,
			ApprovedBy: sql.NullInt64{Int64: arg.AdminID, Valid: true},
			AdminNotes: arg.Notes,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLoanNotPending
		} else if err != nil {
			return fmt.Errorf("approve loan: %w", err)
		}

		result.Wallet, err = q.CreditWalletBalance(ctx, CreditWalletBalanceParams{
			UserID: result.Application.UserID,
			Amount: result.Application.Amount,
		})
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		result.LoanEntry, err = q.CreateTransaction(ctx, CreateTransactionParams{
			UserID:      result.Application.UserID,
			Type:        TxTypeLoan,
			Direction:   DirectionCredit,
			Amount:      result.Application.Amount,
			Status:      StatusCompleted,
			Description: fmt.Sprintf("Loan disbursement (application #%d)", result.Application.ID),
			CreatedBy:   sql.NullInt64{Int64: arg.AdminID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("create loan entry: %w", err)
		}

		return nil
	})

	return result, err
}

// RejectLoanTx marks the application rejected. The commitment fee stays
// where it is.
func (s *Store) RejectLoanTx(ctx context.Context, arg LoanDecisionTxParams) (LoanApplication, error) {
	var rejected LoanApplication

	err := s.ExecTx(ctx, func(q Querier) error {
		var err error

		rejected, err = q.RejectLoanApplication(ctx, RejectLoanApplicationParams{
			ID:         arg.LoanID,
			ApprovedBy: sql.NullInt64{Int64: arg.AdminID, Valid: true},
			AdminNotes: arg.Notes,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLoanNotPending
		} else if err != nil {
			return fmt.Errorf("reject loan: %w", err)
		}

		return nil
	})

	return rejected, err
}
