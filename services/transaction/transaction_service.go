package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type transactionStore interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (db.Transaction, error)
	ListUserTransactions(ctx context.Context, arg db.ListUserTransactionsParams) ([]db.Transaction, error)
	ListTransactionsByTypeAndStatus(ctx context.Context, arg db.ListTransactionsByTypeAndStatusParams) ([]db.Transaction, error)
	SumCompletedTransactions(ctx context.Context, userID int64) (string, error)
	SumPendingDebits(ctx context.Context, userID int64) (string, error)
	GetWallet(ctx context.Context, userID int64) (db.Wallet, error)
}

// TransactionService is the read side of the ledger. All writes happen
// inside the workflow transactions; nothing here mutates.
type TransactionService struct {
	store  transactionStore
	logger *logging.Logger
}

func NewTransactionService(store transactionStore, logger *logging.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionModel, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return ToTransactionModel(tx)
}

func (s *TransactionService) ListUserTransactions(ctx context.Context, userID int64, limit, offset int32) ([]TransactionModel, error) {
	txs, err := s.store.ListUserTransactions(ctx, db.ListUserTransactionsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return ToTransactionModels(txs)
}

// ListPendingWithdrawals feeds the admin review queue.
func (s *TransactionService) ListPendingWithdrawals(ctx context.Context, limit, offset int32) ([]TransactionModel, error) {
	txs, err := s.store.ListTransactionsByTypeAndStatus(ctx, db.ListTransactionsByTypeAndStatusParams{
		Type:   db.TxTypeWithdrawal,
		Status: db.StatusPending,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending withdrawals: %w", err)
	}
	return ToTransactionModels(txs)
}

// Reconcile rederives the balance from the ledger and compares it with
// the wallet's materialized value. A pending withdrawal has already
// debited the balance while its ledger row is still pending, so pending
// debits are subtracted alongside the completed net.
func (s *TransactionService) Reconcile(ctx context.Context, userID int64) (*ReconciliationReport, error) {
	w, err := s.store.GetWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}

	completedRaw, err := s.store.SumCompletedTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum completed transactions: %w", err)
	}
	completed, err := decimal.NewFromString(completedRaw)
	if err != nil {
		return nil, fmt.Errorf("parse completed net: %w", err)
	}

	pendingRaw, err := s.store.SumPendingDebits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum pending debits: %w", err)
	}
	pending, err := decimal.NewFromString(pendingRaw)
	if err != nil {
		return nil, fmt.Errorf("parse pending debits: %w", err)
	}

	report := &ReconciliationReport{
		UserID:        userID,
		Balance:       balance,
		CompletedNet:  completed,
		PendingDebits: pending,
		Consistent:    balance.Equal(completed.Sub(pending)),
	}

	if !report.Consistent {
		s.logger.WithField("user_id", userID).Error("wallet balance does not reconcile against ledger")
	}

	return report, nil
}
