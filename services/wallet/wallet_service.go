package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/fee"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// DefaultWithdrawalFeePercent applies to wallets created without an
// account-specific override.
var DefaultWithdrawalFeePercent = decimal.NewFromInt(5)

type walletStore interface {
	GetWallet(ctx context.Context, userID int64) (db.Wallet, error)
	CreateWallet(ctx context.Context, arg db.CreateWalletParams) (db.Wallet, error)
	CreditTx(ctx context.Context, arg db.CreditTxParams) (db.CreditTxResult, error)
}

type WalletService struct {
	store  walletStore
	logger *logging.Logger
}

func NewWalletService(store walletStore, logger *logging.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
	}
}

func (w *WalletService) GetWallet(ctx context.Context, userID int64) (*WalletModel, error) {
	dbWallet, err := w.store.GetWallet(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return ToWalletModel(dbWallet)
}

// CreateWallet provisions the wallet when a user registers.
func (w *WalletService) CreateWallet(ctx context.Context, userID int64) (*WalletModel, error) {
	dbWallet, err := w.store.CreateWallet(ctx, db.CreateWalletParams{
		UserID:               userID,
		WithdrawalFeePercent: DefaultWithdrawalFeePercent.String(),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == db.DuplicateEntry {
			return nil, ErrWalletExists
		}
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	w.logger.WithField("user_id", userID).Info("wallet created")
	return ToWalletModel(dbWallet)
}

// Deposit credits the wallet with external funds. Admin-initiated; the
// payment collection itself happens outside the ledger.
func (w *WalletService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, adminID int64) (*WalletModel, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, NewIneligibleError(ReasonInvalidAmount)
	}

	result, err := w.store.CreditTx(ctx, db.CreditTxParams{
		UserID:      userID,
		Amount:      amount.String(),
		Type:        db.TxTypeDeposit,
		Description: "Deposit",
		CreatedBy:   sql.NullInt64{Int64: adminID, Valid: adminID != 0},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	w.logger.WithField("user_id", userID).Info("deposit credited")
	return ToWalletModel(result.Wallet)
}

// AccrueProfit credits investment profit to the wallet and its
// accrued-profits counter.
func (w *WalletService) AccrueProfit(ctx context.Context, userID int64, amount decimal.Decimal, adminID int64) (*WalletModel, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, NewIneligibleError(ReasonInvalidAmount)
	}

	result, err := w.store.CreditTx(ctx, db.CreditTxParams{
		UserID:      userID,
		Amount:      amount.String(),
		Type:        db.TxTypeProfit,
		Description: "Investment profit",
		CreatedBy:   sql.NullInt64{Int64: adminID, Valid: adminID != 0},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, fmt.Errorf("accrue profit: %w", err)
	}

	return ToWalletModel(result.Wallet)
}

// CalculateWithdrawal previews the fee split and eligibility for a
// withdrawal without mutating anything.
func (w *WalletService) CalculateWithdrawal(ctx context.Context, userID int64, amount decimal.Decimal) (*WithdrawalQuote, error) {
	model, err := w.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := fee.Compute(amount, model.WithdrawalFeePercent)
	verdict := CheckWithdrawalEligibility(model, amount)

	return &WithdrawalQuote{
		Amount:    amount,
		Fee:       breakdown.Fee,
		NetAmount: breakdown.Net,
		Eligible:  verdict.Eligible,
		Reason:    verdict.Reason,
	}, nil
}
