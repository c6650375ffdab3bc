package wallet_test

import (
	"context"
	"database/sql"
	"io"
	"testing"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logging.Logger{Logger: l}
}

type fakeWalletStore struct {
	wallets map[int64]db.Wallet
	credits []db.CreditTxParams
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{wallets: make(map[int64]db.Wallet)}
}

func (f *fakeWalletStore) GetWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	return w, nil
}

func (f *fakeWalletStore) CreateWallet(ctx context.Context, arg db.CreateWalletParams) (db.Wallet, error) {
	if _, ok := f.wallets[arg.UserID]; ok {
		return db.Wallet{}, &pq.Error{Code: db.DuplicateEntry}
	}
	w := db.Wallet{
		UserID:               arg.UserID,
		Balance:              "0",
		AccruedProfits:       "0",
		WithdrawalFeePercent: arg.WithdrawalFeePercent,
		TotalDeposits:        "0",
		TotalWithdrawals:     "0",
	}
	f.wallets[arg.UserID] = w
	return w, nil
}

func (f *fakeWalletStore) CreditTx(ctx context.Context, arg db.CreditTxParams) (db.CreditTxResult, error) {
	w, ok := f.wallets[arg.UserID]
	if !ok {
		return db.CreditTxResult{}, sql.ErrNoRows
	}

	amount := d(arg.Amount)
	w.Balance = d(w.Balance).Add(amount).String()
	switch arg.Type {
	case db.TxTypeDeposit:
		w.TotalDeposits = d(w.TotalDeposits).Add(amount).String()
	case db.TxTypeProfit:
		w.AccruedProfits = d(w.AccruedProfits).Add(amount).String()
	}
	f.wallets[arg.UserID] = w
	f.credits = append(f.credits, arg)

	return db.CreditTxResult{
		Wallet: w,
		Transaction: db.Transaction{
			UserID:    arg.UserID,
			Type:      arg.Type,
			Direction: db.DirectionCredit,
			Amount:    arg.Amount,
			Status:    db.StatusCompleted,
		},
	}, nil
}

func TestCreateWallet(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	model, err := svc.CreateWallet(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, model.Balance.IsZero())
	assert.True(t, model.WithdrawalFeePercent.Equal(wallet.DefaultWithdrawalFeePercent))

	_, err = svc.CreateWallet(context.Background(), 1)
	assert.ErrorIs(t, err, wallet.ErrWalletExists)
}

func TestDeposit_CreditsBalanceAndCounter(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	_, err := svc.CreateWallet(context.Background(), 1)
	require.NoError(t, err)

	model, err := svc.Deposit(context.Background(), 1, d("250.50"), 99)
	require.NoError(t, err)
	assert.True(t, model.Balance.Equal(d("250.50")))
	assert.True(t, model.TotalDeposits.Equal(d("250.50")))

	require.Len(t, store.credits, 1)
	assert.Equal(t, db.TxTypeDeposit, store.credits[0].Type)
}

func TestDeposit_RejectsNonPositiveAmounts(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	_, err := svc.Deposit(context.Background(), 1, d("0"), 99)
	var ineligible *wallet.IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.Equal(t, wallet.ReasonInvalidAmount, ineligible.Reason)
	assert.Empty(t, store.credits)
}

func TestAccrueProfit_TracksProfitCounter(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	_, err := svc.CreateWallet(context.Background(), 1)
	require.NoError(t, err)

	model, err := svc.AccrueProfit(context.Background(), 1, d("32.50"), 99)
	require.NoError(t, err)
	assert.True(t, model.Balance.Equal(d("32.50")))
	assert.True(t, model.AccruedProfits.Equal(d("32.50")))
}

func TestCalculateWithdrawal_QuoteNeverMutates(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	_, err := svc.CreateWallet(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Deposit(context.Background(), 1, d("1000"), 99)
	require.NoError(t, err)

	quote, err := svc.CalculateWithdrawal(context.Background(), 1, d("100"))
	require.NoError(t, err)
	assert.True(t, quote.Eligible)
	assert.True(t, quote.Fee.Equal(d("5")))
	assert.True(t, quote.NetAmount.Equal(d("95")))

	assert.Equal(t, "1000", store.wallets[1].Balance)
}

func TestCalculateWithdrawal_ReportsIneligibility(t *testing.T) {
	store := newFakeWalletStore()
	svc := wallet.NewWalletService(store, testLogger())

	_, err := svc.CreateWallet(context.Background(), 1)
	require.NoError(t, err)

	quote, err := svc.CalculateWithdrawal(context.Background(), 1, d("100"))
	require.NoError(t, err)
	assert.False(t, quote.Eligible)
	assert.Equal(t, wallet.ReasonInsufficientBalance, quote.Reason)

	_, err = svc.CalculateWithdrawal(context.Background(), 2, d("100"))
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}
