package loan_test

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/loan"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/wallet"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logging.Logger{Logger: l}
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type fakeLoanStore struct {
	mu      sync.Mutex
	wallets map[int64]db.Wallet
	apps    map[int64]db.LoanApplication
	txs     []db.Transaction
	nextID  int64
}

func newFakeLoanStore() *fakeLoanStore {
	return &fakeLoanStore{
		wallets: make(map[int64]db.Wallet),
		apps:    make(map[int64]db.LoanApplication),
		nextID:  1,
	}
}

func (f *fakeLoanStore) seedWallet(userID int64, balance string) {
	f.wallets[userID] = db.Wallet{
		UserID:               userID,
		Balance:              balance,
		AccruedProfits:       "0",
		WithdrawalFeePercent: "5",
		TotalDeposits:        "0",
		TotalWithdrawals:     "0",
	}
}

func (f *fakeLoanStore) GetWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[userID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	return w, nil
}

func (f *fakeLoanStore) GetLoanApplication(ctx context.Context, id int64) (db.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return db.LoanApplication{}, sql.ErrNoRows
	}
	return app, nil
}

func (f *fakeLoanStore) ListLoanApplicationsByStatus(ctx context.Context, arg db.ListLoanApplicationsByStatusParams) ([]db.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.LoanApplication
	for id := int64(1); id < f.nextID; id++ {
		if app, ok := f.apps[id]; ok && app.Status == arg.Status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeLoanStore) ListUserLoanApplications(ctx context.Context, userID int64) ([]db.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.LoanApplication
	for id := int64(1); id < f.nextID; id++ {
		if app, ok := f.apps[id]; ok && app.UserID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeLoanStore) LoanApplyTx(ctx context.Context, arg db.LoanApplyTxParams) (db.LoanApplyTxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result db.LoanApplyTxResult

	w, ok := f.wallets[arg.UserID]
	if !ok || d(w.Balance).LessThan(d(arg.CommitmentFee)) {
		return result, db.ErrInsufficientBalance
	}

	w.Balance = d(w.Balance).Sub(d(arg.CommitmentFee)).String()
	f.wallets[arg.UserID] = w
	result.Wallet = w

	app := db.LoanApplication{
		ID:                 f.nextID,
		UserID:             arg.UserID,
		Amount:             arg.Amount,
		ProposedInvestment: arg.ProposedInvestment,
		CommitmentFee:      arg.CommitmentFee,
		Purpose:            arg.Purpose,
		Status:             db.LoanStatusPending,
	}
	f.nextID++
	f.apps[app.ID] = app
	result.Application = app

	result.FeeTransaction = db.Transaction{
		UserID:    arg.UserID,
		Type:      db.TxTypeFee,
		Direction: db.DirectionDebit,
		Amount:    arg.CommitmentFee,
		Status:    db.StatusCompleted,
	}
	f.txs = append(f.txs, result.FeeTransaction)

	return result, nil
}

func (f *fakeLoanStore) ApproveLoanTx(ctx context.Context, arg db.LoanDecisionTxParams) (db.ApproveLoanTxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result db.ApproveLoanTxResult

	app, ok := f.apps[arg.LoanID]
	if !ok || app.Status != db.LoanStatusPending {
		return result, db.ErrLoanNotPending
	}

	app.Status = db.LoanStatusApproved
	app.ApprovedBy = sql.NullInt64{Int64: arg.AdminID, Valid: true}
	app.AdminNotes = arg.Notes
	f.apps[app.ID] = app
	result.Application = app

	w := f.wallets[app.UserID]
	w.Balance = d(w.Balance).Add(d(app.Amount)).String()
	f.wallets[app.UserID] = w
	result.Wallet = w

	result.LoanEntry = db.Transaction{
		UserID:    app.UserID,
		Type:      db.TxTypeLoan,
		Direction: db.DirectionCredit,
		Amount:    app.Amount,
		Status:    db.StatusCompleted,
	}
	f.txs = append(f.txs, result.LoanEntry)

	return result, nil
}

func (f *fakeLoanStore) RejectLoanTx(ctx context.Context, arg db.LoanDecisionTxParams) (db.LoanApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	app, ok := f.apps[arg.LoanID]
	if !ok || app.Status != db.LoanStatusPending {
		return db.LoanApplication{}, db.ErrLoanNotPending
	}

	app.Status = db.LoanStatusRejected
	app.ApprovedBy = sql.NullInt64{Int64: arg.AdminID, Valid: true}
	app.AdminNotes = arg.Notes
	f.apps[app.ID] = app
	return app, nil
}

type fakeBonusGranter struct {
	granted []int64
}

func (f *fakeBonusGranter) GrantLoanBonus(ctx context.Context, applicantID int64) error {
	f.granted = append(f.granted, applicantID)
	return nil
}

func TestSubmit_DeductsCommitmentFee(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "1000")
	svc := loan.NewService(store, nil, testLogger())

	app, err := svc.Submit(context.Background(), 1, d("10000"), d("4000"), "Farm expansion")
	require.NoError(t, err)

	assert.True(t, app.CommitmentFee.Equal(d("500")), "5%% of the loan amount")
	assert.Equal(t, "pending", string(app.Status))
	assert.Equal(t, "500", store.wallets[1].Balance)

	require.Len(t, store.txs, 1)
	assert.Equal(t, db.TxTypeFee, store.txs[0].Type)
	assert.Equal(t, db.StatusCompleted, store.txs[0].Status)
}

func TestSubmit_EnforcesBounds(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "100000")
	svc := loan.NewService(store, nil, testLogger())

	tests := []struct {
		name       string
		amount     string
		proposed   string
		wantReason string
	}{
		{"below minimum", "3000", "5000", wallet.ReasonLoanBelowMinimum},
		{"above maximum", "60000", "50000", wallet.ReasonLoanAboveMaximum},
		{"exceeds investment multiple", "3600", "1000", wallet.ReasonLoanExceedsMultiple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), 1, d(tt.amount), d(tt.proposed), "x")
			var ineligible *wallet.IneligibleError
			require.ErrorAs(t, err, &ineligible)
			assert.Equal(t, tt.wantReason, ineligible.Reason)
		})
	}

	assert.Equal(t, "100000", store.wallets[1].Balance, "failed checks never touch the wallet")
	assert.Empty(t, store.apps)
}

func TestSubmit_CommitmentFeeShort(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "174.99")
	svc := loan.NewService(store, nil, testLogger())

	_, err := svc.Submit(context.Background(), 1, d("3500"), d("2000"), "x")
	var ineligible *wallet.IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.Equal(t, wallet.ReasonCommitmentFeeShort, ineligible.Reason)
}

func TestSubmit_GrantsBonusAtThreshold(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "10000")
	rewards := &fakeBonusGranter{}
	svc := loan.NewService(store, rewards, testLogger())

	// 13760 * 5% = 688, exactly the qualifying fee.
	_, err := svc.Submit(context.Background(), 1, d("13760"), d("5000"), "x")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, rewards.granted)
}

func TestSubmit_NoBonusBelowThreshold(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "10000")
	rewards := &fakeBonusGranter{}
	svc := loan.NewService(store, rewards, testLogger())

	// 13740 * 5% = 687.
	_, err := svc.Submit(context.Background(), 1, d("13740"), d("5000"), "x")
	require.NoError(t, err)
	assert.Empty(t, rewards.granted)
}

func TestApprove_DisbursesLoan(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "1000")
	svc := loan.NewService(store, nil, testLogger())

	app, err := svc.Submit(context.Background(), 1, d("10000"), d("4000"), "Farm expansion")
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), app.ID, 99, "verified")
	require.NoError(t, err)
	assert.Equal(t, "approved", string(approved.Status))

	// 1000 - 500 fee + 10000 disbursed.
	assert.Equal(t, "10500", store.wallets[1].Balance)
}

func TestReject_KeepsCommitmentFee(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "1000")
	svc := loan.NewService(store, nil, testLogger())

	app, err := svc.Submit(context.Background(), 1, d("10000"), d("4000"), "Farm expansion")
	require.NoError(t, err)
	require.Equal(t, "500", store.wallets[1].Balance)

	rejected, err := svc.Reject(context.Background(), app.ID, 99, "insufficient history")
	require.NoError(t, err)
	assert.Equal(t, "rejected", string(rejected.Status))

	assert.Equal(t, "500", store.wallets[1].Balance, "the commitment fee is not refunded")
}

func TestDecide_SecondDecisionFails(t *testing.T) {
	store := newFakeLoanStore()
	store.seedWallet(1, "1000")
	svc := loan.NewService(store, nil, testLogger())

	app, err := svc.Submit(context.Background(), 1, d("10000"), d("4000"), "x")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), app.ID, 99, "")
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), app.ID, 99, "")
	assert.ErrorIs(t, err, loan.ErrAlreadyDecided)

	_, err = svc.Approve(context.Background(), app.ID, 99, "")
	assert.ErrorIs(t, err, loan.ErrAlreadyDecided)
}

func TestDecide_UnknownApplication(t *testing.T) {
	store := newFakeLoanStore()
	svc := loan.NewService(store, nil, testLogger())

	_, err := svc.Approve(context.Background(), 42, 99, "")
	assert.ErrorIs(t, err, loan.ErrNotFound)
}
