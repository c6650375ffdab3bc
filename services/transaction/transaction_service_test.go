package transaction_test

import (
	"context"
	"database/sql"
	"io"
	"testing"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/transaction"
	"github.com/google/uuid"
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

type fakeLedger struct {
	wallet db.Wallet
	txs    []db.Transaction
}

func (f *fakeLedger) add(txType, direction, amount, status string) {
	f.txs = append(f.txs, db.Transaction{
		ID:        uuid.New(),
		UserID:    f.wallet.UserID,
		Type:      txType,
		Direction: direction,
		Amount:    amount,
		Status:    status,
	})
}

func (f *fakeLedger) GetTransaction(ctx context.Context, id uuid.UUID) (db.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return db.Transaction{}, sql.ErrNoRows
}

func (f *fakeLedger) ListUserTransactions(ctx context.Context, arg db.ListUserTransactionsParams) ([]db.Transaction, error) {
	var out []db.Transaction
	for _, tx := range f.txs {
		if tx.UserID == arg.UserID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListTransactionsByTypeAndStatus(ctx context.Context, arg db.ListTransactionsByTypeAndStatusParams) ([]db.Transaction, error) {
	var out []db.Transaction
	for _, tx := range f.txs {
		if tx.Type == arg.Type && tx.Status == arg.Status {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeLedger) SumCompletedTransactions(ctx context.Context, userID int64) (string, error) {
	total := decimal.Zero
	for _, tx := range f.txs {
		if tx.UserID != userID || tx.Status != db.StatusCompleted {
			continue
		}
		if tx.Direction == db.DirectionCredit {
			total = total.Add(d(tx.Amount))
		} else {
			total = total.Sub(d(tx.Amount))
		}
	}
	return total.String(), nil
}

func (f *fakeLedger) SumPendingDebits(ctx context.Context, userID int64) (string, error) {
	total := decimal.Zero
	for _, tx := range f.txs {
		if tx.UserID == userID && tx.Status == db.StatusPending && tx.Direction == db.DirectionDebit {
			total = total.Add(d(tx.Amount))
		}
	}
	return total.String(), nil
}

func (f *fakeLedger) GetWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	if f.wallet.UserID != userID {
		return db.Wallet{}, sql.ErrNoRows
	}
	return f.wallet, nil
}

func TestReconcile_ConsistentLedger(t *testing.T) {
	// A deposit of 1000, a withdrawal of 100 gross still under review:
	// pending net 95, completed fee 5, balance already down to 900.
	ledger := &fakeLedger{
		wallet: db.Wallet{UserID: 1, Balance: "900"},
	}
	ledger.add(db.TxTypeDeposit, db.DirectionCredit, "1000", db.StatusCompleted)
	ledger.add(db.TxTypeWithdrawal, db.DirectionDebit, "95", db.StatusPending)
	ledger.add(db.TxTypeFee, db.DirectionDebit, "5", db.StatusCompleted)

	svc := transaction.NewTransactionService(ledger, testLogger())
	report, err := svc.Reconcile(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, report.Consistent)
	assert.True(t, report.CompletedNet.Equal(d("995")))
	assert.True(t, report.PendingDebits.Equal(d("95")))
	assert.True(t, report.Balance.Equal(d("900")))
}

func TestReconcile_RejectedWithdrawalStillReconciles(t *testing.T) {
	// Full lifecycle of a rejected withdrawal: the failed row drops out,
	// the fee debit and its reversal credit cancel, balance is restored.
	ledger := &fakeLedger{
		wallet: db.Wallet{UserID: 1, Balance: "1000"},
	}
	ledger.add(db.TxTypeDeposit, db.DirectionCredit, "1000", db.StatusCompleted)
	ledger.add(db.TxTypeWithdrawal, db.DirectionDebit, "95", db.StatusFailed)
	ledger.add(db.TxTypeFee, db.DirectionDebit, "5", db.StatusCompleted)
	ledger.add(db.TxTypeFee, db.DirectionCredit, "5", db.StatusCompleted)

	svc := transaction.NewTransactionService(ledger, testLogger())
	report, err := svc.Reconcile(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, report.Consistent)
	assert.True(t, report.CompletedNet.Equal(d("1000")))
	assert.True(t, report.PendingDebits.Equal(decimal.Zero))
}

func TestReconcile_FlagsDriftedBalance(t *testing.T) {
	ledger := &fakeLedger{
		wallet: db.Wallet{UserID: 1, Balance: "950"},
	}
	ledger.add(db.TxTypeDeposit, db.DirectionCredit, "1000", db.StatusCompleted)

	svc := transaction.NewTransactionService(ledger, testLogger())
	report, err := svc.Reconcile(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, report.Consistent)
}

func TestGetTransaction(t *testing.T) {
	ledger := &fakeLedger{wallet: db.Wallet{UserID: 1, Balance: "0"}}
	ledger.add(db.TxTypeDeposit, db.DirectionCredit, "100", db.StatusCompleted)

	svc := transaction.NewTransactionService(ledger, testLogger())

	got, err := svc.GetTransaction(context.Background(), ledger.txs[0].ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(d("100")))

	_, err = svc.GetTransaction(context.Background(), uuid.New())
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestListPendingWithdrawals(t *testing.T) {
	ledger := &fakeLedger{wallet: db.Wallet{UserID: 1, Balance: "0"}}
	ledger.add(db.TxTypeWithdrawal, db.DirectionDebit, "95", db.StatusPending)
	ledger.add(db.TxTypeWithdrawal, db.DirectionDebit, "50", db.StatusCompleted)
	ledger.add(db.TxTypeFee, db.DirectionDebit, "5", db.StatusPending)

	svc := transaction.NewTransactionService(ledger, testLogger())
	pending, err := svc.ListPendingWithdrawals(context.Background(), 50, 0)
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.True(t, pending[0].Amount.Equal(d("95")))
}
