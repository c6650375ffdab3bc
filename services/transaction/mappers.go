package transaction

import (
	"fmt"

	db "github.com/PrimeHarvest/PrimeHarvest-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

func ToTransactionModel(tx db.Transaction) (*TransactionModel, error) {
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse transaction amount: %w", err)
	}

	txType := TransactionType(tx.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q", tx.Type)
	}
	status := TransactionStatus(tx.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown transaction status %q", tx.Status)
	}

	model := &TransactionModel{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        txType,
		Direction:   Direction(tx.Direction),
		Amount:      amount,
		Status:      status,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}

	if tx.Reference.Valid {
		ref := tx.Reference.UUID
		model.Reference = &ref
	}
	if tx.CreatedBy.Valid {
		by := tx.CreatedBy.Int64
		model.CreatedBy = &by
	}

	return model, nil
}

func ToTransactionModels(txs []db.Transaction) ([]TransactionModel, error) {
	models := make([]TransactionModel, len(txs))
	for i, tx := range txs {
		m, err := ToTransactionModel(tx)
		if err != nil {
			return nil, err
		}
		models[i] = *m
	}
	return models, nil
}
