package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Queries: New(db),
	}
}

// ExecTx runs fq inside a single database transaction. Every balance
// mutation and its ledger row must go through here together.
func (s *Store) ExecTx(ctx context.Context, fq func(q Querier) error) error {
	// initialize transaction
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := New(tx)
	err = fq(q)

	if err != nil {
		txErr := tx.Rollback()
		if txErr != nil && txErr != sql.ErrTxDone {
			return fmt.Errorf("encountered rollback error: %v", txErr)
		}
		return err
	}

	return tx.Commit()
}
