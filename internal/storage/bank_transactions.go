package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
)

// SaveBankTransactions stores imported statement lines, skipping any whose
// hash was already imported. It returns the number of new lines.
func (s *SQLiteStorage) SaveBankTransactions(ctx context.Context, transactions []model.BankTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateBankTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted, err := s.saveBankTransactionsTx(ctx, tx, transactions)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bank transactions: %w", err)
	}
	return inserted, nil
}

func (s *SQLiteStorage) saveBankTransactionsTx(ctx context.Context, tx *sql.Tx, transactions []model.BankTransaction) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO bank_transactions (
			id, hash, date, name, payee, amount, debit,
			account_id, transaction_type, check_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, txn := range transactions {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		res, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.Name, nullString(txn.Payee), txn.Amount, txn.Debit,
			nullString(txn.AccountID), nullString(txn.Type), nullString(txn.CheckNum),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert bank transaction %s: %w", txn.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	return inserted, nil
}
