// Package sqlite stores a cashbuddy ledger in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cashbuddy"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// Store implements cashbuddy.Store on top of a SQLite database.
type Store struct {
	db *sql.DB
}

var _ cashbuddy.Store = (*Store)(nil)

// Open opens (creating if needed) the database at dbPath and migrates its schema.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the budget and the expenses in position order.
func (s *Store) Load(ctx context.Context) (*cashbuddy.Ledger, error) {
	var rawBudget string
	err := s.db.QueryRowContext(ctx, `SELECT amount FROM budget WHERE id = 1`).Scan(&rawBudget)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	budget := cashbuddy.Amount{}
	if rawBudget != "" {
		d, err := decimal.NewFromString(rawBudget)
		if err != nil {
			return nil, fmt.Errorf("parse budget %q: %w", rawBudget, err)
		}
		budget = cashbuddy.A(d)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, amount, description, category, marked FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []cashbuddy.Expense
	for rows.Next() {
		var (
			position                         int64
			rawAmount, description, category string
			marked                           bool
		)
		if err := rows.Scan(&position, &rawAmount, &description, &category, &marked); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		d, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, fmt.Errorf("expense %d: parse amount %q: %w", position, rawAmount, err)
		}
		e, err := cashbuddy.RestoreExpense(cashbuddy.A(d), description, category, marked)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", position, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	ledger := cashbuddy.NewLedger()
	if err := ledger.Restore(budget, expenses); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Save replaces the stored ledger in a single transaction.
func (s *Store) Save(ctx context.Context, ledger *cashbuddy.Ledger) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO budget (id, amount) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET amount = excluded.amount`,
		ledger.Budget().Decimal().String()); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (position, amount, description, category, marked) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range ledger.Expenses() {
		if _, err = stmt.ExecContext(ctx, i+1, e.Amount().Decimal().String(), e.Description(), e.Category(), e.IsMarked()); err != nil {
			return fmt.Errorf("save expense %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
