// Package store persists full stock snapshots in Postgres. The application
// holds the authoritative state in memory and writes it through wholesale
// after every mutation, so the store never needs row-level update logic.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the snapshot tables if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS stock_records (
			id              TEXT PRIMARY KEY,
			product_id      TEXT NOT NULL,
			name            TEXT NOT NULL,
			size            TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL,
			location        TEXT NOT NULL,
			quantity        INTEGER NOT NULL CHECK (quantity >= 0),
			unit            TEXT NOT NULL DEFAULT '',
			price           DOUBLE PRECISION NOT NULL DEFAULT 0,
			min_stock       INTEGER NOT NULL DEFAULT 0,
			last_updated    TIMESTAMPTZ NOT NULL,
			sort_order      INTEGER NOT NULL DEFAULT 0,
			usage_per_shift DOUBLE PRECISION NOT NULL DEFAULT 0,
			UNIQUE (product_id, location)
		);

		CREATE TABLE IF NOT EXISTS transaction_records (
			id              TEXT PRIMARY KEY,
			product_id      TEXT NOT NULL,
			product_name    TEXT NOT NULL,
			size            TEXT NOT NULL DEFAULT '',
			kind            TEXT NOT NULL,
			amount          INTEGER NOT NULL CHECK (amount > 0),
			source_location TEXT NOT NULL,
			target_location TEXT,
			recorded_at     TIMESTAMPTZ NOT NULL,
			note            TEXT NOT NULL DEFAULT '',
			shift           TEXT NOT NULL DEFAULT '',
			workflow_status TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_transaction_records_recorded_at
			ON transaction_records (recorded_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Replace overwrites the stored snapshot with st in one transaction.
func (s *Store) Replace(ctx context.Context, st core.State) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM stock_records`); err != nil {
		return fmt.Errorf("failed to clear stock records: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_records`); err != nil {
		return fmt.Errorf("failed to clear transaction records: %w", err)
	}

	for _, rec := range st.Stock {
		_, err := tx.Exec(ctx, `
			INSERT INTO stock_records
				(id, product_id, name, size, status, location, quantity, unit,
				 price, min_stock, last_updated, sort_order, usage_per_shift)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			rec.ID, rec.ProductID, rec.Name, rec.Size, string(rec.Status),
			string(rec.Location), rec.Quantity, rec.Unit, rec.Price,
			rec.MinStock, rec.LastUpdated, rec.SortOrder, rec.UsagePerShift)
		if err != nil {
			return fmt.Errorf("failed to insert stock record %s: %w", rec.ID, err)
		}
	}

	for _, entry := range st.Ledger {
		var target *string
		if entry.TargetLocation != core.LocationNone {
			v := string(entry.TargetLocation)
			target = &v
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO transaction_records
				(id, product_id, product_name, size, kind, amount,
				 source_location, target_location, recorded_at, note, shift, workflow_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			entry.ID, entry.ProductID, entry.ProductName, entry.Size,
			string(entry.Kind), entry.Amount, string(entry.SourceLocation),
			target, entry.Timestamp, entry.Note, entry.Shift, string(entry.Status))
		if err != nil {
			return fmt.Errorf("failed to insert transaction record %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. An empty database yields an empty State.
func (s *Store) Load(ctx context.Context) (core.State, error) {
	var st core.State

	rows, err := s.pool.Query(ctx, `
		SELECT id, product_id, name, size, status, location, quantity, unit,
		       price, min_stock, last_updated, sort_order, usage_per_shift
		FROM stock_records
		ORDER BY sort_order, product_id, location`)
	if err != nil {
		return core.State{}, fmt.Errorf("failed to query stock records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec core.StockRecord
		var status, location string
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Name, &rec.Size,
			&status, &location, &rec.Quantity, &rec.Unit, &rec.Price,
			&rec.MinStock, &rec.LastUpdated, &rec.SortOrder, &rec.UsagePerShift); err != nil {
			return core.State{}, fmt.Errorf("failed to scan stock record: %w", err)
		}
		rec.Status = core.Protocol(status)
		rec.Location = core.Location(location)
		st.Stock = append(st.Stock, rec)
	}
	if err := rows.Err(); err != nil {
		return core.State{}, fmt.Errorf("failed to read stock records: %w", err)
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, `
		SELECT id, product_id, product_name, size, kind, amount,
		       source_location, target_location, recorded_at, note, shift, workflow_status
		FROM transaction_records
		ORDER BY recorded_at DESC, id DESC`)
	if err != nil {
		return core.State{}, fmt.Errorf("failed to query transaction records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry core.TransactionRecord
		var kind, source, status string
		var target *string
		if err := rows.Scan(&entry.ID, &entry.ProductID, &entry.ProductName,
			&entry.Size, &kind, &entry.Amount, &source, &target,
			&entry.Timestamp, &entry.Note, &entry.Shift, &status); err != nil {
			return core.State{}, fmt.Errorf("failed to scan transaction record: %w", err)
		}
		entry.Kind = core.RecordKind(kind)
		entry.SourceLocation = core.Location(source)
		if target != nil {
			entry.TargetLocation = core.Location(*target)
		}
		entry.Status = core.WorkflowStatus(status)
		st.Ledger = append(st.Ledger, entry)
	}
	if err := rows.Err(); err != nil {
		return core.State{}, fmt.Errorf("failed to read transaction records: %w", err)
	}
	return st, nil
}
