package followups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/common"
	"github.com/dmitrijs2005/docshare/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// EnsureSchema creates the followups table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS followups (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			responsible TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create followups schema: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, item *models.FollowUp) error {
	query := `
		INSERT INTO followups (id, title, responsible, due_date, notes, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Responsible, item.DueDate, item.Notes,
		boolToInt(item.Completed), item.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert followup: %w", err)
	}
	return nil
}

// GetAll returns every follow-up, newest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.FollowUp, error) {
	query := `
		SELECT id, title, responsible, due_date, notes, completed, created_at
		FROM followups ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select followups: %w", err)
	}
	defer rows.Close()

	var result []*models.FollowUp
	for rows.Next() {
		item, err := scanFollowUp(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Toggle flips the completed flag inside a transaction, so two clients
// toggling the same row cannot lose an update, and returns the new value.
func (r *SQLiteRepository) Toggle(ctx context.Context, id string) (bool, error) {
	var completed bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var current int
		row := tx.QueryRowContext(ctx, `SELECT completed FROM followups WHERE id = ?`, id)
		if err := row.Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("failed to read followup: %w", err)
		}
		completed = current == 0
		result, err := tx.ExecContext(ctx,
			`UPDATE followups SET completed = ? WHERE id = ?`, boolToInt(completed), id)
		if err != nil {
			return fmt.Errorf("failed to update followup: %w", err)
		}
		return requireOneRow(result)
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM followups WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete followup: %w", err)
	}
	return requireOneRow(result)
}

var _ Repository = (*SQLiteRepository)(nil)

func scanFollowUp(rows *sql.Rows) (*models.FollowUp, error) {
	var item models.FollowUp
	var completed int
	var createdAt int64
	if err := rows.Scan(&item.ID, &item.Title, &item.Responsible, &item.DueDate,
		&item.Notes, &completed, &createdAt); err != nil {
		return nil, err
	}
	item.Completed = completed != 0
	item.CreatedAt = time.UnixMilli(createdAt)
	return &item, nil
}

func requireOneRow(result sql.Result) error {
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	switch ra {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", ra)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
