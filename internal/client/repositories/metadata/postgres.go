package metadata

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

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert appends one file record. id and created_at come back from the
// store via RETURNING, so concurrent uploaders never disagree on ordering
// because of client clock skew.
func (r *PostgresRepository) Insert(ctx context.Context, rec *models.FileRecord) (string, time.Time, error) {
	query := `
		INSERT INTO files (name, url, storage_path, size, type, folder)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	var id string
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		rec.Name, rec.URL, rec.StoragePath, rec.Size, rec.Type, rec.Folder).
		Scan(&id, &createdAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to insert file record: %w", err)
	}
	return id, createdAt, nil
}

// QueryByFolder returns all records scoped to folderID, unordered.
func (r *PostgresRepository) QueryByFolder(ctx context.Context, folderID string) ([]*models.FileRecord, error) {
	query := `
		SELECT id, name, url, storage_path, created_at, size, type, folder
		FROM files
		WHERE folder = $1
	`
	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to select file records: %w", err)
	}
	defer rows.Close()

	var result []*models.FileRecord
	for rows.Next() {
		var item models.FileRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.Name, &item.URL, &item.StoragePath,
			&createdAt, &item.Size, &item.Type, &item.Folder); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			item.CreatedAt = createdAt.Time
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes one record. Exactly one row must be affected;
// zero rows maps to common.ErrorNotFound.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
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

var _ Repository = (*PostgresRepository)(nil)

// IsNotFound reports whether err is the repository's not-found condition,
// covering both the sentinel and database/sql's ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound) || errors.Is(err, sql.ErrNoRows)
}
