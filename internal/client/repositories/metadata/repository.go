// Package metadata talks to the external file-metadata store: an
// append-only PostgreSQL table of file records, queryable by folder.
// There is no update operation; records are inserted once and deleted by id.
package metadata

import (
	"context"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/models"
)

// Repository is the metadata store contract used by the upload coordinator
// and the file list.
type Repository interface {
	// Insert appends one record and returns the store-assigned id and
	// creation timestamp. The store's clock, not the client's, stamps
	// created_at.
	Insert(ctx context.Context, rec *models.FileRecord) (id string, createdAt time.Time, err error)

	// QueryByFolder returns all records whose folder matches folderID,
	// in no particular order.
	QueryByFolder(ctx context.Context, folderID string) ([]*models.FileRecord, error)

	// DeleteByID removes the record with the given id.
	// Returns common.ErrorNotFound when no such record exists.
	DeleteByID(ctx context.Context, id string) error
}
