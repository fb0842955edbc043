package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docshare/internal/client/blobstore"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/docshare/internal/logging"
)

// FileService covers the non-upload file operations: folder-scoped listing
// and deletion.
type FileService struct {
	blob   blobstore.BlobStore
	meta   metadata.Repository
	logger logging.Logger
}

func NewFileService(blob blobstore.BlobStore, meta metadata.Repository, logger logging.Logger) *FileService {
	return &FileService{blob: blob, meta: meta, logger: logger}
}

// ListByFolder returns the folder's records as the metadata store holds
// them, unordered. Ordering and filtering belong to the view-model.
func (s *FileService) ListByFolder(ctx context.Context, folderID string) ([]*models.FileRecord, error) {
	recs, err := s.meta.QueryByFolder(ctx, folderID)
	if err != nil {
		s.logger.Error(ctx, "file query failed", "folder", folderID, "error", err)
		return nil, fmt.Errorf("file query failed: %w", err)
	}
	return recs, nil
}

// Delete removes the blob first, then the metadata record. A blob failure
// aborts before the record is touched, so the file stays listed. A record
// failure after the blob is gone leaves a dangling record; neither case is
// reconciled automatically.
func (s *FileService) Delete(ctx context.Context, rec *models.FileRecord) error {
	if err := s.blob.Delete(ctx, rec.StoragePath); err != nil {
		s.logger.Error(ctx, "blob delete failed", "key", rec.StoragePath, "error", err)
		return fmt.Errorf("blob delete failed: %w", err)
	}
	if err := s.meta.DeleteByID(ctx, rec.ID); err != nil {
		s.logger.Error(ctx, "metadata delete failed", "id", rec.ID, "error", err)
		return fmt.Errorf("metadata delete failed: %w", err)
	}
	s.logger.Info(ctx, "file deleted", "folder", rec.Folder, "name", rec.Name)
	return nil
}
