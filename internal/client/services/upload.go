// Package services holds the client's application services: the upload
// coordinator, file actions, and the follow-up tracker. Services sit
// between the terminal UI and the external stores.
package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/blobstore"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/docshare/internal/common"
	"github.com/dmitrijs2005/docshare/internal/logging"
)

// UploadProgress is one snapshot of an in-flight upload, published to the
// observer after every read from the source.
type UploadProgress struct {
	Folder           string
	Name             string
	BytesTransferred int64
	TotalBytes       int64
	Percent          int // integer in [0,100]; 100 only at completion
}

// ProgressObserver receives UploadProgress snapshots. It runs on the
// transfer's goroutine and must return quickly.
type ProgressObserver func(UploadProgress)

// UploadService drives one upload at a time: it assigns a storage key,
// streams bytes to the blob store, and converts a finished transfer into
// exactly one persisted metadata record. A second Upload while one is in
// flight fails with common.ErrUploadInFlight.
type UploadService struct {
	blob   blobstore.BlobStore
	meta   metadata.Repository
	logger logging.Logger

	busy atomic.Bool

	// now is a seam for deterministic storage keys in tests.
	now func() time.Time
}

func NewUploadService(blob blobstore.BlobStore, meta metadata.Repository, logger logging.Logger) *UploadService {
	return &UploadService{blob: blob, meta: meta, logger: logger, now: time.Now}
}

// Busy reports whether an upload is currently in flight.
func (s *UploadService) Busy() bool {
	return s.busy.Load()
}

// StorageKey builds the blob key for a new upload. The millisecond prefix
// keeps sequential uploads of identically named files from colliding; two
// uploads started within the same millisecond can still collide, which is
// accepted for single-user use.
func (s *UploadService) StorageKey(folderID, name string) string {
	return fmt.Sprintf("%s/%d_%s", folderID, s.now().UnixMilli(), name)
}

// Upload streams the file into the blob store under a fresh storage key,
// then writes one metadata record. The record's id and createdAt are
// assigned by the metadata store. folderID is not validated against the
// registry: an unknown id simply creates a new implicit partition.
//
// On any failure the session resets to idle, no record is written, and no
// cleanup of a partially or fully transferred blob is attempted.
func (s *UploadService) Upload(ctx context.Context, folderID, name string, r io.Reader, size int64, mimeType string, observe ProgressObserver) (*models.FileRecord, error) {
	if strings.TrimSpace(name) == "" || size <= 0 {
		return nil, common.ErrEmptyFile
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, common.ErrUploadInFlight
	}
	defer s.busy.Store(false)

	if mimeType == "" {
		mimeType = models.DefaultMIMEType
	}

	key := s.StorageKey(folderID, name)

	publish := func(transferred int64, pct int) {
		if observe != nil {
			observe(UploadProgress{
				Folder:           folderID,
				Name:             name,
				BytesTransferred: transferred,
				TotalBytes:       size,
				Percent:          pct,
			})
		}
	}
	publish(0, 0)

	// Transfer progress is capped at 99: the source being fully read does
	// not mean the store has accepted the object yet.
	url, err := s.blob.Put(ctx, key, r, size, mimeType, func(transferred, _ int64) {
		publish(transferred, percent(transferred, size))
	})
	if err != nil {
		s.logger.Error(ctx, "upload failed", "folder", folderID, "name", name, "error", err)
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	rec := &models.FileRecord{
		Name:        name,
		URL:         url,
		StoragePath: key,
		Size:        size,
		Type:        mimeType,
		Folder:      folderID,
	}
	id, createdAt, err := s.meta.Insert(ctx, rec)
	if err != nil {
		// The blob exists but no record points at it. The orphan is left
		// in place; see the deletion path for the mirror-image case.
		s.logger.Error(ctx, "metadata write failed after upload", "key", key, "error", err)
		return nil, fmt.Errorf("metadata write failed: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = createdAt

	publish(size, 100)
	s.logger.Info(ctx, "upload complete", "folder", folderID, "name", name, "size", size)
	return rec, nil
}

// percent maps an in-transfer byte count to an integer percentage in
// [0,99]. 100 is reserved for the completion publish, after the metadata
// record exists.
func percent(transferred, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(transferred) / float64(total) * 100))
	if p > 99 {
		p = 99
	}
	return p
}
