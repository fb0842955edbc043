// Package viewmodels holds the explicit state containers behind the
// terminal UI: one for the active folder's file list, one for folder
// selection. Keeping the state in plain structs makes every transition
// unit-testable without a rendering environment.
package viewmodels

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/logging"
)

// Lister issues the folder-scoped metadata query. services.FileService
// satisfies it.
type Lister interface {
	ListByFolder(ctx context.Context, folderID string) ([]*models.FileRecord, error)
}

// FileListState is a snapshot of the file-list view-model.
type FileListState struct {
	Folder  string
	Records []*models.FileRecord
	Filter  string
	Loaded  bool  // a query for Folder has completed (successfully or not)
	LastErr error // error of the last completed query, nil on success
}

// FileList tracks one folder's file set. Every outbound query carries the
// sequence number current at dispatch; a response whose sequence no longer
// matches is discarded, so a slow query for a folder the user already left
// can never overwrite the list.
type FileList struct {
	lister Lister
	logger logging.Logger

	mu    sync.Mutex
	state FileListState
	seq   uint64
}

func NewFileList(lister Lister, logger logging.Logger) *FileList {
	return &FileList{lister: lister, logger: logger}
}

// State returns a snapshot of the current view-model state. The records
// slice is shared; callers must treat it as read-only.
func (v *FileList) State() FileListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SelectFolder switches the view to folder id: the current list is
// discarded immediately (no stale rows flash across folders), the file
// filter resets to empty, and a fresh scoped query is issued.
func (v *FileList) SelectFolder(ctx context.Context, id string) {
	v.mu.Lock()
	v.seq++
	token := v.seq
	v.state = FileListState{Folder: id}
	v.mu.Unlock()

	recs, err := v.lister.ListByFolder(ctx, id)
	v.apply(ctx, token, id, recs, err)
}

// Reload re-issues the active folder's query and fully replaces the list.
// The file filter is untouched; only a folder change resets it.
func (v *FileList) Reload(ctx context.Context) {
	v.mu.Lock()
	v.seq++
	token := v.seq
	id := v.state.Folder
	v.mu.Unlock()

	recs, err := v.lister.ListByFolder(ctx, id)
	v.apply(ctx, token, id, recs, err)
}

// apply installs a query response, unless a newer query has been issued
// since this one was dispatched.
func (v *FileList) apply(ctx context.Context, token uint64, id string, recs []*models.FileRecord, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.seq {
		v.logger.Warn(ctx, "discarding stale file query response", "folder", id)
		return
	}

	v.state.Loaded = true
	v.state.LastErr = err
	if err != nil {
		// A failed query presents the same empty list as an empty folder;
		// the distinct error state is kept alongside for the UI to show.
		v.state.Records = nil
		return
	}
	sortNewestFirst(recs)
	v.state.Records = recs
}

// SetFilter updates the client-side file-name filter. No remote query is
// triggered.
func (v *FileList) SetFilter(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Filter = query
}

// Filtered returns the loaded records whose name contains the filter text,
// case-insensitively. An empty filter returns the full list.
func (v *FileList) Filtered() []*models.FileRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(v.state.Filter))
	if term == "" {
		return v.state.Records
	}
	var out []*models.FileRecord
	for _, rec := range v.state.Records {
		if strings.Contains(strings.ToLower(rec.Name), term) {
			out = append(out, rec)
		}
	}
	return out
}

// sortNewestFirst orders records by creation time, newest first. Records
// without a timestamp (not yet stamped by the store) use a zero sort key,
// so they sink to the bottom instead of jumping ahead of older files.
func sortNewestFirst(recs []*models.FileRecord) {
	key := func(r *models.FileRecord) int64 {
		if r.CreatedAt.IsZero() {
			return 0
		}
		return r.CreatedAt.UnixMilli()
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return key(recs[i]) > key(recs[j])
	})
}
