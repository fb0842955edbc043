package viewmodels

import (
	"context"

	"github.com/dmitrijs2005/docshare/internal/registry"
)

// FolderSelectorState is a snapshot of the folder-selection view-model.
type FolderSelectorState struct {
	ActiveID   string
	FilterText string
}

// FolderSelector holds the active folder id and the folder-name filter.
// The filter only narrows what is offered for selection; it never switches
// the active folder by itself. Selecting a folder is the sole trigger for
// the file list's SelectFolder.
type FolderSelector struct {
	registry *registry.Registry
	files    *FileList
	state    FolderSelectorState
}

// NewFolderSelector builds a selector over reg, wired to files. The first
// registry entry starts out active, and its file list is loaded by the
// first call to Activate.
func NewFolderSelector(reg *registry.Registry, files *FileList) *FolderSelector {
	s := &FolderSelector{registry: reg, files: files}
	if all := reg.All(); len(all) > 0 {
		s.state.ActiveID = all[0].ID
	}
	return s
}

// State returns a snapshot of the selector state.
func (s *FolderSelector) State() FolderSelectorState {
	return s.state
}

// Activate loads the file list for the currently active folder. Called
// once at startup.
func (s *FolderSelector) Activate(ctx context.Context) {
	s.files.SelectFolder(ctx, s.state.ActiveID)
}

// Select makes id the active folder and reloads the file list, regardless
// of any folder filter in effect. Selecting the already active folder
// still reloads it.
func (s *FolderSelector) Select(ctx context.Context, id string) {
	s.state.ActiveID = id
	s.files.SelectFolder(ctx, id)
}

// SetFilter narrows the folders offered by Visible.
func (s *FolderSelector) SetFilter(query string) {
	s.state.FilterText = query
}

// Visible lists the folders matching the current filter, in registry order.
func (s *FolderSelector) Visible() []registry.Folder {
	return s.registry.Filter(s.state.FilterText)
}

// Resolve maps a folder id to its display name, falling back to the id.
func (s *FolderSelector) Resolve(id string) string {
	return s.registry.Resolve(id)
}
