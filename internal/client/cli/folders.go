package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docshare/internal/registry"
)

// Folders updates the folder-name filter and prints the matching
// departments. The filter only narrows the listing; the active folder
// stays as it is until the user runs cd.
func (a *App) Folders(ctx context.Context, filter string) {
	a.folders.SetFilter(filter)

	visible := a.folders.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No departments match.")
		return
	}

	active := a.folders.State().ActiveID
	for _, f := range visible {
		marker := "  "
		if f.ID == active {
			marker = "* "
		}
		fmt.Fprintf(a.out, "%s%-28s %s\n", marker, f.ID, f.Name)
	}
}

// Select switches the active department. The argument may be a slug or a
// display name; unknown ids are accepted as implicit partitions, matching
// the upload side.
func (a *App) Select(ctx context.Context, arg string) {
	id := arg
	if !a.registry.Contains(id) {
		if slug := registry.Slug(arg); a.registry.Contains(slug) {
			id = slug
		}
	}

	a.folders.Select(ctx, id)
	a.visible = nil

	st := a.fileList.State()
	if st.LastErr != nil {
		fmt.Fprintf(a.out, "Switched to %s (file list unavailable)\n", a.folders.Resolve(id))
		return
	}
	fmt.Fprintf(a.out, "Switched to %s (%d file)\n", a.folders.Resolve(id), len(st.Records))
}
