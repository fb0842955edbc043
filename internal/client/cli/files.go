package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/docshare/internal/client/clipboard"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dustin/go-humanize"
)

// List prints the active folder's files after the current name filter,
// newest first, numbered for use with open/copy/rm.
func (a *App) List(ctx context.Context) {
	st := a.fileList.State()
	if st.LastErr != nil {
		fmt.Fprintln(a.out, "File list unavailable, showing nothing. Try cd again.")
		a.visible = nil
		return
	}

	a.visible = a.fileList.Filtered()
	if len(a.visible) == 0 {
		fmt.Fprintln(a.out, "No files.")
		return
	}

	filter := st.Filter
	if filter != "" {
		fmt.Fprintf(a.out, "%d of %d file\n", len(a.visible), len(st.Records))
	}
	for i, rec := range a.visible {
		fmt.Fprintf(a.out, "%3d. %-40s %10s  %s\n", i+1, rec.Name, humanize.Bytes(uint64(rec.Size)), formatDate(rec))
	}
}

// Find sets the client-side file-name filter and prints the result. No
// remote query is issued.
func (a *App) Find(ctx context.Context, term string) {
	a.fileList.SetFilter(term)
	a.List(ctx)
}

// Open prints the file's stored fetch URL so the hosting terminal can open
// it.
func (a *App) Open(ctx context.Context, idx string) {
	rec, ok := a.fileAt(idx)
	if !ok {
		return
	}
	fmt.Fprintln(a.out, rec.URL)
}

// CopyLink puts the file's fetch URL on the clipboard.
func (a *App) CopyLink(ctx context.Context, idx string) {
	rec, ok := a.fileAt(idx)
	if !ok {
		return
	}
	if err := clipboard.Copy(rec.URL, a.out); err != nil {
		a.logger.Error(ctx, "copy failed", "error", err)
		fmt.Fprintln(a.out, "Copy failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Link for %s copied.\n", rec.Name)
}

// Remove deletes a file after confirmation: the blob first, then the
// metadata record, then a reload of the active folder.
func (a *App) Remove(ctx context.Context, idx string) {
	rec, ok := a.fileAt(idx)
	if !ok {
		return
	}

	confirmed, err := GetConfirm(a.reader, fmt.Sprintf("Delete %s?", rec.Name), a.out)
	if err != nil || !confirmed {
		return
	}

	if err := a.files.Delete(ctx, rec); err != nil {
		// Deletion may have partially succeeded; the reload below shows
		// whatever state the stores are actually in.
		fmt.Fprintln(a.out, "Delete failed:", err)
	} else {
		fmt.Fprintf(a.out, "%s deleted.\n", rec.Name)
	}

	a.fileList.Reload(ctx)
	a.visible = nil
}

// fileAt resolves a printed row number to its record.
func (a *App) fileAt(idx string) (*models.FileRecord, bool) {
	n, err := strconv.Atoi(idx)
	if err != nil || n < 1 || n > len(a.visible) {
		fmt.Fprintln(a.out, "No such file. Run ls first and pick a number.")
		return nil, false
	}
	return a.visible[n-1], true
}

func formatDate(rec *models.FileRecord) string {
	if rec.CreatedAt.IsZero() {
		return "just uploaded"
	}
	return rec.CreatedAt.Local().Format("02 Jan 2006 15:04")
}
