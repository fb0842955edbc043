package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/docshare/internal/client/services"
	"github.com/dmitrijs2005/docshare/internal/common"
)

// Upload sends a local file into the active folder, drawing a progress bar
// while the transfer runs, and reloads the file list when it completes.
func (a *App) Upload(ctx context.Context, path string) {
	folder := a.fileList.State().Folder
	if folder == "" {
		fmt.Fprintln(a.out, "No folder selected. Run cd first.")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open file:", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintln(a.out, "Cannot stat file:", err)
		return
	}
	if info.IsDir() {
		fmt.Fprintln(a.out, path, "is a directory.")
		return
	}

	name := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(name))

	rec, err := a.uploads.Upload(ctx, folder, name, f, info.Size(), mimeType, a.drawProgress)
	fmt.Fprintln(a.out)
	if err != nil {
		if errors.Is(err, common.ErrUploadInFlight) {
			fmt.Fprintln(a.out, "Another upload is still running, try again when it finishes.")
			return
		}
		fmt.Fprintln(a.out, "Upload failed:", err)
		return
	}

	fmt.Fprintf(a.out, "%s uploaded.\n", rec.Name)
	a.fileList.Reload(ctx)
	a.visible = nil
}

// drawProgress redraws a single-line progress bar in place.
func (a *App) drawProgress(p services.UploadProgress) {
	const width = 30
	filled := width * p.Percent / 100
	bar := strings.Repeat("#", filled) + strings.Repeat(" ", width-filled)
	fmt.Fprintf(a.out, "\r[%s] %3d%% %s", bar, p.Percent, p.Name)
}
