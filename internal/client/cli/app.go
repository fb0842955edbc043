// Package cli implements the interactive terminal client: a read–eval–print
// loop over the folder selector, the file list, the upload coordinator, and
// the follow-up tracker.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/docshare/internal/client/blobstore"
	"github.com/dmitrijs2005/docshare/internal/client/config"
	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/repositories/followups"
	"github.com/dmitrijs2005/docshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/docshare/internal/client/services"
	"github.com/dmitrijs2005/docshare/internal/client/viewmodels"
	"github.com/dmitrijs2005/docshare/internal/filex"
	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/dmitrijs2005/docshare/internal/registry"

	_ "modernc.org/sqlite"
)

// App wires the view-models and services behind the REPL commands.
type App struct {
	config    *config.Config
	logger    logging.Logger
	registry  *registry.Registry
	uploads   *services.UploadService
	files     *services.FileService
	followUps *services.FollowUpService
	fileList  *viewmodels.FileList
	folders   *viewmodels.FolderSelector

	reader *bufio.Reader
	out    io.Writer

	// visible mirrors the rows last printed by ls/find, so that open,
	// copy and rm can address files by their printed number.
	visible []*models.FileRecord

	// tasks mirrors the rows last printed by the task list.
	tasks []*models.FollowUp
}

// NewApp connects to both external stores, opens the local follow-up
// database, and builds the application graph. The returned closer releases
// the database handles.
func NewApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	reg, err := registry.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("registry init error: %w", err)
	}

	metaDB, err := metadata.Open(ctx, cfg.MetadataDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("metadata store init error: %w", err)
	}

	blob, err := blobstore.NewS3Store(ctx, blobstore.Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.PublicBaseURL,
		PresignExpiry: cfg.PresignExpiry,
	})
	if err != nil {
		metaDB.Close()
		return nil, nil, fmt.Errorf("blob store init error: %w", err)
	}

	localDB, err := openLocalDB(ctx, cfg.LocalDBFile)
	if err != nil {
		metaDB.Close()
		return nil, nil, fmt.Errorf("local db init error: %w", err)
	}

	metaRepo := metadata.NewPostgresRepository(metaDB)
	fileService := services.NewFileService(blob, metaRepo, logger)
	fileList := viewmodels.NewFileList(fileService, logger)

	app := &App{
		config:    cfg,
		logger:    logger,
		registry:  reg,
		uploads:   services.NewUploadService(blob, metaRepo, logger),
		files:     fileService,
		followUps: services.NewFollowUpService(followups.NewSQLiteRepository(localDB)),
		fileList:  fileList,
		folders:   viewmodels.NewFolderSelector(reg, fileList),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	closer := func() {
		_ = localDB.Close()
		_ = metaDB.Close()
	}
	return app, closer, nil
}

// openLocalDB opens the sqlite follow-up database under ./data and creates
// the schema when missing.
func openLocalDB(ctx context.Context, fileName string) (*sql.DB, error) {
	dir, err := filex.EnsureSubDir("data")
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, fileName))
	if err != nil {
		return nil, err
	}
	if err := followups.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Run loads the initial folder and enters the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	a.folders.Activate(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt suffix: the active folder's display name and
// the file count.
func (a *App) status() string {
	st := a.fileList.State()
	return fmt.Sprintf("%s, %d file", a.folders.Resolve(st.Folder), len(st.Records))
}
