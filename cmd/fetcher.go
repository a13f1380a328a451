package cmd

import (
	"barbellfx-relay/internal/repository"
	"barbellfx-relay/internal/service"
	"barbellfx-relay/pkg/logger"
	"barbellfx-relay/pkg/mt5"
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Mirror the current signal into the MetaTrader 5 Files folder",
	Run:   Fetch,
}

func Fetch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency()
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	filesDir := resolveFilesDir(appDep)
	repo := repository.NewRepository(appDep.cfg, appDep.cache, appDep.log)
	fetcher := service.NewFetcherService(appDep.cfg, appDep.log, repo, filesDir)

	appDep.log.Info("Signal fetcher configured",
		logger.StringField("api", appDep.cfg.Fetcher.BaseURL+"/signal"),
		logger.StringField("file", fetcher.FilePath()),
		logger.StringField("interval", appDep.cfg.Fetcher.Interval.String()),
	)

	if err := fetcher.Start(ctx); err != nil {
		appDep.log.Error("Signal fetcher failed", logger.ErrorField(err))
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}

// resolveFilesDir prefers the configured folder, then an auto-detected
// terminal install, then the working directory.
func resolveFilesDir(appDep *AppDependency) string {
	if dir := appDep.cfg.Fetcher.FilesDir; dir != "" {
		return dir
	}

	if dir := mt5.DetectFilesDir(mt5.HostEnvironment()); dir != "" {
		appDep.log.Info("MT5 Files folder found", logger.StringField("dir", dir))
		return dir
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	appDep.log.Warn("MT5 Files folder not found automatically; copy the signal file into MQL5/Files "+
		"(File -> Open Data Folder in the terminal) or set fetcher.files_dir",
		logger.StringField("fallback", filepath.Clean(wd)),
	)
	return wd
}
