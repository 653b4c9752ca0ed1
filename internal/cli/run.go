package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Richard-Gidi/Ridewise/internal/db"
	"github.com/Richard-Gidi/Ridewise/internal/files/filesystem"
	"github.com/Richard-Gidi/Ridewise/internal/loader"
	"github.com/Richard-Gidi/Ridewise/internal/logging"
	"github.com/Richard-Gidi/Ridewise/internal/storage"
	"github.com/Richard-Gidi/Ridewise/internal/uploader"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

var runCmd = &cobra.Command{
	Use:   "run <source_dir>",
	Short: "Upload a directory of CSV files, then load them into PostgreSQL",
	Long: `Run performs the whole pipeline in one shot: upload every .csv in
the source directory to the bucket, then load every .csv object under
the prefix into PostgreSQL.

The load phase only starts when every file uploaded cleanly; a partial
upload aborts the run so a half-shipped dataset is never loaded.

Examples:
  # One-shot pipeline
  ridewise run ./datasets --bucket my-bucket -d analytics

  # Everything from ridewise.yaml and the environment
  ridewise run ./datasets`,
	Args: RequireSourcePath,
	RunE: runRun,
}

var runConnFlags connFlagValues
var runStorageFlags storageFlagValues
var runTimeout time.Duration

func init() {
	rootCmd.AddCommand(runCmd)
	registerConnectionFlags(runCmd, &runConnFlags)
	registerStorageFlags(runCmd, &runStorageFlags)
	runCmd.Flags().DurationVar(&runTimeout, "timeout", ridewise.DefaultTimeout,
		"Abort the whole run after this duration\n"+
			"Examples: 30s, 5m, 1h30m")
}

func runRun(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(verbose)
	if err != nil {
		return err
	}

	storageCfg, err := resolveStorage(&runStorageFlags, projectCfg, verbose)
	if err != nil {
		return err
	}

	// Resolve the connection before uploading anything so a bad
	// database configuration fails fast.
	connCfg, err := resolveConnection(&runConnFlags, projectCfg, verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, runTimeout, projectCfg)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(timeout)
	defer cancel()

	store, err := storage.NewS3Store(ctx, storageCfg)
	if err != nil {
		return fmt.Errorf("initializing object storage: %w", err)
	}

	logger := logging.NewConsoleLogger(verbose)

	up := uploader.New(filesystem.NewOSFileSystem(), store, logger)
	if _, err := up.Upload(ctx, sourceDir, storageCfg.Prefix); err != nil {
		return err
	}

	connector, err := db.NewConnector(connCfg)
	if err != nil {
		return err
	}
	conn, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	ld := loader.New(store, logger)
	_, err = ld.Load(ctx, conn, storageCfg.Prefix)
	return err
}
