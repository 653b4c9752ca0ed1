package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Richard-Gidi/Ridewise/internal/files/filesystem"
	"github.com/Richard-Gidi/Ridewise/internal/logging"
	"github.com/Richard-Gidi/Ridewise/internal/storage"
	"github.com/Richard-Gidi/Ridewise/internal/uploader"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <source_dir>",
	Short: "Upload CSV files from a directory to object storage",
	Long: `Upload copies every .csv file directly inside the source directory
(non-recursive) into the configured bucket under the key prefix.
Existing objects with the same key are overwritten.

Files that fail to read or transfer are reported and skipped; the
remaining files still upload. The command exits non-zero when any
file failed.

S3 credentials come from the AWS default chain (environment,
~/.aws/credentials, instance metadata). They are never read from
ridewise.yaml.

Examples:
  # Upload ./datasets to s3://my-bucket/datasets/
  ridewise upload ./datasets --bucket my-bucket

  # Custom prefix and region
  ridewise upload ./datasets --bucket my-bucket --prefix raw/2026-08/ --region eu-west-1

  # S3-compatible store (MinIO)
  ridewise upload ./datasets --bucket my-bucket --endpoint http://localhost:9000`,
	Args: RequireSourcePath,
	RunE: runUpload,
}

var uploadStorageFlags storageFlagValues
var uploadTimeout time.Duration

func init() {
	rootCmd.AddCommand(uploadCmd)
	registerStorageFlags(uploadCmd, &uploadStorageFlags)
	uploadCmd.Flags().DurationVar(&uploadTimeout, "timeout", ridewise.DefaultTimeout,
		"Abort the whole run after this duration\n"+
			"Examples: 30s, 5m, 1h30m")
}

func runUpload(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(verbose)
	if err != nil {
		return err
	}

	storageCfg, err := resolveStorage(&uploadStorageFlags, projectCfg, verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, uploadTimeout, projectCfg)
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

	_, err = up.Upload(ctx, sourceDir, storageCfg.Prefix)
	return err
}
