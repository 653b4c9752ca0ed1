package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ridewise",
	Short: "CSV to object storage to PostgreSQL pipeline",
	Long: `ridewise ships local CSV datasets into object storage and loads them
into PostgreSQL tables with inferred schemas.

The pipeline has two halves that can run independently or as one shot:

  upload   copy every .csv in a directory into an S3 bucket
  load     read every .csv object under a prefix and bulk-copy it
           into a table named after the file
  run      upload, then load

Column types are inferred from the data (INTEGER, NUMERIC, BOOLEAN,
falling back to TEXT) and tables are created with CREATE TABLE IF NOT
EXISTS, so existing tables are never altered.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - One or more files failed to upload
  13 - One or more objects failed to load
  14 - Source directory not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
