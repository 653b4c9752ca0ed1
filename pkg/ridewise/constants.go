package ridewise

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Upload/load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitUploadFailed    = 12 // One or more files failed to upload
	ExitLoadFailed      = 13 // One or more objects failed to load
	ExitSourceMissing   = 14 // Source directory not found
)

const (
	// DefaultPort is the default PostgreSQL server port.
	DefaultPort = 5432

	// DefaultSSLMode is the default TLS mode for database connections.
	DefaultSSLMode = "prefer"

	// DefaultTimeout bounds a whole upload or load run. It protects
	// against indefinite hangs from network issues, not per-statement
	// timing.
	DefaultTimeout = 5 * time.Minute

	// DefaultPrefix is the object key prefix used when none is configured.
	DefaultPrefix = "datasets/"

	// ConfigFileName is the project configuration file looked up in the
	// working directory.
	ConfigFileName = "ridewise.yaml"
)

// AuthMethod selects how the database connection authenticates.
type AuthMethod string

const (
	// AuthMethodStandard uses username/password authentication.
	AuthMethodStandard AuthMethod = "standard"

	// AuthMethodAWSIAM uses AWS RDS IAM token authentication.
	AuthMethodAWSIAM AuthMethod = "aws_iam"
)
