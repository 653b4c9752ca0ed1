package ridewise

import (
	"errors"
	"fmt"
	"time"
)

// ConnectionConfig holds PostgreSQL connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string

	// SSLMode is one of disable|allow|prefer|require|verify-ca|verify-full.
	SSLMode string

	// AuthMethod selects password or AWS IAM token authentication.
	AuthMethod AuthMethod

	// AWSRegion is required when AuthMethod is AuthMethodAWSIAM.
	AWSRegion string

	// ConnectTimeout bounds connection establishment. Zero uses the
	// driver default.
	ConnectTimeout time.Duration

	// AdditionalParams are extra connection string parameters.
	AdditionalParams map[string]string
}

// Validate checks if the ConnectionConfig has all required fields.
// It returns a joined error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range: %w", c.Port, ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database is required: %w", ErrInvalidConfig))
	}
	if c.AuthMethod == AuthMethodAWSIAM && c.AWSRegion == "" {
		errs = append(errs, fmt.Errorf("aws_iam auth requires a region: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// StorageConfig identifies the object storage destination.
type StorageConfig struct {
	// Bucket is the destination bucket name.
	Bucket string

	// Prefix namespaces all object keys, e.g. "datasets/".
	Prefix string

	// Region is the bucket's region. Empty falls back to the AWS
	// default chain resolution.
	Region string

	// Endpoint overrides the service endpoint for S3-compatible stores.
	// Implies path-style addressing.
	Endpoint string
}

// Validate checks if the StorageConfig has all required fields.
func (c *StorageConfig) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required: %w", ErrInvalidConfig)
	}
	return nil
}
