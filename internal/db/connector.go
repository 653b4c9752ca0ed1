package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

// Connector establishes a single database connection. The loader stage
// runs sequentially on one connection, so no pooling is involved; the
// caller owns the returned connection and must close it.
type Connector interface {
	Connect(ctx context.Context) (*pgx.Conn, error)
}

// StandardConnector implements Connector for username/password
// authentication.
type StandardConnector struct {
	config *ridewise.ConnectionConfig
}

// NewStandardConnector creates a StandardConnector with the given configuration.
func NewStandardConnector(config *ridewise.ConnectionConfig) *StandardConnector {
	return &StandardConnector{config: config}
}

// Connect establishes the connection and verifies it with a ping.
func (c *StandardConnector) Connect(ctx context.Context) (*pgx.Conn, error) {
	return connect(ctx, c.config, BuildConnectionString(c.config))
}

// AWSIAMConnector implements Connector for RDS IAM token authentication.
// A fresh token is acquired per connection attempt and used in place of
// a password.
type AWSIAMConnector struct {
	config   *ridewise.ConnectionConfig
	provider *AWSIAMTokenProvider
}

// NewConnector is a factory that creates the appropriate Connector
// based on the ConnectionConfig's AuthMethod.
func NewConnector(config *ridewise.ConnectionConfig) (Connector, error) {
	switch config.AuthMethod {
	case ridewise.AuthMethodStandard, "":
		return NewStandardConnector(config), nil
	case ridewise.AuthMethodAWSIAM:
		endpoint := fmt.Sprintf("%s:%d", config.Host, config.Port)
		provider, err := NewAWSIAMTokenProvider(endpoint, config.AWSRegion, config.Username)
		if err != nil {
			return nil, fmt.Errorf("creating AWS IAM token provider: %w", err)
		}
		return &AWSIAMConnector{config: config, provider: provider}, nil
	default:
		return nil, fmt.Errorf("auth method %q: %w", config.AuthMethod, ridewise.ErrUnsupportedAuthMethod)
	}
}

// Connect acquires an IAM token and connects with it as the password.
func (c *AWSIAMConnector) Connect(ctx context.Context) (*pgx.Conn, error) {
	token, _, err := c.provider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ridewise.ErrConnectionFailed, err)
	}

	cfg := *c.config
	cfg.Password = token
	if cfg.SSLMode == "" || cfg.SSLMode == "disable" {
		// RDS IAM auth requires TLS.
		cfg.SSLMode = "require"
	}
	return connect(ctx, c.config, BuildConnectionString(&cfg))
}

func connect(ctx context.Context, config *ridewise.ConnectionConfig, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, wrapConnectionError(err, config.Host, config.Port, config.Database)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close(ctx) //nolint:errcheck
		return nil, wrapConnectionError(err, config.Host, config.Port, config.Database)
	}
	return conn, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %v`, ridewise.ErrConnectionFailed, addr, host, port, err)

	case strings.Contains(errStr, "no such host"):
		return fmt.Errorf(`%w: cannot resolve host %q

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable

Original error: %v`, ridewise.ErrConnectionFailed, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database %q

Possible causes:
  - Wrong password (check $PGPASSWORD)
  - Wrong username
  - User does not have access to the database

Original error: %v`, ridewise.ErrConnectionFailed, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)

Original error: %v`, ridewise.ErrConnectionFailed, addr, err)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`%w: SSL/TLS connection error

Possible causes:
  - Server requires SSL but --sslmode is wrong
  - Certificate verification failed (try --sslmode=require)

Original error: %v`, ridewise.ErrConnectionFailed, err)

	default:
		return fmt.Errorf("%w: %v", ridewise.ErrConnectionFailed, err)
	}
}
