package ridewise_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ridewise.ExitSuccess},
		{"general error", errors.New("something went wrong"), ridewise.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), ridewise.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), ridewise.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), ridewise.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--port\""), ridewise.ExitUsageError},
		{"invalid config", ridewise.ErrInvalidConfig, ridewise.ExitConfigError},
		{"source dir missing", ridewise.ErrSourceDirNotFound, ridewise.ExitSourceMissing},
		{"upload failed", ridewise.ErrUploadFailed, ridewise.ExitUploadFailed},
		{"load failed", ridewise.ErrLoadFailed, ridewise.ExitLoadFailed},
		{"connection failed", ridewise.ErrConnectionFailed, ridewise.ExitConnectionError},
		{"unsupported auth", ridewise.ErrUnsupportedAuthMethod, ridewise.ExitConfigError},
		{"connection refused text", errors.New("dial tcp: connection refused"), ridewise.ExitConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ridewise.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinels(t *testing.T) {
	err := fmt.Errorf("loading objects under %q: %w", "datasets/", ridewise.ErrLoadFailed)
	if got := ridewise.ExitCodeForError(err); got != ridewise.ExitLoadFailed {
		t.Errorf("ExitCodeForError(wrapped) = %d, want %d", got, ridewise.ExitLoadFailed)
	}
}
