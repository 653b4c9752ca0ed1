package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Richard-Gidi/Ridewise/internal/config"
)

func TestRootCommandRegistration(t *testing.T) {
	expected := map[string]bool{
		"upload":  false,
		"load":    false,
		"run":     false,
		"version": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "command %q not registered", name)
	}
}

func TestPersistentVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNoPasswordFlag(t *testing.T) {
	// Passwords must never be accepted on the command line.
	for _, cmd := range rootCmd.Commands() {
		assert.Nil(t, cmd.Flags().Lookup("password"),
			"command %q must not expose a --password flag", cmd.Name())
	}
}

func TestResolveTimeout(t *testing.T) {
	t.Run("flag value used when no project config", func(t *testing.T) {
		d, err := resolveTimeout(uploadCmd, 2*time.Minute, nil)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, d)
	})

	t.Run("project config timeout applies when flag unchanged", func(t *testing.T) {
		projectCfg := &config.ProjectConfig{Timeout: "90s"}
		d, err := resolveTimeout(uploadCmd, 5*time.Minute, projectCfg)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, d)
	})

	t.Run("invalid project timeout is an error", func(t *testing.T) {
		projectCfg := &config.ProjectConfig{Timeout: "soon"}
		_, err := resolveTimeout(uploadCmd, 5*time.Minute, projectCfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timeout")
	})
}
