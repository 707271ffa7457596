package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("prints a 64-character hex fingerprint", func(t *testing.T) {
		cmd := newRootCommand()

		var stdout, stderr bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs(nil)

		require.NoError(t, cmd.ExecuteContext(context.Background()))

		fp := strings.TrimSpace(stdout.String())
		assert.Regexp(t, "^[a-f0-9]{64}$", fp)
	})

	t.Run("fingerprint is stable across invocations", func(t *testing.T) {
		run := func() string {
			cmd := newRootCommand()
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(nil)
			require.NoError(t, cmd.ExecuteContext(context.Background()))
			return strings.TrimSpace(stdout.String())
		}

		assert.Equal(t, run(), run())
	})

	t.Run("verbose mode logs signals to stderr", func(t *testing.T) {
		cmd := newRootCommand()

		var stdout, stderr bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"--verbose"})

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		assert.Contains(t, stderr.String(), "userAgent")
		assert.Regexp(t, "^[a-f0-9]{64}$", strings.TrimSpace(stdout.String()))
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := cmd.ExecuteContext(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
