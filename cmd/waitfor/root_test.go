package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRoot(t *testing.T) {
	t.Parallel()

	t.Run("succeeds", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "--timeout", "1s", "--", "sh", "-c", "exit 0")
		require.NoError(t, err)
	})

	t.Run("command flags without separator", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "--timeout", "1s", "sh", "-c", "exit 0")
		require.NoError(t, err)
	})

	t.Run("times out with last output", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		_, err := runRoot(t, "--timeout", "100ms", "--interval", "10ms", "--", "sh", "-c", "echo not ready; exit 3")
		require.EqualError(t, err, "sh: not ready: exit status 3")
		require.True(t, time.Since(start) >= 100*time.Millisecond)
	})

	t.Run("waits for file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ready")
		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(path, nil, 0o600)
		}()

		out, err := runRoot(t, "-v", "--timeout", "5s", "--interval", "10ms", "--", "test", "-f", path)
		require.NoError(t, err)
		require.Contains(t, out, "waitfor: attempt 1 failed")
	})

	t.Run("requires a command", func(t *testing.T) {
		t.Parallel()

		_, err := runRoot(t, "--timeout", "1s")
		require.Error(t, err)
	})
}
