package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runSchedlab(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "dev\n", stdout)

	stdout, stderr, err = runSchedlab(t, binaryPath, home, "workload")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Practice Workload")
	assert.Contains(t, stdout, "policy order: FIFO, Round Robin, STCF, MLFQ")

	_, stderr, err = runSchedlab(t, binaryPath, home, "config", "init")
	require.NoError(t, err, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(home, ".config", "schedlab", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "grid_window")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "schedlab-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/schedlab")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build schedlab binary: %s", string(output))
	return binaryPath
}

func runSchedlab(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
