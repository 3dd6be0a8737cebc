package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, seedFile, verbose = "", "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join("testdata", "config.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "courses")
	require.NoError(t, err)
	assert.Equal(t, "CS101\nCS201\n", out)

	out, err = run(t, "list", "offerings")
	require.NoError(t, err)
	assert.Equal(t, "CS201 2024-01-10\n", out)

	_, err = run(t, "list", "teachers")
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "describe", "course", "CS201")
	require.NoError(t, err)
	assert.Equal(t, "Course: CS201\nDescription: Data Structures\nDuration: 1\nList of Prerequisites:\nCS101\n", out)

	out, err = run(t, "describe", "offering", "CS201", "2024-01-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Current attendees include:\nAlice\n")

	_, err = run(t, "describe", "student", "Carol")
	assert.Error(t, err)
}

func TestEnrollAndStatsCommands(t *testing.T) {
	out, err := run(t, "enroll", "Bob", "CS201", "2024-01-10")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "REFUSED"`)
	assert.Contains(t, out, `"CS101"`)

	out, err = run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, `"courses": {`)
	assert.Contains(t, out, `"size": 2`)
}

func TestSeedFlagOverridesConfig(t *testing.T) {
	_, err := run(t, "--seed", filepath.Join("testdata", "missing.yaml"), "list", "courses")
	assert.Error(t, err)
}

func TestWithRegistrarReportsCloseError(t *testing.T) {
	cfgFile, seedFile, verbose = filepath.Join("testdata", "config.yaml"), "", false

	err := withRegistrar(context.Background(), func(ctx context.Context, r services.RegistrarService) error {
		return r.Close(ctx)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRegistrarClosed)
	assert.Contains(t, err.Error(), "closing registrar")
}
