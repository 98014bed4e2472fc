package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/entangle-labs/idlmeta/config/network"
	"github.com/entangle-labs/idlmeta/config/target"
	"github.com/entangle-labs/idlmeta/idl"
	"github.com/entangle-labs/idlmeta/pkg/logger"
)

func writeIDL(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func readIDL(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func Test_Runner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	photon := writeIDL(t, dir, "photon.json", `{"name": "photon", "metadata": {"address": "OLD"}}`)
	onefunc := writeIDL(t, dir, "onefunc.json", `{"name": "onefunc"}`)

	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	runner := NewRunner(lggr, idl.NewPatcher())

	jobs := []target.PatchJob{
		{Name: "photon", Path: photon, Address: "3cAFEXstVzff2dXH8PFMgm81h8sQgpdskFGZqqoDgQkJ"},
		{Name: "onefunc", Path: onefunc, Address: "EjpcUpcuJV2Mq9vjELMZHhgpvJ4ggoWtUYCTFqw6D9CZ"},
	}

	report, err := runner.Run(t.Context(), network.Devnet, jobs)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, network.Devnet, report.Network)
	assert.Equal(t, jobs, report.Patched)

	assert.JSONEq(t, `{"name": "photon", "metadata": {"address": "3cAFEXstVzff2dXH8PFMgm81h8sQgpdskFGZqqoDgQkJ"}}`, readIDL(t, photon))
	assert.JSONEq(t, `{"name": "onefunc", "metadata": {"address": "EjpcUpcuJV2Mq9vjELMZHhgpvJ4ggoWtUYCTFqw6D9CZ"}}`, readIDL(t, onefunc))

	entries := logs.FilterMessage("Patched IDL metadata").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "photon", entries[0].ContextMap()["target"])
	assert.Equal(t, "onefunc", entries[1].ContextMap()["target"])
	assert.Equal(t, report.RunID, entries[1].ContextMap()["run_id"])
}

func Test_Runner_Run_FailFast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeIDL(t, dir, "first.json", `{"name": "first"}`)
	broken := writeIDL(t, dir, "broken.json", `not json`)
	last := writeIDL(t, dir, "last.json", `{"name": "last"}`)

	runner := NewRunner(logger.Test(t), idl.NewPatcher())

	report, err := runner.Run(t.Context(), network.Mainnet, []target.PatchJob{
		{Name: "first", Path: first, Address: "A"},
		{Name: "broken", Path: broken, Address: "B"},
		{Name: "last", Path: last, Address: "C"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, idl.ErrParse)
	assert.ErrorContains(t, err, "failed to patch broken")

	require.NotNil(t, report)
	assert.Equal(t, []target.PatchJob{{Name: "first", Path: first, Address: "A"}}, report.Patched)

	assert.JSONEq(t, `{"name": "first", "metadata": {"address": "A"}}`, readIDL(t, first))
	assert.Equal(t, `not json`, readIDL(t, broken))
	assert.Equal(t, `{"name": "last"}`, readIDL(t, last))
}

func Test_Runner_Run_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := NewRunner(logger.Nop(), idl.NewPatcher())

	_, err := runner.Run(t.Context(), network.Devnet, []target.PatchJob{
		{Name: "photon", Path: filepath.Join(dir, "target", "idl", "photon.json"), Address: "A"},
	})
	require.ErrorIs(t, err, idl.ErrNotFound)
}

func Test_Runner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	var calls []string
	runner := NewRunner(logger.Nop(), PatcherFunc(func(path, address string) error {
		calls = append(calls, path)
		cancel()

		return nil
	}))

	report, err := runner.Run(ctx, network.Devnet, []target.PatchJob{
		{Name: "a", Path: "a.json", Address: "A"},
		{Name: "b", Path: "b.json", Address: "B"},
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "run cancelled before b (2 of 2)")
	assert.Equal(t, []string{"a.json"}, calls)
	assert.Len(t, report.Patched, 1)
}

func Test_Runner_Run_NoJobs(t *testing.T) {
	t.Parallel()

	runner := NewRunner(logger.Nop(), PatcherFunc(func(string, string) error {
		return errors.New("must not be called")
	}))

	report, err := runner.Run(t.Context(), network.Devnet, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Patched)
}
