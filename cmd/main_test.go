package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StartsAndShutsDown(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("ADDR", "127.0.0.1:0")
	dataFile := filepath.Join(t.TempDir(), "nested", "storage.json")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := Run(ctx, dataFile)
	assert.NoError(t, err)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"codes":[],"logs":[]}`, string(raw))
}

func TestRun_UsesDataFileFromEnv(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "env.json")
	t.Setenv("ADDR", "127.0.0.1:0")
	t.Setenv("ASTHMA_DATA_FILE", dataFile)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, Run(ctx, ""))
	_, err := os.Stat(dataFile)
	assert.NoError(t, err)
}

func TestRun_CorruptedDataFileFails(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{"), 0o644))
	t.Setenv("ADDR", "127.0.0.1:0")

	err := Run(context.Background(), dataFile)
	assert.Error(t, err)
}

func TestRun_ListenFailure(t *testing.T) {
	t.Setenv("ADDR", "not-an-address")

	err := Run(context.Background(), filepath.Join(t.TempDir(), "storage.json"))
	assert.Error(t, err)
}
