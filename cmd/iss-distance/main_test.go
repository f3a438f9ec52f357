package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionLogFile(t *testing.T) {
	// The terminal UI keeps its diagnostics in a file.
	require.Equal(t, filepath.Join(os.TempDir(), uiLogFileName), sessionLogFile(&Options{}))

	require.Empty(t, sessionLogFile(&Options{LogFile: "/var/log/iss.log"}))
	require.Empty(t, sessionLogFile(&Options{Plain: true}))
	require.Empty(t, sessionLogFile(&Options{JSON: true}))
}

func TestNewLogger(t *testing.T) {
	logger, out, err := newLogger(&Options{LogLevel: "warn"})
	require.NoError(t, err)
	require.Equal(t, os.Stderr, out)
	require.Equal(t, "warn", logger.GetLevel().String())

	path := filepath.Join(t.TempDir(), "iss.log")
	logger, out, err = newLogger(&Options{LogLevel: "debug", LogFile: path})
	require.NoError(t, err)
	logger.Info().Msg("hello")
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"hello"`)
	require.Contains(t, string(data), `"app":"iss-distance"`)
}
