package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdir(t, t.TempDir())

	log, logFile := setupLogging(false)
	require.NotNil(t, log)
	assert.Nil(t, logFile, "Expected nil log file when debug=false")

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "Expected no logs directory")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdir(t, t.TempDir())

	log, logFile := setupLogging(true)
	require.NotNil(t, logFile, "Expected non-nil log file when debug=true")
	defer logFile.Close()

	log.Debug("Test log message")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Test log message")
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0755))

	// Write just over the limit
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	old, err := os.Stat(logPath + ".old")
	require.NoError(t, err, "Expected rotated log file")
	assert.Equal(t, int64(maxLogSize+1), old.Size())

	fresh, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Zero(t, fresh.Size())
}
