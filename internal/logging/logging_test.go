package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLevelFromString(t *testing.T) {
	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelError},
		{"verbose", slog.LevelError},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.want, LevelFromString(tc.level))
		})
	}
}

func TestFileWriterReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "barescript.log")

	w, err := OpenFile(path)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)

	rotated := filepath.Join(dir, "logs", "barescript.log.1")
	require.NoError(t, os.Rename(path, rotated))
	require.NoError(t, w.Reopen())

	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	old, err := os.ReadFile(rotated)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(old))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(current))
}

func TestReopenOnSignalStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := OpenFile(filepath.Join(t.TempDir(), "barescript.log"))
	require.NoError(t, err)
	defer w.Close()

	stop := w.ReopenOnSignal()
	stop()
	stop()
}
