// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// FileWriter appends to a log file and can reopen it after rotation.
type FileWriter struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for '%s': %w", path, err)
	}
	w := &FileWriter{path: path}
	if err := w.Reopen(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Write(p)
}

// Reopen closes the current file and opens path again.
func (w *FileWriter) Reopen() error {
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file '%s': %w", w.path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		_ = w.file.Close()
	}
	w.file = file
	return nil
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// ReopenOnSignal reopens the file on SIGHUP until the returned stop function
// is called.
//
//	mv barescript.log barescript.log.1 && kill -HUP <pid>
func (w *FileWriter) ReopenOnSignal() (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-sigs:
				if err := w.Reopen(); err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}

// Setup installs a JSON slog handler at the given level as the default
// logger. Output goes to file when set, stderr otherwise; a file that cannot
// be opened falls back to stderr. The returned function releases the file.
func Setup(level, file string) func() {
	var out io.Writer = os.Stderr
	cleanup := func() {}
	if file != "" {
		w, err := OpenFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v; falling back to stderr\n", err)
		} else {
			stop := w.ReopenOnSignal()
			out = w
			cleanup = func() {
				stop()
				_ = w.Close()
			}
		}
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		AddSource: false,
		Level:     LevelFromString(level),
	})
	slog.SetDefault(slog.New(handler))
	return cleanup
}
