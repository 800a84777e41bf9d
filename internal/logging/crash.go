package logging

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"golang.org/x/sys/unix"
)

const crashFilePerm = 0o600

// DefaultCrashDir returns the XDG state directory for crash logs.
func DefaultCrashDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "infinitty"), nil
}

// RedirectStderrToCrashLog duplicates the crash file's descriptor over
// stderr so that Go runtime panics and GLib warnings land in the file even
// when the process dies before any logger flush.
func RedirectStderrToCrashLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create crash log directory: %w", err)
	}

	path := filepath.Join(dir, "crash.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, crashFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open crash log: %w", err)
	}

	if err := unix.Dup2(int(f.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to redirect stderr: %w", err)
	}

	return f, nil
}

// SetupCrashHandler installs signal handlers for fatal signals and logs a
// stack trace before exiting.
func SetupCrashHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGSEGV,
		syscall.SIGABRT,
		syscall.SIGBUS,
	)

	go func() {
		sig := <-c
		log := NewFromEnv()
		log.Error().Str("signal", sig.String()).Msg("fatal signal caught")
		log.Error().Msg(string(debug.Stack()))
		os.Exit(128 + int(sig.(syscall.Signal)))
	}()
}
