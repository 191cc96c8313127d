// Package proc launches driver binaries as detached background processes
// and tracks them in a small on-disk registry.
package proc

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

const stopTimeout = 2 * time.Second

// Launcher starts and stops driver processes inside a work dir.
type Launcher struct {
	workDir string
	reg     *Registry
	logger  *slog.Logger
}

// NewLauncher creates a launcher that records processes in reg and writes
// per-driver log files under workDir.
func NewLauncher(workDir string, reg *Registry) *Launcher {
	return &Launcher{workDir: workDir, reg: reg, logger: slog.Default()}
}

// Start launches the binary at binPath detached from the terminal, with
// combined output redirected to <name>.log in the work dir. Any recorded
// instance of the same driver is stopped first. Success means the spawn
// call succeeded; the process is not watched afterwards.
func (l *Launcher) Start(name, binPath string, args []string, port int) (Record, error) {
	if err := l.Stop(name); err != nil {
		return Record{}, err
	}

	logPath := filepath.Join(l.workDir, filepath.Base(binPath)+".log")
	logFile, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Record{}, fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(binPath, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	// Own process group: the driver must outlive this invocation and must
	// not receive the terminal's signals.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return Record{}, fmt.Errorf("starting %s: %w", binPath, err)
	}

	rec := Record{
		PID:       cmd.Process.Pid,
		Command:   binPath,
		LogPath:   logPath,
		Port:      port,
		StartedAt: time.Now().Unix(),
	}
	if err := l.reg.Set(name, rec); err != nil {
		return rec, fmt.Errorf("recording %s process: %w", name, err)
	}

	// Detach: the child is reparented once we exit and is never waited on.
	_ = cmd.Process.Release()

	l.logger.Debug("driver started", "driver", name, "pid", rec.PID, "log", logPath)
	return rec, nil
}

// Stop terminates the recorded process for name, if it is still alive, and
// drops its record. A missing or dead process is not an error.
func (l *Launcher) Stop(name string) error {
	rec, ok, err := l.reg.Get(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if !rec.Alive() {
		return l.reg.Remove(name)
	}

	// SIGTERM the whole group, escalate to SIGKILL after the timeout.
	_ = unix.Kill(-rec.PID, unix.SIGTERM)

	deadline := time.Now().Add(stopTimeout)
	for time.Now().Before(deadline) {
		if !rec.Alive() {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if rec.Alive() {
		_ = unix.Kill(-rec.PID, unix.SIGKILL)
	}

	l.logger.Debug("driver stopped", "driver", name, "pid", rec.PID)
	return l.reg.Remove(name)
}
