// Package browser locates a locally installed Chrome/Chromium binary and
// reads its version string.
package browser

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// chromePaths are the candidate Chrome locations, probed in order.
// The first executable file wins.
var chromePaths = []string{
	"/usr/bin/google-chrome-stable",
	"/usr/bin/google-chrome",
}

// FindChrome returns the path of the installed Chrome binary, or "" when
// none of the candidate paths is an executable file.
func FindChrome() string {
	return firstExecutable(chromePaths)
}

func firstExecutable(candidates []string) string {
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0111 == 0 {
			continue
		}
		return path
	}
	return ""
}

// Version runs the browser binary with --version and returns its trimmed
// output, e.g. "Google Chrome 114.0.5735.90".
func Version(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// DetectChromeVersion locates Chrome and reads its version in one step.
// A missing browser or a failing version probe yields "" rather than an
// error: the caller degrades to an unresolvable download URL downstream.
func DetectChromeVersion(ctx context.Context) string {
	path := FindChrome()
	if path == "" {
		slog.Debug("no chrome binary found", "candidates", chromePaths)
		return ""
	}
	v, err := Version(ctx, path)
	if err != nil {
		slog.Debug("chrome version probe failed", "path", path, "error", err)
		return ""
	}
	return v
}
