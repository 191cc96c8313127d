// Package fetch downloads driver archives over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
)

// ErrDownload indicates the HTTP fetch itself failed. The command aborts;
// there are no retries.
var ErrDownload = errors.New("download failed")

// Client performs archive downloads.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// New creates a download client. A nil httpClient uses http.DefaultClient.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, logger: slog.Default()}
}

// Installed reports whether path is an existing executable file.
func Installed(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// Ensure downloads url to archivePath unless binaryPath is already an
// executable file. It returns true when a download happened, so the caller
// knows extraction is needed. An already-installed binary short-circuits
// before any network I/O.
func (c *Client) Ensure(ctx context.Context, url, archivePath, binaryPath string) (bool, error) {
	if Installed(binaryPath) {
		c.logger.Debug("driver binary already installed", "path", binaryPath)
		return false, nil
	}
	if err := c.Download(ctx, url, archivePath); err != nil {
		return false, err
	}
	return true, nil
}

// Download performs an HTTP GET of url and streams the body to dest.
func (c *Client) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}

	c.logger.Debug("downloading archive", "url", url, "dest", dest)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: %s", ErrDownload, url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		// Drop the truncated archive so a later run cannot mistake it
		// for a complete download.
		os.Remove(dest)
		return fmt.Errorf("%w: writing %s: %v", ErrDownload, dest, err)
	}
	return out.Close()
}
