// Package archive extracts downloaded driver archives into the work dir.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported indicates the archive suffix is not one of the formats the
// upstream driver hosts ship.
var ErrUnsupported = errors.New("unsupported archive format")

// Extract unpacks the archive at path into destDir, dispatching on the file
// suffix. Existing files are overwritten. Entries that would escape destDir
// are rejected.
func Extract(path, destDir string) error {
	switch {
	case strings.HasSuffix(path, ".tgz"), strings.HasSuffix(path, ".tar.gz"):
		return untar(path, destDir)
	case strings.HasSuffix(path, ".zip"):
		return unzip(path, destDir)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

// securePath joins name under destDir, rejecting traversal entries.
func securePath(destDir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("archive entry escapes destination: %q", name)
	}
	return filepath.Join(destDir, name), nil
}

func untar(path, destDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		target, err := securePath(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		default:
			// Symlinks and devices never appear in driver tarballs; skip.
		}
	}
}

func unzip(path, destDir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer r.Close()

	for _, entry := range r.File {
		target, err := securePath(destDir, entry.Name)
		if err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		err = writeFile(target, src, entry.Mode().Perm())
		src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(target string, src io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
