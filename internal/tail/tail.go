// Package tail reads and follows driver log files.
package tail

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// LastLines returns up to n trailing lines of the file at path.
func LastLines(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Follow streams data appended to path into w until ctx is cancelled or the
// file is removed. It starts from the current end of file; callers print
// history via LastLines first.
func Follow(ctx context.Context, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}

			info, err := f.Stat()
			if err != nil {
				return err
			}
			if info.Size() < offset {
				// Truncated (driver restarted): start over.
				offset = 0
				if _, err := f.Seek(0, io.SeekStart); err != nil {
					return err
				}
			}

			n, err := io.Copy(w, f)
			if err != nil {
				return err
			}
			offset += n

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
