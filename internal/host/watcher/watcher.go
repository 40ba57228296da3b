// Package watcher follows a runner's debug trace as it grows.
package watcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Follower copies new bytes appended to a file into an output writer.
type Follower struct {
	path   string
	out    io.Writer
	offset int64
}

// NewFollower creates a follower for path that writes to out.
func NewFollower(path string, out io.Writer) *Follower {
	return &Follower{path: path, out: out}
}

// Offset returns how many bytes of the file have been copied.
func (f *Follower) Offset() int64 {
	return f.offset
}

// Drain copies everything past the current offset. A missing file is not an
// error; a file that shrank is read again from the start.
func (f *Follower) Drain() error {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		f.offset = 0
	}
	if info.Size() == f.offset {
		return nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek %s: %w", f.path, err)
	}
	n, err := io.Copy(f.out, file)
	f.offset += n
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return nil
}

// Follow drains the file, then keeps draining on every change until ctx is
// done. The parent directory is watched so the file may be created later.
func (f *Follower) Follow(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsWatcher.Close()

	dir := filepath.Dir(f.path)
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if err := f.Drain(); err != nil {
		return err
	}

	target := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				f.offset = 0
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := f.Drain(); err != nil {
					return err
				}
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
