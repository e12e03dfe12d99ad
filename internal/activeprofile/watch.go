package activeprofile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"tunedadm/internal/logging"
)

// Watch calls fn with the current record and again every time it changes,
// until ctx is done. The record's directory is watched rather than the file
// so atomic replacements and re-creation are observed.
func (s *Store) Watch(ctx context.Context, fn func(names []string, ok bool)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	last, lastOK := s.Read()
	fn(last, lastOK)

	filename := filepath.Base(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			names, present := s.Read()
			if present == lastOK && Format(names) == Format(last) {
				continue
			}
			last, lastOK = names, present
			fn(names, present)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("active profile watcher error", logging.Error(err))
		}
	}
}
