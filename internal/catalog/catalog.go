// Package catalog discovers the profiles available across layered profile
// directories.
//
// A profile is an immediate subdirectory of a layer that contains the marker
// file. Layers are merged by name: a profile present in several layers is one
// logical profile. A layer that does not exist contributes nothing; a layer
// that exists but cannot be read is reported as a ScanError and otherwise
// treated the same way.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"tunedadm/internal/logging"
)

// Entry is one selectable profile together with the layers that provide it.
type Entry struct {
	Name    string
	Sources []string
}

// ScanError reports a layer that exists but could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan profile directory %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Catalog lists profiles from an ordered set of layer directories.
type Catalog struct {
	layers []string
	marker string
	logger *slog.Logger
}

// New builds a catalog over layers, in search order, recognising profiles by marker.
func New(layers []string, marker string, logger *slog.Logger) *Catalog {
	return &Catalog{
		layers: append([]string(nil), layers...),
		marker: marker,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Scan walks every layer and returns the merged entries sorted by name along
// with the classified errors of layers that could not be read.
func (c *Catalog) Scan() ([]Entry, []*ScanError) {
	sources := make(map[string][]string)
	var scanErrs []*ScanError

	for _, layer := range c.layers {
		names, err := c.scanLayer(layer)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.logger.Debug("profile directory missing", logging.String(logging.FieldPath, layer))
				continue
			}
			scanErr := &ScanError{Dir: layer, Err: err}
			c.logger.Warn("profile directory unreadable; skipping", logging.String(logging.FieldPath, layer), logging.Error(err))
			scanErrs = append(scanErrs, scanErr)
			continue
		}
		for _, name := range names {
			sources[name] = append(sources[name], layer)
		}
	}

	entries := make([]Entry, 0, len(sources))
	for name, dirs := range sources {
		entries = append(entries, Entry{Name: name, Sources: dirs})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, scanErrs
}

func (c *Catalog) scanLayer(layer string) ([]string, error) {
	dirEntries, err := os.ReadDir(layer)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		markerPath := filepath.Join(layer, entry.Name(), c.marker)
		info, err := os.Stat(markerPath)
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Entries returns every profile with the layers providing it, sorted by name.
func (c *Catalog) Entries() []Entry {
	entries, _ := c.Scan()
	return entries
}

// List returns the sorted, deduplicated profile names.
func (c *Catalog) List() []string {
	entries := c.Entries()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}

// Exists reports whether name is a selectable profile.
func (c *Catalog) Exists(name string) bool {
	names := c.List()
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name
}
