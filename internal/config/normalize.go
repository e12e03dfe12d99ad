package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	dirs := make([]string, 0, len(c.Paths.ProfileDirs))
	seen := make(map[string]struct{}, len(c.Paths.ProfileDirs))
	for i, dir := range c.Paths.ProfileDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("paths.profile_dirs[%d]: %w", i, err)
		}
		if _, exists := seen[expanded]; exists {
			continue
		}
		seen[expanded] = struct{}{}
		dirs = append(dirs, expanded)
	}
	c.Paths.ProfileDirs = dirs

	c.Paths.MarkerFile = strings.TrimSpace(c.Paths.MarkerFile)
	if c.Paths.MarkerFile == "" {
		c.Paths.MarkerFile = defaultMarkerFile
	}

	var err error
	if c.Paths.ActiveProfile, err = expandPath(strings.TrimSpace(c.Paths.ActiveProfile)); err != nil {
		return fmt.Errorf("paths.active_profile: %w", err)
	}
	if c.Paths.PIDFile, err = expandPath(strings.TrimSpace(c.Paths.PIDFile)); err != nil {
		return fmt.Errorf("paths.pid_file: %w", err)
	}
	if c.Paths.LockPath, err = expandPath(strings.TrimSpace(c.Paths.LockPath)); err != nil {
		return fmt.Errorf("paths.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format != "json" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := make([]string, 0, len(c.Logging.OutputPaths))
	for i, output := range c.Logging.OutputPaths {
		output = strings.TrimSpace(output)
		switch output {
		case "":
			continue
		case "stdout", "stderr":
			outputs = append(outputs, output)
			continue
		}
		expanded, err := expandPath(output)
		if err != nil {
			return fmt.Errorf("logging.output_paths[%d]: %w", i, err)
		}
		outputs = append(outputs, expanded)
	}
	c.Logging.OutputPaths = outputs
	return nil
}
