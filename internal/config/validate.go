package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if len(c.Paths.ProfileDirs) == 0 {
		return errors.New("paths.profile_dirs must list at least one directory")
	}
	if strings.ContainsAny(c.Paths.MarkerFile, `/\`) {
		return fmt.Errorf("paths.marker_file must be a bare file name, got %q", c.Paths.MarkerFile)
	}
	if c.Paths.ActiveProfile == "" {
		return errors.New("paths.active_profile must be set")
	}
	if c.Paths.PIDFile == "" {
		return errors.New("paths.pid_file must be set")
	}
	if c.Paths.LockPath != "" && c.Paths.LockPath == c.Paths.ActiveProfile {
		return errors.New("paths.lock_path must differ from paths.active_profile")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
