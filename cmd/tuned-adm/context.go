package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tunedadm/internal/activeprofile"
	"tunedadm/internal/catalog"
	"tunedadm/internal/config"
	"tunedadm/internal/control"
	"tunedadm/internal/daemonctl"
	"tunedadm/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	euid     func() int
	signaler daemonctl.Signaler

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger writes diagnostics to the command's error stream so regular output
// stays parseable.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	var override string
	if c.verbose != nil && *c.verbose {
		override = "debug"
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr(), override)
}

func (c *commandContext) controller(cmd *cobra.Command) (*control.Controller, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}

	daemonOpts := []daemonctl.Option{daemonctl.WithLogger(logger)}
	if c.signaler != nil {
		daemonOpts = append(daemonOpts, daemonctl.WithSignaler(c.signaler))
	}
	return control.New(control.Options{
		Catalog:  catalog.New(cfg.Paths.ProfileDirs, cfg.Paths.MarkerFile, logger),
		Store:    activeprofile.New(cfg.Paths.ActiveProfile, logger),
		Daemon:   daemonctl.New(cfg.Paths.PIDFile, daemonOpts...),
		LockPath: cfg.Paths.LockPath,
		EUID:     c.euid,
		Logger:   logger,
	}), nil
}

func (c *commandContext) store(cmd *cobra.Command) (*activeprofile.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	return activeprofile.New(cfg.Paths.ActiveProfile, logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
