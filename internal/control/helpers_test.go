package control_test

import (
	"tunedadm/internal/catalog"
	"tunedadm/internal/config"
	"tunedadm/internal/logging"
)

func newCatalog(cfg *config.Config) *catalog.Catalog {
	return catalog.New(cfg.Paths.ProfileDirs, cfg.Paths.MarkerFile, logging.NewNop())
}
