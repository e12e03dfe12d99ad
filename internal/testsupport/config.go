package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tunedadm/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose every path lives under a fresh temp
// directory: two profile layers, the active-profile record, the pid-file,
// and the admin lock. Layer directories are created; nothing else is.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProfileDirs = []string{
		filepath.Join(base, "usr", "lib", "tuned"),
		filepath.Join(base, "etc", "tuned"),
	}
	cfgVal.Paths.ActiveProfile = filepath.Join(base, "etc", "tuned", "active_profile")
	cfgVal.Paths.PIDFile = filepath.Join(base, "run", "tuned", "tuned.pid")
	cfgVal.Paths.LockPath = filepath.Join(base, "run", "tuned", "tuned-adm.lock")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, dir := range append([]string{filepath.Dir(cfgVal.Paths.PIDFile)}, cfgVal.Paths.ProfileDirs...) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithProfiles creates marker-bearing profile directories in the given layer.
func WithProfiles(layer int, names ...string) ConfigOption {
	return func(b *configBuilder) {
		if layer < 0 || layer >= len(b.cfg.Paths.ProfileDirs) {
			b.t.Fatalf("layer %d out of range", layer)
		}
		for _, name := range names {
			WriteProfile(b.t, b.cfg.Paths.ProfileDirs[layer], name, b.cfg.Paths.MarkerFile)
		}
	}
}

// WithoutLock disables the admin lock.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LockPath = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(filepath.Dir(cfg.Paths.PIDFile)))
}
