package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunedadm/internal/config"
	"tunedadm/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	signaler   *testsupport.RecordingSignaler
	euid       int
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t,
		testsupport.WithProfiles(0, "balanced", "custom"),
		testsupport.WithProfiles(1, "powersave"),
	)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "tuned-adm.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		signaler:   &testsupport.RecordingSignaler{},
	}
}

func (env *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return env.runContext(t, context.Background(), args...)
}

func (env *cliTestEnv) runContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	euid := env.euid
	cmd := newRootCommand(withEUID(func() int { return euid }), withSignaler(env.signaler))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	quoted := make([]string, len(cfg.Paths.ProfileDirs))
	for i, dir := range cfg.Paths.ProfileDirs {
		quoted[i] = fmt.Sprintf("%q", dir)
	}
	content := fmt.Sprintf(
		"[paths]\nprofile_dirs = [%s]\nactive_profile = %q\npid_file = %q\nlock_path = %q\n",
		strings.Join(quoted, ", "),
		cfg.Paths.ActiveProfile,
		cfg.Paths.PIDFile,
		cfg.Paths.LockPath,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
