package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunedadm/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be reported absent")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, missing)
	}

	want := config.Default()
	if strings.Join(cfg.Paths.ProfileDirs, ",") != strings.Join(want.Paths.ProfileDirs, ",") {
		t.Fatalf("unexpected profile dirs: %v", cfg.Paths.ProfileDirs)
	}
	if cfg.Paths.MarkerFile != "tuned.conf" {
		t.Fatalf("unexpected marker file: %q", cfg.Paths.MarkerFile)
	}
	if cfg.Paths.ActiveProfile != "/etc/tuned/active_profile" {
		t.Fatalf("unexpected active profile path: %q", cfg.Paths.ActiveProfile)
	}
	if cfg.Paths.PIDFile != "/run/tuned/tuned.pid" {
		t.Fatalf("unexpected pid file: %q", cfg.Paths.PIDFile)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPathNormalizesValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tuned-adm.toml")
	content := `
[paths]
profile_dirs = ["` + dir + `/vendor/", " ` + dir + `/vendor ", "` + dir + `/override", ""]
marker_file = "  profile.conf "
active_profile = "` + dir + `/state/../state/active_profile"
pid_file = "` + dir + `/tuned.pid"
lock_path = ""

[logging]
format = "JSON"
level = " Debug "
output_paths = ["stderr", " ", "` + dir + `/logs/../logs/tuned-adm.log"]
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected %s to be loaded, got %q exists=%v", configPath, resolved, exists)
	}

	wantDirs := []string{filepath.Join(dir, "vendor"), filepath.Join(dir, "override")}
	if strings.Join(cfg.Paths.ProfileDirs, ",") != strings.Join(wantDirs, ",") {
		t.Fatalf("unexpected profile dirs: got %v want %v", cfg.Paths.ProfileDirs, wantDirs)
	}
	if cfg.Paths.MarkerFile != "profile.conf" {
		t.Fatalf("unexpected marker file: %q", cfg.Paths.MarkerFile)
	}
	if cfg.Paths.ActiveProfile != filepath.Join(dir, "state", "active_profile") {
		t.Fatalf("unexpected active profile path: %q", cfg.Paths.ActiveProfile)
	}
	if cfg.Paths.LockPath != "" {
		t.Fatalf("expected empty lock path to disable locking, got %q", cfg.Paths.LockPath)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	wantOutputs := []string{"stderr", filepath.Join(dir, "logs", "tuned-adm.log")}
	if strings.Join(cfg.Logging.OutputPaths, ",") != strings.Join(wantOutputs, ",") {
		t.Fatalf("unexpected output paths: got %v want %v", cfg.Logging.OutputPaths, wantOutputs)
	}
}

func TestLoadHonoursEnvironmentPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\npid_file = \"/tmp/other.pid\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.ConfigPathEnv, configPath)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected env config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.PIDFile != "/tmp/other.pid" {
		t.Fatalf("unexpected pid file: %q", cfg.Paths.PIDFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown key",
			content: "[paths]\nprofile_directory = \"/x\"\n",
			want:    "parse config",
		},
		{
			name:    "no layers",
			content: "[paths]\nprofile_dirs = []\n",
			want:    "paths.profile_dirs",
		},
		{
			name:    "marker with separator",
			content: "[paths]\nmarker_file = \"sub/tuned.conf\"\n",
			want:    "paths.marker_file",
		},
		{
			name:    "bad level",
			content: "[logging]\nlevel = \"loud\"\n",
			want:    "logging.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to mention %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleLoadsCleanly(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "tuned-adm.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if len(cfg.Paths.ProfileDirs) != 2 {
		t.Fatalf("expected two profile layers in sample, got %v", cfg.Paths.ProfileDirs)
	}
}
