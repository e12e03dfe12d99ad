package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteProfile creates layer/name/marker so that name is a valid profile.
func WriteProfile(t testing.TB, layer, name, marker string) {
	t.Helper()
	WriteFile(t, filepath.Join(layer, name, marker), "[main]\nsummary="+name+"\n")
}

// ReadFile returns the content of path, or "" with ok=false if it does not exist.
func ReadFile(t testing.TB, path string) (string, bool) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false
		}
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data), true
}
