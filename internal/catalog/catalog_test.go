package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"tunedadm/internal/catalog"
	"tunedadm/internal/logging"
	"tunedadm/internal/testsupport"
)

const marker = "tuned.conf"

func TestListMergesLayersSorted(t *testing.T) {
	base := t.TempDir()
	vendor := filepath.Join(base, "vendor")
	override := filepath.Join(base, "override")

	testsupport.WriteProfile(t, vendor, "custom", marker)
	testsupport.WriteProfile(t, vendor, "balanced", marker)
	testsupport.WriteProfile(t, override, "powersave", marker)

	for _, layers := range [][]string{{vendor, override}, {override, vendor}} {
		cat := catalog.New(layers, marker, logging.NewNop())
		got := strings.Join(cat.List(), ",")
		if got != "balanced,custom,powersave" {
			t.Fatalf("layers %v: got %q", layers, got)
		}
	}
}

func TestListRequiresMarkerInImmediateSubdirectory(t *testing.T) {
	layer := t.TempDir()

	testsupport.WriteProfile(t, layer, "good", marker)
	testsupport.WriteFile(t, filepath.Join(layer, "nomarker", "other.conf"), "x")
	testsupport.WriteFile(t, filepath.Join(layer, "nested", "deeper", marker), "x")
	testsupport.WriteFile(t, filepath.Join(layer, "plainfile"), "x")
	if err := os.MkdirAll(filepath.Join(layer, "markerdir", marker), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cat := catalog.New([]string{layer}, marker, logging.NewNop())
	if got := strings.Join(cat.List(), ","); got != "good" {
		t.Fatalf("expected only the marker-bearing profile, got %q", got)
	}
}

func TestListDeduplicatesAndRecordsSources(t *testing.T) {
	base := t.TempDir()
	vendor := filepath.Join(base, "vendor")
	override := filepath.Join(base, "override")
	testsupport.WriteProfile(t, vendor, "balanced", marker)
	testsupport.WriteProfile(t, override, "balanced", marker)
	testsupport.WriteProfile(t, override, "latency", marker)

	cat := catalog.New([]string{vendor, override}, marker, logging.NewNop())
	entries := cat.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[0].Name != "balanced" || len(entries[0].Sources) != 2 {
		t.Fatalf("expected balanced from both layers, got %+v", entries[0])
	}
	if entries[0].Sources[0] != vendor || entries[0].Sources[1] != override {
		t.Fatalf("expected sources in layer order, got %v", entries[0].Sources)
	}
	if entries[1].Name != "latency" || len(entries[1].Sources) != 1 {
		t.Fatalf("unexpected latency entry: %+v", entries[1])
	}
}

func TestScanToleratesMissingAndUnreadableLayers(t *testing.T) {
	base := t.TempDir()
	good := filepath.Join(base, "good")
	missing := filepath.Join(base, "missing")
	notDir := filepath.Join(base, "file-layer")
	testsupport.WriteProfile(t, good, "balanced", marker)
	testsupport.WriteFile(t, notDir, "not a directory")

	cat := catalog.New([]string{missing, notDir, good}, marker, logging.NewNop())
	entries, scanErrs := cat.Scan()

	if len(entries) != 1 || entries[0].Name != "balanced" {
		t.Fatalf("expected the readable layer to contribute, got %+v", entries)
	}
	if len(scanErrs) != 1 {
		t.Fatalf("expected one classified scan error (missing layers are silent), got %v", scanErrs)
	}
	if scanErrs[0].Dir != notDir {
		t.Fatalf("unexpected scan error dir: %q", scanErrs[0].Dir)
	}
	if !errors.Is(scanErrs[0], syscall.ENOTDIR) {
		t.Fatalf("expected ENOTDIR to be unwrapped, got %v", scanErrs[0].Err)
	}
}

func TestScanReportsPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	layer := filepath.Join(t.TempDir(), "locked")
	testsupport.WriteProfile(t, layer, "balanced", marker)
	if err := os.Chmod(layer, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(layer, 0o755) })

	cat := catalog.New([]string{layer}, marker, logging.NewNop())
	entries, scanErrs := cat.Scan()
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
	if len(scanErrs) != 1 || !errors.Is(scanErrs[0], os.ErrPermission) {
		t.Fatalf("expected permission scan error, got %v", scanErrs)
	}
}

func TestExists(t *testing.T) {
	layer := t.TempDir()
	testsupport.WriteProfile(t, layer, "balanced", marker)
	testsupport.WriteProfile(t, layer, "virtual-guest", marker)

	cat := catalog.New([]string{layer}, marker, logging.NewNop())
	tests := []struct {
		name string
		want bool
	}{
		{"balanced", true},
		{"virtual-guest", true},
		{"virtual", false},
		{"", false},
		{"../balanced", false},
	}
	for _, tc := range tests {
		if got := cat.Exists(tc.name); got != tc.want {
			t.Errorf("Exists(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEmptyCatalog(t *testing.T) {
	cat := catalog.New([]string{filepath.Join(t.TempDir(), "nothing")}, marker, logging.NewNop())
	if got := cat.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
