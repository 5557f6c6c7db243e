package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindManifest_WalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "")

	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if found != path {
		t.Errorf("found %q, want %q", found, path)
	}
}

func TestFindManifest_NotFound(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("unexpected manifest")
	}
}

func TestLoad_FullManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "gallery"

[check]
ignore-unknown-types = true
check-script-bindings = true
jobs = 4
max-diagnostics = 64
import-dirs = ["components", "/opt/qml"]
`)

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	if m.Config.Package.Name != "gallery" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}

	check := m.Config.Check
	if !check.IgnoreUnknownTypes || !check.CheckScriptBindings || check.Jobs != 4 || check.MaxDiagnostics != 64 {
		t.Errorf("check = %+v", check)
	}

	want := []string{filepath.Join(root, "components"), "/opt/qml"}
	if got := m.ImportDirs(); !reflect.DeepEqual(got, want) {
		t.Errorf("ImportDirs() = %v, want %v", got, want)
	}
}

func TestLoad_NoManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || m != nil {
		t.Errorf("expected no manifest, got %+v", m)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing package name", "[package]\n"},
		{"empty package name", "[package]\nname = \"  \"\n"},
		{"negative jobs", "[check]\njobs = -1\n"},
		{"negative max-diagnostics", "[check]\nmax-diagnostics = -5\n"},
		{"broken toml", "[check\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeManifest(t, root, tc.content)
			if _, _, err := Load(root); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_CheckSectionOptional(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Check.Jobs != 0 || len(m.ImportDirs()) != 0 {
		t.Errorf("check defaults = %+v", m.Config.Check)
	}
}
