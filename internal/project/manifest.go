// Package project locates and loads the qmlcheck.toml manifest that
// configures a check run for a source tree.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up from the start directory upwards.
const ManifestName = "qmlcheck.toml"

// Manifest is a loaded qmlcheck.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest file.
type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig carries per-project checker defaults; command line flags
// override them.
type CheckConfig struct {
	IgnoreUnknownTypes  bool     `toml:"ignore-unknown-types"`
	CheckScriptBindings bool     `toml:"check-script-bindings"`
	Jobs                int      `toml:"jobs"`
	MaxDiagnostics      int      `toml:"max-diagnostics"`
	ImportDirs          []string `toml:"import-dirs"`
}

// FindManifest walks up from startDir to locate qmlcheck.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the manifest governing startDir. The second
// return value reports whether a manifest exists at all.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := parseConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func parseConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("package") {
		if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
			return Config{}, fmt.Errorf("%s: missing [package].name", path)
		}
	}
	if cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [check].max-diagnostics must not be negative", path)
	}
	return cfg, nil
}

// ImportDirs returns the configured import directories resolved against
// the manifest root. Components exported by documents in these
// directories join the snapshot of every check.
func (m *Manifest) ImportDirs() []string {
	if m == nil {
		return nil
	}
	dirs := make([]string, 0, len(m.Config.Check.ImportDirs))
	for _, dir := range m.Config.Check.ImportDirs {
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Root, filepath.FromSlash(dir))
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
