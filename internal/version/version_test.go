package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q does not look semantic", Version)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	// Simulates build-time ldflags.
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestColored_PlainWhenDisabled(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	if got := Colored(); got != Version {
		t.Errorf("Colored() = %q, want %q with color disabled", got, Version)
	}
}
