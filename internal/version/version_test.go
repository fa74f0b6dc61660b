package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version must have a default")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q does not look like a semantic version", Version)
	}
}

func TestColored(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	origVersion := Version
	defer func() {
		color.NoColor = origNoColor
		Version = origVersion
	}()

	Version = "1.2.3-rc.1"
	if got := Colored(); got != "1.2.3-rc.1" {
		t.Errorf("Colored() = %q, want the components back unchanged", got)
	}

	Version = "dev"
	if got := Colored(); got != "dev" {
		t.Errorf("Colored() = %q, want non-semver strings untouched", got)
	}
}
