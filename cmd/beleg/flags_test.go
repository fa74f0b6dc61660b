package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestReadColorMode(t *testing.T) {
	cases := []struct {
		value string
		want  colorMode
		ok    bool
	}{
		{"auto", colorAuto, true},
		{"", colorAuto, true},
		{"ALWAYS", colorAlways, true},
		{" never ", colorNever, true},
		{"on", "", false},
	}
	for _, tc := range cases {
		cmd := &cobra.Command{Use: "beleg"}
		cmd.PersistentFlags().String("color", tc.value, "")

		got, err := readColorMode(cmd)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("readColorMode(%q) = (%v, %v), want %v", tc.value, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("readColorMode(%q) succeeded with %v", tc.value, got)
		}
	}
}

func TestShouldColor(t *testing.T) {
	if !shouldColor(colorAlways, os.Stdout) {
		t.Error("always must force color on")
	}
	if shouldColor(colorNever, os.Stdout) {
		t.Error("never must force color off")
	}
}

func TestDiagOptionsFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "beleg"}
	cmd.PersistentFlags().Uint32("max-errors", 7, "")
	cmd.PersistentFlags().Uint32("max-warnings", 9, "")

	opts, err := diagOptionsFromFlags(cmd)
	if err != nil {
		t.Fatalf("diagOptionsFromFlags: %v", err)
	}
	if opts.MaxErrors != 7 || opts.MaxWarnings != 9 {
		t.Fatalf("opts = %+v, want MaxErrors 7 and MaxWarnings 9", opts)
	}
}

func TestParseTargetExplicit(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.bl")
	if err := os.WriteFile(file, []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	target, isDir, err := parseTarget([]string{dir})
	if err != nil || !isDir || target != dir {
		t.Fatalf("parseTarget(dir) = (%q, %v, %v)", target, isDir, err)
	}

	target, isDir, err = parseTarget([]string{file})
	if err != nil || isDir || target != file {
		t.Fatalf("parseTarget(file) = (%q, %v, %v)", target, isDir, err)
	}

	if _, _, err := parseTarget([]string{filepath.Join(dir, "absent")}); err == nil {
		t.Fatal("parseTarget of a missing path succeeded")
	}
}

func TestParseTargetProject(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := "[package]\nname = \"demo\"\n"
	if err := os.WriteFile(filepath.Join(root, "package.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(filepath.Join(root, "src"))

	target, isDir, err := parseTarget(nil)
	if err != nil {
		t.Fatalf("parseTarget: %v", err)
	}
	if !isDir {
		t.Fatal("project target must be a directory")
	}
	// Временный каталог может вернуться через симлинки, поэтому
	// сверяем по манифесту, а не по строке пути.
	if _, err := os.Stat(filepath.Join(target, "package.toml")); err != nil {
		t.Fatalf("target %q has no manifest: %v", target, err)
	}
}

func TestParseTargetNoProject(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, _, err := parseTarget(nil); err == nil {
		t.Fatal("parseTarget without a project succeeded")
	}
}
