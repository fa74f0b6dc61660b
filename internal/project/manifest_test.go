package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"beleg/internal/project"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "package.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write package.toml: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `# demo project
[package]
name = "demo"
version = "0.1.0"

[build]
entry = "src/app.bl"
`)
	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Path != path {
		t.Fatalf("Path = %q, want %q", m.Path, path)
	}
	if m.Root != filepath.Dir(path) {
		t.Fatalf("Root = %q, want %q", m.Root, filepath.Dir(path))
	}
	if m.Config.Package.Name != "demo" {
		t.Fatalf("name = %q, want demo", m.Config.Package.Name)
	}
	if m.Config.Package.Version != "0.1.0" {
		t.Fatalf("version = %q, want 0.1.0", m.Config.Package.Version)
	}
	if got := m.EntryPath(); got != "src/app.bl" {
		t.Fatalf("EntryPath = %q, want src/app.bl", got)
	}
}

func TestLoadMinimal(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"tiny\"\n")
	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Version != "" {
		t.Fatalf("version = %q, want empty", m.Config.Package.Version)
	}
	if got := m.EntryPath(); got != project.DefaultEntry {
		t.Fatalf("EntryPath = %q, want %q", got, project.DefaultEntry)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing package section", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "[build]\nentry = \"src/main.bl\"\n")
		if _, err := project.Load(path); !errors.Is(err, project.ErrPackageSectionMissing) {
			t.Fatalf("got %v, want ErrPackageSectionMissing", err)
		}
	})
	t.Run("missing name", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "[package]\nversion = \"1.0.0\"\n")
		if _, err := project.Load(path); !errors.Is(err, project.ErrPackageNameMissing) {
			t.Fatalf("got %v, want ErrPackageNameMissing", err)
		}
	})
	t.Run("blank name", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "[package]\nname = \"  \"\n")
		if _, err := project.Load(path); !errors.Is(err, project.ErrPackageNameMissing) {
			t.Fatalf("got %v, want ErrPackageNameMissing", err)
		}
	})
	t.Run("malformed toml", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "[package\nname = demo\n")
		if _, err := project.Load(path); err == nil {
			t.Fatal("Load of malformed TOML succeeded")
		}
	})
}

func TestFindPackageToml(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "net")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	got, ok, err := project.FindPackageToml(nested)
	if err != nil {
		t.Fatalf("FindPackageToml: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("FindPackageToml = %q, %v; want %q", got, ok, want)
	}

	projectRoot, ok, err := project.FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if !ok || projectRoot != root {
		t.Fatalf("FindProjectRoot = %q, %v; want %q", projectRoot, ok, root)
	}
}

func TestFindPackageTomlAbsent(t *testing.T) {
	_, ok, err := project.FindPackageToml(t.TempDir())
	if err != nil {
		t.Fatalf("FindPackageToml: %v", err)
	}
	if ok {
		t.Fatal("FindPackageToml found a manifest in an empty dir")
	}
}
