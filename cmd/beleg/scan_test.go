package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beleg/internal/vfs"
)

func TestPrintNode(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"package.toml": "[package]\nname = \"demo\"\n",
		"src/main.bl":  "fn main() {}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(name)), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tree, err := vfs.Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var buf bytes.Buffer
	printNode(&buf, tree, tree.Root(), 0)

	out := buf.String()
	for _, want := range []string{"src/  [Src]", "main.bl  [Main]", "package.toml  [PackageConfig]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("scan output missing %q:\n%s", want, out)
		}
	}
}
