// Package vfs holds the scanned shape of a Beleg project: directories
// and files classified by their role (src/, tests/, main.bl, mod.bl,
// package.toml). Nodes live in one flat slice addressed by NodeID; a
// file node lazily carries the source.FileID and parsed ast.Ast that
// the driver attaches. The VFS never inspects file contents.
package vfs

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"beleg/internal/ast"
	"beleg/internal/source"
)

var (
	// ErrPathNotFound — корень сканирования не существует
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotDirectory — корень сканирования не каталог
	ErrNotDirectory = errors.New("path is not a directory")
)

// Tree is the scanned project tree.
type Tree struct {
	nodes    []Node
	rootPath string
	root     NodeID
}

// Scan walks the directory at rootPath and builds the tree. Entries
// are visited in name order, so node IDs are deterministic for a given
// directory layout. Symlinks and other non-regular entries are skipped.
func Scan(rootPath string) (*Tree, error) {
	info, err := os.Stat(rootPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, rootPath)
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, rootPath)
	}

	t := &Tree{rootPath: rootPath}
	// Корень проекта считается Src-каталогом
	t.root = t.addNode(Node{
		Name:   filepath.Base(rootPath),
		parent: InvalidNode,
		dir:    &Dir{Kind: DirSrc},
	})
	if err := t.scanDir(rootPath, "", t.root); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) scanDir(dirPath, relPath string, parent NodeID) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := path.Join(relPath, name)

		switch {
		case entry.IsDir():
			id := t.addNode(Node{
				Name:   name,
				parent: parent,
				dir:    &Dir{Kind: dirKindFor(entryRel)},
			})
			t.nodes[parent].dir.Children = append(t.nodes[parent].dir.Children, id)
			if err := t.scanDir(filepath.Join(dirPath, name), entryRel, id); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			id := t.addNode(Node{
				Name:   name,
				parent: parent,
				file:   &File{Kind: fileKindFor(name, entryRel)},
			})
			t.nodes[parent].dir.Children = append(t.nodes[parent].dir.Children, id)
		}
	}
	return nil
}

func (t *Tree) addNode(n Node) NodeID {
	id, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("vfs node count overflow: %w", err))
	}
	t.nodes = append(t.nodes, n)
	return NodeID(id)
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the node count.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for an ID, or nil when out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id == InvalidNode || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Children returns a directory's child IDs in scan order.
func (t *Tree) Children(id NodeID) ([]NodeID, bool) {
	n := t.Node(id)
	if n == nil || n.Kind() != NodeDir {
		return nil, false
	}
	return n.dir.Children, true
}

// Resolve walks a slash-separated path relative to the root. The empty
// path resolves to the root itself.
func (t *Tree) Resolve(relPath string) (NodeID, bool) {
	current := t.root
	for _, component := range strings.Split(relPath, "/") {
		if component == "" {
			continue
		}
		n := t.Node(current)
		if n == nil || n.Kind() != NodeDir {
			return InvalidNode, false
		}
		next := InvalidNode
		for _, childID := range n.dir.Children {
			if child := t.Node(childID); child != nil && child.Name == component {
				next = childID
				break
			}
		}
		if next == InvalidNode {
			return InvalidNode, false
		}
		current = next
	}
	return current, true
}

// EntryFile returns the entry file of a directory: main.bl for the Src
// kind, mod.bl for Normal. Other directory kinds have no entry.
func (t *Tree) EntryFile(dirID NodeID) (NodeID, bool) {
	n := t.Node(dirID)
	if n == nil || n.Kind() != NodeDir {
		return InvalidNode, false
	}

	var entryName string
	switch n.dir.Kind {
	case DirSrc:
		entryName = "main.bl"
	case DirNormal:
		entryName = "mod.bl"
	default:
		return InvalidNode, false
	}

	for _, childID := range n.dir.Children {
		child := t.Node(childID)
		if child != nil && child.Kind() == NodeFile && child.Name == entryName {
			return childID, true
		}
	}
	return InvalidNode, false
}

// ProjectPath returns the slash-separated path of a node relative to
// the project root. The root itself has the empty project path.
func (t *Tree) ProjectPath(id NodeID) (string, bool) {
	n := t.Node(id)
	if n == nil {
		return "", false
	}

	var components []string
	for n != nil && n.parent != InvalidNode {
		components = append(components, n.Name)
		n = t.Node(n.parent)
	}
	// Компоненты собраны от листа к корню
	for i, j := 0, len(components)-1; i < j; i, j = i+1, j-1 {
		components[i], components[j] = components[j], components[i]
	}
	return path.Join(components...), true
}

// AbsolutePath returns the filesystem path of a node.
func (t *Tree) AbsolutePath(id NodeID) (string, bool) {
	rel, ok := t.ProjectPath(id)
	if !ok {
		return "", false
	}
	return filepath.Join(t.rootPath, filepath.FromSlash(rel)), true
}

// SetSource attaches a SourceMap file ID to a file node.
func (t *Tree) SetSource(id NodeID, fileID source.FileID) bool {
	n := t.Node(id)
	if n == nil || n.Kind() != NodeFile {
		return false
	}
	n.file.sourceID = fileID
	n.file.hasSource = true
	return true
}

// SourceID returns the attached SourceMap file ID.
func (t *Tree) SourceID(id NodeID) (source.FileID, bool) {
	n := t.Node(id)
	if n == nil || n.Kind() != NodeFile || !n.file.hasSource {
		return 0, false
	}
	return n.file.sourceID, true
}

// SetAst attaches a parsed tree to a file node.
func (t *Tree) SetAst(id NodeID, tree *ast.Ast) bool {
	n := t.Node(id)
	if n == nil || n.Kind() != NodeFile {
		return false
	}
	n.file.tree = tree
	return true
}

// Ast returns the attached parse tree.
func (t *Tree) Ast(id NodeID) (*ast.Ast, bool) {
	n := t.Node(id)
	if n == nil || n.Kind() != NodeFile || n.file.tree == nil {
		return nil, false
	}
	return n.file.tree, true
}

// IsBelegSourceFile reports whether name has a Beleg source extension.
func IsBelegSourceFile(name string) bool {
	ext := path.Ext(name)
	return ext == ".bl" || ext == ".beleg"
}

// fileKindFor classifies a file by its name and project-relative path.
func fileKindFor(name, relPath string) FileKind {
	parent := path.Dir(relPath)
	switch {
	case name == "package.toml" && parent == ".":
		return FilePackageConfig
	case name == "main.bl" && parent == "src":
		return FileMain
	case name == "mod.bl":
		return FileMod
	case IsBelegSourceFile(name):
		return FileNormal
	}
	return FileOther
}

// dirKindFor classifies a directory by its project-relative path.
// Только каталоги первого уровня получают особые виды.
func dirKindFor(relPath string) DirKind {
	switch relPath {
	case "src":
		return DirSrc
	case "build":
		return DirBuild
	case "examples":
		return DirExamples
	case "tests":
		return DirTests
	case "docs":
		return DirDocs
	}
	return DirNormal
}
