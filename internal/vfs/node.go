package vfs

import (
	"beleg/internal/ast"
	"beleg/internal/source"
)

// NodeID addresses a node inside a Tree. IDs are dense indices assigned
// in scan order.
type NodeID uint32

// InvalidNode marks the absence of a node (e.g. the root's parent).
const InvalidNode NodeID = ^NodeID(0)

// Dir is the payload of a directory node.
type Dir struct {
	Kind     DirKind
	Children []NodeID
}

// File is the payload of a file node. The source ID and the parsed tree
// are attached lazily by the driver; the VFS only holds them.
type File struct {
	Kind FileKind

	sourceID  source.FileID
	hasSource bool
	tree      *ast.Ast
}

// Node is one entry of the scanned tree: a name plus exactly one of the
// directory or file payloads.
type Node struct {
	Name   string
	parent NodeID

	dir  *Dir
	file *File
}

// Kind reports which payload the node carries.
func (n *Node) Kind() NodeKind {
	if n.dir != nil {
		return NodeDir
	}
	return NodeFile
}

// Dir returns the directory payload, or nil for file nodes.
func (n *Node) Dir() *Dir { return n.dir }

// File returns the file payload, or nil for directory nodes.
func (n *Node) File() *File { return n.file }

// Parent returns the parent ID, or InvalidNode for the root.
func (n *Node) Parent() NodeID { return n.parent }
