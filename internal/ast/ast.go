// Package ast stores syntax trees in a flattened arena.
//
// One Ast owns four parallel slices: node kinds, node spans, per-node
// children offsets, and a single shared children buffer. A node is a
// dense NodeIndex into the parallel slices; index 0 is reserved as the
// invalid node, so NodeIndex values double as optional references.
//
// A node's child slots occupy the window [childrenStart[i],
// childrenStart[i+1]) of the children buffer. A slot is either a direct
// NodeIndex or, for variable-arity shapes, a reference to a
// length-prefixed group written into the buffer before the node's own
// slots. The arena is append-only and trivially serializable.
package ast

import (
	"fmt"

	"fortio.org/safecast"

	"beleg/internal/source"
)

// Ast is one flattened syntax tree.
type Ast struct {
	kinds         []NodeKind
	spans         []source.Span
	childrenStart []NodeIndex

	// общий буфер дочерних гнёзд
	children []NodeIndex

	root NodeIndex
}

// New creates an empty tree with the reserved invalid node at index 0.
func New() *Ast {
	return &Ast{
		kinds:         []NodeKind{NodeInvalid},
		spans:         []source.Span{{}},
		childrenStart: []NodeIndex{0},
		children:      []NodeIndex{0},
		root:          NoNode,
	}
}

func u32len[T any](s []T) uint32 {
	v, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("arena length overflow: %w", err))
	}
	return v
}

// AddNode flattens the builder into the arena and returns the new
// node's index. Group slots are serialized first (count, then the
// indices); the node's own slot window starts after them and holds one
// cell per child slot, where a group slot stores the buffer position
// of its count cell.
func (a *Ast) AddNode(b *NodeBuilder) NodeIndex {
	childSlots := make([]NodeIndex, 0, len(b.children))
	for _, child := range b.children {
		if child.IsSingle() {
			childSlots = append(childSlots, child.AsSingle())
			continue
		}
		group := child.AsMultiple()
		lenIndex := NodeIndex(u32len(a.children))
		a.children = append(a.children, NodeIndex(u32len(group)))
		a.children = append(a.children, group...)
		childSlots = append(childSlots, lenIndex)
	}

	nodeIndex := NodeIndex(u32len(a.kinds))
	childrenStartPos := NodeIndex(u32len(a.children))

	a.children = append(a.children, childSlots...)

	a.kinds = append(a.kinds, b.kind)
	a.spans = append(a.spans, b.span)
	a.childrenStart = append(a.childrenStart, childrenStartPos)

	return nodeIndex
}

// Kind returns the node's kind, or false for index 0 and out-of-range
// indices.
func (a *Ast) Kind(i NodeIndex) (NodeKind, bool) {
	if i == NoNode || uint32(i) >= u32len(a.kinds) {
		return NodeInvalid, false
	}
	return a.kinds[i], true
}

// Span returns the node's span, or false for index 0 and out-of-range
// indices.
func (a *Ast) Span(i NodeIndex) (source.Span, bool) {
	if i == NoNode || uint32(i) >= u32len(a.kinds) {
		return source.Span{}, false
	}
	return a.spans[i], true
}

// Node returns the kind, span and raw child window in one lookup.
func (a *Ast) Node(i NodeIndex) (NodeKind, source.Span, []NodeIndex, bool) {
	if i == NoNode || uint32(i) >= u32len(a.kinds) {
		return NodeInvalid, source.Span{}, nil, false
	}
	return a.kinds[i], a.spans[i], a.Children(i), true
}

// Children returns the node's raw slot window in the children buffer.
// For the most recently added node the window runs to the end of the
// buffer and may over-approximate: when the NEXT node serializes group
// slots, those cells precede its own window and land inside this one.
// Consumers destructure the window through the node's Shape, which
// bounds how many cells are meaningful.
func (a *Ast) Children(i NodeIndex) []NodeIndex {
	if i == NoNode || uint32(i) >= u32len(a.kinds) {
		return nil
	}

	start := a.childrenStart[i]
	end := NodeIndex(u32len(a.children))
	if uint32(i)+1 < u32len(a.childrenStart) {
		end = a.childrenStart[i+1]
	}

	return a.children[start:end]
}

// MultiChildSlice resolves a group slot: ref is the buffer position of
// the count cell. Returns false when ref is 0, out of range, or the
// recorded count overruns the buffer.
func (a *Ast) MultiChildSlice(ref NodeIndex) ([]NodeIndex, bool) {
	if ref == NoNode || uint32(ref) >= u32len(a.children) {
		return nil, false
	}

	count := uint32(a.children[ref])
	dataStart := uint32(ref) + 1
	dataEnd := dataStart + count

	if dataEnd > u32len(a.children) {
		return nil, false
	}

	return a.children[dataStart:dataEnd], true
}

// SetRoot records the root node index.
func (a *Ast) SetRoot(root NodeIndex) {
	a.root = root
}

// Root returns the root node index, NoNode when unset.
func (a *Ast) Root() NodeIndex {
	return a.root
}

// Len returns the number of arena entries including the reserved
// invalid node, so valid indices are 1..Len()-1.
func (a *Ast) Len() uint32 {
	return u32len(a.kinds)
}

// Kinds exposes the kind column. READONLY.
func (a *Ast) Kinds() []NodeKind { return a.kinds }

// Spans exposes the span column. READONLY.
func (a *Ast) Spans() []source.Span { return a.spans }

// ChildrenStarts exposes the per-node offsets column. READONLY.
func (a *Ast) ChildrenStarts() []NodeIndex { return a.childrenStart }

// ChildrenBuffer exposes the shared children buffer. READONLY.
func (a *Ast) ChildrenBuffer() []NodeIndex { return a.children }

// FromRaw reassembles a tree from its serialized columns, validating
// the arena invariants that a decoder cannot express.
func FromRaw(kinds []NodeKind, spans []source.Span, childrenStart, children []NodeIndex, root NodeIndex) (*Ast, error) {
	if len(kinds) == 0 || len(kinds) != len(spans) || len(kinds) != len(childrenStart) {
		return nil, fmt.Errorf("ast: column lengths disagree: %d kinds, %d spans, %d starts",
			len(kinds), len(spans), len(childrenStart))
	}
	if kinds[0] != NodeInvalid || childrenStart[0] != 0 {
		return nil, fmt.Errorf("ast: missing reserved node at index 0")
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("ast: empty children buffer")
	}
	if uint32(root) >= u32len(kinds) {
		return nil, fmt.Errorf("ast: root %d out of range (%d nodes)", root, len(kinds))
	}
	for i, start := range childrenStart {
		if uint32(start) > u32len(children) {
			return nil, fmt.Errorf("ast: children start %d of node %d out of range", start, i)
		}
	}
	return &Ast{
		kinds:         kinds,
		spans:         spans,
		childrenStart: childrenStart,
		children:      children,
		root:          root,
	}, nil
}
