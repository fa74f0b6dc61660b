package ast

import (
	"beleg/internal/source"
)

// Child is одно дочернее "гнездо" будущего узла: либо одиночный
// индекс, либо группа индексов переменной длины.
type Child struct {
	single   NodeIndex
	multiple []NodeIndex
	isMulti  bool
}

// Single wraps one child index.
func Single(index NodeIndex) Child {
	return Child{single: index}
}

// Multiple wraps a variable-length group of child indices.
func Multiple(indices []NodeIndex) Child {
	return Child{multiple: indices, isMulti: true}
}

func (c Child) IsSingle() bool   { return !c.isMulti }
func (c Child) IsMultiple() bool { return c.isMulti }

func (c Child) AsSingle() NodeIndex     { return c.single }
func (c Child) AsMultiple() []NodeIndex { return c.multiple }

// NodeBuilder accumulates a node before it is flattened into the Ast.
// Child slots are appended in layout order for the node's Shape.
type NodeBuilder struct {
	kind     NodeKind
	span     source.Span
	children []Child
}

// NewNode starts a builder for the given kind and span.
func NewNode(kind NodeKind, span source.Span) *NodeBuilder {
	return &NodeBuilder{kind: kind, span: span}
}

// AddSingleChild appends a direct child slot.
func (b *NodeBuilder) AddSingleChild(child NodeIndex) *NodeBuilder {
	b.children = append(b.children, Single(child))
	return b
}

// AddMultipleChildren appends a length-prefixed group slot.
func (b *NodeBuilder) AddMultipleChildren(children []NodeIndex) *NodeBuilder {
	b.children = append(b.children, Multiple(children))
	return b
}

// WithSpan replaces the span.
func (b *NodeBuilder) WithSpan(span source.Span) *NodeBuilder {
	b.span = span
	return b
}

// WithKind replaces the kind.
func (b *NodeBuilder) WithKind(kind NodeKind) *NodeBuilder {
	b.kind = kind
	return b
}

// WithChildren replaces all accumulated child slots.
func (b *NodeBuilder) WithChildren(children []Child) *NodeBuilder {
	b.children = children
	return b
}

func (b *NodeBuilder) Kind() NodeKind    { return b.kind }
func (b *NodeBuilder) Span() source.Span { return b.span }
func (b *NodeBuilder) Children() []Child { return b.children }
