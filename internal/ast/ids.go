package ast

// NodeIndex identifies a node inside one Ast. Indices are dense and
// start from 1; index 0 is the reserved invalid node.
type NodeIndex uint32

// NoNode is the invalid node index.
const NoNode NodeIndex = 0

func (i NodeIndex) IsValid() bool { return i != NoNode }
