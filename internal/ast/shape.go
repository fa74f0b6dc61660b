package ast

// Shape describes how a node kind lays out its child slots in the
// flattened children buffer. Fixed shapes store child indices directly;
// the *WithMulti and definition shapes mix direct slots with references
// into length-prefixed groups (see Ast.MultiChildSlice).
type Shape uint8

const (
	// ShapeNoChild has no child slots.
	ShapeNoChild Shape = iota
	// ShapeSingleChild has one direct child slot.
	ShapeSingleChild
	// ShapeDoubleChildren has two direct child slots.
	ShapeDoubleChildren
	// ShapeTripleChildren has three direct child slots.
	ShapeTripleChildren
	// ShapeQuadrupleChildren has four direct child slots.
	ShapeQuadrupleChildren
	// ShapeMultiChildren has one slot referencing a length-prefixed group.
	ShapeMultiChildren
	// ShapeSingleWithMulti has one direct slot followed by one group slot.
	ShapeSingleWithMulti
	// ShapeFunctionDef is the function definition layout:
	// name, group of parameters, return type, body.
	ShapeFunctionDef
	// ShapeTypeDef is the struct/enum/union/module layout:
	// name, group of members.
	ShapeTypeDef
	// ShapeTypeAlias is the typealias/newtype layout: name, aliased type.
	ShapeTypeAlias

	shapeCount
)

var shapeNames = [...]string{
	ShapeNoChild:           "NoChild",
	ShapeSingleChild:       "SingleChild",
	ShapeDoubleChildren:    "DoubleChildren",
	ShapeTripleChildren:    "TripleChildren",
	ShapeQuadrupleChildren: "QuadrupleChildren",
	ShapeMultiChildren:     "MultiChildren",
	ShapeSingleWithMulti:   "SingleWithMulti",
	ShapeFunctionDef:       "FunctionDef",
	ShapeTypeDef:           "TypeDef",
	ShapeTypeAlias:         "TypeAlias",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Shape(?)"
}

// ShapeOf returns the child layout for a node kind. Total over all
// kinds; unknown kinds behave as leaves.
func ShapeOf(kind NodeKind) Shape {
	switch kind {
	case NodeInvalid,
		NodeId,
		NodeStr,
		NodeInt,
		NodeReal,
		NodeChar,
		NodeBool,
		NodeUnit,
		NodeSymbol,
		NodeSelfLower,
		NodeSelfCap,
		NodeNull,
		NodeParamSelf,
		NodeParamSelfRef,
		NodeRangeFull:
		return ShapeNoChild

	case NodeBoolNot,
		NodeOptionalType,
		NodePointerType,
		NodeFunctionType,
		NodeRangeTo,
		NodeRangeToInclusive,
		NodeRangeFrom,
		NodeDeref,
		NodeRefer,
		NodeTypeCast,
		NodeExprStatement,
		NodePatternOptionSome,
		NodePatternRangeTo,
		NodePatternRangeToInclusive,
		NodePatternRangeFrom,
		NodeModStatement,
		NodeUseStatement,
		NodePathSelectAll,
		NodeSuperPath,
		NodePackagePath,
		NodeReturnStatement,
		NodeBreakStatement,
		NodeContinueStatement:
		return ShapeSingleChild

	case NodeRangeFromTo,
		NodeRangeFromToInclusive,
		NodeAdd,
		NodeSub,
		NodeMul,
		NodeDiv,
		NodeMod,
		NodeAddAdd,
		NodeBoolEq,
		NodeBoolNotEq,
		NodeBoolAnd,
		NodeBoolOr,
		NodeBoolGt,
		NodeBoolGtEq,
		NodeBoolLt,
		NodeBoolLtEq,
		NodeSelect,
		NodeImage,
		NodeIndexCall,
		NodePatternArm,
		NodeConditionArm,
		NodeCatchArm,
		NodePatternRangeFromTo,
		NodePatternRangeFromToInclusive,
		NodePropertyPattern,
		NodeStructField,
		NodeUnionVariant,
		NodePathSelect,
		NodePathAsBind,
		NodeParamTyped,
		NodeAssign,
		NodeAddAssign,
		NodeSubAssign,
		NodeMulAssign,
		NodeDivAssign:
		return ShapeDoubleChildren

	case NodeConstDecl,
		NodeLetDecl,
		NodeIfStatement,
		NodeWhileLoop,
		NodePatternIfGuard,
		NodePatternAsBind:
		return ShapeTripleChildren

	case NodeForLoop:
		return ShapeQuadrupleChildren

	case NodeListOf,
		NodeTuple,
		NodeObject,
		NodeBlock,
		NodePatternRecord,
		NodePatternList,
		NodePatternTuple,
		NodeWhenStatement,
		NodeFileScope:
		return ShapeMultiChildren

	case NodeCall,
		NodeObjectCall,
		NodePostMatch,
		NodePatternObjectCall:
		return ShapeSingleWithMulti

	case NodeFunctionDef:
		return ShapeFunctionDef
	case NodeStructDef,
		NodeEnumDef,
		NodeUnionDef,
		NodeModuleDef:
		return ShapeTypeDef
	case NodeTypealias,
		NodeNewtype:
		return ShapeTypeAlias

	default:
		// NodePathSelectMulti и NodeEnumVariantWithPattern не имеют
		// собственной раскладки и трактуются как листья
		return ShapeNoChild
	}
}
