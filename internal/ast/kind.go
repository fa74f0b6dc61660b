package ast

// NodeKind categorizes an AST node. The kind alone decides how the
// node's child slots are laid out, see ShapeOf.
type NodeKind uint8

const (
	// NodeInvalid is the kind of the reserved node at index 0.
	NodeInvalid NodeKind = iota

	// литералы
	NodeId
	NodeStr
	NodeInt
	NodeReal
	NodeChar
	NodeBool
	NodeUnit
	NodeSymbol

	// коллекции
	NodeListOf
	NodeTuple
	NodeObject

	NodeBoolNot
	NodeSelfLower
	NodeSelfCap
	NodeNull

	NodeOptionalType
	NodePointerType
	NodeFunctionType

	// диапазоны
	NodeRangeFull
	NodeRangeTo
	NodeRangeToInclusive
	NodeRangeFrom
	NodeRangeFromTo
	NodeRangeFromToInclusive

	// бинарные операции
	NodeAdd
	NodeSub
	NodeMul
	NodeDiv
	NodeMod
	NodeAddAdd
	NodeBoolEq
	NodeBoolNotEq
	NodeBoolAnd
	NodeBoolOr
	NodeBoolGt
	NodeBoolGtEq
	NodeBoolLt
	NodeBoolLtEq

	NodeSelect
	NodeImage

	NodeDeref
	NodeRefer
	NodeTypeCast

	// вызовы
	NodeCall
	NodeIndexCall
	NodeObjectCall

	// сопоставление с образцом
	NodePostMatch
	NodePatternArm
	NodeConditionArm
	NodeCatchArm

	// операторы
	NodeExprStatement
	NodeAssign
	NodeAddAssign
	NodeSubAssign
	NodeMulAssign
	NodeDivAssign
	NodeConstDecl
	NodeLetDecl
	NodeReturnStatement
	NodeBreakStatement
	NodeContinueStatement
	NodeIfStatement
	NodeWhenStatement
	NodeWhileLoop
	NodeForLoop

	// образцы
	NodePatternIfGuard
	NodePatternAsBind
	NodePatternOptionSome
	NodePatternObjectCall
	NodePatternRangeTo
	NodePatternRangeToInclusive
	NodePatternRangeFrom
	NodePatternRangeFromTo
	NodePatternRangeFromToInclusive
	NodePropertyPattern
	NodePatternRecord
	NodePatternList
	NodePatternTuple

	// определения
	NodeFunctionDef
	NodeStructDef
	NodeStructField
	NodeEnumDef
	NodeEnumVariantWithPattern
	NodeUnionDef
	NodeUnionVariant
	NodeTypealias
	NodeNewtype
	NodeModuleDef

	// импорты
	NodeModStatement
	NodeUseStatement
	NodePathSelect
	NodePathSelectMulti
	NodePathSelectAll
	NodeSuperPath
	NodePackagePath
	NodePathAsBind

	// параметры
	NodeParamTyped
	NodeParamSelf
	NodeParamSelfRef

	NodeBlock

	NodeFileScope

	nodeKindCount // количество видов; держать последним
)

var nodeKindNames = [...]string{
	NodeInvalid:                     "Invalid",
	NodeId:                          "Id",
	NodeStr:                         "Str",
	NodeInt:                         "Int",
	NodeReal:                        "Real",
	NodeChar:                        "Char",
	NodeBool:                        "Bool",
	NodeUnit:                        "Unit",
	NodeSymbol:                      "Symbol",
	NodeListOf:                      "ListOf",
	NodeTuple:                       "Tuple",
	NodeObject:                      "Object",
	NodeBoolNot:                     "BoolNot",
	NodeSelfLower:                   "SelfLower",
	NodeSelfCap:                     "SelfCap",
	NodeNull:                        "Null",
	NodeOptionalType:                "OptionalType",
	NodePointerType:                 "PointerType",
	NodeFunctionType:                "FunctionType",
	NodeRangeFull:                   "RangeFull",
	NodeRangeTo:                     "RangeTo",
	NodeRangeToInclusive:            "RangeToInclusive",
	NodeRangeFrom:                   "RangeFrom",
	NodeRangeFromTo:                 "RangeFromTo",
	NodeRangeFromToInclusive:        "RangeFromToInclusive",
	NodeAdd:                         "Add",
	NodeSub:                         "Sub",
	NodeMul:                         "Mul",
	NodeDiv:                         "Div",
	NodeMod:                         "Mod",
	NodeAddAdd:                      "AddAdd",
	NodeBoolEq:                      "BoolEq",
	NodeBoolNotEq:                   "BoolNotEq",
	NodeBoolAnd:                     "BoolAnd",
	NodeBoolOr:                      "BoolOr",
	NodeBoolGt:                      "BoolGt",
	NodeBoolGtEq:                    "BoolGtEq",
	NodeBoolLt:                      "BoolLt",
	NodeBoolLtEq:                    "BoolLtEq",
	NodeSelect:                      "Select",
	NodeImage:                       "Image",
	NodeDeref:                       "Deref",
	NodeRefer:                       "Refer",
	NodeTypeCast:                    "TypeCast",
	NodeCall:                        "Call",
	NodeIndexCall:                   "IndexCall",
	NodeObjectCall:                  "ObjectCall",
	NodePostMatch:                   "PostMatch",
	NodePatternArm:                  "PatternArm",
	NodeConditionArm:                "ConditionArm",
	NodeCatchArm:                    "CatchArm",
	NodeExprStatement:               "ExprStatement",
	NodeAssign:                      "Assign",
	NodeAddAssign:                   "AddAssign",
	NodeSubAssign:                   "SubAssign",
	NodeMulAssign:                   "MulAssign",
	NodeDivAssign:                   "DivAssign",
	NodeConstDecl:                   "ConstDecl",
	NodeLetDecl:                     "LetDecl",
	NodeReturnStatement:             "ReturnStatement",
	NodeBreakStatement:              "BreakStatement",
	NodeContinueStatement:           "ContinueStatement",
	NodeIfStatement:                 "IfStatement",
	NodeWhenStatement:               "WhenStatement",
	NodeWhileLoop:                   "WhileLoop",
	NodeForLoop:                     "ForLoop",
	NodePatternIfGuard:              "PatternIfGuard",
	NodePatternAsBind:               "PatternAsBind",
	NodePatternOptionSome:           "PatternOptionSome",
	NodePatternObjectCall:           "PatternObjectCall",
	NodePatternRangeTo:              "PatternRangeTo",
	NodePatternRangeToInclusive:     "PatternRangeToInclusive",
	NodePatternRangeFrom:            "PatternRangeFrom",
	NodePatternRangeFromTo:          "PatternRangeFromTo",
	NodePatternRangeFromToInclusive: "PatternRangeFromToInclusive",
	NodePropertyPattern:             "PropertyPattern",
	NodePatternRecord:               "PatternRecord",
	NodePatternList:                 "PatternList",
	NodePatternTuple:                "PatternTuple",
	NodeFunctionDef:                 "FunctionDef",
	NodeStructDef:                   "StructDef",
	NodeStructField:                 "StructField",
	NodeEnumDef:                     "EnumDef",
	NodeEnumVariantWithPattern:      "EnumVariantWithPattern",
	NodeUnionDef:                    "UnionDef",
	NodeUnionVariant:                "UnionVariant",
	NodeTypealias:                   "Typealias",
	NodeNewtype:                     "Newtype",
	NodeModuleDef:                   "ModuleDef",
	NodeModStatement:                "ModStatement",
	NodeUseStatement:                "UseStatement",
	NodePathSelect:                  "PathSelect",
	NodePathSelectMulti:             "PathSelectMulti",
	NodePathSelectAll:               "PathSelectAll",
	NodeSuperPath:                   "SuperPath",
	NodePackagePath:                 "PackagePath",
	NodePathAsBind:                  "PathAsBind",
	NodeParamTyped:                  "ParamTyped",
	NodeParamSelf:                   "ParamSelf",
	NodeParamSelfRef:                "ParamSelfRef",
	NodeBlock:                       "Block",
	NodeFileScope:                   "FileScope",
}

// String returns the bare kind name, e.g. "FunctionDef".
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}
