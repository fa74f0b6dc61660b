package ast_test

import (
	"testing"

	"beleg/internal/ast"
)

func TestShapeOf(t *testing.T) {
	tests := []struct {
		kind ast.NodeKind
		want ast.Shape
	}{
		{ast.NodeInvalid, ast.ShapeNoChild},
		{ast.NodeId, ast.ShapeNoChild},
		{ast.NodeRangeFull, ast.ShapeNoChild},
		{ast.NodeParamSelfRef, ast.ShapeNoChild},
		{ast.NodeBoolNot, ast.ShapeSingleChild},
		{ast.NodeReturnStatement, ast.ShapeSingleChild},
		{ast.NodeUseStatement, ast.ShapeSingleChild},
		{ast.NodeAdd, ast.ShapeDoubleChildren},
		{ast.NodeSelect, ast.ShapeDoubleChildren},
		{ast.NodeParamTyped, ast.ShapeDoubleChildren},
		{ast.NodeAssign, ast.ShapeDoubleChildren},
		{ast.NodeLetDecl, ast.ShapeTripleChildren},
		{ast.NodeIfStatement, ast.ShapeTripleChildren},
		{ast.NodeForLoop, ast.ShapeQuadrupleChildren},
		{ast.NodeBlock, ast.ShapeMultiChildren},
		{ast.NodeFileScope, ast.ShapeMultiChildren},
		{ast.NodeWhenStatement, ast.ShapeMultiChildren},
		{ast.NodeCall, ast.ShapeSingleWithMulti},
		{ast.NodePostMatch, ast.ShapeSingleWithMulti},
		{ast.NodeFunctionDef, ast.ShapeFunctionDef},
		{ast.NodeStructDef, ast.ShapeTypeDef},
		{ast.NodeModuleDef, ast.ShapeTypeDef},
		{ast.NodeTypealias, ast.ShapeTypeAlias},
		{ast.NodeNewtype, ast.ShapeTypeAlias},
		// виды без собственной раскладки ведут себя как листья
		{ast.NodePathSelectMulti, ast.ShapeNoChild},
		{ast.NodeEnumVariantWithPattern, ast.ShapeNoChild},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := ast.ShapeOf(tt.kind); got != tt.want {
				t.Errorf("ShapeOf(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := ast.NodeFunctionDef.String(); got != "FunctionDef" {
		t.Errorf("String = %q, want FunctionDef", got)
	}
	if got := ast.NodeKind(255).String(); got != "NodeKind(?)" {
		t.Errorf("String for unknown kind = %q", got)
	}
}
