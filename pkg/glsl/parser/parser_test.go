// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func parse(t *testing.T, src string, stage version.Stage) (*ast.Root, []source.Diagnostic) {
	t.Helper()

	file := source.NewFile("test.glsl", src)
	toks := lexer.Tokenize(src)

	return New(file, stream.New(toks), stage).Parse()
}

func TestParser_VariableDecl(t *testing.T) {
	root, diags := parse(t, "uniform vec4 color;", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(root.Globals))
	assert.Equal(t, "color", root.Globals[0].Name)
}

func TestParser_MultiNameDecl(t *testing.T) {
	root, diags := parse(t, "float a, b = 1.0, c;", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 3, len(root.Globals))
	assert.Equal(t, "a", root.Globals[0].Name)
	assert.Equal(t, "b", root.Globals[1].Name)
	assert.Equal(t, "c", root.Globals[2].Name)
}

func TestParser_StructDecl(t *testing.T) {
	root, diags := parse(t, "struct Light { vec3 pos; float intensity; };", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(root.Structs))
	assert.Equal(t, 2, len(root.Structs[0].Members))
}

func TestParser_InterfaceBlock(t *testing.T) {
	root, diags := parse(t, "layout(std140) uniform Block { mat4 mvp; } ubo;", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(root.InterfaceBlocks))
	assert.Equal(t, "ubo", root.InterfaceBlocks[0].InstanceName)
	assert.Equal(t, types.PackingStd140, root.InterfaceBlocks[0].Qualifier.Layout.Packing)
}

func TestParser_FunctionPrototypeAndDefinition(t *testing.T) {
	root, diags := parse(t, "float square(float x);\nfloat square(float x) { return x * x; }", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 2, len(root.Functions))
	assert.Equal(t, true, root.Functions[0].Prototype)
	assert.Equal(t, false, root.Functions[1].Prototype)
	assert.Equal(t, 1, len(root.Functions[1].Body.Stmts))
}

func TestParser_ExpressionPrecedence(t *testing.T) {
	root, _ := parse(t, "float x = 1.0 + 2.0 * 3.0;", version.Fragment)
	v := root.Globals[0]

	bin, ok := v.Init.(*ast.BinaryExpr)
	assert.Equal(t, true, ok)

	_, rightIsMul := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, true, rightIsMul)
	assert.Equal(t, true, rightIsMul && bin.Right.(*ast.BinaryExpr).Op.String() == "*")
}

func TestParser_TernaryAssignmentRightAssoc(t *testing.T) {
	root, diags := parse(t, "void main() { float x; x = true ? 1.0 : 2.0; }", version.Fragment)
	assert.Equal(t, 0, len(diags))

	body := root.Functions[0].Body
	exprStmt := body.Stmts[1].(*ast.ExprStmt)
	assign := exprStmt.Expr.(*ast.BinaryExpr)

	_, isTernary := assign.Right.(*ast.TernaryExpr)
	assert.Equal(t, true, isTernary)
}

func TestParser_ArraySizeConstantFolding(t *testing.T) {
	root, diags := parse(t, "float values[2 + 3];", version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, []int{5}, root.Globals[0].ExtraArrayDims)
}

func TestParser_LayoutQualifier(t *testing.T) {
	root, diags := parse(t, "layout(location = 0) in vec3 position;", version.Vertex)
	assert.Equal(t, 0, len(diags))

	q := root.Globals[0].Qualifier
	loc, ok := q.Layout.HasLocation()
	assert.Equal(t, true, ok)
	assert.Equal(t, 0, loc)
}

func TestParser_ControlFlowStatements(t *testing.T) {
	src := `void main() {
		for (int i = 0; i < 4; i++) {
			if (i == 2) {
				continue;
			} else {
				break;
			}
		}
		int j = 0;
		while (j < 10) { j++; }
		do { j--; } while (j > 0);
	}`

	root, diags := parse(t, src, version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(root.Functions))
}

func TestParser_DiscardOutsideFragmentWarns(t *testing.T) {
	_, diags := parse(t, "void main() { discard; }", version.Vertex)
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, source.Warning, diags[0].Severity)
}

func TestParser_BreakOutsideLoopWarns(t *testing.T) {
	_, diags := parse(t, "void main() { break; }", version.Fragment)
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, source.UNSUPPORTED_FEATURE, diags[0].Kind)
}

func TestParser_SyntaxErrorRecovery(t *testing.T) {
	src := "float x = ;\nfloat y = 1.0;"
	root, diags := parse(t, src, version.Fragment)

	assert.Equal(t, true, len(diags) >= 1)
	assert.Equal(t, true, len(root.Globals) >= 1)

	found := false
	for _, v := range root.Globals {
		if v.Name == "y" {
			found = true
		}
	}
	assert.Equal(t, true, found)
}

func TestParser_VersionAndExtensionDirectives(t *testing.T) {
	src := "#version 450 core\n#extension GL_ARB_separate_shader_objects : enable\nvoid main() {}"
	root, diags := parse(t, src, version.Vertex)

	assert.Equal(t, 0, len(diags))
	assert.Equal(t, uint16(450), root.Version.Code())
	assert.Equal(t, 1, len(root.Extensions))
}

func TestParser_SwitchStmt(t *testing.T) {
	src := `void main() {
		int x = 1;
		switch (x) {
		case 1:
			x = 2;
			break;
		default:
			x = 0;
		}
	}`

	root, diags := parse(t, src, version.Fragment)
	assert.Equal(t, 0, len(diags))
	assert.Equal(t, 1, len(root.Functions))
}
