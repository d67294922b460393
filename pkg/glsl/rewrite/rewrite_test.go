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
package rewrite

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/parser"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

// translate parses src at the given source version and runs the default
// rule registry against target.
func translate(t *testing.T, src string, stage version.Stage, from, to version.Version) (*ast.Root, *Context) {
	t.Helper()

	file := source.NewFile("test.glsl", src)
	toks := lexer.Tokenize(src)
	root, _ := parser.New(file, stream.New(toks), stage).Parse()
	root.Version = from

	ctx := Run(root, DefaultRegistry(), to, arena.New())

	return root, ctx
}

func findGlobal(root *ast.Root, name string) *ast.VariableDecl {
	for _, g := range root.Globals {
		if g.Name == name {
			return g
		}
	}

	return nil
}

func TestRewrite_AttributeUpgrade(t *testing.T) {
	root, _ := translate(t, "attribute vec3 pos;", version.Vertex, version.V110, version.V330)
	assert.Equal(t, types.StorageIn, findGlobal(root, "pos").Qualifier.Storage)
}

func TestRewrite_VaryingUpgradeByStage(t *testing.T) {
	root, _ := translate(t, "varying vec2 uv;", version.Vertex, version.V110, version.V330)
	assert.Equal(t, types.StorageOut, findGlobal(root, "uv").Qualifier.Storage)

	root, _ = translate(t, "varying vec2 uv;", version.Fragment, version.V110, version.V330)
	assert.Equal(t, types.StorageIn, findGlobal(root, "uv").Qualifier.Storage)
}

func TestRewrite_InOutDowngrade(t *testing.T) {
	root, _ := translate(t, "in vec3 pos;", version.Vertex, version.V330, version.V110)
	assert.Equal(t, types.StorageAttribute, findGlobal(root, "pos").Qualifier.Storage)

	root, _ = translate(t, "in vec2 uv;", version.Fragment, version.V330, version.V120)
	assert.Equal(t, types.StorageVarying, findGlobal(root, "uv").Qualifier.Storage)
}

func TestRewrite_TextureUpgrade(t *testing.T) {
	src := `uniform sampler2D tex;
varying vec2 uv;
void main() { gl_FragColor = texture2D(tex, uv); }`

	root, ctx := translate(t, src, version.Fragment, version.V120, version.V330)

	assert.True(t, ctx.UsesFragColor)

	main, ok := root.FindFunction("main")
	assert.True(t, ok)

	stmt := main.Body.Stmts[0].(*ast.ExprStmt)
	assign := stmt.Expr.(*ast.BinaryExpr)
	call := assign.Right.(*ast.CallExpr)
	assert.Equal(t, "texture", call.Name)

	lhs := assign.Left.(*ast.IdentExpr)
	assert.Equal(t, "fragColor", lhs.Name)

	out := findGlobal(root, "fragColor")
	assert.True(t, out != nil)
	assert.Equal(t, types.StorageOut, out.Qualifier.Storage)
}

func TestRewrite_TextureDowngradePicksSamplerDimension(t *testing.T) {
	src := `uniform sampler3D vol;
in vec3 p;
out vec4 c;
void main() { c = texture(vol, p); }`

	root, _ := translate(t, src, version.Fragment, version.V330, version.V120)

	main, _ := root.FindFunction("main")
	assign := main.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	call := assign.Right.(*ast.CallExpr)
	assert.Equal(t, "texture3D", call.Name)
}

func TestRewrite_TextureDowngradeUnknownSamplerWarns(t *testing.T) {
	src := `out vec4 c;
void main() { c = texture(pickSampler(), vec2(0.0)); }`

	_, ctx := translate(t, src, version.Fragment, version.V330, version.V120)
	assert.True(t, len(ctx.Warnings) > 0)
}

func TestRewrite_FragDataUpgrade(t *testing.T) {
	src := "void main() { gl_FragData[1] = vec4(1.0); }"

	root, ctx := translate(t, src, version.Fragment, version.V110, version.V330)

	assert.True(t, ctx.UsesFragData)
	assert.Equal(t, 1, ctx.MaxFragDataIndex)

	out := findGlobal(root, "fragData_1")
	assert.True(t, out != nil)

	loc, has := out.Qualifier.Layout.HasLocation()
	assert.True(t, has)
	assert.Equal(t, 1, loc)
}

func TestRewrite_OutputDowngradeToFragColor(t *testing.T) {
	src := `out vec4 outColor;
void main() { outColor = vec4(1.0); }`

	root, _ := translate(t, src, version.Fragment, version.V330, version.V120)

	assert.True(t, findGlobal(root, "outColor") == nil)

	main, _ := root.FindFunction("main")
	assign := main.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	lhs := assign.Left.(*ast.IdentExpr)
	assert.Equal(t, "gl_FragColor", lhs.Name)
}

func TestRewrite_OutputDowngradeToFragData(t *testing.T) {
	src := `layout(location = 2) out vec4 bright;
void main() { bright = vec4(1.0); }`

	root, _ := translate(t, src, version.Fragment, version.V330, version.V120)

	main, _ := root.FindFunction("main")
	assign := main.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	sub := assign.Left.(*ast.SubscriptExpr)
	obj := sub.Object.(*ast.IdentExpr)
	assert.Equal(t, "gl_FragData", obj.Name)

	idx, ok := sub.Index.(*ast.LiteralExpr).IntValue()
	assert.True(t, ok)
	assert.Equal(t, 2, int(idx))
}

func TestRewrite_LayoutLocationPromotedByExtension(t *testing.T) {
	src := "layout(location = 0) in vec3 pos;"

	root, ctx := translate(t, src, version.Vertex, version.V330, version.V150)

	assert.True(t, ctx.RequiredExtensions["GL_ARB_explicit_attrib_location"])

	_, has := findGlobal(root, "pos").Qualifier.Layout.HasLocation()
	assert.True(t, has)
}

func TestRewrite_LayoutLocationStrippedBelowExtensionFloor(t *testing.T) {
	src := "layout(location = 3) in vec3 pos;"

	root, ctx := translate(t, src, version.Vertex, version.V330, version.V120)

	assert.True(t, findGlobal(root, "pos").Qualifier.Layout == nil)
	assert.Equal(t, 3, ctx.AttributeLocations["pos"])
	assert.True(t, len(ctx.Warnings) > 0)
}

func TestRewrite_LegacyBuiltinReplacement(t *testing.T) {
	src := "void main() { gl_Position = gl_ModelViewProjectionMatrix * gl_Vertex; }"

	root, ctx := translate(t, src, version.Vertex, version.V110, version.V330)

	mvp := findGlobal(root, "modelViewProjectionMatrix")
	assert.True(t, mvp != nil)
	assert.Equal(t, types.StorageUniform, mvp.Qualifier.Storage)

	pos := findGlobal(root, "vertexPosition")
	assert.True(t, pos != nil)
	assert.Equal(t, types.StorageIn, pos.Qualifier.Storage)

	assert.True(t, len(ctx.Warnings) >= 2)

	main, _ := root.FindFunction("main")
	assign := main.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	mul := assign.Right.(*ast.BinaryExpr)
	assert.Equal(t, "modelViewProjectionMatrix", mul.Left.(*ast.IdentExpr).Name)
	assert.Equal(t, "vertexPosition", mul.Right.(*ast.IdentExpr).Name)
}

func TestRewrite_DoubleDowngradeWarns(t *testing.T) {
	// 1.30 sits below every fp64 extension floor, so the type must change.
	root, ctx := translate(t, "double d;", version.Fragment, version.V450, version.V130)

	assert.Equal(t, types.FLOAT, findGlobal(root, "d").Type.Base)
	assert.True(t, len(ctx.Warnings) > 0)
}

func TestRewrite_DoublePromotedByExtension(t *testing.T) {
	root, ctx := translate(t, "double d;", version.Fragment, version.V450, version.V330)

	assert.Equal(t, types.DOUBLE, findGlobal(root, "d").Type.Base)
	assert.True(t, ctx.RequiredExtensions["GL_ARB_gpu_shader_fp64"])
}

func TestRewrite_SwitchRejectedBelow130(t *testing.T) {
	src := "void main() { switch (1) { default: break; } }"

	_, ctx := translate(t, src, version.Fragment, version.V330, version.V120)
	assert.True(t, len(ctx.Errors) > 0)
	assert.Equal(t, source.UNSUPPORTED_FEATURE, ctx.Errors[0].Kind)
}

func TestRewrite_BitwiseRejectedBelow130(t *testing.T) {
	src := "void main() { int x = 1 << 2; }"

	_, ctx := translate(t, src, version.Fragment, version.V330, version.V120)
	assert.True(t, len(ctx.Errors) > 0)
}

func TestRewrite_RegistryPriorityOrder(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNode(&NodeRule{Name: "low", Variant: "X", Priority: 10})
	reg.RegisterNode(&NodeRule{Name: "high", Variant: "X", Priority: 90})

	rules := reg.NodeRulesFor("X")
	assert.Equal(t, "high", rules[0].Name)
	assert.Equal(t, "low", rules[1].Name)
}
