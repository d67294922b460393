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
package optimize

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/parser"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func parse(t *testing.T, src string) *ast.Root {
	t.Helper()

	file := source.NewFile("test.glsl", src)
	root, diags := parser.New(file, stream.New(lexer.Tokenize(src)), version.Fragment).Parse()

	for _, d := range diags {
		if d.IsError() {
			t.Fatalf("parse error in fixture: %s", d.Error())
		}
	}

	return root
}

func mainBody(t *testing.T, root *ast.Root) *ast.BlockStmt {
	t.Helper()

	main, ok := root.FindFunction("main")
	assert.True(t, ok)

	return main.Body
}

func TestOptimize_ConstantFolding(t *testing.T) {
	root := parse(t, "const int N = 2 + 3 * 4;")

	ctx := newContext(root, 1)
	assert.True(t, runConstantFolding(ctx))

	lit, ok := root.Globals[0].Init.(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.IntValue()
	assert.Equal(t, 14, int(v))

	// Idempotence: a second application changes nothing.
	assert.False(t, runConstantFolding(ctx))
}

func TestOptimize_FoldBuiltinCall(t *testing.T) {
	root := parse(t, "float x = pow(2.0, 3.0) + sqrt(4.0);")

	ctx := newContext(root, 1)
	runConstantFolding(ctx)
	runConstantFolding(ctx)

	lit, ok := root.Globals[0].Init.(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.FloatValue()
	assert.Equal(t, 10.0, v)
}

func TestOptimize_FoldIntegerBuiltinKeepsIntKind(t *testing.T) {
	root := parse(t, "int a = min(2, 3); int b = clamp(7, 0, 4); uint c = max(2u, 5u);")

	ctx := newContext(root, 1)
	runConstantFolding(ctx)

	a, ok := root.Globals[0].Init.(*ast.LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.LitInt, a.Kind)

	av, _ := a.IntValue()
	assert.Equal(t, 2, int(av))

	b := root.Globals[1].Init.(*ast.LiteralExpr)
	assert.Equal(t, ast.LitInt, b.Kind)

	bv, _ := b.IntValue()
	assert.Equal(t, 4, int(bv))

	c := root.Globals[2].Init.(*ast.LiteralExpr)
	assert.Equal(t, ast.LitUint, c.Kind)

	cv, _ := c.IntValue()
	assert.Equal(t, 5, int(cv))
}

func TestOptimize_FoldFloatBuiltinStaysFloat(t *testing.T) {
	root := parse(t, "float x = min(2.0, 3.0);")

	ctx := newContext(root, 1)
	runConstantFolding(ctx)

	lit := root.Globals[0].Init.(*ast.LiteralExpr)
	assert.Equal(t, ast.LitFloat, lit.Kind)

	v, _ := lit.FloatValue()
	assert.Equal(t, 2.0, v)
}

func TestOptimize_FoldRefusesDivisionByZero(t *testing.T) {
	root := parse(t, "float x = 1.0 / 0.0; float y = log(-1.0);")

	ctx := newContext(root, 1)
	runConstantFolding(ctx)

	_, stillDiv := root.Globals[0].Init.(*ast.BinaryExpr)
	assert.True(t, stillDiv)

	_, stillLog := root.Globals[1].Init.(*ast.CallExpr)
	assert.True(t, stillLog)
}

func TestOptimize_TernaryFolding(t *testing.T) {
	root := parse(t, "float x = true ? 1.0 : 2.0;")

	ctx := newContext(root, 1)
	runConstantFolding(ctx)

	lit, ok := root.Globals[0].Init.(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.FloatValue()
	assert.Equal(t, 1.0, v)
}

func TestOptimize_DeadBranchElimination(t *testing.T) {
	src := `uniform float u;
out vec4 c;
void main() { float x; if (false) { x = 1.0; } else { x = 2.0; } c = vec4(x + u); }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	body := mainBody(t, root)

	// decl, x = 2.0, assignment to c.
	assert.Equal(t, 3, len(body.Stmts))

	assign := body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	lit, ok := assign.Right.(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.FloatValue()
	assert.Equal(t, 2.0, v)
}

func TestOptimize_SideEffectPreservation(t *testing.T) {
	src := `float f(float x) { return x + 1.0; }
out vec4 c;
void main() { float y = f(2.0) * 1.0 + 0.0; c = vec4(y); }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	body := mainBody(t, root)
	decl := body.Stmts[0].(*ast.DeclStmt)

	call, ok := decl.Decls[0].Init.(*ast.CallExpr)
	assert.True(t, ok)
	assert.Equal(t, "f", call.Name)
}

func TestOptimize_MultiplyByZeroKeepsImpureCall(t *testing.T) {
	src := `float f(float x) { return x; }
out vec4 c;
void main() { c = vec4(f(2.0) * 0.0); }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	body := mainBody(t, root)
	outer := body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	ctor := outer.Right.(*ast.CallExpr)

	// The impure call cannot be discarded, so the product survives.
	mul, ok := ctor.Args[0].(*ast.BinaryExpr)
	assert.True(t, ok)

	_, isCall := mul.Left.(*ast.CallExpr)
	assert.True(t, isCall)
}

func TestOptimize_ConstantPropagation(t *testing.T) {
	src := `out vec4 c;
void main() { const float k = 2.0; c = vec4(k); }`

	root := parse(t, src)
	NewManager().Run(root, 2)

	body := mainBody(t, root)
	assign := body.Stmts[len(body.Stmts)-1].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	ctor := assign.Right.(*ast.CallExpr)

	lit, ok := ctor.Args[0].(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.FloatValue()
	assert.Equal(t, 2.0, v)
}

func TestOptimize_StrengthReduction(t *testing.T) {
	root := parse(t, "float half(float x) { return x / 4.0; }")

	ctx := newContext(root, 2)
	assert.True(t, runStrengthReduction(ctx))

	fn := root.Functions[0]
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	mul := ret.Value.(*ast.BinaryExpr)

	lit, ok := mul.Right.(*ast.LiteralExpr)
	assert.True(t, ok)

	v, _ := lit.FloatValue()
	assert.Equal(t, 0.25, v)
}

func TestOptimize_PowReduction(t *testing.T) {
	root := parse(t, "float sq(float x) { return pow(x, 2.0); }")

	ctx := newContext(root, 2)
	runUsageAnalysis(ctx)
	assert.True(t, runStrengthReduction(ctx))

	ret := root.Functions[0].Body.Stmts[0].(*ast.ReturnStmt)
	mul, ok := ret.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "x", mul.Left.(*ast.IdentExpr).Name)
	assert.Equal(t, "x", mul.Right.(*ast.IdentExpr).Name)
}

func TestOptimize_UnreachableElimination(t *testing.T) {
	src := `out vec4 c;
void main() { c = vec4(1.0); return; c = vec4(2.0); }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	body := mainBody(t, root)
	assert.Equal(t, 2, len(body.Stmts))
}

func TestOptimize_DeadCodeElimination(t *testing.T) {
	src := `uniform float keepMe;
out vec4 c;
float unusedFn(float x) { return x; }
void main() { float unused = 1.0; c = vec4(keepMe); }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	_, found := root.FindFunction("unusedFn")
	assert.False(t, found)

	// The uniform survives regardless of use.
	assert.True(t, len(root.Globals) >= 2)

	body := mainBody(t, root)
	assert.Equal(t, 1, len(body.Stmts))
}

func TestOptimize_VariableInlining(t *testing.T) {
	src := `out vec4 c;
uniform float u;
void main() { float tmp = u * 2.0; c = vec4(tmp); }`

	root := parse(t, src)
	NewManager().Run(root, 2)

	body := mainBody(t, root)

	// Only the assignment to c remains; tmp's initializer moved into it.
	assert.Equal(t, 1, len(body.Stmts))
}

func TestOptimize_IfInversion(t *testing.T) {
	src := `uniform bool b;
out vec4 c;
void main() { if (b) {} else { c = vec4(1.0); } }`

	root := parse(t, src)
	NewManager().Run(root, 1)

	body := mainBody(t, root)
	cond := body.Stmts[0].(*ast.IfStmt)

	not, ok := cond.Cond.(*ast.UnaryExpr)
	assert.True(t, ok)
	assert.True(t, cond.Else == nil)
	assert.True(t, not.Prefix)
}

func TestOptimize_SwizzleCollapse(t *testing.T) {
	src := `uniform vec4 v;
out vec4 c;
void main() { c = vec4(v.xy.yx, 0.0, 1.0); }`

	root := parse(t, src)

	ctx := newContext(root, 2)
	assert.True(t, runSwizzleCollapse(ctx))

	body := mainBody(t, root)
	assign := body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	ctor := assign.Right.(*ast.CallExpr)

	m := ctor.Args[0].(*ast.MemberExpr)
	assert.Equal(t, "yx", m.Member)

	_, isIdent := m.Object.(*ast.IdentExpr)
	assert.True(t, isIdent)
}

func TestOptimize_ConstructorSplat(t *testing.T) {
	src := `out vec4 c;
void main() { c = vec4(0.5, 0.5, 0.5, 0.5); }`

	root := parse(t, src)

	ctx := newContext(root, 2)
	assert.True(t, runConstructorSplat(ctx))

	body := mainBody(t, root)
	assign := body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	ctor := assign.Right.(*ast.CallExpr)
	assert.Equal(t, 1, len(ctor.Args))
}

func TestOptimize_Level0DisablesEverything(t *testing.T) {
	root := parse(t, "const int N = 2 + 3;")

	iterations := NewManager().Run(root, 0)
	assert.Equal(t, 0, iterations)

	_, stillBinary := root.Globals[0].Init.(*ast.BinaryExpr)
	assert.True(t, stillBinary)
}

func TestOptimize_TerminatesWithinCap(t *testing.T) {
	src := `uniform float u;
out vec4 c;
void main() { c = vec4((u + 0.0) * 1.0 + (2.0 + 3.0)); }`

	root := parse(t, src)
	iterations := NewManager().Run(root, 3)
	assert.True(t, iterations <= maxIterations)
}
