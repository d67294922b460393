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
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// maxInlineArgs bounds how many arguments a constructor/builtin call may
// take and still count as a simple initializer.
const maxInlineArgs = 4

// runVariableInlining removes local variables that are read exactly once,
// never written after initialization, and initialized by a simple
// side-effect-free expression, substituting a copy of the initializer at
// the single use.
func runVariableInlining(ctx *Context) bool {
	candidates := make(map[*ast.Symbol]ast.Expr)

	collect := func(d *ast.VariableDecl) {
		if d.Symbol == nil || d.Init == nil || d.Flags().Has(ast.FlagDead) {
			return
		}

		if d.Qualifier.Storage != types.StorageNone && d.Qualifier.Storage != types.StorageConst {
			return
		}

		if ctx.reads[d.Symbol] != 1 || ctx.writes[d.Symbol] != 0 {
			return
		}

		if !isSimpleInit(d.Init) || hasSideEffect(d.Init) {
			return
		}

		candidates[d.Symbol] = d.Init
	}

	for _, f := range ctx.Root.Functions {
		if f.Body != nil {
			eachDeclStmt(f.Body, collect)
		}
	}

	if len(candidates) == 0 {
		return false
	}

	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		id, ok := e.(*ast.IdentExpr)
		if !ok || id.Symbol == nil {
			return e
		}

		init, ok := candidates[id.Symbol]
		if !ok {
			return e
		}

		changed = true

		return ast.CloneExpr(init)
	})

	if !changed {
		return false
	}

	// The declarations are now unreferenced; flag them for cleanup.
	flagInlined := func(d *ast.VariableDecl) {
		if d.Symbol != nil {
			if _, ok := candidates[d.Symbol]; ok {
				d.SetFlags(d.Flags().Set(ast.FlagDead))
			}
		}
	}

	for _, f := range ctx.Root.Functions {
		if f.Body != nil {
			eachDeclStmt(f.Body, flagInlined)
		}
	}

	return true
}

// isSimpleInit reports whether e is simple enough to duplicate: a literal,
// an identifier, a unary or binary application of simple operands, or a
// constructor/builtin call of at most four simple arguments.
func isSimpleInit(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.LiteralExpr, *ast.IdentExpr:
		return true
	case *ast.UnaryExpr:
		return isSimpleInit(v.Operand)
	case *ast.BinaryExpr:
		return isSimpleInit(v.Left) && isSimpleInit(v.Right)
	case *ast.CallExpr:
		if !v.Constructor && !v.Builtin {
			return false
		}

		if len(v.Args) > maxInlineArgs {
			return false
		}

		for _, a := range v.Args {
			if !isSimpleInit(a) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
