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
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// runUsageAnalysis recomputes per-symbol read/write counts and per-name
// call counts from scratch. Assignment left-hand sides (including compound
// assignments) count as writes; `++`/`--` count as both a read and a write.
func runUsageAnalysis(ctx *Context) bool {
	ctx.reads = make(map[*ast.Symbol]int)
	ctx.writes = make(map[*ast.Symbol]int)
	ctx.calls = make(map[string]int)

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		switch v := e.(type) {
		case *ast.IdentExpr:
			if v.Symbol != nil {
				ctx.reads[v.Symbol]++
			}
		case *ast.BinaryExpr:
			if isAssignOp(v.Op) {
				if sym := rootSymbol(v.Left); sym != nil {
					ctx.writes[sym]++
					// The post-order walk already counted the LHS identifier
					// as a read; a plain `=` does not read its target.
					if v.Op == token.ASSIGN {
						ctx.reads[sym]--
					}
				}
			}
		case *ast.UnaryExpr:
			if v.Op == token.INCREMENT || v.Op == token.DECREMENT {
				if sym := rootSymbol(v.Operand); sym != nil {
					ctx.writes[sym]++
				}
			}
		case *ast.CallExpr:
			if !v.Constructor {
				ctx.calls[v.Name]++
			}
		}

		return e
	})

	return false
}

// rootSymbol resolves the symbol ultimately written through an lvalue
// expression (an identifier, possibly behind swizzles and subscripts).
func rootSymbol(e ast.Expr) *ast.Symbol {
	for {
		switch v := e.(type) {
		case *ast.IdentExpr:
			return v.Symbol
		case *ast.MemberExpr:
			e = v.Object
		case *ast.SubscriptExpr:
			e = v.Object
		default:
			return nil
		}
	}
}

// runConstantAnalysis records every `const` declaration initialized by a
// literal, for the propagation pass to substitute.
func runConstantAnalysis(ctx *Context) bool {
	ctx.constants = make(map[*ast.Symbol]*ast.LiteralExpr)

	record := func(d *ast.VariableDecl) {
		if d.Qualifier.Storage != types.StorageConst || d.Symbol == nil {
			return
		}

		if lit, ok := d.Init.(*ast.LiteralExpr); ok {
			ctx.constants[d.Symbol] = lit
		}
	}

	for _, g := range ctx.Root.Globals {
		record(g)
	}

	for _, f := range ctx.Root.Functions {
		if f.Body != nil {
			eachDeclStmt(f.Body, record)
		}
	}

	return false
}

// eachDeclStmt visits every local variable declaration under a statement.
func eachDeclStmt(s ast.Stmt, fn func(*ast.VariableDecl)) {
	switch v := s.(type) {
	case *ast.BlockStmt:
		for _, inner := range v.Stmts {
			eachDeclStmt(inner, fn)
		}
	case *ast.DeclStmt:
		for _, d := range v.Decls {
			fn(d)
		}
	case *ast.IfStmt:
		eachDeclStmt(v.Then, fn)

		if v.Else != nil {
			eachDeclStmt(v.Else, fn)
		}
	case *ast.ForStmt:
		if v.Init != nil {
			eachDeclStmt(v.Init, fn)
		}

		eachDeclStmt(v.Body, fn)
	case *ast.WhileStmt:
		eachDeclStmt(v.Body, fn)
	case *ast.DoWhileStmt:
		eachDeclStmt(v.Body, fn)
	case *ast.SwitchStmt:
		for _, cs := range v.Cases {
			for _, inner := range cs.Stmts {
				eachDeclStmt(inner, fn)
			}
		}
	}
}
