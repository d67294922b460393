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
)

// runDeadBranchElimination folds `if` statements with literal boolean
// conditions into the taken branch and removes `while(false)` loops.
// Ternaries with literal conditions are the folding pass's job.
func runDeadBranchElimination(ctx *Context) bool {
	changed := false

	mapStmts(ctx.Root, func(s ast.Stmt) ast.Stmt {
		switch v := s.(type) {
		case *ast.IfStmt:
			cond, ok := v.Cond.(*ast.LiteralExpr)
			if !ok {
				return s
			}

			b, isBool := cond.BoolValue()
			if !isBool {
				return s
			}

			changed = true

			if b {
				return v.Then
			}

			return v.Else
		case *ast.WhileStmt:
			if cond, ok := v.Cond.(*ast.LiteralExpr); ok {
				if b, isBool := cond.BoolValue(); isBool && !b {
					changed = true
					return nil
				}
			}
		}

		return s
	})

	return changed
}

// runUnreachableElimination drops statements following a return, discard,
// break or continue in the same statement list.
func runUnreachableElimination(ctx *Context) bool {
	changed := false

	truncate := func(stmts []ast.Stmt) []ast.Stmt {
		for i, s := range stmts {
			if isTerminator(s) && i+1 < len(stmts) {
				changed = true
				return stmts[:i+1]
			}
		}

		return stmts
	}

	eachStmtList(ctx.Root, truncate)

	return changed
}

func isTerminator(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.ReturnStmt, *ast.DiscardStmt, *ast.BreakStmt, *ast.ContinueStmt:
		return true
	default:
		return false
	}
}

// eachStmtList applies fn to every []ast.Stmt holder in the shader,
// replacing the list with fn's return.
func eachStmtList(root *ast.Root, fn func([]ast.Stmt) []ast.Stmt) {
	for _, f := range root.Functions {
		if f.Body != nil {
			eachStmtListIn(f.Body, fn)
		}
	}
}

func eachStmtListIn(s ast.Stmt, fn func([]ast.Stmt) []ast.Stmt) {
	switch v := s.(type) {
	case nil:
	case *ast.BlockStmt:
		v.Stmts = fn(v.Stmts)

		for _, inner := range v.Stmts {
			eachStmtListIn(inner, fn)
		}
	case *ast.IfStmt:
		eachStmtListIn(v.Then, fn)
		eachStmtListIn(v.Else, fn)
	case *ast.ForStmt:
		eachStmtListIn(v.Body, fn)
	case *ast.WhileStmt:
		eachStmtListIn(v.Body, fn)
	case *ast.DoWhileStmt:
		eachStmtListIn(v.Body, fn)
	case *ast.SwitchStmt:
		for _, cs := range v.Cases {
			cs.Stmts = fn(cs.Stmts)

			for _, inner := range cs.Stmts {
				eachStmtListIn(inner, fn)
			}
		}
	}
}

// runBlockCleanup splices declaration-free nested blocks into their parent
// statement list, removes `if` statements whose branches are both empty
// (when the condition is pure), and inverts `if(c){} else s` into
// `if(!c) s`.
func runBlockCleanup(ctx *Context) bool {
	changed := false

	eachStmtList(ctx.Root, func(stmts []ast.Stmt) []ast.Stmt {
		flat := make([]ast.Stmt, 0, len(stmts))

		for _, s := range stmts {
			if b, ok := s.(*ast.BlockStmt); ok && !declaresAnything(b) {
				changed = true
				flat = append(flat, b.Stmts...)

				continue
			}

			flat = append(flat, s)
		}

		return flat
	})

	mapStmts(ctx.Root, func(s ast.Stmt) ast.Stmt {
		switch v := s.(type) {
		case *ast.IfStmt:
			thenEmpty := isEmptyStmt(v.Then)
			elseEmpty := isEmptyStmt(v.Else)

			switch {
			case thenEmpty && elseEmpty:
				if hasSideEffect(v.Cond) {
					return s
				}

				changed = true

				return nil
			case thenEmpty && v.Else != nil:
				changed = true

				not := &ast.UnaryExpr{Op: token.NOT, Operand: v.Cond, Prefix: true}
				not.Header = ast.NewHeader(v.Cond.Span())
				v.Cond = not
				v.Then = v.Else
				v.Else = nil

				return v
			case v.Else != nil && elseEmpty:
				changed = true
				v.Else = nil

				return v
			}
		}

		return s
	})

	return changed
}

// declaresAnything reports whether a block directly contains declarations:
// splicing such a block into its parent would widen their scope.
func declaresAnything(b *ast.BlockStmt) bool {
	for _, s := range b.Stmts {
		if _, ok := s.(*ast.DeclStmt); ok {
			return true
		}
	}

	return false
}

func isEmptyStmt(s ast.Stmt) bool {
	if s == nil {
		return true
	}

	b, ok := s.(*ast.BlockStmt)

	return ok && len(b.Stmts) == 0
}

// runDeclarationCleanup drops any node flagged DEAD from its parent list.
func runDeclarationCleanup(ctx *Context) bool {
	changed := false

	for _, d := range append([]ast.Decl(nil), ctx.Root.Decls...) {
		if d.Flags().Has(ast.FlagDead) {
			ctx.Root.RemoveDecl(d)

			changed = true
		}
	}

	mapStmts(ctx.Root, func(s ast.Stmt) ast.Stmt {
		if s.Flags().Has(ast.FlagDead) {
			changed = true
			return nil
		}

		if ds, ok := s.(*ast.DeclStmt); ok {
			kept := ds.Decls[:0]

			for _, d := range ds.Decls {
				if d.Flags().Has(ast.FlagDead) {
					changed = true
				} else {
					kept = append(kept, d)
				}
			}

			ds.Decls = kept

			if len(ds.Decls) == 0 {
				changed = true
				return nil
			}
		}

		return s
	})

	return changed
}
