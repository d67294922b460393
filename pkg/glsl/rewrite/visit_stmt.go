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

import "github.com/gogpu/glslx/pkg/glsl/ast"

// rewriteBlock rewrites every statement of a block in order, dropping any
// statement a rule nil'd out.
func rewriteBlock(b *ast.BlockStmt, ctx *Context, reg *Registry) *ast.BlockStmt {
	out := b.Stmts[:0]

	for _, s := range b.Stmts {
		if r := rewriteStmt(s, ctx, reg); r != nil {
			out = append(out, r)
		}
	}

	b.Stmts = out

	return applyNodeRules(b, ctx, reg).(*ast.BlockStmt)
}

// rewriteStmt rewrites one statement post-order: its nested expressions and
// sub-statements first, then the statement node itself.
func rewriteStmt(s ast.Stmt, ctx *Context, reg *Registry) ast.Stmt {
	if s == nil {
		return nil
	}

	switch v := s.(type) {
	case *ast.BlockStmt:
		return rewriteBlock(v, ctx, reg)
	case *ast.ExprStmt:
		v.Expr = rewriteExpr(v.Expr, ctx, reg)
	case *ast.DeclStmt:
		for i, d := range v.Decls {
			v.Decls[i] = rewriteVariableDecl(d, ctx, reg)
		}
	case *ast.IfStmt:
		v.Cond = rewriteExpr(v.Cond, ctx, reg)
		v.Then = rewriteStmt(v.Then, ctx, reg)
		v.Else = rewriteStmt(v.Else, ctx, reg)
	case *ast.ForStmt:
		v.Init = rewriteStmt(v.Init, ctx, reg)

		if v.Cond != nil {
			v.Cond = rewriteExpr(v.Cond, ctx, reg)
		}

		if v.Post != nil {
			v.Post = rewriteExpr(v.Post, ctx, reg)
		}

		v.Body = rewriteStmt(v.Body, ctx, reg)
	case *ast.WhileStmt:
		v.Cond = rewriteExpr(v.Cond, ctx, reg)
		v.Body = rewriteStmt(v.Body, ctx, reg)
	case *ast.DoWhileStmt:
		v.Body = rewriteStmt(v.Body, ctx, reg)
		v.Cond = rewriteExpr(v.Cond, ctx, reg)
	case *ast.SwitchStmt:
		v.Cond = rewriteExpr(v.Cond, ctx, reg)

		for _, cs := range v.Cases {
			if cs.Value != nil {
				cs.Value = rewriteExpr(cs.Value, ctx, reg)
			}

			for i, inner := range cs.Stmts {
				cs.Stmts[i] = rewriteStmt(inner, ctx, reg)
			}
		}
	case *ast.ReturnStmt:
		if v.Value != nil {
			v.Value = rewriteExpr(v.Value, ctx, reg)
		}
	}

	return applyStmtRules(s, ctx, reg)
}

func applyStmtRules(s ast.Stmt, ctx *Context, reg *Registry) ast.Stmt {
	out := applyNodeRules(s, ctx, reg)
	if out == nil {
		return nil
	}

	return out.(ast.Stmt)
}
