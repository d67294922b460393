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

import "github.com/gogpu/glslx/pkg/glsl/ast"

// mapExprs applies fn post-order to every expression in the shader,
// splicing each return value back into the owning slot.
func mapExprs(root *ast.Root, fn func(ast.Expr) ast.Expr) {
	for _, g := range root.Globals {
		if g.Init != nil {
			g.Init = mapExpr(g.Init, fn)
		}
	}

	for _, f := range root.Functions {
		if f.Body != nil {
			mapExprsInStmt(f.Body, fn)
		}
	}
}

// mapExpr applies fn post-order over one expression tree.
func mapExpr(e ast.Expr, fn func(ast.Expr) ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}

	switch v := e.(type) {
	case *ast.BinaryExpr:
		v.Left = mapExpr(v.Left, fn)
		v.Right = mapExpr(v.Right, fn)
	case *ast.UnaryExpr:
		v.Operand = mapExpr(v.Operand, fn)
	case *ast.TernaryExpr:
		v.Cond = mapExpr(v.Cond, fn)
		v.Then = mapExpr(v.Then, fn)
		v.Else = mapExpr(v.Else, fn)
	case *ast.CallExpr:
		for i, a := range v.Args {
			v.Args[i] = mapExpr(a, fn)
		}
	case *ast.MemberExpr:
		v.Object = mapExpr(v.Object, fn)
	case *ast.SubscriptExpr:
		v.Object = mapExpr(v.Object, fn)
		v.Index = mapExpr(v.Index, fn)
	case *ast.InitListExpr:
		for i, el := range v.Elements {
			v.Elements[i] = mapExpr(el, fn)
		}
	}

	return fn(e)
}

// mapExprsInStmt applies fn to every expression nested under one statement.
func mapExprsInStmt(s ast.Stmt, fn func(ast.Expr) ast.Expr) {
	if s == nil {
		return
	}

	switch v := s.(type) {
	case *ast.BlockStmt:
		for _, inner := range v.Stmts {
			mapExprsInStmt(inner, fn)
		}
	case *ast.ExprStmt:
		v.Expr = mapExpr(v.Expr, fn)
	case *ast.DeclStmt:
		for _, d := range v.Decls {
			if d.Init != nil {
				d.Init = mapExpr(d.Init, fn)
			}
		}
	case *ast.IfStmt:
		v.Cond = mapExpr(v.Cond, fn)
		mapExprsInStmt(v.Then, fn)
		mapExprsInStmt(v.Else, fn)
	case *ast.ForStmt:
		mapExprsInStmt(v.Init, fn)

		if v.Cond != nil {
			v.Cond = mapExpr(v.Cond, fn)
		}

		if v.Post != nil {
			v.Post = mapExpr(v.Post, fn)
		}

		mapExprsInStmt(v.Body, fn)
	case *ast.WhileStmt:
		v.Cond = mapExpr(v.Cond, fn)
		mapExprsInStmt(v.Body, fn)
	case *ast.DoWhileStmt:
		mapExprsInStmt(v.Body, fn)
		v.Cond = mapExpr(v.Cond, fn)
	case *ast.SwitchStmt:
		v.Cond = mapExpr(v.Cond, fn)

		for _, cs := range v.Cases {
			if cs.Value != nil {
				cs.Value = mapExpr(cs.Value, fn)
			}

			for _, inner := range cs.Stmts {
				mapExprsInStmt(inner, fn)
			}
		}
	case *ast.ReturnStmt:
		if v.Value != nil {
			v.Value = mapExpr(v.Value, fn)
		}
	}
}

// mapStmts applies fn post-order to every statement in the shader. fn
// returning nil removes the statement from its owning list; mandatory
// single-statement slots (loop bodies, if branches) get an empty block
// instead.
func mapStmts(root *ast.Root, fn func(ast.Stmt) ast.Stmt) {
	for _, f := range root.Functions {
		if f.Body != nil {
			mapStmtsInBlock(f.Body, fn)
		}
	}
}

func mapStmtsInBlock(b *ast.BlockStmt, fn func(ast.Stmt) ast.Stmt) {
	out := b.Stmts[:0]

	for _, s := range b.Stmts {
		if r := mapOneStmt(s, fn); r != nil {
			out = append(out, r)
		}
	}

	b.Stmts = out
}

func mapOneStmt(s ast.Stmt, fn func(ast.Stmt) ast.Stmt) ast.Stmt {
	if s == nil {
		return nil
	}

	switch v := s.(type) {
	case *ast.BlockStmt:
		mapStmtsInBlock(v, fn)
	case *ast.IfStmt:
		v.Then = required(mapOneStmt(v.Then, fn))
		v.Else = mapOneStmt(v.Else, fn)
	case *ast.ForStmt:
		v.Init = mapOneStmt(v.Init, fn)
		v.Body = required(mapOneStmt(v.Body, fn))
	case *ast.WhileStmt:
		v.Body = required(mapOneStmt(v.Body, fn))
	case *ast.DoWhileStmt:
		v.Body = required(mapOneStmt(v.Body, fn))
	case *ast.SwitchStmt:
		for _, cs := range v.Cases {
			out := cs.Stmts[:0]

			for _, inner := range cs.Stmts {
				if r := mapOneStmt(inner, fn); r != nil {
					out = append(out, r)
				}
			}

			cs.Stmts = out
		}
	}

	return fn(s)
}

// required substitutes an empty block for a deleted statement in a slot
// the grammar cannot leave empty.
func required(s ast.Stmt) ast.Stmt {
	if s != nil {
		return s
	}

	return &ast.BlockStmt{}
}
