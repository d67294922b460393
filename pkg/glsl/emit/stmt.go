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
package emit

import "github.com/gogpu/glslx/pkg/glsl/ast"

// emitBlock renders `{ ... }` with the opening brace on the current line;
// an empty body prints as `{}`.
func (e *Emitter) emitBlock(b *ast.BlockStmt) {
	if len(b.Stmts) == 0 {
		e.str("{}")
		return
	}

	e.str("{")
	e.nl()
	e.indent++

	for _, s := range b.Stmts {
		e.emitStmt(s)
	}

	e.indent--
	e.writeIndent()
	e.str("}")
}

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.BlockStmt:
		e.writeIndent()
		e.emitBlock(v)
		e.nl()
	case *ast.ExprStmt:
		e.writeIndent()
		e.emitExpr(v.Expr, precNone)
		e.str(";")
		e.nl()
	case *ast.DeclStmt:
		for _, d := range v.Decls {
			e.writeIndent()
			e.emitVariableDecl(d)
			e.str(";")
			e.nl()
		}
	case *ast.IfStmt:
		e.writeIndent()
		e.emitIf(v)
		e.nl()
	case *ast.ForStmt:
		e.writeIndent()
		e.str("for (")

		if v.Init != nil {
			e.emitInlineStmt(v.Init)
		} else {
			e.str(";")
		}

		e.str(" ")

		if v.Cond != nil {
			e.emitExpr(v.Cond, precNone)
		}

		e.str("; ")

		if v.Post != nil {
			e.emitExpr(v.Post, precNone)
		}

		e.str(") ")
		e.emitBody(v.Body)
		e.nl()
	case *ast.WhileStmt:
		e.writeIndent()
		e.str("while (")
		e.emitExpr(v.Cond, precNone)
		e.str(") ")
		e.emitBody(v.Body)
		e.nl()
	case *ast.DoWhileStmt:
		e.writeIndent()
		e.str("do ")
		e.emitBody(v.Body)
		e.str(" while (")
		e.emitExpr(v.Cond, precNone)
		e.str(");")
		e.nl()
	case *ast.SwitchStmt:
		e.writeIndent()
		e.str("switch (")
		e.emitExpr(v.Cond, precNone)
		e.str(") {")
		e.nl()

		for _, cs := range v.Cases {
			e.emitCase(cs)
		}

		e.writeIndent()
		e.str("}")
		e.nl()
	case *ast.ReturnStmt:
		e.writeIndent()
		e.str("return")

		if v.Value != nil {
			e.str(" ")
			e.emitExpr(v.Value, precNone)
		}

		e.str(";")
		e.nl()
	case *ast.BreakStmt:
		e.writeIndent()
		e.str("break;")
		e.nl()
	case *ast.ContinueStmt:
		e.writeIndent()
		e.str("continue;")
		e.nl()
	case *ast.DiscardStmt:
		e.writeIndent()
		e.str("discard;")
		e.nl()
	}
}

// emitIf renders an if/else chain with `else`/`else if` on the closing
// brace's line.
func (e *Emitter) emitIf(v *ast.IfStmt) {
	e.str("if (")
	e.emitExpr(v.Cond, precNone)
	e.str(") ")
	e.emitBody(v.Then)

	if v.Else == nil {
		return
	}

	e.str(" else ")

	if elif, ok := v.Else.(*ast.IfStmt); ok {
		e.emitIf(elif)
		return
	}

	e.emitBody(v.Else)
}

// emitBody renders a statement in a brace-expected position, wrapping
// non-block statements in braces for canonical form.
func (e *Emitter) emitBody(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStmt); ok {
		e.emitBlock(b)
		return
	}

	e.str("{")
	e.nl()
	e.indent++
	e.emitStmt(s)
	e.indent--
	e.writeIndent()
	e.str("}")
}

// emitInlineStmt renders a for-init clause without indentation or a
// trailing newline.
func (e *Emitter) emitInlineStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.DeclStmt:
		for i, d := range v.Decls {
			if i > 0 {
				e.str(", ")
			}

			e.emitVariableDecl(d)
		}

		e.str(";")
	case *ast.ExprStmt:
		e.emitExpr(v.Expr, precNone)
		e.str(";")
	default:
		e.str(";")
	}
}

func (e *Emitter) emitCase(cs *ast.CaseStmt) {
	e.writeIndent()

	if cs.Default {
		e.str("default:")
	} else {
		e.str("case ")
		e.emitExpr(cs.Value, precNone)
		e.str(":")
	}

	e.nl()
	e.indent++

	for _, s := range cs.Stmts {
		e.emitStmt(s)
	}

	e.indent--
}
