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

// runConstantPropagation replaces identifier reads whose resolved symbol
// has a known literal value with a copy of that literal. Write positions
// (assignment left-hand sides, increment/decrement operands) are skipped by
// a dedicated walk rather than the shared post-order mapper.
func runConstantPropagation(ctx *Context) bool {
	if len(ctx.constants) == 0 {
		return false
	}

	p := &propagator{ctx: ctx}

	for _, g := range ctx.Root.Globals {
		if g.Init != nil {
			g.Init = p.expr(g.Init)
		}
	}

	for _, f := range ctx.Root.Functions {
		if f.Body != nil {
			p.stmt(f.Body)
		}
	}

	return p.changed
}

type propagator struct {
	ctx     *Context
	changed bool
}

func (p *propagator) expr(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case nil:
		return nil
	case *ast.IdentExpr:
		if v.Symbol == nil {
			return v
		}

		lit, known := p.ctx.constants[v.Symbol]
		if !known {
			return v
		}

		p.changed = true

		return ast.CloneExpr(lit)
	case *ast.BinaryExpr:
		if !isAssignOp(v.Op) {
			v.Left = p.expr(v.Left)
		} else if sub, ok := v.Left.(*ast.SubscriptExpr); ok {
			// The write target's index is still a read position.
			sub.Index = p.expr(sub.Index)
		}

		v.Right = p.expr(v.Right)
	case *ast.UnaryExpr:
		if v.Op != token.INCREMENT && v.Op != token.DECREMENT {
			v.Operand = p.expr(v.Operand)
		}
	case *ast.TernaryExpr:
		v.Cond = p.expr(v.Cond)
		v.Then = p.expr(v.Then)
		v.Else = p.expr(v.Else)
	case *ast.CallExpr:
		for i, a := range v.Args {
			v.Args[i] = p.expr(a)
		}
	case *ast.MemberExpr:
		v.Object = p.expr(v.Object)
	case *ast.SubscriptExpr:
		v.Object = p.expr(v.Object)
		v.Index = p.expr(v.Index)
	case *ast.InitListExpr:
		for i, el := range v.Elements {
			v.Elements[i] = p.expr(el)
		}
	}

	return e
}

func (p *propagator) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case nil:
	case *ast.BlockStmt:
		for _, inner := range v.Stmts {
			p.stmt(inner)
		}
	case *ast.ExprStmt:
		v.Expr = p.expr(v.Expr)
	case *ast.DeclStmt:
		for _, d := range v.Decls {
			if d.Init != nil {
				d.Init = p.expr(d.Init)
			}
		}
	case *ast.IfStmt:
		v.Cond = p.expr(v.Cond)
		p.stmt(v.Then)
		p.stmt(v.Else)
	case *ast.ForStmt:
		p.stmt(v.Init)

		if v.Cond != nil {
			v.Cond = p.expr(v.Cond)
		}

		if v.Post != nil {
			v.Post = p.expr(v.Post)
		}

		p.stmt(v.Body)
	case *ast.WhileStmt:
		v.Cond = p.expr(v.Cond)
		p.stmt(v.Body)
	case *ast.DoWhileStmt:
		p.stmt(v.Body)
		v.Cond = p.expr(v.Cond)
	case *ast.SwitchStmt:
		v.Cond = p.expr(v.Cond)

		for _, cs := range v.Cases {
			for _, inner := range cs.Stmts {
				p.stmt(inner)
			}
		}
	case *ast.ReturnStmt:
		if v.Value != nil {
			v.Value = p.expr(v.Value)
		}
	}
}
