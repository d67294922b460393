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

// rewriteExpr rewrites one expression post-order: children first, then the
// node itself, then any name-translation rules keyed on the (possibly
// already renamed) identifier.
func rewriteExpr(e ast.Expr, ctx *Context, reg *Registry) ast.Expr {
	if e == nil {
		return nil
	}

	switch v := e.(type) {
	case *ast.BinaryExpr:
		v.Left = rewriteExpr(v.Left, ctx, reg)
		v.Right = rewriteExpr(v.Right, ctx, reg)
	case *ast.UnaryExpr:
		v.Operand = rewriteExpr(v.Operand, ctx, reg)
	case *ast.TernaryExpr:
		v.Cond = rewriteExpr(v.Cond, ctx, reg)
		v.Then = rewriteExpr(v.Then, ctx, reg)
		v.Else = rewriteExpr(v.Else, ctx, reg)
	case *ast.CallExpr:
		for i, a := range v.Args {
			v.Args[i] = rewriteExpr(a, ctx, reg)
		}
	case *ast.MemberExpr:
		v.Object = rewriteExpr(v.Object, ctx, reg)
	case *ast.SubscriptExpr:
		// gl_FragData[i] is matched as a whole subscript node, so its
		// object identifier must not be rewritten on its own first.
		if id, ok := v.Object.(*ast.IdentExpr); !ok || id.Name != "gl_FragData" {
			v.Object = rewriteExpr(v.Object, ctx, reg)
		}

		v.Index = rewriteExpr(v.Index, ctx, reg)
	case *ast.InitListExpr:
		for i, el := range v.Elements {
			v.Elements[i] = rewriteExpr(el, ctx, reg)
		}
	}

	out := applyNodeRules(e, ctx, reg).(ast.Expr)

	if id, ok := out.(*ast.IdentExpr); ok {
		applyNameRules(id, ctx, reg)
	}

	return out
}

// applyNameRules renames an identifier through the registry's
// name-translation rules, in the direction of the current compile.
func applyNameRules(id *ast.IdentExpr, ctx *Context, reg *Registry) {
	for _, rule := range reg.NameRulesFor(id.Name) {
		if !rule.Applies(ctx.Source, ctx.Target, ctx.Stage) {
			continue
		}

		var (
			newName string
			ok      bool
		)

		switch {
		case ctx.Upgrading() && rule.Upgrade != nil:
			newName, ok = rule.Upgrade(id.Name)
		case ctx.Downgrading() && rule.Downgrade != nil:
			newName, ok = rule.Downgrade(id.Name)
		}

		if ok {
			id.Name = newName
			id.Symbol = nil

			return
		}
	}
}
