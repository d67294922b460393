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

// rewriteDecl rewrites a top-level or member declaration post-order: its
// children first, then the declaration node itself.
func rewriteDecl(d ast.Decl, ctx *Context, reg *Registry) ast.Decl {
	if d == nil {
		return nil
	}

	switch v := d.(type) {
	case *ast.VariableDecl:
		if v.Init != nil {
			v.Init = rewriteExpr(v.Init, ctx, reg)
		}
	case *ast.StructDecl:
		for i, m := range v.Members {
			v.Members[i] = rewriteVariableDecl(m, ctx, reg)
		}
	case *ast.InterfaceBlockDecl:
		for i, m := range v.Members {
			v.Members[i] = rewriteVariableDecl(m, ctx, reg)
		}
	case *ast.FunctionDecl:
		for _, p := range v.Params {
			applyNodeRules(p, ctx, reg)
		}

		if v.Body != nil {
			v.Body = rewriteBlock(v.Body, ctx, reg)
		}
	}

	return applyNodeRules(d, ctx, reg).(ast.Decl)
}

func rewriteVariableDecl(v *ast.VariableDecl, ctx *Context, reg *Registry) *ast.VariableDecl {
	if v.Init != nil {
		v.Init = rewriteExpr(v.Init, ctx, reg)
	}

	return applyNodeRules(v, ctx, reg).(*ast.VariableDecl)
}

// applyNodeRules runs every registered rule for node's variant, in
// descending priority order, returning the final node (which may be a
// distinct replacement spliced in by one of them).
func applyNodeRules(node ast.Node, ctx *Context, reg *Registry) ast.Node {
	current := node

	for _, rule := range reg.NodeRulesFor(variantTag(current)) {
		if !rule.Applies(ctx.Source, ctx.Target, ctx.Stage) {
			continue
		}

		if !rule.CanTransform(current) {
			continue
		}

		replacement, ok := rule.Transform(current, ctx)
		if !ok {
			continue
		}

		if replacement != current {
			// A distinct replacement splices in and is not re-entered.
			return replacement
		}

		current = replacement
	}

	return current
}
