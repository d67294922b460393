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

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// doubleToFloat maps each double-precision base type to its single-precision
// downgrade.
var doubleToFloat = map[types.Base]types.Base{
	types.DOUBLE: types.FLOAT,
	types.DVEC2:  types.VEC2,
	types.DVEC3:  types.VEC3,
	types.DVEC4:  types.VEC4,
}

// registerTypeRules installs the type-compatibility checks: non-square
// matrices below 1.20 are rejected, double-precision types below 4.00 are
// downgraded to float with a precision-loss warning (or promoted via
// extension when one exists for the target).
func registerTypeRules(reg *Registry) {
	reg.RegisterNode(&NodeRule{
		Name:     "nonsquare-matrix-check",
		Category: CategoryType,
		Variant:  "VariableDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.NONSQUARE_MATRICES, target)
		},
		CanTransform: func(node ast.Node) bool {
			base := node.(*ast.VariableDecl).Type.Base
			rows, cols, ok := base.IsMatrix()

			return ok && rows != cols
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			ctx.Errorf(source.TYPE, v.Span(),
				"non-square matrix type %s requires 1.20; target is %s", v.Type.Base, ctx.Target)

			return nil, false
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "double-precision-downgrade",
		Category: CategoryType,
		Priority: CategoryType.Priority() - 1,
		Variant:  "VariableDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.DOUBLE_PRECISION, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.VariableDecl).Type.Base.IsDouble()
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			if ext, ok := ctx.Catalog.PromotingExtension(version.DOUBLE_PRECISION, ctx.Target); ok {
				ctx.RequireExtension(ext.Name)
				return nil, false
			}

			replacement, ok := doubleToFloat[v.Type.Base]
			if !ok {
				ctx.Errorf(source.TYPE, v.Span(),
					"double-precision type %s is not expressible at %s", v.Type.Base, ctx.Target)

				return nil, false
			}

			ctx.Warnf(source.TYPE, v.Span(),
				"double-precision %q downgraded to %s at %s; precision is lost", v.Name, replacement, ctx.Target)
			v.Type.Base = replacement

			return v, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "double-literal-downgrade",
		Category: CategoryType,
		Priority: CategoryType.Priority() - 1,
		Variant:  "LiteralExpr",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.DOUBLE_PRECISION, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.LiteralExpr).Kind == ast.LitDouble
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			if _, ok := ctx.Catalog.PromotingExtension(version.DOUBLE_PRECISION, ctx.Target); ok {
				return nil, false
			}

			lit := node.(*ast.LiteralExpr)
			lit.Kind = ast.LitFloat

			return lit, true
		},
	})
}
