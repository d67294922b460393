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
	"fmt"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// maxFragDataSlots bounds which gl_FragData indices a downgrade can bind;
// index 7 is the highest any 1.10-era implementation guarantees.
const maxFragDataSlots = 8

// registerOutputRules installs the fragment-output rewrites: gl_FragColor /
// gl_FragData replaced by user outputs on upgrade, user outputs mapped back
// onto the legacy built-ins on downgrade.
func registerOutputRules(reg *Registry) {
	upgradeApplies := func(src, target version.Version, stage version.Stage) bool {
		return stage == version.Fragment &&
			version.Available(version.GL_FRAGCOLOR, src) &&
			!version.Available(version.GL_FRAGCOLOR, target)
	}

	reg.RegisterNode(&NodeRule{
		Name:     "frag-color-upgrade",
		Category: CategoryOutput,
		Variant:  "IdentExpr",
		Applies:  upgradeApplies,
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.IdentExpr).Name == "gl_FragColor"
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			id := node.(*ast.IdentExpr)

			if !ctx.UsesFragColor {
				ctx.UsesFragColor = true
				ctx.PrimaryOutputName = ctx.FreshOutputName("fragColor")
			}

			id.Name = ctx.PrimaryOutputName
			id.Symbol = nil

			return id, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "frag-data-upgrade",
		Category: CategoryOutput,
		Variant:  "SubscriptExpr",
		Applies:  upgradeApplies,
		CanTransform: func(node ast.Node) bool {
			sub := node.(*ast.SubscriptExpr)
			id, ok := sub.Object.(*ast.IdentExpr)

			return ok && id.Name == "gl_FragData"
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			sub := node.(*ast.SubscriptExpr)

			lit, ok := sub.Index.(*ast.LiteralExpr)
			if !ok {
				ctx.Warnf(source.UNSUPPORTED_FEATURE, sub.Span(),
					"gl_FragData indexed by a non-constant expression cannot be rewritten")

				return nil, false
			}

			idx, ok := lit.IntValue()
			if !ok || idx < 0 {
				return nil, false
			}

			ctx.UsesFragData = true
			ctx.FragDataIndices[int(idx)] = true

			if int(idx) > ctx.MaxFragDataIndex {
				ctx.MaxFragDataIndex = int(idx)
			}

			id := &ast.IdentExpr{Name: fmt.Sprintf("fragData_%d", idx)}
			id.Header = ast.NewHeader(sub.Span())

			return id, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "frag-output-downgrade-decl",
		Category: CategoryOutput,
		Variant:  "VariableDecl",
		Applies: func(src, target version.Version, stage version.Stage) bool {
			return stage == version.Fragment &&
				version.Available(version.USER_FRAGMENT_OUTPUT, src) &&
				!version.Available(version.USER_FRAGMENT_OUTPUT, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.VariableDecl).Qualifier.Storage == types.StorageOut
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			loc, hasLoc := v.Qualifier.Layout.HasLocation()

			switch {
			case !hasLoc || loc == 0:
				ctx.OutputRenames[v.Name] = OutputTarget{Name: "gl_FragColor"}
			case loc < maxFragDataSlots:
				ctx.Warnf(source.UNSUPPORTED_FEATURE, v.Span(),
					"output %q at location %d maps to gl_FragData[%d] below 1.30", v.Name, loc, loc)
				ctx.OutputRenames[v.Name] = OutputTarget{Name: "gl_FragData", Index: loc, Subscript: true}
			default:
				ctx.Errorf(source.UNSUPPORTED_FEATURE, v.Span(),
					"output %q at location %d has no gl_FragData slot below 1.30", v.Name, loc)

				return nil, false
			}

			v.SetFlags(v.Flags().Set(ast.FlagDead))

			return v, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "frag-output-downgrade-ref",
		Category: CategoryOutput,
		Priority: CategoryOutput.Priority() - 1,
		Variant:  "IdentExpr",
		Applies: func(src, target version.Version, stage version.Stage) bool {
			return stage == version.Fragment &&
				version.Available(version.USER_FRAGMENT_OUTPUT, src) &&
				!version.Available(version.USER_FRAGMENT_OUTPUT, target)
		},
		CanTransform: func(node ast.Node) bool {
			return true
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			id := node.(*ast.IdentExpr)

			target, ok := ctx.OutputRenames[id.Name]
			if !ok {
				return nil, false
			}

			if !target.Subscript {
				id.Name = target.Name
				id.Symbol = nil

				return id, true
			}

			obj := &ast.IdentExpr{Name: target.Name}
			obj.Header = ast.NewHeader(id.Span())

			idxLit := &ast.LiteralExpr{Kind: ast.LitInt, Text: fmt.Sprintf("%d", target.Index), Value: int64(target.Index)}
			idxLit.Header = ast.NewHeader(id.Span())

			sub := &ast.SubscriptExpr{Object: obj, Index: idxLit}
			sub.Header = ast.NewHeader(id.Span())

			return sub, true
		},
	})
}
