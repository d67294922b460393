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
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// registerLayoutRules installs the layout-qualifier downgrades: when the
// target cannot express layout(location=...) or layout(binding=...)
// natively, the promoting extension is required if available; otherwise the
// qualifier is stripped and the host directed to bind by name.
func registerLayoutRules(reg *Registry) {
	reg.RegisterNode(&NodeRule{
		Name:     "layout-location-downgrade",
		Category: CategoryLayout,
		Variant:  "VariableDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.LAYOUT_LOCATION_INPUT, target)
		},
		CanTransform: func(node ast.Node) bool {
			_, has := node.(*ast.VariableDecl).Qualifier.Layout.HasLocation()
			return has
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)
			loc, _ := v.Qualifier.Layout.HasLocation()

			if ext, ok := ctx.Catalog.PromotingExtension(version.LAYOUT_LOCATION_INPUT, ctx.Target); ok {
				ctx.RequireExtension(ext.Name)
				return nil, false
			}

			v.Qualifier.Layout.ClearLocation()
			ctx.AttributeLocations[v.Name] = loc
			ctx.Warnf(source.UNSUPPORTED_FEATURE, v.Span(),
				"layout(location=%d) on %q is not expressible at %s; bind location %d via glBindAttribLocation",
				loc, v.Name, ctx.Target, loc)

			dropEmptyLayout(v)

			return v, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "layout-binding-downgrade",
		Category: CategoryLayout,
		Priority: CategoryLayout.Priority() - 1,
		Variant:  "VariableDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.LAYOUT_BINDING, target)
		},
		CanTransform: func(node ast.Node) bool {
			_, has := node.(*ast.VariableDecl).Qualifier.Layout.HasBinding()
			return has
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)
			binding, _ := v.Qualifier.Layout.HasBinding()

			if ext, ok := ctx.Catalog.PromotingExtension(version.LAYOUT_BINDING, ctx.Target); ok {
				ctx.RequireExtension(ext.Name)
				return nil, false
			}

			v.Qualifier.Layout.ClearBinding()
			ctx.Warnf(source.UNSUPPORTED_FEATURE, v.Span(),
				"layout(binding=%d) on %q is not expressible at %s; set unit %d via glUniform1i",
				binding, v.Name, ctx.Target, binding)

			dropEmptyLayout(v)

			return v, true
		},
	})

	// Below 1.40 no layout qualifier exists at all; strip whatever the
	// location/binding rules left behind.
	reg.RegisterNode(&NodeRule{
		Name:     "layout-strip",
		Category: CategoryLayout,
		Priority: CategoryLayout.Priority() - 2,
		Variant:  "VariableDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.LAYOUT_QUALIFIERS, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.VariableDecl).Qualifier.Layout != nil
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			if !v.Qualifier.Layout.IsEmpty() {
				ctx.Warnf(source.UNSUPPORTED_FEATURE, v.Span(),
					"layout qualifier on %q dropped: not expressible at %s; the host must bind by name",
					v.Name, ctx.Target)
			}

			v.Qualifier.Layout = nil

			return v, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "layout-strip-block",
		Category: CategoryLayout,
		Priority: CategoryLayout.Priority() - 2,
		Variant:  "InterfaceBlockDecl",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.LAYOUT_QUALIFIERS, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.InterfaceBlockDecl).Qualifier.Layout != nil
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			b := node.(*ast.InterfaceBlockDecl)

			ctx.Warnf(source.UNSUPPORTED_FEATURE, b.Span(),
				"layout qualifier on block %q dropped: not expressible at %s", b.BlockName, ctx.Target)

			b.Qualifier.Layout = nil

			return b, true
		},
	})
}

func dropEmptyLayout(v *ast.VariableDecl) {
	if v.Qualifier.Layout.IsEmpty() {
		v.Qualifier.Layout = nil
	}
}
