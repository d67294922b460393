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
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// registerQualifierRules installs the storage-qualifier rewrites across the
// 1.20/1.30 boundary: attribute/varying on the legacy side, in/out on the
// modern side, selected by stage.
func registerQualifierRules(reg *Registry) {
	reg.RegisterNode(&NodeRule{
		Name:     "storage-qualifier-upgrade",
		Category: CategoryQualifier,
		Variant:  "VariableDecl",
		Applies: func(src, target version.Version, _ version.Stage) bool {
			return src.Less(version.V130) && target.AtLeast(version.V130)
		},
		CanTransform: func(node ast.Node) bool {
			v := node.(*ast.VariableDecl)
			return v.Qualifier.Storage == types.StorageAttribute || v.Qualifier.Storage == types.StorageVarying
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			switch v.Qualifier.Storage {
			case types.StorageAttribute:
				v.Qualifier.Storage = types.StorageIn
			case types.StorageVarying:
				if ctx.Stage == version.Vertex {
					v.Qualifier.Storage = types.StorageOut
				} else {
					v.Qualifier.Storage = types.StorageIn
				}
			}

			return v, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "storage-qualifier-downgrade",
		Category: CategoryQualifier,
		Variant:  "VariableDecl",
		Applies: func(src, target version.Version, _ version.Stage) bool {
			return src.AtLeast(version.V130) && target.Less(version.V130)
		},
		CanTransform: func(node ast.Node) bool {
			v := node.(*ast.VariableDecl)
			return v.Qualifier.Storage == types.StorageIn || v.Qualifier.Storage == types.StorageOut
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			v := node.(*ast.VariableDecl)

			switch {
			case ctx.Stage == version.Vertex && v.Qualifier.Storage == types.StorageIn:
				v.Qualifier.Storage = types.StorageAttribute
			case ctx.Stage == version.Vertex && v.Qualifier.Storage == types.StorageOut:
				v.Qualifier.Storage = types.StorageVarying
			case ctx.Stage == version.Fragment && v.Qualifier.Storage == types.StorageIn:
				v.Qualifier.Storage = types.StorageVarying
			default:
				// Fragment-stage `out` is the framebuffer output; the output
				// rules own that rewrite.
				return nil, false
			}

			return v, true
		},
	})
}
