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

// legacyToGeneric maps each dimension-suffixed legacy texture function to
// the generic form that replaced it at 1.30.
var legacyToGeneric = map[string]string{
	"texture1D":   "texture",
	"texture2D":   "texture",
	"texture3D":   "texture",
	"textureCube": "texture",
	"shadow1D":    "texture",
	"shadow2D":    "texture",

	"texture1DProj": "textureProj",
	"texture2DProj": "textureProj",
	"texture3DProj": "textureProj",
	"shadow1DProj":  "textureProj",
	"shadow2DProj":  "textureProj",

	"texture1DLod":   "textureLod",
	"texture2DLod":   "textureLod",
	"texture3DLod":   "textureLod",
	"textureCubeLod": "textureLod",

	"texture1DProjLod": "textureProjLod",
	"texture2DProjLod": "textureProjLod",
	"texture3DProjLod": "textureProjLod",
}

// samplerLegacyName maps a sampler's base type to the legacy function name
// family serving it (indexed by generic name).
var samplerLegacyName = map[types.Base]map[string]string{
	types.SAMPLER1D: {
		"texture":        "texture1D",
		"textureProj":    "texture1DProj",
		"textureLod":     "texture1DLod",
		"textureProjLod": "texture1DProjLod",
	},
	types.SAMPLER2D: {
		"texture":        "texture2D",
		"textureProj":    "texture2DProj",
		"textureLod":     "texture2DLod",
		"textureProjLod": "texture2DProjLod",
	},
	types.SAMPLER3D: {
		"texture":        "texture3D",
		"textureProj":    "texture3DProj",
		"textureLod":     "texture3DLod",
		"textureProjLod": "texture3DProjLod",
	},
	types.SAMPLERCUBE: {
		"texture":    "textureCube",
		"textureLod": "textureCubeLod",
	},
	types.SAMPLER2DSHADOW: {
		"texture":     "shadow2D",
		"textureProj": "shadow2DProj",
	},
}

// registerTextureRules installs the texture-function renames in both
// directions across the 1.30 boundary.
func registerTextureRules(reg *Registry) {
	reg.RegisterNode(&NodeRule{
		Name:     "texture-function-upgrade",
		Category: CategoryFunction,
		Variant:  "CallExpr",
		Applies: func(src, target version.Version, _ version.Stage) bool {
			return src.Less(version.V130) && target.AtLeast(version.V130)
		},
		CanTransform: func(node ast.Node) bool {
			call := node.(*ast.CallExpr)
			_, ok := legacyToGeneric[call.Name]

			return ok
		},
		Transform: func(node ast.Node, _ *Context) (ast.Node, bool) {
			call := node.(*ast.CallExpr)
			call.Name = legacyToGeneric[call.Name]

			return call, true
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "texture-function-downgrade",
		Category: CategoryFunction,
		Variant:  "CallExpr",
		Applies: func(src, target version.Version, _ version.Stage) bool {
			return src.AtLeast(version.V130) && target.Less(version.V130)
		},
		CanTransform: func(node ast.Node) bool {
			switch node.(*ast.CallExpr).Name {
			case "texture", "textureProj", "textureLod", "textureProjLod":
				return true
			default:
				return false
			}
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			call := node.(*ast.CallExpr)

			legacy, ok := legacyNameFor(call, ctx)
			if !ok {
				ctx.Warnf(source.UNSUPPORTED_FEATURE, call.Span(),
					"cannot downgrade %s(): sampler type of its first argument is unknown", call.Name)

				return nil, false
			}

			call.Name = legacy

			return call, true
		},
	})
}

// legacyNameFor resolves the dimension-matching legacy name for a generic
// texture call by looking up the first argument's declared sampler type.
func legacyNameFor(call *ast.CallExpr, ctx *Context) (string, bool) {
	if len(call.Args) == 0 {
		return "", false
	}

	id, ok := call.Args[0].(*ast.IdentExpr)
	if !ok {
		return "", false
	}

	base, ok := ctx.SamplerTypes[id.Name]
	if !ok {
		return "", false
	}

	family, ok := samplerLegacyName[base]
	if !ok {
		return "", false
	}

	legacy, ok := family[call.Name]

	return legacy, ok
}
