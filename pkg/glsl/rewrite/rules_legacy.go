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

// legacyReplacement describes the user declaration standing in for a
// removed legacy built-in: its camelCase name, type, and storage class.
type legacyReplacement struct {
	name    string
	base    types.Base
	storage types.Storage
}

// legacyReplacements maps every legacy built-in removed at 1.40 (other
// than gl_FragColor/gl_FragData, which the output rules own) to its
// replacement. The host must supply each as a uniform, attribute or
// varying.
var legacyReplacements = map[string]legacyReplacement{
	"gl_Vertex":         {"vertexPosition", types.VEC4, types.StorageIn},
	"gl_Normal":         {"vertexNormal", types.VEC3, types.StorageIn},
	"gl_Color":          {"vertexColor", types.VEC4, types.StorageIn},
	"gl_SecondaryColor": {"vertexSecondaryColor", types.VEC4, types.StorageIn},
	"gl_FogCoord":       {"vertexFogCoord", types.FLOAT, types.StorageIn},

	"gl_MultiTexCoord0": {"vertexTexCoord0", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord1": {"vertexTexCoord1", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord2": {"vertexTexCoord2", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord3": {"vertexTexCoord3", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord4": {"vertexTexCoord4", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord5": {"vertexTexCoord5", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord6": {"vertexTexCoord6", types.VEC4, types.StorageIn},
	"gl_MultiTexCoord7": {"vertexTexCoord7", types.VEC4, types.StorageIn},

	"gl_ModelViewMatrix":           {"modelViewMatrix", types.MAT4, types.StorageUniform},
	"gl_ProjectionMatrix":          {"projectionMatrix", types.MAT4, types.StorageUniform},
	"gl_ModelViewProjectionMatrix": {"modelViewProjectionMatrix", types.MAT4, types.StorageUniform},
	"gl_NormalMatrix":              {"normalMatrix", types.MAT3, types.StorageUniform},

	"gl_ModelViewMatrixInverse":           {"modelViewMatrixInverse", types.MAT4, types.StorageUniform},
	"gl_ProjectionMatrixInverse":          {"projectionMatrixInverse", types.MAT4, types.StorageUniform},
	"gl_ModelViewProjectionMatrixInverse": {"modelViewProjectionMatrixInverse", types.MAT4, types.StorageUniform},

	"gl_ModelViewMatrixTranspose":           {"modelViewMatrixTranspose", types.MAT4, types.StorageUniform},
	"gl_ProjectionMatrixTranspose":          {"projectionMatrixTranspose", types.MAT4, types.StorageUniform},
	"gl_ModelViewProjectionMatrixTranspose": {"modelViewProjectionMatrixTranspose", types.MAT4, types.StorageUniform},

	"gl_ModelViewMatrixInverseTranspose":           {"modelViewMatrixInverseTranspose", types.MAT4, types.StorageUniform},
	"gl_ProjectionMatrixInverseTranspose":          {"projectionMatrixInverseTranspose", types.MAT4, types.StorageUniform},
	"gl_ModelViewProjectionMatrixInverseTranspose": {"modelViewProjectionMatrixInverseTranspose", types.MAT4, types.StorageUniform},

	"gl_TexCoord":            {"texCoord", types.VEC4, types.StorageVarying},
	"gl_FogFragCoord":        {"fogFragCoord", types.FLOAT, types.StorageVarying},
	"gl_FrontColor":          {"frontColor", types.VEC4, types.StorageVarying},
	"gl_BackColor":           {"backColor", types.VEC4, types.StorageVarying},
	"gl_FrontSecondaryColor": {"frontSecondaryColor", types.VEC4, types.StorageVarying},
	"gl_BackSecondaryColor":  {"backSecondaryColor", types.VEC4, types.StorageVarying},
}

// registerLegacyRules installs the legacy built-in removal: a note rule that
// records the replacement declaration the host must supply, plus one
// name-translation rule per built-in performing the actual rename.
func registerLegacyRules(reg *Registry) {
	applies := func(src, target version.Version, _ version.Stage) bool {
		return src.Less(version.V140) && target.AtLeast(version.V140)
	}

	reg.RegisterNode(&NodeRule{
		Name:     "legacy-builtin-note",
		Category: CategoryVariable,
		Variant:  "IdentExpr",
		Applies:  applies,
		CanTransform: func(node ast.Node) bool {
			_, ok := legacyReplacements[node.(*ast.IdentExpr).Name]
			return ok
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			id := node.(*ast.IdentExpr)
			rep := legacyReplacements[id.Name]

			if _, seen := ctx.GeneratedUniforms[rep.name]; !seen {
				storage := effectiveLegacyStorage(rep, ctx)
				ctx.GeneratedUniforms[rep.name] = GeneratedDecl{Type: types.Scalar(rep.base), Storage: storage}
				ctx.Warnf(source.UNSUPPORTED_FEATURE, id.Span(),
					"%s does not exist at %s; the host must supply %s %q",
					id.Name, ctx.Target, storage, rep.name)
			}

			// The rename itself is the matching name rule's job.
			return nil, false
		},
	})

	for oldName, rep := range legacyReplacements {
		newName := rep.name

		reg.RegisterName(&NameRule{
			Name:       "legacy-" + oldName,
			Category:   CategoryVariable,
			SourceName: oldName,
			Applies:    applies,
			Upgrade: func(string) (string, bool) {
				return newName, true
			},
		})
	}
}

// effectiveLegacyStorage adapts a replacement's storage class to the target
// stage: legacy varyings become `out` in the vertex stage and `in` in every
// other stage; any other storage class is kept as listed.
func effectiveLegacyStorage(rep legacyReplacement, ctx *Context) types.Storage {
	switch rep.storage {
	case types.StorageVarying:
		if ctx.Stage == version.Vertex {
			return types.StorageOut
		}

		return types.StorageIn
	default:
		return rep.storage
	}
}
