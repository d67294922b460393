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
package token

// builtinVars is the closed set of built-in variable identifiers the lexer
// recognizes. The legacy set is listed again in legacyBuiltinVars, which
// rewrite rules consult to tell modern from legacy built-ins.
var builtinVars = map[string]bool{
	// Modern set.
	"gl_Position":           true,
	"gl_PointSize":          true,
	"gl_ClipDistance":       true,
	"gl_CullDistance":       true,
	"gl_VertexID":           true,
	"gl_InstanceID":         true,
	"gl_PrimitiveID":        true,
	"gl_InvocationID":       true,
	"gl_Layer":              true,
	"gl_ViewportIndex":      true,
	"gl_TessCoord":          true,
	"gl_TessLevelOuter":     true,
	"gl_TessLevelInner":     true,
	"gl_PatchVerticesIn":    true,
	"gl_FragCoord":          true,
	"gl_FrontFacing":        true,
	"gl_FragDepth":          true,
	"gl_SampleID":           true,
	"gl_SamplePosition":     true,
	"gl_SampleMask":         true,
	"gl_NumWorkGroups":      true,
	"gl_WorkGroupSize":      true,
	"gl_WorkGroupID":        true,
	"gl_LocalInvocationID":  true,
	"gl_GlobalInvocationID": true,
	"gl_LocalInvocationIndex": true,

	// Legacy set.
	"gl_FragColor":                true,
	"gl_FragData":                 true,
	"gl_Vertex":                   true,
	"gl_Normal":                   true,
	"gl_Color":                    true,
	"gl_SecondaryColor":           true,
	"gl_TexCoord":                 true,
	"gl_FogCoord":                 true,
	"gl_FogFragCoord":             true,
	"gl_FrontColor":               true,
	"gl_BackColor":                true,
	"gl_FrontSecondaryColor":      true,
	"gl_BackSecondaryColor":      true,
	"gl_MultiTexCoord0":           true,
	"gl_MultiTexCoord1":           true,
	"gl_MultiTexCoord2":           true,
	"gl_MultiTexCoord3":           true,
	"gl_MultiTexCoord4":           true,
	"gl_MultiTexCoord5":           true,
	"gl_MultiTexCoord6":           true,
	"gl_MultiTexCoord7":           true,
	"gl_ModelViewMatrix":          true,
	"gl_ProjectionMatrix":         true,
	"gl_ModelViewProjectionMatrix": true,
	"gl_NormalMatrix":             true,
	"gl_ModelViewMatrixInverse":   true,
	"gl_ProjectionMatrixInverse":  true,
	"gl_ModelViewProjectionMatrixInverse": true,
	"gl_ModelViewMatrixTranspose":         true,
	"gl_ProjectionMatrixTranspose":        true,
	"gl_ModelViewProjectionMatrixTranspose": true,
	"gl_ModelViewMatrixInverseTranspose":           true,
	"gl_ProjectionMatrixInverseTranspose":          true,
	"gl_ModelViewProjectionMatrixInverseTranspose": true,
}

// legacyBuiltinVars is the subset of builtinVars unavailable at and above
// GLSL 1.40; used by rewrite rules to decide when a legacy built-in needs
// replacing with a user-declared equivalent.
var legacyBuiltinVars = map[string]bool{
	"gl_FragColor": true, "gl_FragData": true,
	"gl_Vertex": true, "gl_Normal": true, "gl_Color": true, "gl_SecondaryColor": true,
	"gl_TexCoord": true, "gl_FogCoord": true, "gl_FogFragCoord": true,
	"gl_FrontColor": true, "gl_BackColor": true,
	"gl_FrontSecondaryColor": true, "gl_BackSecondaryColor": true,
	"gl_MultiTexCoord0": true, "gl_MultiTexCoord1": true, "gl_MultiTexCoord2": true,
	"gl_MultiTexCoord3": true, "gl_MultiTexCoord4": true, "gl_MultiTexCoord5": true,
	"gl_MultiTexCoord6": true, "gl_MultiTexCoord7": true,
	"gl_ModelViewMatrix": true, "gl_ProjectionMatrix": true, "gl_ModelViewProjectionMatrix": true,
	"gl_NormalMatrix":           true,
	"gl_ModelViewMatrixInverse": true, "gl_ProjectionMatrixInverse": true,
	"gl_ModelViewProjectionMatrixInverse":          true,
	"gl_ModelViewMatrixTranspose":                  true,
	"gl_ProjectionMatrixTranspose":                 true,
	"gl_ModelViewProjectionMatrixTranspose":         true,
	"gl_ModelViewMatrixInverseTranspose":            true,
	"gl_ProjectionMatrixInverseTranspose":           true,
	"gl_ModelViewProjectionMatrixInverseTranspose":  true,
}

// LookupBuiltin reports whether lexeme names a recognized built-in
// variable.
func LookupBuiltin(lexeme string) bool {
	return builtinVars[lexeme]
}

// IsLegacyBuiltin reports whether lexeme names a built-in removed at or
// before GLSL 1.40.
func IsLegacyBuiltin(lexeme string) bool {
	return legacyBuiltinVars[lexeme]
}
