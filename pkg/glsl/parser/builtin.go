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
package parser

// builtinFuncNames is the set of GLSL standard-library function names
// recognized at parse time: a call to one of these is never a user
// function, regardless of whether the shader happens to omit a prototype.
var builtinFuncNames = map[string]bool{
	// Pure math library (constant-foldable; see optimize).
	"abs": true, "sign": true, "floor": true, "ceil": true, "round": true, "trunc": true,
	"fract": true, "sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"atan": true, "sinh": true, "cosh": true, "tanh": true, "exp": true, "log": true,
	"exp2": true, "log2": true, "sqrt": true, "inversesqrt": true, "radians": true, "degrees": true,
	"pow": true, "mod": true, "min": true, "max": true, "step": true, "distance": true,
	"clamp": true, "mix": true, "smoothstep": true, "fma": true,

	// Geometric and vector builtins.
	"dot": true, "cross": true, "normalize": true, "length": true, "reflect": true, "refract": true,
	"faceforward": true, "transpose": true, "inverse": true, "determinant": true, "matrixCompMult": true,
	"outerProduct": true,

	// Texture sampling (legacy and generic).
	"texture1D": true, "texture2D": true, "texture3D": true, "textureCube": true,
	"texture1DProj": true, "texture2DProj": true, "texture3DProj": true,
	"texture1DLod": true, "texture2DLod": true, "texture3DLod": true, "textureCubeLod": true,
	"texture1DProjLod": true, "texture2DProjLod": true, "texture3DProjLod": true,
	"shadow1D": true, "shadow2D": true, "shadow1DProj": true, "shadow2DProj": true,
	"texture": true, "textureProj": true, "textureLod": true, "textureProjLod": true,
	"textureSize": true, "texelFetch": true, "textureGrad": true, "textureOffset": true,

	// Relational/boolean vector builtins.
	"lessThan": true, "lessThanEqual": true, "greaterThan": true, "greaterThanEqual": true,
	"equal": true, "notEqual": true, "any": true, "all": true, "not": true,

	// Derivative and misc fragment builtins.
	"dFdx": true, "dFdy": true, "fwidth": true,

	// Atomic/image/compute builtins.
	"imageLoad": true, "imageStore": true, "imageSize": true, "barrier": true, "memoryBarrier": true,

	// Packing builtins.
	"packHalf2x16": true, "unpackHalf2x16": true, "packUnorm2x16": true, "unpackUnorm2x16": true,
	"packSnorm2x16": true, "unpackSnorm2x16": true,
}

func isBuiltinFuncName(name string) bool {
	return builtinFuncNames[name]
}

// PureBuiltinFuncNames is the constant-foldable subset of builtinFuncNames:
// the pure built-in math library. Kept here so the parser's Builtin
// classification and the optimizer's fold eligibility derive from the same
// list.
var PureBuiltinFuncNames = map[string]bool{
	"abs": true, "sign": true, "floor": true, "ceil": true, "round": true, "trunc": true,
	"fract": true, "sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"atan": true, "sinh": true, "cosh": true, "tanh": true, "exp": true, "log": true,
	"exp2": true, "log2": true, "sqrt": true, "inversesqrt": true, "radians": true, "degrees": true,
	"pow": true, "mod": true, "min": true, "max": true, "step": true, "distance": true,
	"clamp": true, "mix": true, "smoothstep": true, "fma": true,
}
