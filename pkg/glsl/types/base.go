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

// Package types models the GLSL type and qualifier system: base types,
// vector/matrix shapes, opaque sampler/image types, and the storage,
// interpolation, precision, memory and layout qualifiers that decorate a
// declaration.
package types

import "github.com/gogpu/glslx/pkg/glsl/token"

// Base enumerates every scalar, vector, matrix, opaque and aggregate base
// type GLSL recognizes.
type Base uint8

const (
	VOID Base = iota
	BOOL
	INT
	UINT
	FLOAT
	DOUBLE

	BVEC2
	BVEC3
	BVEC4
	IVEC2
	IVEC3
	IVEC4
	UVEC2
	UVEC3
	UVEC4
	VEC2
	VEC3
	VEC4
	DVEC2
	DVEC3
	DVEC4

	MAT2
	MAT3
	MAT4
	MAT2X3
	MAT2X4
	MAT3X2
	MAT3X4
	MAT4X2
	MAT4X3

	SAMPLER1D
	SAMPLER2D
	SAMPLER3D
	SAMPLERCUBE
	SAMPLER2DSHADOW
	SAMPLER2DARRAY

	ATOMIC_UINT
	IMAGE2D

	STRUCT
	INTERFACE_BLOCK
)

// props describes the static properties of a base type: scalar component
// kind, vector/matrix shape, and whether it is opaque (sampler/image/atomic,
// which cannot be used in arithmetic or constructors the way value types
// can).
type props struct {
	name        string
	scalar      Base // component type for vectors/matrices; self for scalars
	vecSize     int  // 0 for non-vectors
	matRows     int  // 0 for non-matrices
	matCols     int
	opaque      bool
}

var baseProps = map[Base]props{
	VOID:   {name: "void"},
	BOOL:   {name: "bool", scalar: BOOL},
	INT:    {name: "int", scalar: INT},
	UINT:   {name: "uint", scalar: UINT},
	FLOAT:  {name: "float", scalar: FLOAT},
	DOUBLE: {name: "double", scalar: DOUBLE},

	BVEC2: {name: "bvec2", scalar: BOOL, vecSize: 2},
	BVEC3: {name: "bvec3", scalar: BOOL, vecSize: 3},
	BVEC4: {name: "bvec4", scalar: BOOL, vecSize: 4},
	IVEC2: {name: "ivec2", scalar: INT, vecSize: 2},
	IVEC3: {name: "ivec3", scalar: INT, vecSize: 3},
	IVEC4: {name: "ivec4", scalar: INT, vecSize: 4},
	UVEC2: {name: "uvec2", scalar: UINT, vecSize: 2},
	UVEC3: {name: "uvec3", scalar: UINT, vecSize: 3},
	UVEC4: {name: "uvec4", scalar: UINT, vecSize: 4},
	VEC2:  {name: "vec2", scalar: FLOAT, vecSize: 2},
	VEC3:  {name: "vec3", scalar: FLOAT, vecSize: 3},
	VEC4:  {name: "vec4", scalar: FLOAT, vecSize: 4},
	DVEC2: {name: "dvec2", scalar: DOUBLE, vecSize: 2},
	DVEC3: {name: "dvec3", scalar: DOUBLE, vecSize: 3},
	DVEC4: {name: "dvec4", scalar: DOUBLE, vecSize: 4},

	MAT2:   {name: "mat2", scalar: FLOAT, matRows: 2, matCols: 2},
	MAT3:   {name: "mat3", scalar: FLOAT, matRows: 3, matCols: 3},
	MAT4:   {name: "mat4", scalar: FLOAT, matRows: 4, matCols: 4},
	MAT2X3: {name: "mat2x3", scalar: FLOAT, matRows: 2, matCols: 3},
	MAT2X4: {name: "mat2x4", scalar: FLOAT, matRows: 2, matCols: 4},
	MAT3X2: {name: "mat3x2", scalar: FLOAT, matRows: 3, matCols: 2},
	MAT3X4: {name: "mat3x4", scalar: FLOAT, matRows: 3, matCols: 4},
	MAT4X2: {name: "mat4x2", scalar: FLOAT, matRows: 4, matCols: 2},
	MAT4X3: {name: "mat4x3", scalar: FLOAT, matRows: 4, matCols: 3},

	SAMPLER1D:       {name: "sampler1D", opaque: true},
	SAMPLER2D:       {name: "sampler2D", opaque: true},
	SAMPLER3D:       {name: "sampler3D", opaque: true},
	SAMPLERCUBE:     {name: "samplerCube", opaque: true},
	SAMPLER2DSHADOW: {name: "sampler2DShadow", opaque: true},
	SAMPLER2DARRAY:  {name: "sampler2DArray", opaque: true},

	ATOMIC_UINT: {name: "atomic_uint", opaque: true},
	IMAGE2D:     {name: "image2D", opaque: true},

	STRUCT:          {name: "struct"},
	INTERFACE_BLOCK: {name: "interface block"},
}

// keywordBase maps a lexer keyword kind to its base type, for the parser's
// type-start recognition.
var keywordBase = map[token.Kind]Base{
	token.KW_VOID:            VOID,
	token.KW_BOOL:            BOOL,
	token.KW_INT:             INT,
	token.KW_UINT:            UINT,
	token.KW_FLOAT:           FLOAT,
	token.KW_DOUBLE:          DOUBLE,
	token.KW_VEC2:            VEC2,
	token.KW_VEC3:            VEC3,
	token.KW_VEC4:            VEC4,
	token.KW_BVEC2:           BVEC2,
	token.KW_BVEC3:           BVEC3,
	token.KW_BVEC4:           BVEC4,
	token.KW_IVEC2:           IVEC2,
	token.KW_IVEC3:           IVEC3,
	token.KW_IVEC4:           IVEC4,
	token.KW_UVEC2:           UVEC2,
	token.KW_UVEC3:           UVEC3,
	token.KW_UVEC4:           UVEC4,
	token.KW_DVEC2:           DVEC2,
	token.KW_DVEC3:           DVEC3,
	token.KW_DVEC4:           DVEC4,
	token.KW_MAT2:            MAT2,
	token.KW_MAT3:            MAT3,
	token.KW_MAT4:            MAT4,
	token.KW_MAT2X3:          MAT2X3,
	token.KW_MAT2X4:          MAT2X4,
	token.KW_MAT3X2:          MAT3X2,
	token.KW_MAT3X4:          MAT3X4,
	token.KW_MAT4X2:          MAT4X2,
	token.KW_MAT4X3:          MAT4X3,
	token.KW_SAMPLER1D:       SAMPLER1D,
	token.KW_SAMPLER2D:       SAMPLER2D,
	token.KW_SAMPLER3D:       SAMPLER3D,
	token.KW_SAMPLERCUBE:     SAMPLERCUBE,
	token.KW_SAMPLER2DSHADOW: SAMPLER2DSHADOW,
	token.KW_SAMPLER2DARRAY:  SAMPLER2DARRAY,
	token.KW_ATOMIC_UINT:     ATOMIC_UINT,
	token.KW_IMAGE2D:         IMAGE2D,
	token.KW_STRUCT:          STRUCT,
}

// BaseFromKeyword reports the base type a type-keyword token denotes.
func BaseFromKeyword(k token.Kind) (Base, bool) {
	b, ok := keywordBase[k]
	return b, ok
}

// String renders the canonical GLSL spelling of a base type.
func (b Base) String() string {
	if p, ok := baseProps[b]; ok {
		return p.name
	}

	return "<unknown>"
}

// IsScalar reports whether b is a non-vector, non-matrix numeric or boolean
// type.
func (b Base) IsScalar() bool {
	p, ok := baseProps[b]
	return ok && p.vecSize == 0 && p.matRows == 0 && !p.opaque && b != VOID && b != STRUCT
}

// IsVector reports whether b is a 2/3/4-component vector, returning its
// component count (0 if not a vector).
func (b Base) IsVector() (int, bool) {
	p, ok := baseProps[b]
	if !ok || p.vecSize == 0 {
		return 0, false
	}

	return p.vecSize, true
}

// IsMatrix reports whether b is a matrix type, returning (rows, cols).
func (b Base) IsMatrix() (int, int, bool) {
	p, ok := baseProps[b]
	if !ok || p.matRows == 0 {
		return 0, 0, false
	}

	return p.matRows, p.matCols, true
}

// IsOpaque reports whether b is a sampler, image or atomic_uint type: these
// cannot appear as constructor arguments or in arithmetic.
func (b Base) IsOpaque() bool {
	p, ok := baseProps[b]
	return ok && p.opaque
}

// ComponentType returns the scalar component type of b (itself for scalars).
func (b Base) ComponentType() Base {
	if p, ok := baseProps[b]; ok && !p.opaque && b != VOID && b != STRUCT {
		return p.scalar
	}

	return b
}

// IsDouble reports whether b's component type is double precision.
func (b Base) IsDouble() bool {
	return b.ComponentType() == DOUBLE
}

// IsSquareMatrix reports whether b is a matrix with equal row/column count.
func (b Base) IsSquareMatrix() bool {
	rows, cols, ok := b.IsMatrix()
	return ok && rows == cols
}
