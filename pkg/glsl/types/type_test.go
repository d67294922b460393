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
package types

import (
	"testing"

	"github.com/gogpu/glslx/pkg/util/assert"
)

func TestBase_VectorMatrixShape(t *testing.T) {
	n, ok := VEC3.IsVector()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	rows, cols, ok := MAT3X4.IsMatrix()
	assert.True(t, ok)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.False(t, MAT3X4.IsSquareMatrix())
	assert.True(t, MAT3.IsSquareMatrix())
}

func TestBase_ComponentType(t *testing.T) {
	assert.Equal(t, FLOAT, VEC4.ComponentType())
	assert.Equal(t, DOUBLE, DVEC2.ComponentType())
	assert.True(t, DVEC2.IsDouble())
	assert.False(t, VEC2.IsDouble())
}

func TestBase_Opaque(t *testing.T) {
	assert.True(t, SAMPLER2D.IsOpaque())
	assert.False(t, VEC4.IsOpaque())
}

func TestType_EqualityIgnoresQualifiers(t *testing.T) {
	a := Scalar(FLOAT).WithArray(4)
	b := Scalar(FLOAT).WithArray(4)
	c := Scalar(FLOAT).WithArray(Unsized)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "float[4]", Scalar(FLOAT).WithArray(4).String())
	assert.Equal(t, "vec3[]", Scalar(VEC3).WithArray(Unsized).String())

	s := NewStruct(STRUCT, "Light")
	assert.Equal(t, "Light", s.String())
}

func TestLayout_Fields(t *testing.T) {
	l := NewLayout()
	_, ok := l.HasLocation()
	assert.False(t, ok)

	l.SetLocation(2)
	v, ok := l.HasLocation()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
