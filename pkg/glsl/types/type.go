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

import "strconv"

// Unsized marks an array dimension whose size is not given at declaration.
const Unsized = -1

// Type is the algebraic type record: a base type plus, for struct/interface
// types, a name, plus an ordered array-dimension suffix. Equality for type
// compatibility purposes ignores qualifiers (held alongside, not inside,
// a Type) and considers only base, struct name and dimensions.
type Type struct {
	Base       Base
	StructName string
	ArrayDims  []int
}

// Scalar constructs a bare scalar/vector/matrix/opaque type with no array
// dimensions.
func Scalar(b Base) Type {
	return Type{Base: b}
}

// NewStruct constructs a named struct or interface-block type.
func NewStruct(base Base, name string) Type {
	return Type{Base: base, StructName: name}
}

// WithArray returns a copy of t with the given array dimensions appended.
func (t Type) WithArray(dims ...int) Type {
	out := t
	out.ArrayDims = append(append([]int{}, t.ArrayDims...), dims...)

	return out
}

// IsArray reports whether t carries any array dimensions.
func (t Type) IsArray() bool {
	return len(t.ArrayDims) > 0
}

// Equal reports whether two types are interchangeable: same base, same
// struct name (if any) and identical array dimensions. Qualifiers never
// participate in type equality.
func (t Type) Equal(other Type) bool {
	if t.Base != other.Base || t.StructName != other.StructName {
		return false
	}

	if len(t.ArrayDims) != len(other.ArrayDims) {
		return false
	}

	for i := range t.ArrayDims {
		if t.ArrayDims[i] != other.ArrayDims[i] {
			return false
		}
	}

	return true
}

// String renders the canonical GLSL spelling, including array suffixes
// (e.g. "float[4][]").
func (t Type) String() string {
	s := t.Base.String()
	if t.Base == STRUCT || t.Base == INTERFACE_BLOCK {
		s = t.StructName
	}

	for _, d := range t.ArrayDims {
		if d == Unsized {
			s += "[]"
		} else {
			s += "[" + strconv.Itoa(d) + "]"
		}
	}

	return s
}
