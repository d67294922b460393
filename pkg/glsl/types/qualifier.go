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

// Storage is the storage class a declaration is qualified with.
type Storage uint8

const (
	StorageNone Storage = iota
	StorageConst
	StorageIn
	StorageOut
	StorageInout
	StorageUniform
	StorageBuffer
	StorageShared
	StorageAttribute // legacy, < 1.40
	StorageVarying   // legacy, < 1.40
)

func (s Storage) String() string {
	switch s {
	case StorageConst:
		return "const"
	case StorageIn:
		return "in"
	case StorageOut:
		return "out"
	case StorageInout:
		return "inout"
	case StorageUniform:
		return "uniform"
	case StorageBuffer:
		return "buffer"
	case StorageShared:
		return "shared"
	case StorageAttribute:
		return "attribute"
	case StorageVarying:
		return "varying"
	default:
		return ""
	}
}

// Interpolation selects how a varying interpolates across a primitive.
type Interpolation uint8

const (
	InterpNone Interpolation = iota
	InterpFlat
	InterpSmooth
	InterpNoperspective
)

func (i Interpolation) String() string {
	switch i {
	case InterpFlat:
		return "flat"
	case InterpSmooth:
		return "smooth"
	case InterpNoperspective:
		return "noperspective"
	default:
		return ""
	}
}

// Precision is a precision qualifier hint.
type Precision uint8

const (
	PrecisionNone Precision = iota
	PrecisionHigh
	PrecisionMedium
	PrecisionLow
)

func (p Precision) String() string {
	switch p {
	case PrecisionHigh:
		return "highp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionLow:
		return "lowp"
	default:
		return ""
	}
}

// Qualifier is the full set of decorations a declaration may carry.
type Qualifier struct {
	Storage       Storage
	Interpolation Interpolation
	Precision     Precision

	Centroid  bool
	Sample    bool
	Patch     bool
	Invariant bool
	Precise   bool
	Coherent  bool
	Volatile  bool
	Restrict  bool
	ReadOnly  bool
	WriteOnly bool

	Layout *Layout
}

// IsEmpty reports whether q carries no qualifiers at all (the zero value).
func (q Qualifier) IsEmpty() bool {
	return q.Storage == StorageNone && q.Interpolation == InterpNone && q.Precision == PrecisionNone &&
		!q.Centroid && !q.Sample && !q.Patch && !q.Invariant && !q.Precise &&
		!q.Coherent && !q.Volatile && !q.Restrict && !q.ReadOnly && !q.WriteOnly &&
		q.Layout == nil
}
