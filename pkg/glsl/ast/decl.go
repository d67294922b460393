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
package ast

import "github.com/gogpu/glslx/pkg/glsl/types"

// Decl is implemented by every top-level or struct-member declaration
// variant.
type Decl interface {
	Node
	declNode()
}

// ExtensionDecl is a `#extension name : behavior` directive.
type ExtensionDecl struct {
	Header
	Name     string
	Behavior string // "require", "enable", "warn", "disable"
}

func (*ExtensionDecl) declNode() {}

// PrecisionDecl is a `precision highp float;` statement.
type PrecisionDecl struct {
	Header
	Precision types.Precision
	Type      types.Type
}

func (*PrecisionDecl) declNode() {}

// VariableDecl declares a single named variable, uniform, attribute or
// output, with an optional initializer and extra array dimensions attached
// after the name (`float x[4]`).
type VariableDecl struct {
	Header
	Qualifier      types.Qualifier
	Type           types.Type
	Name           string
	ExtraArrayDims []int
	Init           Expr
	Symbol         *Symbol
}

func (*VariableDecl) declNode() {}

// EffectiveType returns the variable's type with ExtraArrayDims folded in.
func (v *VariableDecl) EffectiveType() types.Type {
	if len(v.ExtraArrayDims) == 0 {
		return v.Type
	}

	return v.Type.WithArray(v.ExtraArrayDims...)
}

// StructDecl declares a struct type and, optionally, introduces one
// instance variable of that type in the same declaration.
type StructDecl struct {
	Header
	Name              string
	Members           []*VariableDecl
	InstanceName       string
	InstanceArrayDims []int
}

func (*StructDecl) declNode() {}

// InterfaceBlockDecl declares a uniform/buffer/in/out block, optionally
// bound to an instance name and array size.
type InterfaceBlockDecl struct {
	Header
	Qualifier         types.Qualifier
	BlockName         string
	InstanceName      string
	InstanceArrayDims []int
	Members           []*VariableDecl
}

func (*InterfaceBlockDecl) declNode() {}

// ParamDecl declares one function parameter.
type ParamDecl struct {
	Header
	Type    types.Type
	Name    string
	Storage types.Storage
	Symbol  *Symbol
}

func (*ParamDecl) declNode() {}

// FunctionDecl declares a function prototype or definition.
type FunctionDecl struct {
	Header
	ReturnType types.Type
	Name       string
	Params     []*ParamDecl
	Body       *BlockStmt // nil for a bare prototype
	Prototype  bool
	Symbol     *Symbol

	UseCount  int // call sites resolved to this function
	SideEffect bool
}

func (*FunctionDecl) declNode() {}

// Signature renders a stable key for overload-insensitive lookup (the
// language does not support true overloading on GLSL-defined functions, so
// name alone is sufficient).
func (f *FunctionDecl) Signature() string {
	return f.Name
}
