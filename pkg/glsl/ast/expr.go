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

import (
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// Expr is implemented by every expression variant. Once semantic info is
// available each carries a resolved type and lvalue/constant flags.
type Expr interface {
	Node
	exprNode()
	ResolvedType() types.Type
	SetResolvedType(types.Type)
	IsLValue() bool
	SetLValue(bool)
}

// ExprBase is embedded by every expression variant to supply the common
// post-parse semantic fields.
type ExprBase struct {
	Header
	typ    types.Type
	lvalue bool
}

func (e *ExprBase) ResolvedType() types.Type        { return e.typ }
func (e *ExprBase) SetResolvedType(t types.Type)    { e.typ = t }
func (e *ExprBase) IsLValue() bool                  { return e.lvalue }
func (e *ExprBase) SetLValue(v bool)                { e.lvalue = v }
func (*ExprBase) exprNode()                         {}

// LiteralKind categorizes a literal expression's numeric domain.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitUint
	LitFloat
	LitDouble
	LitBool
)

// LiteralExpr is a literal constant. Value holds the lazily parsed value:
// int64 for LitInt, uint64 for LitUint, float64 for LitFloat/LitDouble,
// bool for LitBool.
type LiteralExpr struct {
	ExprBase
	Kind  LiteralKind
	Text  string
	Value any
}

// IntValue returns the literal's value as int64, for int/uint literals.
func (l *LiteralExpr) IntValue() (int64, bool) {
	switch v := l.Value.(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	}

	return 0, false
}

// FloatValue returns the literal's value as float64, for float/double
// literals.
func (l *LiteralExpr) FloatValue() (float64, bool) {
	v, ok := l.Value.(float64)
	return v, ok
}

// BoolValue returns the literal's value as bool.
func (l *LiteralExpr) BoolValue() (bool, bool) {
	v, ok := l.Value.(bool)
	return v, ok
}

// IdentExpr is a bare identifier reference, resolved to a symbol once name
// resolution runs.
type IdentExpr struct {
	ExprBase
	Name   string
	Symbol *Symbol
}

// BinaryExpr is a two-operand operator application, including assignment
// and compound-assignment forms.
type BinaryExpr struct {
	ExprBase
	Op    token.Kind
	Left  Expr
	Right Expr
}

// UnaryExpr is a one-operand operator application; Prefix distinguishes
// `++x` from `x++`.
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expr
	Prefix  bool
}

// TernaryExpr is the `cond ? then : else` conditional operator.
type TernaryExpr struct {
	ExprBase
	Cond Expr
	Then Expr
	Else Expr
}

// CallExpr is a function call, constructor invocation or built-in
// invocation; Constructor and Builtin are mutually exclusive with an
// ordinary user-function call.
type CallExpr struct {
	ExprBase
	Name        string
	Args        []Expr
	Constructor bool
	Builtin     bool
	Resolved    *FunctionDecl // nil for constructor/builtin calls
}

// MemberExpr is `.name` field or swizzle access.
type MemberExpr struct {
	ExprBase
	Object  Expr
	Member  string
	Swizzle bool
}

// SubscriptExpr is `object[index]` array/vector/matrix indexing.
type SubscriptExpr struct {
	ExprBase
	Object Expr
	Index  Expr
}

// InitListExpr is a brace-enclosed initializer list (`{1, 2, 3}`).
type InitListExpr struct {
	ExprBase
	Elements []Expr
}
