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
package optimize

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// pureBuiltins is the pure built-in math library: calls to these fold and
// never carry side effects when their arguments do not.
var pureBuiltins = map[string]bool{
	"abs": true, "sign": true, "floor": true, "ceil": true, "round": true, "trunc": true,
	"fract": true, "sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"atan": true, "sinh": true, "cosh": true, "tanh": true, "exp": true, "log": true,
	"exp2": true, "log2": true, "sqrt": true, "inversesqrt": true, "radians": true, "degrees": true,
	"pow": true, "mod": true, "min": true, "max": true, "step": true, "distance": true,
	"clamp": true, "mix": true, "smoothstep": true, "fma": true,
}

// hasSideEffect reports whether evaluating e could alter observable state:
// assignments, increments/decrements, or calls to anything outside the
// pure-builtin set. Constructors are pure; impure user functions are
// assumed side-effectful.
func hasSideEffect(e ast.Expr) bool {
	switch v := e.(type) {
	case nil:
		return false
	case *ast.LiteralExpr, *ast.IdentExpr:
		return false
	case *ast.BinaryExpr:
		if isAssignOp(v.Op) {
			return true
		}

		return hasSideEffect(v.Left) || hasSideEffect(v.Right)
	case *ast.UnaryExpr:
		if v.Op == token.INCREMENT || v.Op == token.DECREMENT {
			return true
		}

		return hasSideEffect(v.Operand)
	case *ast.TernaryExpr:
		return hasSideEffect(v.Cond) || hasSideEffect(v.Then) || hasSideEffect(v.Else)
	case *ast.CallExpr:
		if !v.Constructor && !pureBuiltins[v.Name] {
			return true
		}

		for _, a := range v.Args {
			if hasSideEffect(a) {
				return true
			}
		}

		return false
	case *ast.MemberExpr:
		return hasSideEffect(v.Object)
	case *ast.SubscriptExpr:
		return hasSideEffect(v.Object) || hasSideEffect(v.Index)
	case *ast.InitListExpr:
		for _, el := range v.Elements {
			if hasSideEffect(el) {
				return true
			}
		}

		return false
	default:
		return true
	}
}

// isAssignOp reports whether op is `=` or a compound assignment.
func isAssignOp(op token.Kind) bool {
	switch op {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN,
		token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN:
		return true
	default:
		return false
	}
}

// sameExpr reports structural identity between two expressions:
// identifiers match by name, literals by value, composites recursively.
func sameExpr(a, b ast.Expr) bool {
	switch av := a.(type) {
	case *ast.IdentExpr:
		bv, ok := b.(*ast.IdentExpr)
		return ok && av.Name == bv.Name
	case *ast.LiteralExpr:
		bv, ok := b.(*ast.LiteralExpr)
		return ok && av.Kind == bv.Kind && av.Value == bv.Value
	case *ast.MemberExpr:
		bv, ok := b.(*ast.MemberExpr)
		return ok && av.Member == bv.Member && sameExpr(av.Object, bv.Object)
	case *ast.SubscriptExpr:
		bv, ok := b.(*ast.SubscriptExpr)
		return ok && sameExpr(av.Object, bv.Object) && sameExpr(av.Index, bv.Index)
	default:
		return false
	}
}
