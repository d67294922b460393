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
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// runAlgebraicSimplification applies the identity laws: x+0, x-0, x*1,
// x/1, x|0, x^0, x<<0 collapse to x; 0-x to -x; x-x, x*0, x%1, x&0, x^x
// to zero; x/x to one; boolean absorption; double negations. Rewrites that
// would discard a subexpression only fire when it is side-effect-free.
func runAlgebraicSimplification(ctx *Context) bool {
	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		if out, ok := simplifyExpr(e); ok {
			changed = true
			return out
		}

		return e
	})

	return changed
}

func simplifyExpr(e ast.Expr) (ast.Expr, bool) {
	switch v := e.(type) {
	case *ast.BinaryExpr:
		return simplifyBinary(v)
	case *ast.UnaryExpr:
		// -(-x) → x and !!x → x.
		if inner, ok := v.Operand.(*ast.UnaryExpr); ok && v.Prefix && inner.Prefix && v.Op == inner.Op {
			if v.Op == token.MINUS || v.Op == token.NOT {
				return inner.Operand, true
			}
		}
	}

	return nil, false
}

func simplifyBinary(b *ast.BinaryExpr) (ast.Expr, bool) {
	left, right := b.Left, b.Right

	switch b.Op {
	case token.PLUS:
		if isZeroLiteral(right) {
			return left, true
		}

		if isZeroLiteral(left) {
			return right, true
		}
	case token.MINUS:
		if isZeroLiteral(right) {
			return left, true
		}

		if isZeroLiteral(left) {
			return negate(right), true
		}

		if identIdentity(left, right) {
			return zeroLike(b, left), true
		}
	case token.STAR:
		if isOneLiteral(right) {
			return left, true
		}

		if isOneLiteral(left) {
			return right, true
		}

		if isZeroLiteral(right) && !hasSideEffect(left) {
			return zeroLike(b, left), true
		}

		if isZeroLiteral(left) && !hasSideEffect(right) {
			return zeroLike(b, right), true
		}

		if isMinusOneLiteral(left) {
			return negate(right), true
		}

		if isMinusOneLiteral(right) {
			return negate(left), true
		}
	case token.SLASH:
		if isOneLiteral(right) {
			return left, true
		}

		if isZeroLiteral(left) && !hasSideEffect(right) {
			return zeroLike(b, right), true
		}

		if identIdentity(left, right) {
			return oneLike(b, left), true
		}
	case token.PERCENT:
		if isOneLiteral(right) && !hasSideEffect(left) {
			return intLit(b, ast.LitInt, 0), true
		}
	case token.AND_AND:
		if isBoolLiteral(right, false) && !hasSideEffect(left) {
			return boolLit(b, false), true
		}

		if isBoolLiteral(left, false) {
			return boolLit(b, false), true
		}

		if isBoolLiteral(right, true) {
			return left, true
		}

		if isBoolLiteral(left, true) {
			return right, true
		}
	case token.OR_OR:
		if isBoolLiteral(right, true) && !hasSideEffect(left) {
			return boolLit(b, true), true
		}

		if isBoolLiteral(left, true) {
			return boolLit(b, true), true
		}

		if isBoolLiteral(right, false) {
			return left, true
		}

		if isBoolLiteral(left, false) {
			return right, true
		}
	case token.AMP:
		if isZeroLiteral(right) && !hasSideEffect(left) {
			return intLit(b, ast.LitInt, 0), true
		}

		if isZeroLiteral(left) && !hasSideEffect(right) {
			return intLit(b, ast.LitInt, 0), true
		}
	case token.PIPE, token.CARET:
		if isZeroLiteral(right) {
			return left, true
		}

		if isZeroLiteral(left) {
			return right, true
		}

		if b.Op == token.CARET && identIdentity(left, right) {
			return intLit(b, ast.LitInt, 0), true
		}
	case token.SHL, token.SHR:
		if isZeroLiteral(right) {
			return left, true
		}
	}

	return nil, false
}

// runStrengthReduction replaces expensive operations with cheaper
// equivalents: multiplication by two with addition, integer multiply/divide
// by powers of two with shifts, float division by a constant with multiply
// by reciprocal, and small pow() exponents with multiply or sqrt.
func runStrengthReduction(ctx *Context) bool {
	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		if out, ok := reduceExpr(e); ok {
			changed = true
			return out
		}

		return e
	})

	return changed
}

func reduceExpr(e ast.Expr) (ast.Expr, bool) {
	switch v := e.(type) {
	case *ast.BinaryExpr:
		return reduceBinary(v)
	case *ast.CallExpr:
		return reducePow(v)
	}

	return nil, false
}

func reduceBinary(b *ast.BinaryExpr) (ast.Expr, bool) {
	switch b.Op {
	case token.STAR:
		// x*2 → x+x for a pure x; larger integer powers of two become shifts.
		if isIntLiteralValue(b.Right, 2) && !hasSideEffect(b.Left) {
			sum := &ast.BinaryExpr{Op: token.PLUS, Left: b.Left, Right: ast.CloneExpr(b.Left)}
			sum.Header = ast.NewHeader(b.Span())

			return sum, true
		}

		if k, ok := intPowerOfTwo(b.Right); ok && isIntExpr(b.Left) {
			shift := &ast.BinaryExpr{Op: token.SHL, Left: b.Left, Right: intLit(b, ast.LitInt, k)}
			shift.Header = ast.NewHeader(b.Span())

			return shift, true
		}
	case token.SLASH:
		if k, ok := intPowerOfTwo(b.Right); ok && isIntExpr(b.Left) {
			shift := &ast.BinaryExpr{Op: token.SHR, Left: b.Left, Right: intLit(b, ast.LitInt, k)}
			shift.Header = ast.NewHeader(b.Span())

			return shift, true
		}

		if lit, ok := b.Right.(*ast.LiteralExpr); ok && lit.Kind == ast.LitFloat {
			if c, _ := lit.FloatValue(); c != 0 {
				mul := &ast.BinaryExpr{Op: token.STAR, Left: b.Left, Right: floatLit(b, ast.LitFloat, 1/c)}
				mul.Header = ast.NewHeader(b.Span())

				return mul, true
			}
		}
	}

	return nil, false
}

func reducePow(call *ast.CallExpr) (ast.Expr, bool) {
	if call.Name != "pow" || len(call.Args) != 2 || hasSideEffect(call.Args[0]) {
		return nil, false
	}

	exp, ok := call.Args[1].(*ast.LiteralExpr)
	if !ok {
		return nil, false
	}

	v, ok := literalAsFloat(exp)
	if !ok {
		return nil, false
	}

	switch v {
	case 2:
		mul := &ast.BinaryExpr{Op: token.STAR, Left: call.Args[0], Right: ast.CloneExpr(call.Args[0])}
		mul.Header = ast.NewHeader(call.Span())

		return mul, true
	case 0.5:
		sqrt := &ast.CallExpr{Name: "sqrt", Args: []ast.Expr{call.Args[0]}, Builtin: true}
		sqrt.Header = ast.NewHeader(call.Span())

		return sqrt, true
	}

	return nil, false
}

// Literal classification helpers shared by the algebra passes.

func isZeroLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok {
		return false
	}

	if v, ok := lit.FloatValue(); ok {
		return v == 0
	}

	if v, ok := lit.IntValue(); ok {
		return v == 0
	}

	return false
}

func isOneLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok {
		return false
	}

	if v, ok := lit.FloatValue(); ok {
		return v == 1
	}

	if v, ok := lit.IntValue(); ok {
		return v == 1
	}

	return false
}

func isMinusOneLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok {
		return false
	}

	if v, ok := lit.FloatValue(); ok {
		return v == -1
	}

	if v, ok := lit.IntValue(); ok {
		return v == -1
	}

	return false
}

func isBoolLiteral(e ast.Expr, want bool) bool {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok {
		return false
	}

	v, ok := lit.BoolValue()

	return ok && v == want
}

func isIntLiteralValue(e ast.Expr, want int64) bool {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Kind != ast.LitInt && lit.Kind != ast.LitUint {
		return false
	}

	v, ok := lit.IntValue()

	return ok && v == want
}

// intPowerOfTwo reports the exponent k when e is an integer literal equal
// to 2^k with k ≥ 2 (x*2 is handled by the addition rewrite instead).
func intPowerOfTwo(e ast.Expr) (int64, bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Kind != ast.LitInt && lit.Kind != ast.LitUint {
		return 0, false
	}

	v, ok := lit.IntValue()
	if !ok || v < 4 || v&(v-1) != 0 {
		return 0, false
	}

	var k int64
	for v > 1 {
		v >>= 1
		k++
	}

	return k, true
}

// isIntExpr conservatively reports whether e is integer-valued: an integer
// literal, or an identifier whose declared type is int/uint scalar.
func isIntExpr(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		return v.Kind == ast.LitInt || v.Kind == ast.LitUint
	case *ast.IdentExpr:
		if v.Symbol == nil {
			return false
		}

		base := v.Symbol.Type.Base

		return !v.Symbol.Type.IsArray() && (base == types.INT || base == types.UINT)
	default:
		return false
	}
}

// identIdentity reports whether both operands are the same identifier.
func identIdentity(a, b ast.Expr) bool {
	ai, aok := a.(*ast.IdentExpr)
	bi, bok := b.(*ast.IdentExpr)

	return aok && bok && ai.Name == bi.Name
}

// negate wraps e in a prefix minus, cancelling an existing one instead of
// stacking.
func negate(e ast.Expr) ast.Expr {
	if u, ok := e.(*ast.UnaryExpr); ok && u.Prefix && u.Op == token.MINUS {
		return u.Operand
	}

	u := &ast.UnaryExpr{Op: token.MINUS, Operand: e, Prefix: true}
	u.Header = ast.NewHeader(e.Span())

	return u
}

// zeroLike builds a zero literal in the numeric domain of exemplar.
func zeroLike(at ast.Node, exemplar ast.Expr) *ast.LiteralExpr {
	if isFloatValued(exemplar) {
		return floatLit(at, ast.LitFloat, 0)
	}

	return intLit(at, ast.LitInt, 0)
}

// oneLike builds a one literal in the numeric domain of exemplar.
func oneLike(at ast.Node, exemplar ast.Expr) *ast.LiteralExpr {
	if isFloatValued(exemplar) {
		return floatLit(at, ast.LitFloat, 1)
	}

	return intLit(at, ast.LitInt, 1)
}

func isFloatValued(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		return v.Kind == ast.LitFloat || v.Kind == ast.LitDouble
	case *ast.IdentExpr:
		if v.Symbol == nil {
			return true
		}

		base := v.Symbol.Type.Base

		return base != types.INT && base != types.UINT && base != types.BOOL
	default:
		return true
	}
}
