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
	"math"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// runConstantFolding evaluates operators over literal operands, ternaries
// with literal boolean conditions, and calls to the pure built-in math
// library with all-literal arguments. Division by zero and log of a
// non-positive argument leave the node unchanged.
func runConstantFolding(ctx *Context) bool {
	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		switch v := e.(type) {
		case *ast.BinaryExpr:
			if out, ok := foldBinary(v); ok {
				changed = true
				return out
			}
		case *ast.UnaryExpr:
			if out, ok := foldUnary(v); ok {
				changed = true
				return out
			}
		case *ast.TernaryExpr:
			if cond, ok := v.Cond.(*ast.LiteralExpr); ok {
				if b, isBool := cond.BoolValue(); isBool {
					changed = true

					if b {
						return v.Then
					}

					return v.Else
				}
			}
		case *ast.CallExpr:
			if out, ok := foldBuiltinCall(v); ok {
				changed = true
				return out
			}
		}

		return e
	})

	return changed
}

func foldBinary(b *ast.BinaryExpr) (ast.Expr, bool) {
	left, lok := b.Left.(*ast.LiteralExpr)
	right, rok := b.Right.(*ast.LiteralExpr)

	if !lok || !rok {
		return nil, false
	}

	// Boolean logic.
	if lb, ok := left.BoolValue(); ok {
		rb, ok := right.BoolValue()
		if !ok {
			return nil, false
		}

		switch b.Op {
		case token.AND_AND:
			return boolLit(b, lb && rb), true
		case token.OR_OR:
			return boolLit(b, lb || rb), true
		case token.XOR_XOR:
			return boolLit(b, lb != rb), true
		case token.EQ:
			return boolLit(b, lb == rb), true
		case token.NEQ:
			return boolLit(b, lb != rb), true
		default:
			return nil, false
		}
	}

	// Float semantics whenever either side is a float/double literal.
	if left.Kind == ast.LitFloat || left.Kind == ast.LitDouble ||
		right.Kind == ast.LitFloat || right.Kind == ast.LitDouble {
		return foldFloatBinary(b, left, right)
	}

	return foldIntBinary(b, left, right)
}

func foldFloatBinary(b *ast.BinaryExpr, left, right *ast.LiteralExpr) (ast.Expr, bool) {
	lv, lok := literalAsFloat(left)
	rv, rok := literalAsFloat(right)

	if !lok || !rok {
		return nil, false
	}

	kind := ast.LitFloat
	if left.Kind == ast.LitDouble || right.Kind == ast.LitDouble {
		kind = ast.LitDouble
	}

	switch b.Op {
	case token.PLUS:
		return floatLit(b, kind, lv+rv), true
	case token.MINUS:
		return floatLit(b, kind, lv-rv), true
	case token.STAR:
		return floatLit(b, kind, lv*rv), true
	case token.SLASH:
		if rv == 0 {
			return nil, false
		}

		return floatLit(b, kind, lv/rv), true
	case token.EQ:
		return boolLit(b, lv == rv), true
	case token.NEQ:
		return boolLit(b, lv != rv), true
	case token.LT:
		return boolLit(b, lv < rv), true
	case token.GT:
		return boolLit(b, lv > rv), true
	case token.LE:
		return boolLit(b, lv <= rv), true
	case token.GE:
		return boolLit(b, lv >= rv), true
	default:
		return nil, false
	}
}

func foldIntBinary(b *ast.BinaryExpr, left, right *ast.LiteralExpr) (ast.Expr, bool) {
	lv, lok := left.IntValue()
	rv, rok := right.IntValue()

	if !lok || !rok {
		return nil, false
	}

	kind := ast.LitInt
	if left.Kind == ast.LitUint || right.Kind == ast.LitUint {
		kind = ast.LitUint
	}

	switch b.Op {
	case token.PLUS:
		return intLit(b, kind, lv+rv), true
	case token.MINUS:
		return intLit(b, kind, lv-rv), true
	case token.STAR:
		return intLit(b, kind, lv*rv), true
	case token.SLASH:
		if rv == 0 {
			return nil, false
		}

		return intLit(b, kind, lv/rv), true
	case token.PERCENT:
		if rv == 0 {
			return nil, false
		}

		return intLit(b, kind, lv%rv), true
	case token.SHL:
		if rv < 0 || rv > 63 {
			return nil, false
		}

		return intLit(b, kind, lv<<uint(rv)), true
	case token.SHR:
		if rv < 0 || rv > 63 {
			return nil, false
		}

		return intLit(b, kind, lv>>uint(rv)), true
	case token.AMP:
		return intLit(b, kind, lv&rv), true
	case token.PIPE:
		return intLit(b, kind, lv|rv), true
	case token.CARET:
		return intLit(b, kind, lv^rv), true
	case token.EQ:
		return boolLit(b, lv == rv), true
	case token.NEQ:
		return boolLit(b, lv != rv), true
	case token.LT:
		return boolLit(b, lv < rv), true
	case token.GT:
		return boolLit(b, lv > rv), true
	case token.LE:
		return boolLit(b, lv <= rv), true
	case token.GE:
		return boolLit(b, lv >= rv), true
	default:
		return nil, false
	}
}

func foldUnary(u *ast.UnaryExpr) (ast.Expr, bool) {
	lit, ok := u.Operand.(*ast.LiteralExpr)
	if !ok || !u.Prefix {
		return nil, false
	}

	switch u.Op {
	case token.MINUS:
		if v, ok := literalAsFloat(lit); ok && (lit.Kind == ast.LitFloat || lit.Kind == ast.LitDouble) {
			return floatLit(u, lit.Kind, -v), true
		}

		if v, ok := lit.IntValue(); ok {
			return intLit(u, ast.LitInt, -v), true
		}
	case token.PLUS:
		return lit, true
	case token.NOT:
		if b, ok := lit.BoolValue(); ok {
			return boolLit(u, !b), true
		}
	case token.TILDE:
		if v, ok := lit.IntValue(); ok {
			return intLit(u, lit.Kind, ^v), true
		}
	}

	return nil, false
}

// pure1, pure2 and pure3 are the evaluators for the foldable built-in math
// library, by arity.
var pure1 = map[string]func(float64) (float64, bool){
	"abs":   ok1(math.Abs),
	"sign":  ok1(func(x float64) float64 { return sign(x) }),
	"floor": ok1(math.Floor),
	"ceil":  ok1(math.Ceil),
	"round": ok1(math.Round),
	"trunc": ok1(math.Trunc),
	"fract": ok1(func(x float64) float64 { return x - math.Floor(x) }),
	"sin":   ok1(math.Sin),
	"cos":   ok1(math.Cos),
	"tan":   ok1(math.Tan),
	"asin":  ok1(math.Asin),
	"acos":  ok1(math.Acos),
	"atan":  ok1(math.Atan),
	"sinh":  ok1(math.Sinh),
	"cosh":  ok1(math.Cosh),
	"tanh":  ok1(math.Tanh),
	"exp":   ok1(math.Exp),
	"exp2":  ok1(math.Exp2),
	"log": func(x float64) (float64, bool) {
		if x <= 0 {
			return 0, false
		}

		return math.Log(x), true
	},
	"log2": func(x float64) (float64, bool) {
		if x <= 0 {
			return 0, false
		}

		return math.Log2(x), true
	},
	"sqrt": ok1(math.Sqrt),
	"inversesqrt": func(x float64) (float64, bool) {
		if x <= 0 {
			return 0, false
		}

		return 1 / math.Sqrt(x), true
	},
	"radians": ok1(func(x float64) float64 { return x * math.Pi / 180 }),
	"degrees": ok1(func(x float64) float64 { return x * 180 / math.Pi }),
}

var pure2 = map[string]func(a, b float64) (float64, bool){
	"pow": func(a, b float64) (float64, bool) { return math.Pow(a, b), true },
	"mod": func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}

		return a - b*math.Floor(a/b), true
	},
	"min":  func(a, b float64) (float64, bool) { return math.Min(a, b), true },
	"max":  func(a, b float64) (float64, bool) { return math.Max(a, b), true },
	"atan": func(a, b float64) (float64, bool) { return math.Atan2(a, b), true },
	"step": func(edge, x float64) (float64, bool) {
		if x < edge {
			return 0, true
		}

		return 1, true
	},
	"distance": func(a, b float64) (float64, bool) { return math.Abs(a - b), true },
}

var pure3 = map[string]func(a, b, c float64) (float64, bool){
	"clamp": func(x, lo, hi float64) (float64, bool) { return math.Min(math.Max(x, lo), hi), true },
	"mix":   func(a, b, t float64) (float64, bool) { return a*(1-t) + b*t, true },
	"smoothstep": func(e0, e1, x float64) (float64, bool) {
		if e0 == e1 {
			return 0, false
		}

		t := math.Min(math.Max((x-e0)/(e1-e0), 0), 1)

		return t * t * (3 - 2*t), true
	},
	"fma": func(a, b, c float64) (float64, bool) { return math.FMA(a, b, c), true },
}

// intPreservingBuiltins map integer arguments to an integer result (the
// genIType overloads, plus the value-preserving rounding family); folding
// one of these over int literals must re-wrap as an int literal, or the
// result changes type.
var intPreservingBuiltins = map[string]bool{
	"abs": true, "sign": true,
	"floor": true, "ceil": true, "round": true, "trunc": true,
	"min": true, "max": true, "clamp": true, "mod": true,
}

func foldBuiltinCall(call *ast.CallExpr) (ast.Expr, bool) {
	if call.Constructor || !pureBuiltins[call.Name] {
		return nil, false
	}

	args := make([]float64, 0, len(call.Args))
	allInt, anyUint := true, false

	for _, a := range call.Args {
		lit, ok := a.(*ast.LiteralExpr)
		if !ok {
			return nil, false
		}

		v, ok := literalAsFloat(lit)
		if !ok {
			return nil, false
		}

		switch lit.Kind {
		case ast.LitUint:
			anyUint = true
		case ast.LitInt:
		default:
			allInt = false
		}

		args = append(args, v)
	}

	var (
		result float64
		ok     bool
	)

	switch len(args) {
	case 1:
		fn, found := pure1[call.Name]
		if !found {
			return nil, false
		}

		result, ok = fn(args[0])
	case 2:
		fn, found := pure2[call.Name]
		if !found {
			return nil, false
		}

		result, ok = fn(args[0], args[1])
	case 3:
		fn, found := pure3[call.Name]
		if !found {
			return nil, false
		}

		result, ok = fn(args[0], args[1], args[2])
	default:
		return nil, false
	}

	if !ok || math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, false
	}

	if allInt && intPreservingBuiltins[call.Name] && result == math.Trunc(result) {
		kind := ast.LitInt
		if anyUint {
			kind = ast.LitUint
		}

		return intLit(call, kind, int64(result)), true
	}

	return floatLit(call, ast.LitFloat, result), true
}

func ok1(fn func(float64) float64) func(float64) (float64, bool) {
	return func(x float64) (float64, bool) { return fn(x), true }
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// literalAsFloat widens any numeric literal to float64.
func literalAsFloat(lit *ast.LiteralExpr) (float64, bool) {
	if v, ok := lit.FloatValue(); ok {
		return v, true
	}

	if v, ok := lit.IntValue(); ok {
		return float64(v), true
	}

	return 0, false
}

func boolLit(at ast.Node, v bool) *ast.LiteralExpr {
	lit := &ast.LiteralExpr{Kind: ast.LitBool, Value: v}
	lit.Header = ast.NewHeader(at.Span())

	return lit
}

func intLit(at ast.Node, kind ast.LiteralKind, v int64) *ast.LiteralExpr {
	if kind == ast.LitUint {
		lit := &ast.LiteralExpr{Kind: ast.LitUint, Value: uint64(v)}
		lit.Header = ast.NewHeader(at.Span())

		return lit
	}

	lit := &ast.LiteralExpr{Kind: ast.LitInt, Value: v}
	lit.Header = ast.NewHeader(at.Span())

	return lit
}

func floatLit(at ast.Node, kind ast.LiteralKind, v float64) *ast.LiteralExpr {
	lit := &ast.LiteralExpr{Kind: kind, Value: v}
	lit.Header = ast.NewHeader(at.Span())

	return lit
}
