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
package emit

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// Binding powers, lowest to highest, mirroring the parser's climb; a child
// parenthesizes when its own precedence falls below the threshold its
// parent imposes, or ties on the associativity-breaking side.
const (
	precNone = iota * 10
	precComma
	precAssign
	precTernary
	precLogicalOr
	precLogicalXor
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
)

var binaryPrec = map[token.Kind]int{
	token.ASSIGN: precAssign, token.PLUS_ASSIGN: precAssign, token.MINUS_ASSIGN: precAssign,
	token.STAR_ASSIGN: precAssign, token.SLASH_ASSIGN: precAssign, token.PERCENT_ASSIGN: precAssign,
	token.SHL_ASSIGN: precAssign, token.SHR_ASSIGN: precAssign, token.AMP_ASSIGN: precAssign,
	token.PIPE_ASSIGN: precAssign, token.CARET_ASSIGN: precAssign,

	token.OR_OR:   precLogicalOr,
	token.XOR_XOR: precLogicalXor,
	token.AND_AND: precLogicalAnd,
	token.PIPE:    precBitOr,
	token.CARET:   precBitXor,
	token.AMP:     precBitAnd,

	token.EQ: precEquality, token.NEQ: precEquality,
	token.LT: precRelational, token.GT: precRelational,
	token.LE: precRelational, token.GE: precRelational,

	token.SHL: precShift, token.SHR: precShift,
	token.PLUS: precAdditive, token.MINUS: precAdditive,
	token.STAR: precMultiplicative, token.SLASH: precMultiplicative, token.PERCENT: precMultiplicative,
}

var rightAssocOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true, token.AMP_ASSIGN: true,
	token.PIPE_ASSIGN: true, token.CARET_ASSIGN: true,
}

// emitExpr renders one expression, adding parentheses only when the
// surrounding threshold demands them.
func (e *Emitter) emitExpr(x ast.Expr, threshold int) {
	if x == nil {
		return
	}

	prec := exprPrec(x)
	needParens := prec < threshold

	if needParens {
		e.str("(")
	}

	switch v := x.(type) {
	case *ast.LiteralExpr:
		e.emitLiteral(v)
	case *ast.IdentExpr:
		e.str(v.Name)
	case *ast.BinaryExpr:
		leftThreshold, rightThreshold := prec, prec+1
		if rightAssocOps[v.Op] {
			leftThreshold, rightThreshold = prec+1, prec
		}

		e.emitExpr(v.Left, leftThreshold)
		e.str(" ")
		e.str(v.Op.String())
		e.str(" ")
		e.emitExpr(v.Right, rightThreshold)
	case *ast.UnaryExpr:
		if v.Prefix {
			e.str(v.Op.String())
			e.emitExpr(v.Operand, precUnary)
		} else {
			e.emitExpr(v.Operand, precPostfix)
			e.str(v.Op.String())
		}
	case *ast.TernaryExpr:
		// Right-associative: the condition binds one tighter, the arms
		// re-enter at the ternary's own level.
		e.emitExpr(v.Cond, precTernary+1)
		e.str(" ? ")
		e.emitExpr(v.Then, precTernary)
		e.str(" : ")
		e.emitExpr(v.Else, precTernary)
	case *ast.CallExpr:
		e.str(v.Name)
		e.str("(")

		for i, a := range v.Args {
			if i > 0 {
				e.str(", ")
			}

			e.emitExpr(a, precAssign)
		}

		e.str(")")
	case *ast.MemberExpr:
		e.emitExpr(v.Object, precPostfix)
		e.str(".")
		e.str(v.Member)
	case *ast.SubscriptExpr:
		e.emitExpr(v.Object, precPostfix)
		e.str("[")
		e.emitExpr(v.Index, precNone)
		e.str("]")
	case *ast.InitListExpr:
		e.str("{")

		for i, el := range v.Elements {
			if i > 0 {
				e.str(", ")
			}

			e.emitExpr(el, precAssign)
		}

		e.str("}")
	}

	if needParens {
		e.str(")")
	}
}

// exprPrec gives the precedence an expression presents to its parent.
func exprPrec(x ast.Expr) int {
	switch v := x.(type) {
	case *ast.BinaryExpr:
		if p, ok := binaryPrec[v.Op]; ok {
			return p
		}

		return precNone
	case *ast.UnaryExpr:
		if v.Prefix {
			return precUnary
		}

		return precPostfix
	case *ast.TernaryExpr:
		return precTernary
	default:
		// Literals, identifiers, calls, member/subscript chains and
		// initializer lists are primary.
		return precPostfix
	}
}
