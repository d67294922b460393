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
package parser

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// foldConstInt evaluates integer arithmetic over literal expressions, as
// required for array sizes and layout values. It does not consult the
// symbol table — only literals and parenthesized combinations of them are
// folded at parse time; the optimizer's constant-folding pass handles the
// general case once `const` propagation is available.
func (p *Parser) foldConstInt(e ast.Expr) (int, bool) {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		n, ok := v.IntValue()
		return int(n), ok

	case *ast.UnaryExpr:
		operand, ok := p.foldConstInt(v.Operand)
		if !ok {
			return 0, false
		}

		switch v.Op {
		case token.MINUS:
			return -operand, true
		case token.PLUS:
			return operand, true
		default:
			return 0, false
		}

	case *ast.BinaryExpr:
		left, ok := p.foldConstInt(v.Left)
		if !ok {
			return 0, false
		}

		right, ok := p.foldConstInt(v.Right)
		if !ok {
			return 0, false
		}

		return foldIntOp(v.Op, left, right)

	default:
		return 0, false
	}
}

// foldIntOp evaluates a binary integer operator over two already-folded
// operands, per the parser's limited constant-folding contract.
func foldIntOp(op token.Kind, left, right int) (int, bool) {
	switch op {
	case token.PLUS:
		return left + right, true
	case token.MINUS:
		return left - right, true
	case token.STAR:
		return left * right, true
	case token.SLASH:
		if right == 0 {
			return 0, false
		}

		return left / right, true
	case token.PERCENT:
		if right == 0 {
			return 0, false
		}

		return left % right, true
	case token.SHL:
		return left << uint(right), true
	case token.SHR:
		return left >> uint(right), true
	case token.AMP:
		return left & right, true
	case token.PIPE:
		return left | right, true
	case token.CARET:
		return left ^ right, true
	default:
		return 0, false
	}
}
