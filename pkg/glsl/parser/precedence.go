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

import "github.com/gogpu/glslx/pkg/glsl/token"

// Binding powers, lowest to highest, as a dense integer scale; gaps are left
// between tiers purely for readability.
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
	token.ASSIGN:         precAssign,
	token.PLUS_ASSIGN:    precAssign,
	token.MINUS_ASSIGN:   precAssign,
	token.STAR_ASSIGN:    precAssign,
	token.SLASH_ASSIGN:   precAssign,
	token.PERCENT_ASSIGN: precAssign,
	token.SHL_ASSIGN:     precAssign,
	token.SHR_ASSIGN:     precAssign,
	token.AMP_ASSIGN:     precAssign,
	token.PIPE_ASSIGN:    precAssign,
	token.CARET_ASSIGN:   precAssign,

	token.OR_OR:   precLogicalOr,
	token.XOR_XOR: precLogicalXor,
	token.AND_AND: precLogicalAnd,

	token.PIPE:  precBitOr,
	token.CARET: precBitXor,
	token.AMP:   precBitAnd,

	token.EQ:  precEquality,
	token.NEQ: precEquality,

	token.LT: precRelational,
	token.GT: precRelational,
	token.LE: precRelational,
	token.GE: precRelational,

	token.SHL: precShift,
	token.SHR: precShift,

	token.PLUS:  precAdditive,
	token.MINUS: precAdditive,

	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
}

// rightAssoc holds the operators whose right operand is parsed with the
// same (not incremented) minimum precedence, so chains associate to the
// right: the assignment operators.
var rightAssoc = map[token.Kind]bool{
	token.ASSIGN:         true,
	token.PLUS_ASSIGN:    true,
	token.MINUS_ASSIGN:   true,
	token.STAR_ASSIGN:    true,
	token.SLASH_ASSIGN:   true,
	token.PERCENT_ASSIGN: true,
	token.SHL_ASSIGN:     true,
	token.SHR_ASSIGN:     true,
	token.AMP_ASSIGN:     true,
	token.PIPE_ASSIGN:    true,
	token.CARET_ASSIGN:   true,
}

// isAssignOp reports whether k is `=` or a compound-assignment operator.
func isAssignOp(k token.Kind) bool {
	switch k {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN, token.AMP_ASSIGN, token.PIPE_ASSIGN,
		token.CARET_ASSIGN:
		return true
	default:
		return false
	}
}

// unaryOps are the prefix operators recognized before a primary expression.
var unaryOps = map[token.Kind]bool{
	token.PLUS:      true,
	token.MINUS:     true,
	token.NOT:       true,
	token.TILDE:     true,
	token.INCREMENT: true,
	token.DECREMENT: true,
}
