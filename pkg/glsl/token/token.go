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
package token

import "github.com/gogpu/glslx/pkg/glsl/source"

// Token is a single lexical unit: a kind, its exact source text, and the
// 1-based line/column at which it starts.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   source.Span
	Line   int
	Column int
}

// flyweights holds process-lifetime tokens for common single-character
// operators and punctuators, avoiding per-token allocation for the
// overwhelming majority of lexed symbols. Keyed by kind, since each of
// these kinds has exactly one lexeme — flyweights never carry
// span/position, only kind+lexeme; the lexer copies in the real position
// when it hands one out.
var flyweights = map[Kind]string{}

func init() {
	for _, k := range []Kind{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, SEMICOLON, COMMA, DOT,
		QUESTION, COLON, PLUS, MINUS, STAR, SLASH, PERCENT, ASSIGN, EQ, NEQ, LT, GT,
		LE, GE, AND_AND, OR_OR, XOR_XOR, NOT, AMP, PIPE, CARET, TILDE, SHL, SHR,
		PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN,
		SHL_ASSIGN, SHR_ASSIGN, AMP_ASSIGN, PIPE_ASSIGN, CARET_ASSIGN, INCREMENT, DECREMENT,
	} {
		flyweights[k] = kindNames[k]
	}
}

// FlyweightLexeme returns the canonical lexeme for an operator/punctuator
// kind, avoiding the need to copy the source substring for common symbols.
func FlyweightLexeme(k Kind) (string, bool) {
	s, ok := flyweights[k]
	return s, ok
}
