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
package lexer

import "github.com/gogpu/glslx/pkg/glsl/token"

// scanIdentifier consumes [_A-Za-z][_A-Za-z0-9]* then classifies the
// lexeme: keyword map first, then built-in variable map, else a plain
// identifier.
func (l *Lexer) scanIdentifier(start, line, col int) token.Token {
	for l.pos < len(l.src) && isIdentCont[l.src[l.pos]] {
		l.advanceByte()
	}

	return l.identifierToken(start, line, col)
}

func (l *Lexer) identifierToken(start, line, col int) token.Token {
	lexeme := l.src[start:l.pos]

	switch lexeme {
	case "true":
		return token.Token{Kind: token.KW_TRUE, Lexeme: lexeme, Span: spanOf(start, l.pos), Line: line, Column: col}
	case "false":
		return token.Token{Kind: token.KW_FALSE, Lexeme: lexeme, Span: spanOf(start, l.pos), Line: line, Column: col}
	}

	if kind, ok := token.LookupKeyword(lexeme); ok {
		return token.Token{Kind: kind, Lexeme: lexeme, Span: spanOf(start, l.pos), Line: line, Column: col}
	}

	if token.LookupBuiltin(lexeme) {
		return token.Token{Kind: token.BUILTIN_VAR, Lexeme: lexeme, Span: spanOf(start, l.pos), Line: line, Column: col}
	}

	return token.Token{Kind: token.IDENT, Lexeme: lexeme, Span: spanOf(start, l.pos), Line: line, Column: col}
}
