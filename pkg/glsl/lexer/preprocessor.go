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

var ppDirectives = map[string]token.Kind{
	"version":  token.PP_VERSION,
	"extension": token.PP_EXTENSION,
	"line":     token.PP_LINE,
	"define":   token.PP_DEFINE,
	"undef":    token.PP_UNDEF,
	"if":       token.PP_IF,
	"ifdef":    token.PP_IFDEF,
	"ifndef":   token.PP_IFNDEF,
	"else":     token.PP_ELSE,
	"elif":     token.PP_ELIF,
	"endif":    token.PP_ENDIF,
	"error":    token.PP_ERROR,
	"pragma":   token.PP_PRAGMA,
}

// fullLineDirectives capture the entire logical line (honoring trailing
// `\` continuation) as the token lexeme, since their arguments are
// free-form text rather than further GLSL tokens.
var fullLineDirectives = map[token.Kind]bool{
	token.PP_VERSION:   true,
	token.PP_EXTENSION: true,
	token.PP_DEFINE:    true,
	token.PP_ERROR:     true,
}

// scanPreprocessor consumes a leading `#`, any following horizontal
// whitespace, then the directive keyword. Directives whose arguments are
// free text (version, extension, define, error) additionally capture the
// rest of the logical source line, following `\`-newline continuations.
func (l *Lexer) scanPreprocessor(start, line, col int) token.Token {
	l.advanceByte() // consume '#'

	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.advanceByte()
	}

	kwStart := l.pos
	for l.pos < len(l.src) && isIdentCont[l.src[l.pos]] {
		l.advanceByte()
	}

	name := l.src[kwStart:l.pos]

	kind, ok := ppDirectives[name]
	if !ok {
		return l.emit(token.ILLEGAL, start, line, col)
	}

	if fullLineDirectives[kind] {
		l.consumeLogicalLineRemainder()
	}

	return l.emit(kind, start, line, col)
}

// consumeLogicalLineRemainder advances to the end of the current logical
// source line, treating a `\` immediately followed by a newline as a
// continuation rather than a terminator.
func (l *Lexer) consumeLogicalLineRemainder() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		if c == '\\' && (l.peekByte(1) == '\n' || (l.peekByte(1) == '\r' && l.peekByte(2) == '\n')) {
			l.advanceByte()
			l.advanceByte()

			if l.pos < len(l.src) && l.src[l.pos-1] == '\r' {
				l.advanceByte()
			}

			continue
		}

		if c == '\n' {
			return
		}

		l.advanceByte()
	}
}
