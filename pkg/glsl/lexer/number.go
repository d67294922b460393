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

// scanNumber consumes a numeric literal: hex, octal, decimal integers
// (optionally suffixed u/U), or a float/double with optional fractional
// part, exponent and f/F/lf/LF suffix.
func (l *Lexer) scanNumber(start, line, col int) token.Token {
	if l.src[l.pos] == '0' && (l.peekByte(1) == 'x' || l.peekByte(1) == 'X') {
		l.advanceByte()
		l.advanceByte()

		for l.pos < len(l.src) && isHexDigit[l.src[l.pos]] {
			l.advanceByte()
		}

		return l.finishIntSuffix(start, line, col, token.INT_LIT)
	}

	isFloat := false

	// Integer part (may be octal-leading "0" but we don't distinguish here
	// — octal vs decimal parsing happens lazily at value-parse time).
	for l.pos < len(l.src) && isDigit[l.src[l.pos]] {
		l.advanceByte()
	}

	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true

		l.advanceByte()

		for l.pos < len(l.src) && isDigit[l.src[l.pos]] {
			l.advanceByte()
		}
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		saveLine, saveCol := l.line, l.column

		l.advanceByte()

		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.advanceByte()
		}

		if l.pos < len(l.src) && isDigit[l.src[l.pos]] {
			isFloat = true

			for l.pos < len(l.src) && isDigit[l.src[l.pos]] {
				l.advanceByte()
			}
		} else {
			// Not actually an exponent; back out.
			l.pos, l.line, l.column = save, saveLine, saveCol
		}
	}

	if isFloat {
		return l.finishFloatSuffix(start, line, col)
	}

	return l.finishIntSuffix(start, line, col, token.INT_LIT)
}

func (l *Lexer) finishIntSuffix(start, line, col int, base token.Kind) token.Token {
	if l.pos < len(l.src) && (l.src[l.pos] == 'u' || l.src[l.pos] == 'U') {
		l.advanceByte()

		return l.emit(token.UINT_LIT, start, line, col)
	}

	return l.emit(base, start, line, col)
}

func (l *Lexer) finishFloatSuffix(start, line, col int) token.Token {
	if l.pos+1 < len(l.src) && (l.src[l.pos] == 'l' || l.src[l.pos] == 'L') &&
		(l.src[l.pos+1] == 'f' || l.src[l.pos+1] == 'F') {
		l.advanceByte()
		l.advanceByte()

		return l.emit(token.DOUBLE_LIT, start, line, col)
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'f' || l.src[l.pos] == 'F') {
		l.advanceByte()

		return l.emit(token.FLOAT_LIT, start, line, col)
	}

	return l.emit(token.FLOAT_LIT, start, line, col)
}
