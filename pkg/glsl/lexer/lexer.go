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

// Package lexer implements the single-pass GLSL scanner: text in, a token
// stream out. It never aborts on bad input — unrecognized bytes become
// ILLEGAL tokens and scanning continues, leaving rejection to the parser.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// Lexer scans a source string into GLSL tokens.
type Lexer struct {
	src    string
	pos    int
	line   int
	column int
}

// New constructs a lexer over the given source text.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, column: 1}
}

// Tokenize scans the entire source into a token slice, terminated by a
// sentinel EOF token.
func Tokenize(src string) []token.Token {
	lx := New(src)

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)

		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next scans and returns the next token, advancing the lexer. Once EOF is
// reached, Next continues to return EOF tokens.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	if l.pos >= len(l.src) {
		return l.emit(token.EOF, l.pos, l.line, l.column)
	}

	start, line, col := l.pos, l.line, l.column
	c := l.src[l.pos]

	switch {
	case c == '#':
		return l.scanPreprocessor(start, line, col)
	case isIdentStart[c]:
		return l.scanIdentifier(start, line, col)
	case isDigit[c] || (c == '.' && l.peekDigit(1)):
		return l.scanNumber(start, line, col)
	case isOperStart[c]:
		return l.scanOperator(start, line, col)
	case c >= 0x80:
		return l.scanUnicode(start, line, col)
	default:
		l.advanceByte()
		return l.emit(token.ILLEGAL, start, line, col)
	}
}

// emit constructs a token covering [start,l.pos) with the given start
// position.
func (l *Lexer) emit(kind token.Kind, start, line, col int) token.Token {
	lexeme := l.src[start:l.pos]
	if fw, ok := token.FlyweightLexeme(kind); ok {
		lexeme = fw
	}

	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   source.NewSpan(start, l.pos),
		Line:   line,
		Column: col,
	}
}

// advanceByte consumes one byte, tracking line/column.
func (l *Lexer) advanceByte() {
	if l.pos >= len(l.src) {
		return
	}

	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	l.pos++
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

func (l *Lexer) peekDigit(offset int) bool {
	return isDigit[l.peekByte(offset)]
}

// skipWhitespaceAndComments consumes whitespace, `//` line comments and
// `/* */` block comments (unterminated block comments consume to EOF),
// tracking line/column throughout.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case isSpace[c]:
			l.advanceByte()
		case c == '/' && l.peekByte(1) == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advanceByte()
			}
		case c == '/' && l.peekByte(1) == '*':
			l.advanceByte()
			l.advanceByte()

			for l.pos < len(l.src) {
				if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
					l.advanceByte()
					l.advanceByte()

					break
				}

				l.advanceByte()
			}
		default:
			return
		}
	}
}

// scanUnicode handles a non-ASCII lead byte: if it begins a Unicode
// identifier character, it is scanned as an identifier (Unicode
// identifiers are not part of core GLSL but the lexer degrades gracefully
// rather than aborting); otherwise it is an ILLEGAL token.
func (l *Lexer) scanUnicode(start, line, col int) token.Token {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if !unicode.IsLetter(r) {
		for i := 0; i < size; i++ {
			l.advanceByte()
		}

		return l.emit(token.ILLEGAL, start, line, col)
	}

	for l.pos < len(l.src) {
		r, size = utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r < 0x80 {
			break
		}

		if r < 0x80 && !isIdentCont[l.src[l.pos]] {
			break
		}

		for i := 0; i < size; i++ {
			l.advanceByte()
		}
	}

	return l.identifierToken(start, line, col)
}
