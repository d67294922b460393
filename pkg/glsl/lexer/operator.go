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

// operEntry pairs a punctuator spelling with its kind. operTable is ordered
// longest-first so a linear scan implements longest-match without
// backtracking.
type operEntry struct {
	text string
	kind token.Kind
}

var operTable = []operEntry{
	// Three-character forms.
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},

	// Two-character forms.
	{"==", token.EQ},
	{"!=", token.NEQ},
	{"<=", token.LE},
	{">=", token.GE},
	{"&&", token.AND_AND},
	{"||", token.OR_OR},
	{"^^", token.XOR_XOR},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN},
	{"%=", token.PERCENT_ASSIGN},
	{"&=", token.AMP_ASSIGN},
	{"|=", token.PIPE_ASSIGN},
	{"^=", token.CARET_ASSIGN},
	{"++", token.INCREMENT},
	{"--", token.DECREMENT},

	// Single-character forms.
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"{", token.LBRACE},
	{"}", token.RBRACE},
	{"[", token.LBRACKET},
	{"]", token.RBRACKET},
	{";", token.SEMICOLON},
	{",", token.COMMA},
	{".", token.DOT},
	{"?", token.QUESTION},
	{":", token.COLON},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"=", token.ASSIGN},
	{"<", token.LT},
	{">", token.GT},
	{"!", token.NOT},
	{"&", token.AMP},
	{"|", token.PIPE},
	{"^", token.CARET},
	{"~", token.TILDE},
}

// scanOperator matches the longest punctuator spelling starting at the
// current position. operTable is ordered by descending spelling length so
// the first match found is the longest one.
func (l *Lexer) scanOperator(start, line, col int) token.Token {
	rest := l.src[l.pos:]

	for _, entry := range operTable {
		if len(rest) >= len(entry.text) && rest[:len(entry.text)] == entry.text {
			for range entry.text {
				l.advanceByte()
			}

			return l.emit(entry.kind, start, line, col)
		}
	}

	l.advanceByte()

	return l.emit(token.ILLEGAL, start, line, col)
}
