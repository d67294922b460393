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
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// syncKinds are the tokens that plausibly start a fresh statement or
// declaration, used as synchronization points after a syntax error.
var syncKinds = map[token.Kind]bool{
	token.KW_IF: true, token.KW_FOR: true, token.KW_WHILE: true, token.KW_DO: true,
	token.KW_SWITCH: true, token.KW_RETURN: true, token.KW_BREAK: true,
	token.KW_CONTINUE: true, token.KW_DISCARD: true, token.KW_STRUCT: true,
	token.KW_UNIFORM: true, token.KW_IN: true, token.KW_OUT: true, token.KW_LAYOUT: true,
	token.KW_CONST: true, token.KW_PRECISION: true,
}

// synchronize discards tokens until it reaches a semicolon (consumed) or a
// token that plausibly begins a new statement or declaration, so that one
// syntax error does not cascade into spurious follow-on diagnostics.
func (p *Parser) synchronize() {
	for !p.toks.AtEnd() {
		tok := p.toks.Current()

		if tok.Kind == token.SEMICOLON {
			p.toks.Advance()
			return
		}

		if syncKinds[tok.Kind] || tok.Kind == token.RBRACE {
			return
		}

		if _, ok := types.BaseFromKeyword(tok.Kind); ok {
			return
		}

		p.toks.Advance()
	}
}
