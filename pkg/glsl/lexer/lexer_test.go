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

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}

	return ks
}

func TestLexer_Identifiers(t *testing.T) {
	toks := Tokenize("foo _bar baz2")
	assert.Equal(t, []token.Kind{token.IDENT, token.IDENT, token.IDENT, token.EOF}, kinds(toks))
	assert.Equal(t, "foo", toks[0].Lexeme)
	assert.Equal(t, "_bar", toks[1].Lexeme)
}

func TestLexer_KeywordsAndBuiltins(t *testing.T) {
	toks := Tokenize("uniform vec4 gl_Position; true false")
	assert.Equal(t, token.KW_UNIFORM, toks[0].Kind)
	assert.Equal(t, token.KW_VEC4, toks[1].Kind)
	assert.Equal(t, token.BUILTIN_VAR, toks[2].Kind)
	assert.Equal(t, token.SEMICOLON, toks[3].Kind)
	assert.Equal(t, token.KW_TRUE, toks[4].Kind)
	assert.Equal(t, token.KW_FALSE, toks[5].Kind)
}

func TestLexer_IntegerLiterals(t *testing.T) {
	toks := Tokenize("0x1F 017 42 7u 0U")
	assert.Equal(t, token.INT_LIT, toks[0].Kind)
	assert.Equal(t, "0x1F", toks[0].Lexeme)
	assert.Equal(t, token.INT_LIT, toks[1].Kind)
	assert.Equal(t, token.INT_LIT, toks[2].Kind)
	assert.Equal(t, token.UINT_LIT, toks[3].Kind)
	assert.Equal(t, token.UINT_LIT, toks[4].Kind)
}

func TestLexer_FloatLiterals(t *testing.T) {
	toks := Tokenize("1.0 .5 1e10 2.5e-3f 3.0lf")
	assert.Equal(t, token.FLOAT_LIT, toks[0].Kind)
	assert.Equal(t, token.FLOAT_LIT, toks[1].Kind)
	assert.Equal(t, token.FLOAT_LIT, toks[2].Kind)
	assert.Equal(t, token.FLOAT_LIT, toks[3].Kind)
	assert.Equal(t, token.DOUBLE_LIT, toks[4].Kind)
}

func TestLexer_Operators_LongestMatch(t *testing.T) {
	toks := Tokenize("a <<= b >> c <= d < e")
	assert.Equal(t, []token.Kind{
		token.IDENT, token.SHL_ASSIGN, token.IDENT, token.SHR, token.IDENT,
		token.LE, token.IDENT, token.LT, token.IDENT, token.EOF,
	}, kinds(toks))
}

func TestLexer_Comments(t *testing.T) {
	toks := Tokenize("a // line comment\nb /* block\ncomment */ c")
	assert.Equal(t, []token.Kind{token.IDENT, token.IDENT, token.IDENT, token.EOF}, kinds(toks))
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	toks := Tokenize("a /* never closes")
	assert.Equal(t, []token.Kind{token.IDENT, token.EOF}, kinds(toks))
}

func TestLexer_Preprocessor_Version(t *testing.T) {
	toks := Tokenize("#version 330 core\nvoid main(){}")
	assert.Equal(t, token.PP_VERSION, toks[0].Kind)
	assert.Equal(t, "#version 330 core", toks[0].Lexeme)
}

func TestLexer_Preprocessor_LineContinuation(t *testing.T) {
	toks := Tokenize("#define FOO \\\n  1\nint x;")
	assert.Equal(t, token.PP_DEFINE, toks[0].Kind)
	assert.Equal(t, "#define FOO \\\n  1", toks[0].Lexeme)
	assert.Equal(t, token.KW_INT, toks[1].Kind)
}

func TestLexer_Preprocessor_ShortDirective(t *testing.T) {
	toks := Tokenize("#ifdef FOO\nint x;\n#endif")
	assert.Equal(t, token.PP_IFDEF, toks[0].Kind)
	assert.Equal(t, "#ifdef", toks[0].Lexeme)
	assert.Equal(t, token.IDENT, toks[1].Kind)
}

func TestLexer_IllegalByte(t *testing.T) {
	toks := Tokenize("a $ b")
	assert.Equal(t, []token.Kind{token.IDENT, token.ILLEGAL, token.IDENT, token.EOF}, kinds(toks))
}

func TestLexer_LineColumnTracking(t *testing.T) {
	toks := Tokenize("a\nb  c")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 1, toks[1].Column)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 4, toks[2].Column)
}
