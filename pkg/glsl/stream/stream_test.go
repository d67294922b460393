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
package stream

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func TestStream_PeekAdvance(t *testing.T) {
	s := New(lexer.Tokenize("int x = 1;"))

	assert.Equal(t, token.KW_INT, s.Peek(0).Kind)
	assert.Equal(t, token.IDENT, s.Peek(1).Kind)
	assert.Equal(t, token.KW_INT, s.Advance().Kind)
	assert.Equal(t, token.IDENT, s.Current().Kind)
}

func TestStream_CheckMatch(t *testing.T) {
	s := New(lexer.Tokenize("in out;"))

	assert.True(t, s.Check(token.KW_IN))
	assert.True(t, s.Match(token.KW_OUT, token.KW_IN))
	assert.Equal(t, token.KW_OUT, s.Current().Kind)
}

func TestStream_ConsumeError(t *testing.T) {
	s := New(lexer.Tokenize("int x;"))

	_, err := s.Consume(token.KW_FLOAT)
	assert.True(t, err != nil)

	tok, err := s.Consume(token.KW_INT)
	assert.True(t, err == nil)
	assert.Equal(t, token.KW_INT, tok.Kind)
}

func TestStream_MarkReset(t *testing.T) {
	s := New(lexer.Tokenize("a b c"))

	s.Advance()
	s.Mark()
	s.Advance()
	s.Advance()
	assert.Equal(t, token.EOF, s.Current().Kind)

	s.Reset()
	assert.Equal(t, "b", s.Current().Lexeme)
}

func TestStream_AtEndPastEOF(t *testing.T) {
	s := New(lexer.Tokenize(""))

	assert.True(t, s.AtEnd())
	assert.Equal(t, token.EOF, s.Peek(5).Kind)
}
