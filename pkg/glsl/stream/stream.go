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

// Package stream holds the lexer's token output in a random-access buffer
// and gives the parser peek/advance/backtrack primitives over it.
package stream

import (
	"fmt"

	"github.com/gogpu/glslx/pkg/glsl/token"
)

// Stream is a growable token buffer with O(1) lookahead, single-level
// mark/reset backtracking, and a precomputed line-offset table for
// recovering source lines in diagnostics.
type Stream struct {
	toks    []token.Token
	pos     int
	mark    int
	lineOff []int
}

// New builds a stream over a complete token slice. toks must end with an
// EOF token, as produced by lexer.Tokenize.
func New(toks []token.Token) *Stream {
	s := &Stream{toks: toks}
	s.buildLineOffsets()

	return s
}

func (s *Stream) buildLineOffsets() {
	seen := make(map[int]bool)

	for _, t := range s.toks {
		if !seen[t.Line] {
			seen[t.Line] = true
			s.lineOff = append(s.lineOff, t.Line)
		}
	}
}

// Peek returns the token offset positions ahead of the cursor without
// advancing. Requesting beyond the end returns the trailing EOF token.
func (s *Stream) Peek(offset int) token.Token {
	i := s.pos + offset
	if i >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}

	return s.toks[i]
}

// Current returns the token at the cursor (equivalent to Peek(0)).
func (s *Stream) Current() token.Token {
	return s.Peek(0)
}

// Advance returns the current token and moves the cursor forward by one,
// unless already at EOF.
func (s *Stream) Advance() token.Token {
	tok := s.Current()
	if tok.Kind != token.EOF {
		s.pos++
	}

	return tok
}

// AtEnd reports whether the cursor sits on the sentinel EOF token.
func (s *Stream) AtEnd() bool {
	return s.Current().Kind == token.EOF
}

// Check reports whether the current token has the given kind, without
// advancing.
func (s *Stream) Check(kind token.Kind) bool {
	return s.Current().Kind == kind
}

// Match advances and returns true if the current token's kind is among
// kinds; otherwise the cursor does not move.
func (s *Stream) Match(kinds ...token.Kind) bool {
	cur := s.Current().Kind

	for _, k := range kinds {
		if cur == k {
			s.Advance()
			return true
		}
	}

	return false
}

// Consume advances past the current token if it has the expected kind,
// otherwise returns an error describing the mismatch.
func (s *Stream) Consume(expected token.Kind) (token.Token, error) {
	if s.Check(expected) {
		return s.Advance(), nil
	}

	cur := s.Current()

	return cur, fmt.Errorf("line %d: expected %s, got %s %q", cur.Line, expected, cur.Kind, cur.Lexeme)
}

// Mark records the current cursor position for a single pending Reset.
func (s *Stream) Mark() {
	s.mark = s.pos
}

// Reset restores the cursor to the position last recorded by Mark.
func (s *Stream) Reset() {
	s.pos = s.mark
}

// Position returns the current cursor index, for diagnostics and AST node
// provenance.
func (s *Stream) Position() int {
	return s.pos
}

// SourceLine returns the 1-based source line number closest to (at or
// before) token index n, falling back to the last known line.
func (s *Stream) SourceLine(n int) int {
	if n < 0 || n >= len(s.toks) {
		if len(s.toks) == 0 {
			return 1
		}

		return s.toks[len(s.toks)-1].Line
	}

	return s.toks[n].Line
}
