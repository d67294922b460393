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
	"strconv"
	"strings"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
)

// parseLiteralValue lazily parses a literal token's text into its numeric
// or boolean domain value, per the u/U, f/F and lf/LF suffix rules.
func parseLiteralValue(tok token.Token) (ast.LiteralKind, any) {
	switch tok.Kind {
	case token.INT_LIT:
		return ast.LitInt, parseIntText(tok.Lexeme)
	case token.UINT_LIT:
		return ast.LitUint, parseUintText(strings.TrimRight(tok.Lexeme, "uU"))
	case token.FLOAT_LIT:
		v, _ := strconv.ParseFloat(strings.TrimRight(tok.Lexeme, "fF"), 64)
		return ast.LitFloat, v
	case token.DOUBLE_LIT:
		v, _ := strconv.ParseFloat(trimDoubleSuffix(tok.Lexeme), 64)
		return ast.LitDouble, v
	case token.KW_TRUE:
		return ast.LitBool, true
	case token.KW_FALSE:
		return ast.LitBool, false
	default:
		return ast.LitInt, int64(0)
	}
}

func parseIntText(text string) int64 {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		v, _ := strconv.ParseInt(text[2:], 16, 64)
		return v
	}

	if len(text) > 1 && text[0] == '0' {
		v, _ := strconv.ParseInt(text, 8, 64)
		return v
	}

	v, _ := strconv.ParseInt(text, 10, 64)

	return v
}

func parseUintText(text string) uint64 {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		v, _ := strconv.ParseUint(text[2:], 16, 64)
		return v
	}

	if len(text) > 1 && text[0] == '0' {
		v, _ := strconv.ParseUint(text, 8, 64)
		return v
	}

	v, _ := strconv.ParseUint(text, 10, 64)

	return v
}

func trimDoubleSuffix(text string) string {
	if len(text) >= 2 && strings.EqualFold(text[len(text)-2:], "lf") {
		return text[:len(text)-2]
	}

	return text
}

// swizzleSets is the set of valid swizzle-letter alphabets; a `.member`
// access is a swizzle when every character belongs to one of them.
var swizzleSets = []string{"xyzw", "rgba", "stpq"}

// isSwizzleName reports whether name is composed entirely of letters from a
// single swizzle alphabet (1 to 4 characters).
func isSwizzleName(name string) bool {
	if len(name) == 0 || len(name) > 4 {
		return false
	}

	for _, set := range swizzleSets {
		ok := true

		for _, c := range name {
			if !strings.ContainsRune(set, c) {
				ok = false
				break
			}
		}

		if ok {
			return true
		}
	}

	return false
}
