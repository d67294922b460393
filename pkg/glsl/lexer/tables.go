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

// Precomputed ASCII classification tables. Index by byte value; indices
// 128-255 (non-ASCII bytes) are left false and handled via the unicode
// fallback in the scanner.
var (
	isIdentStart [256]bool
	isIdentCont  [256]bool
	isDigit      [256]bool
	isHexDigit   [256]bool
	isSpace      [256]bool
	isOperStart  [256]bool
)

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		isIdentStart[c] = true
		isIdentCont[c] = true
	}

	for c := byte('A'); c <= 'Z'; c++ {
		isIdentStart[c] = true
		isIdentCont[c] = true
	}

	isIdentStart['_'] = true
	isIdentCont['_'] = true

	for c := byte('0'); c <= '9'; c++ {
		isDigit[c] = true
		isHexDigit[c] = true
		isIdentCont[c] = true
	}

	for c := byte('a'); c <= 'f'; c++ {
		isHexDigit[c] = true
	}

	for c := byte('A'); c <= 'F'; c++ {
		isHexDigit[c] = true
	}

	for _, c := range []byte(" \t\r\n\v\f") {
		isSpace[c] = true
	}

	for _, c := range []byte("+-*/%=!<>&|^~?:;,.()[]{}") {
		isOperStart[c] = true
	}
}
