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
package version

import "strings"

// Detect scans source for a leading "#version" directive (skipping leading
// whitespace and comments) and returns the version it names. If no
// directive is present, it infers a version from vocabulary present in the
// source and falls back to V110.
func Detect(src string) Version {
	if v, ok := scanVersionDirective(src); ok {
		return v
	}

	return inferFromVocabulary(src)
}

// scanVersionDirective skips whitespace and comments looking for the first
// non-trivial token; if it is a "#version N" directive, the named version
// is returned.
func scanVersionDirective(src string) (Version, bool) {
	i := 0
	n := len(src)

	for i < n {
		switch {
		case src[i] == ' ' || src[i] == '\t' || src[i] == '\r' || src[i] == '\n':
			i++
		case i+1 < n && src[i] == '/' && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case i+1 < n && src[i] == '/' && src[i+1] == '*':
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i += 2
		case src[i] == '#':
			rest := src[i+1:]
			if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), "version") {
				return Version{}, false
			}

			return parseVersionLine(rest)
		default:
			return Version{}, false
		}
	}

	return Version{}, false
}

func parseVersionLine(rest string) (Version, bool) {
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimPrefix(rest, "version")
	rest = strings.TrimLeft(rest, " \t")

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}

	if digits == 0 {
		return Version{}, false
	}

	code := 0
	for i := 0; i < digits; i++ {
		code = code*10 + int(rest[i]-'0')
	}

	return New(uint16(code)), true
}

// inferFromVocabulary guesses a version from characteristic keywords when
// no #version directive is present.
func inferFromVocabulary(src string) Version {
	switch {
	case strings.Contains(src, "layout") || strings.Contains(src, "flat ") ||
		strings.Contains(src, "texture("):
		return V330
	case strings.Contains(src, "attribute") || strings.Contains(src, "varying") ||
		strings.Contains(src, "texture2D(") || strings.Contains(src, "texture1D(") ||
		strings.Contains(src, "textureCube("):
		return V110
	default:
		return V110
	}
}

// ParseDriverString tolerantly extracts a major/minor version from strings
// like "4.60 NVIDIA 550.54.14" as reported by a host driver.
func ParseDriverString(s string) (Version, bool) {
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == 0 || i >= len(s) || s[i] != '.' {
		return Version{}, false
	}

	major := s[:i]
	j := i + 1
	start := j

	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}

	if j == start {
		return Version{}, false
	}

	minor := s[start:j]

	majorVal, minorVal := atoi(major), atoi(minor)
	if len(minor) == 1 {
		minorVal *= 10
	}

	return New(uint16(majorVal*100 + minorVal)), true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}

	return n
}
