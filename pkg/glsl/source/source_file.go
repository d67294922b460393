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
package source

// File represents a single shader source held in memory, plus a
// precomputed line-offset table so diagnostic positions can be recovered
// cheaply without rescanning the text.
type File struct {
	name    string
	text    string
	lineOff []int
}

// NewFile constructs a source file from its name and raw UTF-8 text.
func NewFile(name, text string) *File {
	f := &File{name: name, text: text}
	f.lineOff = []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.lineOff = append(f.lineOff, i+1)
		}
	}

	return f
}

// Name returns the filename (or synthetic name) associated with this source.
func (f *File) Name() string {
	return f.name
}

// Text returns the full source text.
func (f *File) Text() string {
	return f.text
}

// LineCol recovers the 1-based (line, column) pair enclosing a given byte
// offset. Offsets beyond the end of the text clamp to the final position.
func (f *File) LineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	} else if offset > len(f.text) {
		offset = len(f.text)
	}
	// Binary search for the last line-start offset <= offset.
	lo, hi := 0, len(f.lineOff)-1

	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineOff[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo + 1, offset - f.lineOff[lo] + 1
}

// Line returns the text of the 1-based source line n, without its trailing
// newline, or "" when n is out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineOff) {
		return ""
	}

	start := f.lineOff[n-1]

	end := len(f.text)
	if n < len(f.lineOff) {
		end = f.lineOff[n] - 1
	}

	if end < start {
		end = start
	}

	return f.text[start:end]
}
