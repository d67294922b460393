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

// Package source provides span tracking, source-file line lookup and
// structured diagnostics shared across the lexer, parser, rewrite engine and
// optimizer.
package source

// Span identifies a contiguous range of byte offsets within a source string.
// The range is half-open: [start,end).
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span over [start,end).
func NewSpan(start, end int) Span {
	return Span{start, end}
}

// Start returns the starting offset of this span.
func (s Span) Start() int {
	return s.start
}

// End returns the (exclusive) ending offset of this span.
func (s Span) End() int {
	return s.end
}

// Length returns the number of bytes covered by this span.
func (s Span) Length() int {
	return s.end - s.start
}

// Contains returns true if the given offset falls within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.start && offset < s.end
}

// Merge returns the smallest span enclosing both s and other.
func (s Span) Merge(other Span) Span {
	start := s.start
	if other.start < start {
		start = other.start
	}

	end := s.end
	if other.end > end {
		end = other.end
	}

	return Span{start, end}
}
