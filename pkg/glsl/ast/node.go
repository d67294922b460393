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

// Package ast defines the tagged-variant GLSL abstract syntax tree: shader
// root, declarations, statements and expressions, each sharing a common
// header for source span, parent linkage and optimizer flags, plus the
// nested-scope symbol table the parser populates as it walks the source.
package ast

import "github.com/gogpu/glslx/pkg/glsl/source"

// Flag is one bit of the optimizer's per-node flag set.
type Flag uint8

const (
	FlagConstant Flag = 1 << iota
	FlagPure
	FlagSideEffect
	FlagDead
	FlagVisited
	FlagModified
)

// FlagSet tracks which optimizer flags are set on a node.
type FlagSet uint8

// Has reports whether f is set.
func (s FlagSet) Has(f Flag) bool { return s&FlagSet(f) != 0 }

// Set returns a copy of s with f set.
func (s FlagSet) Set(f Flag) FlagSet { return s | FlagSet(f) }

// Clear returns a copy of s with f cleared.
func (s FlagSet) Clear(f Flag) FlagSet { return s &^ FlagSet(f) }

// Node is implemented by every AST variant: declarations, statements and
// expressions alike. Dispatch is by type switch on the concrete variant,
// not virtual methods.
type Node interface {
	Span() source.Span
	Parent() Node
	SetParent(Node)
	Flags() FlagSet
	SetFlags(FlagSet)
}

// Header is embedded by every concrete node to supply the common Node
// fields: source location, parent link and optimizer flags.
type Header struct {
	span   source.Span
	parent Node
	flags  FlagSet
}

// NewHeader constructs a header covering the given span.
func NewHeader(span source.Span) Header {
	return Header{span: span}
}

func (h *Header) Span() source.Span   { return h.span }
func (h *Header) Parent() Node        { return h.parent }
func (h *Header) SetParent(p Node)    { h.parent = p }
func (h *Header) Flags() FlagSet      { return h.flags }
func (h *Header) SetFlags(f FlagSet)  { h.flags = f }
