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
package ast

import "github.com/gogpu/glslx/pkg/glsl/types"

// SymbolKind classifies what declared a symbol.
type SymbolKind uint8

const (
	SymVariable SymbolKind = iota
	SymFunction
	SymStruct
	SymInterfaceBlock
	SymParameter
)

// Symbol is one name bound in a scope.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     types.Type
	Decl     Node
	Depth    int
	UseCount int
	Read     bool
	Write    bool
}

// Scope is one level of the lexical scope chain: global, function or block.
// Lookup walks Parent; LookupLocal does not.
type Scope struct {
	Parent  *Scope
	Depth   int
	symbols map[string]*Symbol
	order   []string // insertion order, for deterministic iteration
}

// NewScope creates a scope nested inside parent (nil for the global scope).
func NewScope(parent *Scope) *Scope {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}

	return &Scope{Parent: parent, Depth: depth, symbols: make(map[string]*Symbol)}
}

// Declare registers a new symbol in this scope. It returns false without
// modifying the scope if name is already bound locally (redefinition).
func (s *Scope) Declare(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}

	sym.Depth = s.Depth
	s.symbols[sym.Name] = sym
	s.order = append(s.order, sym.Name)

	return true
}

// Lookup finds name in this scope or any ancestor.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// LookupLocal finds name only in this scope, not its ancestors.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Symbols returns this scope's directly declared symbols in declaration
// order.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.symbols[name])
	}

	return out
}
