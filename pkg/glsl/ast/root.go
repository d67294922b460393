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

import (
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Profile is the GLSL profile a #version directive names (core, compatibility,
// es, or unspecified).
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileCore
	ProfileCompatibility
	ProfileES
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	default:
		return ""
	}
}

// Root is the whole-shader AST: the version/stage/profile triple, the
// ordered top-level declarations, cached per-category indexes for fast
// rewrite/optimizer access, the root symbol table, and the set of
// extensions and warnings accumulated during translation.
type Root struct {
	Header

	Version version.Version
	Stage   version.Stage
	Profile Profile

	Decls []Decl

	Extensions       []*ExtensionDecl
	Precisions       []*PrecisionDecl
	Functions        []*FunctionDecl
	Globals          []*VariableDecl
	Structs          []*StructDecl
	InterfaceBlocks  []*InterfaceBlockDecl

	Scope *Scope

	RequiredExtensions map[string]bool
	Warnings           []source.Diagnostic
}

// NewRoot constructs an empty shader root for the given stage, with a fresh
// global scope.
func NewRoot(stage version.Stage) *Root {
	return &Root{
		Stage:              stage,
		Scope:              NewScope(nil),
		RequiredExtensions: make(map[string]bool),
	}
}

// AddDecl appends a top-level declaration and files it into the matching
// cached index.
func (r *Root) AddDecl(d Decl) {
	r.Decls = append(r.Decls, d)
	d.SetParent(r)

	switch v := d.(type) {
	case *ExtensionDecl:
		r.Extensions = append(r.Extensions, v)
	case *PrecisionDecl:
		r.Precisions = append(r.Precisions, v)
	case *FunctionDecl:
		r.Functions = append(r.Functions, v)
	case *VariableDecl:
		r.Globals = append(r.Globals, v)
	case *StructDecl:
		r.Structs = append(r.Structs, v)
	case *InterfaceBlockDecl:
		r.InterfaceBlocks = append(r.InterfaceBlocks, v)
	}
}

// RemoveDecl deletes a top-level declaration (by identity) from both the
// ordered list and its cached index. Used by dead-code elimination.
func (r *Root) RemoveDecl(d Decl) {
	r.Decls = removeDecl(r.Decls, d)

	switch v := d.(type) {
	case *ExtensionDecl:
		r.Extensions = removeTyped(r.Extensions, v)
	case *PrecisionDecl:
		r.Precisions = removeTyped(r.Precisions, v)
	case *FunctionDecl:
		r.Functions = removeTyped(r.Functions, v)
	case *VariableDecl:
		r.Globals = removeTyped(r.Globals, v)
	case *StructDecl:
		r.Structs = removeTyped(r.Structs, v)
	case *InterfaceBlockDecl:
		r.InterfaceBlocks = removeTyped(r.InterfaceBlocks, v)
	}
}

func removeDecl(decls []Decl, target Decl) []Decl {
	out := decls[:0]

	for _, d := range decls {
		if d != target {
			out = append(out, d)
		}
	}

	return out
}

func removeTyped[T comparable](list []T, target T) []T {
	out := list[:0]

	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}

	return out
}

// RequireExtension marks ext as needed by the translated output.
func (r *Root) RequireExtension(ext string) {
	r.RequiredExtensions[ext] = true
}

// AddWarning appends a non-fatal diagnostic collected during translation.
func (r *Root) AddWarning(d source.Diagnostic) {
	r.Warnings = append(r.Warnings, d)
}

// FindFunction looks up a top-level function declaration by name.
func (r *Root) FindFunction(name string) (*FunctionDecl, bool) {
	for _, f := range r.Functions {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}
