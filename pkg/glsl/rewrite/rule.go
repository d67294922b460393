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

// Package rewrite implements the cross-version rule engine: a registry of
// node-transform and name-translation rules, a translation context, and the
// driver that walks a shader's AST applying the rules in priority order.
package rewrite

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Category groups rules by the kind of construct they touch. Rules run in
// descending Category priority within the main pass, per the rewrite
// ordering invariants: qualifier before function before output before
// layout before legacy before type before feature.
type Category uint8

const (
	CategoryPreprocessor Category = iota
	CategoryQualifier
	CategoryType
	CategoryFunction
	CategoryVariable
	CategoryOutput
	CategoryLayout
	CategoryFeature
)

// Priority returns the category's default priority band. Individual rules
// may still be registered with a more specific Priority value within the
// same band.
func (c Category) Priority() int {
	switch c {
	case CategoryQualifier:
		return 100
	case CategoryFunction:
		return 90
	case CategoryOutput:
		return 80
	case CategoryLayout:
		return 70
	case CategoryVariable:
		return 60
	case CategoryType:
		return 50
	case CategoryFeature:
		return 40
	default:
		return 0
	}
}

// NodeRule rewrites one AST node variant. Transform returns the (possibly
// identical) node to keep in place, or a distinct replacement node to
// splice into the parent; ok is false when the rule declined to act despite
// CanTransform/Applies returning true (e.g. a downgrade whose sampler type
// could not be resolved).
type NodeRule struct {
	Name         string
	Category     Category
	Priority     int
	Variant      string // variantTag(node) this rule matches
	Applies      func(source, target version.Version, stage version.Stage) bool
	CanTransform func(node ast.Node) bool
	Transform    func(node ast.Node, ctx *Context) (replacement ast.Node, ok bool)
}

// NameRule maps an identifier lexeme bidirectionally between a legacy
// builtin name and its modern user-declared equivalent (or vice versa),
// given the translation direction.
type NameRule struct {
	Name       string
	Category   Category
	Priority   int
	SourceName string // the legacy or old-style identifier this rule keys on
	Applies    func(source, target version.Version, stage version.Stage) bool
	Upgrade    func(name string) (newName string, ok bool)
	Downgrade  func(name string) (oldName string, ok bool)
}
