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
package rewrite

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Catalog exposes the capability queries a rule needs: whether a feature is
// expressible natively at a version, and which extension (if any) promotes
// it. It is a thin façade over the version package's static tables, kept as
// its own type so rules depend on an interface rather than the package
// directly.
type Catalog struct{}

// Available reports whether feature f is natively expressible at v.
func (Catalog) Available(f version.Feature, v version.Version) bool {
	return version.Available(f, v)
}

// PromotingExtension returns the cheapest extension promoting f into
// target, if one exists.
func (Catalog) PromotingExtension(f version.Feature, target version.Version) (version.Extension, bool) {
	return version.PromotingExtension(f, target)
}

// Context carries everything a rule needs for one compile: the version
// pair, stage, shader root, scratch arena, capability catalog, and the
// mutable bookkeeping the driver's pre/main/post passes fill in.
type Context struct {
	Source version.Version
	Target version.Version
	Stage  version.Stage

	Root  *ast.Root
	Arena *arena.Arena

	Catalog Catalog

	// SamplerTypes maps a declared sampler variable's name to its base type,
	// filled by the driver's pre-pass so texture-function downgrade rules
	// can pick the dimension-matching legacy name.
	SamplerTypes map[string]types.Base

	// Globals indexes every global variable declaration by name.
	Globals map[string]*ast.VariableDecl

	RequiredExtensions map[string]bool
	Warnings           []source.Diagnostic
	Errors             []source.Diagnostic

	UsesFragColor     bool
	UsesFragData      bool
	MaxFragDataIndex  int
	PrimaryOutputName string

	// FragDataIndices records every gl_FragData index the source referenced,
	// so the post-pass synthesizes exactly the outputs the shader uses.
	FragDataIndices map[int]bool

	// OutputRenames maps a user-declared fragment output's name to the legacy
	// builtin standing in for it after a downgrade.
	OutputRenames map[string]OutputTarget

	// GeneratedUniforms maps replacement names synthesized for removed legacy
	// built-ins to the declaration the host must now supply.
	GeneratedUniforms map[string]GeneratedDecl

	AttributeLocations map[string]int

	GeneratedOutputNames map[string]bool
}

// OutputTarget names the legacy builtin a downgraded fragment output maps
// to: bare gl_FragColor, or gl_FragData subscripted at Index.
type OutputTarget struct {
	Name      string
	Index     int
	Subscript bool
}

// GeneratedDecl describes a declaration synthesized to stand in for a
// removed legacy built-in.
type GeneratedDecl struct {
	Type    types.Type
	Storage types.Storage
}

// NewContext constructs a translation context for rewriting root from its
// current version to target.
func NewContext(root *ast.Root, target version.Version, a *arena.Arena) *Context {
	return &Context{
		Source:               root.Version,
		Target:               target,
		Stage:                root.Stage,
		Root:                 root,
		Arena:                a,
		SamplerTypes:         make(map[string]types.Base),
		Globals:              make(map[string]*ast.VariableDecl),
		RequiredExtensions:   make(map[string]bool),
		FragDataIndices:      make(map[int]bool),
		OutputRenames:        make(map[string]OutputTarget),
		GeneratedUniforms:    make(map[string]GeneratedDecl),
		AttributeLocations:   make(map[string]int),
		GeneratedOutputNames: make(map[string]bool),
	}
}

// Upgrading reports whether this compile translates to a newer version.
func (c *Context) Upgrading() bool {
	return c.Source.Less(c.Target)
}

// Downgrading reports whether this compile translates to an older version.
func (c *Context) Downgrading() bool {
	return c.Target.Less(c.Source)
}

// RequireExtension marks ext as needed by the translated output.
func (c *Context) RequireExtension(ext string) {
	c.RequiredExtensions[ext] = true
	c.Root.RequireExtension(ext)
}

// Warn appends a non-fatal diagnostic produced during rewriting.
func (c *Context) Warn(d source.Diagnostic) {
	c.Warnings = append(c.Warnings, d)
	c.Root.AddWarning(d)
}

// Warnf records a warning of the given kind anchored at span.
func (c *Context) Warnf(kind source.Kind, span source.Span, format string, args ...any) {
	c.Warn(source.Diagnostic{
		Kind:     kind,
		Severity: source.Warning,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errorf records a fatal diagnostic; the compile still runs to completion
// but reports failure at the end.
func (c *Context) Errorf(kind source.Kind, span source.Span, format string, args ...any) {
	c.Errors = append(c.Errors, source.Diagnostic{
		Kind:     kind,
		Severity: source.Error,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// FreshOutputName returns name if unused, otherwise name suffixed with an
// ascending counter, recording whichever it returns as generated.
func (c *Context) FreshOutputName(name string) string {
	if !c.GeneratedOutputNames[name] {
		c.GeneratedOutputNames[name] = true
		return name
	}

	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !c.GeneratedOutputNames[candidate] {
			c.GeneratedOutputNames[candidate] = true
			return candidate
		}
	}
}
