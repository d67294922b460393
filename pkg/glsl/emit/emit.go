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

// Package emit renders a shader AST back to canonical GLSL source text:
// four-space indentation, one declaration per line, braces on the opening
// line, minimal parenthesization, version directive first, extensions and
// precision declarations next.
package emit

import (
	"sort"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Emitter writes one shader to a scratch buffer acquired from the arena.
// It cannot fail; malformed subtrees render as best it can.
type Emitter struct {
	arena  *arena.Arena
	buf    []byte
	indent int
}

// New constructs an emitter drawing its scratch buffer from a.
func New(a *arena.Arena) *Emitter {
	return &Emitter{arena: a}
}

// Emit renders the whole shader and returns the text. The scratch buffer
// returns to the arena afterwards.
func (e *Emitter) Emit(root *ast.Root) string {
	e.buf = e.arena.AcquireBytes(4096)
	defer func() {
		e.arena.ReleaseBytes(e.buf)
		e.buf = nil
	}()

	e.emitVersionDirective(root)
	e.emitExtensions(root)

	for _, p := range root.Precisions {
		e.emitPrecision(p)
	}

	for _, d := range root.Decls {
		switch d.(type) {
		case *ast.ExtensionDecl, *ast.PrecisionDecl:
			// Already grouped at the top.
		default:
			e.emitDecl(d)
		}
	}

	return string(e.buf)
}

func (e *Emitter) emitVersionDirective(root *ast.Root) {
	if root.Version.IsZero() {
		return
	}

	e.str("#version ")
	e.str(versionDigits(root.Version))

	// Profiles only exist from 1.50 on; a downgraded shader sheds the one
	// it was parsed with.
	if root.Version.AtLeast(version.V150) {
		if root.Profile != ast.ProfileNone {
			e.str(" ")
			e.str(root.Profile.String())
		} else {
			e.str(" core")
		}
	}

	e.nl()
}

// emitExtensions renders the union of declared and rewrite-required
// extensions, deduplicated, declarations first in source order and
// synthesized requirements after in name order.
func (e *Emitter) emitExtensions(root *ast.Root) {
	seen := make(map[string]bool)

	for _, x := range root.Extensions {
		if seen[x.Name] {
			continue
		}

		seen[x.Name] = true
		e.emitExtension(x.Name, x.Behavior)
	}

	var required []string

	for name := range root.RequiredExtensions {
		if !seen[name] {
			required = append(required, name)
		}
	}

	sort.Strings(required)

	for _, name := range required {
		e.emitExtension(name, "require")
	}
}

func (e *Emitter) emitExtension(name, behavior string) {
	if behavior == "" {
		behavior = "require"
	}

	e.str("#extension ")
	e.str(name)
	e.str(" : ")
	e.str(behavior)
	e.nl()
}

func (e *Emitter) emitPrecision(p *ast.PrecisionDecl) {
	e.str("precision ")
	e.str(p.Precision.String())
	e.str(" ")
	e.str(p.Type.String())
	e.str(";")
	e.nl()
}

// Low-level buffer helpers.

func (e *Emitter) str(s string) {
	e.buf = append(e.buf, s...)
}

func (e *Emitter) nl() {
	e.buf = append(e.buf, '\n')
}

func (e *Emitter) writeIndent() {
	for i := 0; i < e.indent; i++ {
		e.str("    ")
	}
}

func versionDigits(v version.Version) string {
	code := int(v.Code())

	return string([]byte{
		byte('0' + code/100),
		byte('0' + (code/10)%10),
		byte('0' + code%10),
	})
}
