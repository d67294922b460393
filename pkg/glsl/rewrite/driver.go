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
	"sort"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Run executes the full driver protocol over root, translating it in place
// from its current version to target: pre-pass 1 builds the sampler-type
// map and global-variable index, pre-pass 2 assigns the target version,
// the main pass walks the tree post-order applying matching rules, and the
// post-pass synthesizes required declarations and extension directives.
func Run(root *ast.Root, reg *Registry, target version.Version, a *arena.Arena) *Context {
	ctx := NewContext(root, target, a)

	prePass1(ctx)
	prePass2(ctx)
	mainPass(ctx, reg)
	postPass(ctx)

	return ctx
}

// prePass1 walks top-level declarations to fill the sampler-type map and
// the global-variable index, both of which later rules read but never
// invalidate.
func prePass1(ctx *Context) {
	for _, v := range ctx.Root.Globals {
		ctx.Globals[v.Name] = v

		if v.EffectiveType().Base.IsOpaque() {
			ctx.SamplerTypes[v.Name] = v.EffectiveType().Base
		}
	}

	for _, ib := range ctx.Root.InterfaceBlocks {
		for _, m := range ib.Members {
			if m.Type.Base.IsOpaque() {
				ctx.SamplerTypes[m.Name] = m.Type.Base
			}
		}
	}
}

// prePass2 assigns the translation target version onto the root. The
// context retains the original (source) version separately for rules that
// need both.
func prePass2(ctx *Context) {
	ctx.Root.Version = ctx.Target
}

// mainPass runs the post-order rewrite over every top-level declaration.
func mainPass(ctx *Context, reg *Registry) {
	decls := ctx.Root.Decls
	for i, d := range decls {
		decls[i] = rewriteDecl(d, ctx, reg)
	}

	rebuildIndexes(ctx.Root)
}

// rebuildIndexes re-derives Root's per-category cached slices from Decls
// after the main pass may have spliced in replacement declarations.
func rebuildIndexes(root *ast.Root) {
	root.Extensions = nil
	root.Precisions = nil
	root.Functions = nil
	root.Globals = nil
	root.Structs = nil
	root.InterfaceBlocks = nil

	decls := root.Decls
	root.Decls = nil

	for _, d := range decls {
		if d != nil && !d.Flags().Has(ast.FlagDead) {
			root.AddDecl(d)
		}
	}
}

// postPass synthesizes declarations the rewrites marked as required (e.g.
// a user fragment output standing in for gl_FragColor, or a uniform
// replacing a removed legacy built-in) and prepends #extension directives
// for every extension the rewrites required.
func postPass(ctx *Context) {
	synthesizeLegacyReplacements(ctx)
	synthesizeFragmentOutputs(ctx)

	if len(ctx.RequiredExtensions) == 0 {
		return
	}

	existing := make(map[string]bool, len(ctx.Root.Extensions))
	for _, e := range ctx.Root.Extensions {
		existing[e.Name] = true
	}

	var fresh []ast.Decl

	for name := range ctx.RequiredExtensions {
		if existing[name] {
			continue
		}

		d := &ast.ExtensionDecl{Name: name, Behavior: "require"}
		d.Header = ast.NewHeader(source.Span{})
		fresh = append(fresh, d)
	}

	if len(fresh) == 0 {
		return
	}

	ctx.Root.Decls = append(fresh, ctx.Root.Decls...)
	rebuildIndexes(ctx.Root)
}

// synthesizeFragmentOutputs emits the `out vec4` declarations standing in
// for gl_FragColor/gl_FragData once the upgrade rules have flagged their
// use, unless a matching output was already declared by an earlier rule.
func synthesizeFragmentOutputs(ctx *Context) {
	if !ctx.UsesFragColor && !ctx.UsesFragData {
		return
	}

	var fresh []ast.Decl

	if ctx.UsesFragColor {
		name := ctx.PrimaryOutputName
		if name == "" {
			name = "fragColor"
		}

		if ctx.Globals[name] == nil {
			fresh = append(fresh, newFragmentOutput(ctx, name, 0))
		}
	}

	if ctx.UsesFragData {
		for i := 0; i <= ctx.MaxFragDataIndex; i++ {
			if !ctx.FragDataIndices[i] {
				continue
			}

			name := fmt.Sprintf("fragData_%d", i)
			if ctx.Globals[name] == nil {
				fresh = append(fresh, newFragmentOutput(ctx, name, i))
			}
		}
	}

	if len(fresh) == 0 {
		return
	}

	ctx.Root.Decls = append(fresh, ctx.Root.Decls...)
	rebuildIndexes(ctx.Root)

	for _, d := range fresh {
		v := d.(*ast.VariableDecl)
		ctx.Globals[v.Name] = v
	}
}

func newFragmentOutput(ctx *Context, name string, location int) *ast.VariableDecl {
	v := &ast.VariableDecl{Name: name, Type: types.Scalar(types.VEC4)}
	v.Header = ast.NewHeader(source.Span{})
	v.Qualifier.Storage = types.StorageOut

	// Location zero is the draw-buffer default; only the gl_FragData
	// replacements need an explicit binding, and only when the target can
	// express one.
	if location > 0 && ctx.Catalog.Available(version.LAYOUT_LOCATION_INPUT, ctx.Target) {
		layout := types.NewLayout()
		layout.SetLocation(location)
		v.Qualifier.Layout = layout
	}

	return v
}

// synthesizeLegacyReplacements prepends the uniform/in/out declarations
// standing in for removed legacy built-ins, in deterministic name order.
func synthesizeLegacyReplacements(ctx *Context) {
	if len(ctx.GeneratedUniforms) == 0 {
		return
	}

	names := make([]string, 0, len(ctx.GeneratedUniforms))
	for name := range ctx.GeneratedUniforms {
		if ctx.Globals[name] == nil {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	var fresh []ast.Decl

	for _, name := range names {
		gen := ctx.GeneratedUniforms[name]

		v := &ast.VariableDecl{Name: name, Type: gen.Type}
		v.Header = ast.NewHeader(source.Span{})
		v.Qualifier.Storage = gen.Storage
		fresh = append(fresh, v)
	}

	ctx.Root.Decls = append(fresh, ctx.Root.Decls...)
	rebuildIndexes(ctx.Root)

	for _, d := range fresh {
		v := d.(*ast.VariableDecl)
		ctx.Globals[v.Name] = v
	}
}
