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

// Package parser turns a GLSL token stream into a typed abstract syntax
// tree: recursive descent for statements and declarations, a Pratt-style
// precedence climber for expressions, with scope/symbol bookkeeping and
// syntax-error recovery folded into the same walk.
package parser

import (
	"fmt"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Parser consumes a token stream for one shader and produces its root AST,
// accumulating diagnostics rather than aborting on the first error.
type Parser struct {
	file        *source.File
	toks        *stream.Stream
	root        *ast.Root
	scope       *ast.Scope
	diags       []source.Diagnostic
	stage       version.Stage
	loopDepth   int
	switchDepth int
}

// New constructs a parser for the given source file, already lexed into
// toks, targeting the given shader stage (used to validate stage-specific
// constructs like `discard`).
func New(file *source.File, toks *stream.Stream, stage version.Stage) *Parser {
	root := ast.NewRoot(stage)

	return &Parser{
		file:  file,
		toks:  toks,
		root:  root,
		scope: root.Scope,
		stage: stage,
	}
}

// Parse consumes the entire token stream and returns the populated shader
// root plus any diagnostics collected along the way. A non-empty error-kind
// diagnostic list means the caller should treat the compile as failed, but
// the returned AST is still usable by the rewrite engine on a best-effort
// basis.
func (p *Parser) Parse() (*ast.Root, []source.Diagnostic) {
	for !p.toks.AtEnd() {
		if p.toks.Check(token.PP_VERSION) {
			p.parseVersionDirective()
			continue
		}

		if p.toks.Check(token.PP_EXTENSION) {
			p.root.AddDecl(p.parseExtensionDirective())
			continue
		}

		if d := p.parseTopLevelDecl(); d != nil {
			switch d.(type) {
			case *ast.StructDecl, *ast.FunctionDecl, *ast.VariableDecl:
				// Already added to the root while being parsed.
			default:
				p.root.AddDecl(d)
			}
		}
	}

	return p.root, p.diags
}

// errorf records a SYNTAX diagnostic anchored at tok's location.
func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	d := source.NewDiagnostic(p.file, tok.Span, source.SYNTAX, source.Error, fmt.Sprintf(format, args...))
	p.diags = append(p.diags, d)
}

// warnf records a non-fatal diagnostic anchored at tok's location.
func (p *Parser) warnf(kind source.Kind, tok token.Token, format string, args ...any) {
	d := source.NewDiagnostic(p.file, tok.Span, kind, source.Warning, fmt.Sprintf(format, args...))
	p.diags = append(p.diags, d)
}

func (p *Parser) pushScope() *ast.Scope {
	p.scope = ast.NewScope(p.scope)
	return p.scope
}

func (p *Parser) popScope() {
	if p.scope.Parent != nil {
		p.scope = p.scope.Parent
	}
}

// declareSymbol registers sym in the current scope, recording a
// REDEFINITION diagnostic (not raising a parse error) on collision.
func (p *Parser) declareSymbol(tok token.Token, sym *ast.Symbol) {
	if !p.scope.Declare(sym) {
		p.warnf(source.REDEFINITION, tok, "redefinition of %q", sym.Name)
	}
}
