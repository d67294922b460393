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
package parser

import (
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// parseTopLevelDecl dispatches a single top-level declaration: a precision
// statement, a qualified interface block, a struct, a function or a
// variable declaration. On a syntax error it synchronizes and returns nil.
func (p *Parser) parseTopLevelDecl() ast.Decl {
	startTok := p.toks.Current()

	if p.toks.Check(token.KW_PRECISION) {
		return p.parsePrecisionDecl()
	}

	qual := p.parseQualifiers()

	// A storage-qualified identifier followed by `{` is an interface block.
	if qual.Storage != types.StorageNone && p.toks.Check(token.IDENT) && p.toks.Peek(1).Kind == token.LBRACE {
		return p.parseInterfaceBlock(startTok, qual)
	}

	if p.toks.Check(token.KW_STRUCT) {
		decl := p.parseStructDecl(startTok, qual)

		// `struct Foo { ... } instance;` declares an instance in the same
		// statement; the instance variable itself is emitted as a second
		// top-level declaration so Root's cached indexes stay uniform.
		if p.toks.Check(token.IDENT) {
			instTok := p.toks.Advance()
			p.parseVariableDeclList(startTok, qual, types.NewStruct(types.STRUCT, decl.Name), instTok)
		} else if p.toks.Check(token.SEMICOLON) {
			p.toks.Advance()
		}

		return decl
	}

	if !p.isTypeStart(p.toks.Current()) {
		p.errorf(p.toks.Current(), "expected declaration, got %s %q", p.toks.Current().Kind, p.toks.Current().Lexeme)
		p.synchronize()

		return nil
	}

	typ := p.parseType()
	nameTok, err := p.toks.Consume(token.IDENT)

	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		p.synchronize()

		return nil
	}

	if p.toks.Check(token.LPAREN) {
		return p.parseFunctionDecl(startTok, typ, nameTok.Lexeme)
	}

	return p.parseVariableDeclList(startTok, qual, typ, nameTok)
}

// parsePrecisionDecl parses `precision highp float;`.
func (p *Parser) parsePrecisionDecl() ast.Decl {
	start := p.toks.Advance() // 'precision'

	prec := types.PrecisionNone

	switch p.toks.Current().Kind {
	case token.KW_HIGHP:
		prec = types.PrecisionHigh
	case token.KW_MEDIUMP:
		prec = types.PrecisionMedium
	case token.KW_LOWP:
		prec = types.PrecisionLow
	default:
		p.errorf(p.toks.Current(), "expected precision qualifier")
	}

	p.toks.Advance()
	typ := p.parseType()

	end, err := p.toks.Consume(token.SEMICOLON)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	d := &ast.PrecisionDecl{Precision: prec, Type: typ}
	d.Header = ast.NewHeader(start.Span.Merge(end.Span))

	return d
}

// parseVariableDeclList parses the remainder of a declaration statement
// after its type and first name: optional array dims, optional
// initializer, then further comma-separated names, terminated by `;`.
// Every name is added to the root as its own VariableDecl, in source
// order; the first one is returned.
func (p *Parser) parseVariableDeclList(start token.Token, qual types.Qualifier, typ types.Type, nameTok token.Token) ast.Decl {
	first := p.finishOneVariable(start, qual, typ, nameTok)
	p.root.AddDecl(first)

	for p.toks.Match(token.COMMA) {
		extraNameTok, err := p.toks.Consume(token.IDENT)
		if err != nil {
			p.errorf(p.toks.Current(), "%s", err)
			break
		}

		extra := p.finishOneVariable(start, qual, typ, extraNameTok)
		p.root.AddDecl(extra)
	}

	if _, err := p.toks.Consume(token.SEMICOLON); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		p.synchronize()
	}

	return first
}

// finishOneVariable parses one name's optional array-dim suffix and
// initializer, registering its symbol in the current scope.
func (p *Parser) finishOneVariable(start token.Token, qual types.Qualifier, typ types.Type, nameTok token.Token) *ast.VariableDecl {
	v := &ast.VariableDecl{Qualifier: qual, Type: typ, Name: nameTok.Lexeme}
	v.Header = ast.NewHeader(start.Span.Merge(nameTok.Span))

	for p.toks.Check(token.LBRACKET) {
		v.ExtraArrayDims = append(v.ExtraArrayDims, p.parseArrayDim())
	}

	if p.toks.Match(token.ASSIGN) {
		v.Init = p.parseAssignment()
	}

	sym := &ast.Symbol{Name: v.Name, Kind: ast.SymVariable, Type: v.EffectiveType(), Decl: v, Write: v.Init != nil}
	p.declareSymbol(nameTok, sym)
	v.Symbol = sym

	return v
}

// parseStructDecl parses `struct Name { members... }`.
func (p *Parser) parseStructDecl(start token.Token, qual types.Qualifier) *ast.StructDecl {
	p.toks.Advance() // 'struct'

	nameTok, err := p.toks.Consume(token.IDENT)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	d := &ast.StructDecl{Name: nameTok.Lexeme}
	p.root.AddDecl(d) // register before members so self-reference inside is visible

	if _, err := p.toks.Consume(token.LBRACE); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	for !p.toks.Check(token.RBRACE) && !p.toks.AtEnd() {
		d.Members = append(d.Members, p.parseStructMember()...)
	}

	endTok, err := p.toks.Consume(token.RBRACE)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	d.Header = ast.NewHeader(start.Span.Merge(endTok.Span))

	sym := &ast.Symbol{Name: d.Name, Kind: ast.SymStruct, Type: types.NewStruct(types.STRUCT, d.Name), Decl: d}
	p.declareSymbol(nameTok, sym)

	return d
}

// parseStructMember parses one member declaration line, which may declare
// several comma-separated members sharing a type.
func (p *Parser) parseStructMember() []*ast.VariableDecl {
	memberTok := p.toks.Current()
	typ := p.parseType()

	var members []*ast.VariableDecl

	for {
		nameTok, err := p.toks.Consume(token.IDENT)
		if err != nil {
			p.errorf(p.toks.Current(), "%s", err)
			break
		}

		m := &ast.VariableDecl{Type: typ, Name: nameTok.Lexeme}
		m.Header = ast.NewHeader(memberTok.Span.Merge(nameTok.Span))

		for p.toks.Check(token.LBRACKET) {
			m.ExtraArrayDims = append(m.ExtraArrayDims, p.parseArrayDim())
		}

		members = append(members, m)

		if !p.toks.Match(token.COMMA) {
			break
		}
	}

	if _, err := p.toks.Consume(token.SEMICOLON); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	return members
}

// parseInterfaceBlock parses `storage BlockName { members... } instance?;`.
func (p *Parser) parseInterfaceBlock(start token.Token, qual types.Qualifier) *ast.InterfaceBlockDecl {
	nameTok, _ := p.toks.Consume(token.IDENT)

	d := &ast.InterfaceBlockDecl{Qualifier: qual, BlockName: nameTok.Lexeme}

	if _, err := p.toks.Consume(token.LBRACE); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	for !p.toks.Check(token.RBRACE) && !p.toks.AtEnd() {
		d.Members = append(d.Members, p.parseStructMember()...)
	}

	p.toks.Consume(token.RBRACE)

	if p.toks.Check(token.IDENT) {
		instTok := p.toks.Advance()
		d.InstanceName = instTok.Lexeme

		for p.toks.Check(token.LBRACKET) {
			d.InstanceArrayDims = append(d.InstanceArrayDims, p.parseArrayDim())
		}
	}

	endTok, err := p.toks.Consume(token.SEMICOLON)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	d.Header = ast.NewHeader(start.Span.Merge(endTok.Span))

	sym := &ast.Symbol{Name: d.BlockName, Kind: ast.SymInterfaceBlock, Decl: d}
	p.declareSymbol(nameTok, sym)

	return d
}

// parseFunctionDecl parses a function prototype or definition, already past
// its return type and name.
func (p *Parser) parseFunctionDecl(start token.Token, retType types.Type, name string) *ast.FunctionDecl {
	f := &ast.FunctionDecl{ReturnType: retType, Name: name}
	p.root.AddDecl(f)

	p.toks.Advance() // '('

	p.pushScope()

	if !p.toks.Check(token.RPAREN) {
		f.Params = append(f.Params, p.parseParam())

		for p.toks.Match(token.COMMA) {
			f.Params = append(f.Params, p.parseParam())
		}
	}

	if _, err := p.toks.Consume(token.RPAREN); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	sym := &ast.Symbol{Name: name, Kind: ast.SymFunction, Type: retType, Decl: f}
	p.scope.Parent.Declare(sym) // functions live in the enclosing (global) scope

	if p.toks.Match(token.SEMICOLON) {
		f.Prototype = true
		p.popScope()

		return f
	}

	f.Body = p.parseBlockReusingScope()
	p.popScope()

	end := f.Body.Span()
	f.Header = ast.NewHeader(start.Span.Merge(end))

	return f
}

func (p *Parser) parseParam() *ast.ParamDecl {
	start := p.toks.Current()
	qual := p.parseQualifiers()
	typ := p.parseType()

	param := &ast.ParamDecl{Type: typ, Storage: qual.Storage}
	param.Header = ast.NewHeader(start.Span)

	if p.toks.Check(token.IDENT) {
		nameTok := p.toks.Advance()
		param.Name = nameTok.Lexeme

		for p.toks.Check(token.LBRACKET) {
			typ = typ.WithArray(p.parseArrayDim())
			param.Type = typ
		}

		sym := &ast.Symbol{Name: param.Name, Kind: ast.SymParameter, Type: typ, Decl: param}
		p.declareSymbol(nameTok, sym)
		param.Symbol = sym
	}

	return param
}
