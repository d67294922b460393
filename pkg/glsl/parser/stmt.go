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
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// parseBlockStmt parses `{ stmts... }`, pushing a fresh lexical scope.
func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	p.pushScope()
	b := p.parseBlockReusingScope()
	p.popScope()

	return b
}

// parseBlockReusingScope parses `{ stmts... }` without pushing a scope of
// its own — used for a function body, which reuses the scope that was
// already pre-populated with parameter symbols.
func (p *Parser) parseBlockReusingScope() *ast.BlockStmt {
	start, err := p.toks.Consume(token.LBRACE)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	b := &ast.BlockStmt{Scope: p.scope}

	for !p.toks.Check(token.RBRACE) && !p.toks.AtEnd() {
		b.Stmts = append(b.Stmts, p.parseStatement())
	}

	end, err := p.toks.Consume(token.RBRACE)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	b.Header = ast.NewHeader(start.Span.Merge(end.Span))

	return b
}

// parseStatement dispatches on the current token to the matching statement
// form.
func (p *Parser) parseStatement() ast.Stmt {
	tok := p.toks.Current()

	switch tok.Kind {
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.KW_IF:
		return p.parseIfStmt()
	case token.KW_FOR:
		return p.parseForStmt()
	case token.KW_WHILE:
		return p.parseWhileStmt()
	case token.KW_DO:
		return p.parseDoWhileStmt()
	case token.KW_SWITCH:
		return p.parseSwitchStmt()
	case token.KW_RETURN:
		return p.parseReturnStmt()
	case token.KW_BREAK:
		p.toks.Advance()
		p.requireLoopOrSwitchContext(tok, "break")

		s := &ast.BreakStmt{}
		s.Header = ast.NewHeader(tok.Span)
		p.consumeStmtEnd()

		return s
	case token.KW_CONTINUE:
		p.toks.Advance()
		p.requireLoopContext(tok)

		s := &ast.ContinueStmt{}
		s.Header = ast.NewHeader(tok.Span)
		p.consumeStmtEnd()

		return s
	case token.KW_DISCARD:
		p.toks.Advance()

		if p.stage != version.Fragment {
			p.warnf(source.UNSUPPORTED_FEATURE, tok, "discard used outside the fragment stage")
		}

		s := &ast.DiscardStmt{}
		s.Header = ast.NewHeader(tok.Span)
		p.consumeStmtEnd()

		return s
	case token.SEMICOLON:
		p.toks.Advance()

		s := &ast.BlockStmt{}
		s.Header = ast.NewHeader(tok.Span)

		return s
	}

	if p.isDeclarationStart() {
		return p.parseDeclStmt()
	}

	e := p.parseExpression()
	es := &ast.ExprStmt{Expr: e}
	es.Header = ast.NewHeader(e.Span())
	p.consumeStmtEnd()

	return es
}

// isDeclarationStart performs the two-token lookahead that disambiguates: a
// type-start token followed by an identifier (after any qualifiers)
// classifies the statement as a declaration rather than an expression.
func (p *Parser) isDeclarationStart() bool {
	offset := 0

	for qualifierStartKinds[p.toks.Peek(offset).Kind] {
		if p.toks.Peek(offset).Kind == token.KW_LAYOUT {
			// Skip the parenthesized layout clause without fully parsing it.
			offset++

			if p.toks.Peek(offset).Kind == token.LPAREN {
				depth := 0

				for {
					k := p.toks.Peek(offset).Kind
					if k == token.LPAREN {
						depth++
					} else if k == token.RPAREN {
						depth--
						offset++

						if depth == 0 {
							break
						}

						continue
					} else if k == token.EOF {
						break
					}

					offset++
				}

				continue
			}

			continue
		}

		offset++
	}

	return p.isTypeStart(p.toks.Peek(offset))
}

// parseDeclStmt parses a local declaration statement, reusing the
// top-level variable-list grammar but returning a DeclStmt wrapper so block
// bodies keep every declared name together.
func (p *Parser) parseDeclStmt() *ast.DeclStmt {
	start := p.toks.Current()
	qual := p.parseQualifiers()
	typ := p.parseType()

	nameTok, err := p.toks.Consume(token.IDENT)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		p.synchronize()

		return &ast.DeclStmt{}
	}

	ds := &ast.DeclStmt{}
	ds.Decls = append(ds.Decls, p.finishOneVariable(start, qual, typ, nameTok))

	for p.toks.Match(token.COMMA) {
		extraNameTok, err := p.toks.Consume(token.IDENT)
		if err != nil {
			p.errorf(p.toks.Current(), "%s", err)
			break
		}

		ds.Decls = append(ds.Decls, p.finishOneVariable(start, qual, typ, extraNameTok))
	}

	end := p.toks.Current()

	if _, err := p.toks.Consume(token.SEMICOLON); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		p.synchronize()
	}

	ds.Header = ast.NewHeader(start.Span.Merge(end.Span))

	return ds
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.toks.Advance() // 'if'

	p.toks.Consume(token.LPAREN)
	cond := p.parseExpression()
	p.toks.Consume(token.RPAREN)

	then := p.parseStatement()

	s := &ast.IfStmt{Cond: cond, Then: then}
	end := then.Span()

	if p.toks.Match(token.KW_ELSE) {
		s.Else = p.parseStatement()
		end = s.Else.Span()
	}

	s.Header = ast.NewHeader(start.Span.Merge(end))

	return s
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	start := p.toks.Advance() // 'for'
	p.toks.Consume(token.LPAREN)

	p.pushScope()
	defer p.popScope()

	s := &ast.ForStmt{}

	if p.toks.Check(token.SEMICOLON) {
		p.toks.Advance()
	} else if p.isDeclarationStart() {
		s.Init = p.parseDeclStmt()
	} else {
		e := p.parseExpression()
		es := &ast.ExprStmt{Expr: e}
		es.Header = ast.NewHeader(e.Span())
		s.Init = es
		p.toks.Consume(token.SEMICOLON)
	}

	if !p.toks.Check(token.SEMICOLON) {
		s.Cond = p.parseExpression()
	}

	p.toks.Consume(token.SEMICOLON)

	if !p.toks.Check(token.RPAREN) {
		s.Post = p.parseExpression()
	}

	p.toks.Consume(token.RPAREN)

	p.loopDepth++
	s.Body = p.parseStatement()
	p.loopDepth--

	s.Header = ast.NewHeader(start.Span.Merge(s.Body.Span()))

	return s
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.toks.Advance() // 'while'
	p.toks.Consume(token.LPAREN)
	cond := p.parseExpression()
	p.toks.Consume(token.RPAREN)

	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--

	s := &ast.WhileStmt{Cond: cond, Body: body}
	s.Header = ast.NewHeader(start.Span.Merge(body.Span()))

	return s
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	start := p.toks.Advance() // 'do'

	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--

	p.toks.Consume(token.KW_WHILE)
	p.toks.Consume(token.LPAREN)
	cond := p.parseExpression()
	p.toks.Consume(token.RPAREN)
	end, _ := p.toks.Consume(token.SEMICOLON)

	s := &ast.DoWhileStmt{Body: body, Cond: cond}
	s.Header = ast.NewHeader(start.Span.Merge(end.Span))

	return s
}

func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	start := p.toks.Advance() // 'switch'
	p.toks.Consume(token.LPAREN)
	cond := p.parseExpression()
	p.toks.Consume(token.RPAREN)
	p.toks.Consume(token.LBRACE)

	p.pushScope()

	s := &ast.SwitchStmt{Cond: cond}
	p.switchDepth++

	for !p.toks.Check(token.RBRACE) && !p.toks.AtEnd() {
		s.Cases = append(s.Cases, p.parseCaseStmt())
	}

	p.switchDepth--

	end, _ := p.toks.Consume(token.RBRACE)
	p.popScope()

	s.Header = ast.NewHeader(start.Span.Merge(end.Span))

	return s
}

func (p *Parser) parseCaseStmt() *ast.CaseStmt {
	start := p.toks.Current()
	c := &ast.CaseStmt{}

	if p.toks.Match(token.KW_DEFAULT) {
		c.Default = true
	} else {
		p.toks.Consume(token.KW_CASE)
		c.Value = p.parseExpression()
	}

	p.toks.Consume(token.COLON)

	for !p.toks.Check(token.KW_CASE) && !p.toks.Check(token.KW_DEFAULT) &&
		!p.toks.Check(token.RBRACE) && !p.toks.AtEnd() {
		c.Stmts = append(c.Stmts, p.parseStatement())
	}

	c.Header = ast.NewHeader(start.Span)

	return c
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.toks.Advance() // 'return'

	s := &ast.ReturnStmt{}
	end := start.Span

	if !p.toks.Check(token.SEMICOLON) {
		s.Value = p.parseExpression()
		end = s.Value.Span()
	}

	semi, err := p.toks.Consume(token.SEMICOLON)
	if err == nil {
		end = semi.Span
	} else {
		p.errorf(p.toks.Current(), "%s", err)
	}

	s.Header = ast.NewHeader(start.Span.Merge(end))

	return s
}

func (p *Parser) consumeStmtEnd() {
	if _, err := p.toks.Consume(token.SEMICOLON); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		p.synchronize()
	}
}

func (p *Parser) requireLoopContext(tok token.Token) {
	if p.loopDepth == 0 {
		p.warnf(source.UNSUPPORTED_FEATURE, tok, "continue used outside a loop")
	}
}

func (p *Parser) requireLoopOrSwitchContext(tok token.Token, kind string) {
	if p.loopDepth == 0 && p.switchDepth == 0 {
		p.warnf(source.UNSUPPORTED_FEATURE, tok, "%s used outside a loop or switch", kind)
	}
}
