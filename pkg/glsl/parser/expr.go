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
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// parseExpression parses a full comma expression: `a, b, c` evaluates left
// to right and yields the rightmost value.
func (p *Parser) parseExpression() ast.Expr {
	e := p.parseAssignment()

	for p.toks.Check(token.COMMA) {
		p.toks.Advance()
		rhs := p.parseAssignment()
		e = p.binary(e.Span(), token.COMMA, e, rhs)
	}

	return e
}

// parseAssignment parses the right-associative assignment tier, including
// compound-assignment operators.
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseTernary()

	if isAssignOp(p.toks.Current().Kind) {
		opTok := p.toks.Advance()
		right := p.parseAssignment()
		left.SetLValue(true)

		return p.binary(left.Span(), opTok.Kind, left, right)
	}

	return left
}

// parseTernary parses `cond ? then : else`, where then is a full expression
// and else is right-associative with further ternaries/assignments.
func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseBinary(precLogicalOr)

	if !p.toks.Check(token.QUESTION) {
		return cond
	}

	p.toks.Advance()
	then := p.parseExpression()

	if _, err := p.toks.Consume(token.COLON); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	els := p.parseAssignment()

	t := &ast.TernaryExpr{Cond: cond, Then: then, Else: els}
	t.Header = ast.NewHeader(cond.Span().Merge(els.Span()))

	return t
}

// parseBinary implements precedence-climbing over binaryPrec, starting no
// lower than minPrec.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		opKind := p.toks.Current().Kind

		prec, ok := binaryPrec[opKind]
		if !ok || prec < minPrec || isAssignOp(opKind) {
			return left
		}

		p.toks.Advance()

		nextMin := prec + 1
		right := p.parseBinary(nextMin)
		left = p.binary(left.Span(), opKind, left, right)
	}
}

// binary constructs a BinaryExpr spanning from start through right's span.
func (p *Parser) binary(start source.Span, op token.Kind, left, right ast.Expr) *ast.BinaryExpr {
	b := &ast.BinaryExpr{Op: op, Left: left, Right: right}
	b.Header = ast.NewHeader(start.Merge(right.Span()))

	return b
}

// parseUnary parses a prefix unary operator application, or falls through
// to postfix/primary.
func (p *Parser) parseUnary() ast.Expr {
	tok := p.toks.Current()

	if unaryOps[tok.Kind] {
		p.toks.Advance()
		operand := p.parseUnary()

		u := &ast.UnaryExpr{Op: tok.Kind, Operand: operand, Prefix: true}
		u.Header = ast.NewHeader(tok.Span.Merge(operand.Span()))

		return u
	}

	return p.parsePostfix()
}

// parsePostfix parses postfix increment/decrement, member/swizzle access,
// call argument lists and subscripting, left to right.
func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()

	for {
		switch p.toks.Current().Kind {
		case token.INCREMENT, token.DECREMENT:
			opTok := p.toks.Advance()
			u := &ast.UnaryExpr{Op: opTok.Kind, Operand: e, Prefix: false}
			u.Header = ast.NewHeader(e.Span().Merge(opTok.Span))
			e = u

		case token.DOT:
			p.toks.Advance()
			nameTok, err := p.toks.Consume(token.IDENT)

			if err != nil {
				p.errorf(p.toks.Current(), "%s", err)
				return e
			}

			m := &ast.MemberExpr{Object: e, Member: nameTok.Lexeme, Swizzle: isSwizzleName(nameTok.Lexeme)}
			m.Header = ast.NewHeader(e.Span().Merge(nameTok.Span))
			e = m

		case token.LBRACKET:
			p.toks.Advance()
			idx := p.parseExpression()
			endTok, err := p.toks.Consume(token.RBRACKET)

			if err != nil {
				p.errorf(p.toks.Current(), "%s", err)
			}

			s := &ast.SubscriptExpr{Object: e, Index: idx}
			s.Header = ast.NewHeader(e.Span().Merge(endTok.Span))
			e = s

		default:
			return e
		}
	}
}

// parsePrimary parses literals, parenthesized expressions, identifiers,
// built-ins, function calls and type constructors.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.toks.Current()

	switch {
	case tok.Kind == token.INT_LIT || tok.Kind == token.UINT_LIT ||
		tok.Kind == token.FLOAT_LIT || tok.Kind == token.DOUBLE_LIT ||
		tok.Kind == token.KW_TRUE || tok.Kind == token.KW_FALSE:
		p.toks.Advance()
		kind, val := parseLiteralValue(tok)
		lit := &ast.LiteralExpr{Kind: kind, Text: tok.Lexeme, Value: val}
		lit.Header = ast.NewHeader(tok.Span)

		return lit

	case tok.Kind == token.LPAREN:
		p.toks.Advance()
		e := p.parseExpression()

		if _, err := p.toks.Consume(token.RPAREN); err != nil {
			p.errorf(p.toks.Current(), "%s", err)
		}

		return e

	case tok.Kind == token.BUILTIN_VAR:
		p.toks.Advance()
		id := &ast.IdentExpr{Name: tok.Lexeme}
		id.Header = ast.NewHeader(tok.Span)

		return id

	case tok.Kind == token.IDENT:
		p.toks.Advance()

		if p.toks.Check(token.LPAREN) {
			return p.parseCall(tok.Lexeme, tok.Span, p.isKnownStruct(tok.Lexeme), false)
		}

		id := &ast.IdentExpr{Name: tok.Lexeme}
		id.Header = ast.NewHeader(tok.Span)

		if sym, ok := p.scope.Lookup(tok.Lexeme); ok {
			id.Symbol = sym
			sym.UseCount++
			sym.Read = true
		}

		return id

	default:
		if base, ok := types.BaseFromKeyword(tok.Kind); ok {
			p.toks.Advance()
			return p.parseCall(base.String(), tok.Span, true, false)
		}

		p.errorf(tok, "unexpected token %s %q", tok.Kind, tok.Lexeme)
		p.toks.Advance()

		errLit := &ast.LiteralExpr{Kind: ast.LitInt, Text: "0", Value: int64(0)}
		errLit.Header = ast.NewHeader(tok.Span)

		return errLit
	}
}

// parseCall parses the `( arg, arg, ... )` suffix of a call, constructor or
// built-in invocation already past its name token.
func (p *Parser) parseCall(name string, nameSpan source.Span, constructor, builtin bool) ast.Expr {
	open, err := p.toks.Consume(token.LPAREN)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	var args []ast.Expr

	if !p.toks.Check(token.RPAREN) {
		args = append(args, p.parseAssignment())

		for p.toks.Match(token.COMMA) {
			args = append(args, p.parseAssignment())
		}
	}

	closeTok, err := p.toks.Consume(token.RPAREN)
	if err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	fn, found := p.root.FindFunction(name)
	call := &ast.CallExpr{
		Name:        name,
		Args:        args,
		Constructor: constructor,
		Builtin:     builtin || (!constructor && !found && isBuiltinFuncName(name)),
		Resolved:    fn,
	}
	call.Header = ast.NewHeader(nameSpan.Merge(open.Span).Merge(closeTok.Span))

	if fn != nil {
		fn.UseCount++
	}

	return call
}

// isKnownStruct reports whether name was declared as a struct type, in
// which case a following `(...)` is a constructor rather than a function
// call.
func (p *Parser) isKnownStruct(name string) bool {
	for _, s := range p.root.Structs {
		if s.Name == name {
			return true
		}
	}

	return false
}
