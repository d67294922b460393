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
	"strconv"

	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// qualifierStartKinds are the keyword tokens that begin a qualifier run
// preceding a type in a declaration.
var qualifierStartKinds = map[token.Kind]bool{
	token.KW_CONST: true, token.KW_IN: true, token.KW_OUT: true, token.KW_INOUT: true,
	token.KW_UNIFORM: true, token.KW_BUFFER: true, token.KW_SHARED: true,
	token.KW_ATTRIBUTE: true, token.KW_VARYING: true,
	token.KW_FLAT: true, token.KW_SMOOTH: true, token.KW_NOPERSPECTIVE: true,
	token.KW_HIGHP: true, token.KW_MEDIUMP: true, token.KW_LOWP: true,
	token.KW_CENTROID: true, token.KW_SAMPLE: true, token.KW_PATCH: true,
	token.KW_INVARIANT: true, token.KW_PRECISE: true, token.KW_COHERENT: true,
	token.KW_VOLATILE: true, token.KW_RESTRICT: true, token.KW_READONLY: true,
	token.KW_WRITEONLY: true, token.KW_LAYOUT: true,
}

// isTypeStart reports whether tok begins a type: a type keyword or an
// identifier naming a previously declared struct.
func (p *Parser) isTypeStart(tok token.Token) bool {
	if _, ok := types.BaseFromKeyword(tok.Kind); ok {
		return true
	}

	if tok.Kind == token.IDENT {
		return p.isKnownStruct(tok.Lexeme)
	}

	return false
}

// parseQualifiers consumes a run of qualifier keywords, including an
// optional layout(...) clause, in any order.
func (p *Parser) parseQualifiers() types.Qualifier {
	var q types.Qualifier

	for qualifierStartKinds[p.toks.Current().Kind] {
		tok := p.toks.Advance()

		switch tok.Kind {
		case token.KW_CONST:
			q.Storage = types.StorageConst
		case token.KW_IN:
			q.Storage = types.StorageIn
		case token.KW_OUT:
			q.Storage = types.StorageOut
		case token.KW_INOUT:
			q.Storage = types.StorageInout
		case token.KW_UNIFORM:
			q.Storage = types.StorageUniform
		case token.KW_BUFFER:
			q.Storage = types.StorageBuffer
		case token.KW_SHARED:
			q.Storage = types.StorageShared
		case token.KW_ATTRIBUTE:
			q.Storage = types.StorageAttribute
		case token.KW_VARYING:
			q.Storage = types.StorageVarying
		case token.KW_FLAT:
			q.Interpolation = types.InterpFlat
		case token.KW_SMOOTH:
			q.Interpolation = types.InterpSmooth
		case token.KW_NOPERSPECTIVE:
			q.Interpolation = types.InterpNoperspective
		case token.KW_HIGHP:
			q.Precision = types.PrecisionHigh
		case token.KW_MEDIUMP:
			q.Precision = types.PrecisionMedium
		case token.KW_LOWP:
			q.Precision = types.PrecisionLow
		case token.KW_CENTROID:
			q.Centroid = true
		case token.KW_SAMPLE:
			q.Sample = true
		case token.KW_PATCH:
			q.Patch = true
		case token.KW_INVARIANT:
			q.Invariant = true
		case token.KW_PRECISE:
			q.Precise = true
		case token.KW_COHERENT:
			q.Coherent = true
		case token.KW_VOLATILE:
			q.Volatile = true
		case token.KW_RESTRICT:
			q.Restrict = true
		case token.KW_READONLY:
			q.ReadOnly = true
		case token.KW_WRITEONLY:
			q.WriteOnly = true
		case token.KW_LAYOUT:
			q.Layout = p.parseLayoutClause()
		}
	}

	return q
}

// parseLayoutClause parses `( id [= value] , ... )` following `layout`.
func (p *Parser) parseLayoutClause() *types.Layout {
	layout := types.NewLayout()

	if _, err := p.toks.Consume(token.LPAREN); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
		return layout
	}

	for {
		keyTok, err := p.toks.Consume(token.IDENT)
		if err != nil {
			p.errorf(p.toks.Current(), "%s", err)
			break
		}

		var value string
		hasValue := false

		if p.toks.Match(token.ASSIGN) {
			valTok := p.toks.Advance()
			value = valTok.Lexeme
			hasValue = true
		}

		p.applyLayoutField(layout, keyTok.Lexeme, value, hasValue)

		if !p.toks.Match(token.COMMA) {
			break
		}
	}

	if _, err := p.toks.Consume(token.RPAREN); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	return layout
}

func (p *Parser) applyLayoutField(l *types.Layout, key, value string, hasValue bool) {
	intVal := func() int {
		n, _ := strconv.Atoi(value)
		return n
	}

	switch key {
	case "location":
		l.SetLocation(intVal())
	case "binding":
		l.SetBinding(intVal())
	case "offset":
		l.Offset.Value, l.Offset.Set = intVal(), true
	case "component":
		l.Component.Value, l.Component.Set = intVal(), true
	case "index":
		l.Index.Value, l.Index.Set = intVal(), true
	case "set":
		l.Set.Value, l.Set.Set = intVal(), true
	case "local_size_x":
		l.LocalSizeX.Value, l.LocalSizeX.Set = intVal(), true
	case "local_size_y":
		l.LocalSizeY.Value, l.LocalSizeY.Set = intVal(), true
	case "local_size_z":
		l.LocalSizeZ.Value, l.LocalSizeZ.Set = intVal(), true
	case "max_vertices":
		l.MaxVertices.Value, l.MaxVertices.Set = intVal(), true
	case "vertices":
		l.Vertices.Value, l.Vertices.Set = intVal(), true
	case "invocations":
		l.Invocations.Value, l.Invocations.Set = intVal(), true
	case "shared":
		l.Packing = types.PackingShared
	case "packed":
		l.Packing = types.PackingPacked
	case "std140":
		l.Packing = types.PackingStd140
	case "std430":
		l.Packing = types.PackingStd430
	case "row_major":
		l.MatrixLayout = types.MatrixLayoutRowMajor
	case "column_major":
		l.MatrixLayout = types.MatrixLayoutColumnMajor
	case "origin_upper_left":
		l.OriginUpperLeft = true
	case "pixel_center_integer":
		l.PixelCenterInt = true
	case "depth_greater":
		l.DepthGreater = true
	case "depth_less":
		l.DepthLess = true
	case "depth_unchanged":
		l.DepthUnchanged = true
	default:
		if hasValue {
			l.SetExtra(key, value)
		} else {
			// Bare identifier layout qualifiers without a recognized meaning
			// (primitive types like `triangles`, image formats like
			// `rgba32f`) are preserved verbatim for the emitter to replay.
			if l.PrimitiveType == "" {
				l.PrimitiveType = key
			} else {
				l.ImageFormat = key
			}
		}
	}
}

// parseType parses a base type (keyword or struct name) optionally followed
// by an array-dimension suffix.
func (p *Parser) parseType() types.Type {
	tok := p.toks.Advance()

	var t types.Type

	if base, ok := types.BaseFromKeyword(tok.Kind); ok {
		t = types.Scalar(base)
	} else {
		t = types.NewStruct(types.STRUCT, tok.Lexeme)
	}

	for p.toks.Check(token.LBRACKET) {
		t = t.WithArray(p.parseArrayDim())
	}

	return t
}

// parseArrayDim parses one `[size]` or `[]` suffix, folding a constant
// integer expression for the size. An invalid or unfoldable size yields
// types.Unsized and a recorded diagnostic.
func (p *Parser) parseArrayDim() int {
	p.toks.Advance() // consume '['

	if p.toks.Check(token.RBRACKET) {
		p.toks.Advance()
		return types.Unsized
	}

	expr := p.parseExpression()

	if _, err := p.toks.Consume(token.RBRACKET); err != nil {
		p.errorf(p.toks.Current(), "%s", err)
	}

	n, ok := p.foldConstInt(expr)
	if !ok || n < 1 {
		return types.Unsized
	}

	return n
}
