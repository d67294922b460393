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
	"strings"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// parseVersionDirective consumes a `#version N [profile]` token, setting
// the root's detected version and profile. It does not assign the root's
// translation-target version — that is the rewrite engine's job per the
// driver protocol's pre-pass 2.
func (p *Parser) parseVersionDirective() {
	tok := p.toks.Advance()

	fields := strings.Fields(strings.TrimPrefix(tok.Lexeme, "#version"))
	if len(fields) == 0 {
		p.errorf(tok, "malformed #version directive")
		return
	}

	code, err := strconv.Atoi(fields[0])
	if err != nil {
		p.errorf(tok, "malformed #version number %q", fields[0])
		return
	}

	p.root.Version = version.New(uint16(code))

	if len(fields) > 1 {
		switch fields[1] {
		case "core":
			p.root.Profile = ast.ProfileCore
		case "compatibility":
			p.root.Profile = ast.ProfileCompatibility
		case "es":
			p.root.Profile = ast.ProfileES
		}
	}
}

// parseExtensionDirective consumes a `#extension name : behavior` token
// into an ExtensionDecl.
func (p *Parser) parseExtensionDirective() *ast.ExtensionDecl {
	tok := p.toks.Advance()

	body := strings.TrimSpace(strings.TrimPrefix(tok.Lexeme, "#extension"))
	name, behavior := body, "require"

	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		name = strings.TrimSpace(body[:idx])
		behavior = strings.TrimSpace(body[idx+1:])
	}

	d := &ast.ExtensionDecl{Name: name, Behavior: behavior}
	d.Header = ast.NewHeader(tok.Span)

	return d
}
