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
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/token"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// bitwiseOps is the set of operators that require 1.30: no mechanical
// lowering exists, so their presence below 1.30 is a hard reject.
var bitwiseOps = map[token.Kind]bool{
	token.AMP: true, token.PIPE: true, token.CARET: true,
	token.SHL: true, token.SHR: true,
	token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true, token.CARET_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
}

// registerFeatureRules installs the feature rejects: constructs that cannot
// be mechanically lowered below their introducing version surface an
// UNSUPPORTED_FEATURE diagnostic and remain untouched.
func registerFeatureRules(reg *Registry) {
	reg.RegisterNode(&NodeRule{
		Name:     "switch-reject",
		Category: CategoryFeature,
		Variant:  "SwitchStmt",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.SWITCH_STATEMENT, target)
		},
		CanTransform: func(ast.Node) bool { return true },
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			ctx.Errorf(source.UNSUPPORTED_FEATURE, node.Span(),
				"switch statement requires 1.30; target is %s", ctx.Target)

			return nil, false
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "bitwise-reject",
		Category: CategoryFeature,
		Variant:  "BinaryExpr",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.BITWISE_OPERATORS, target)
		},
		CanTransform: func(node ast.Node) bool {
			return bitwiseOps[node.(*ast.BinaryExpr).Op]
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			b := node.(*ast.BinaryExpr)

			ctx.Errorf(source.UNSUPPORTED_FEATURE, b.Span(),
				"bitwise operator %s requires 1.30; target is %s", b.Op, ctx.Target)

			return nil, false
		},
	})

	reg.RegisterNode(&NodeRule{
		Name:     "bitwise-not-reject",
		Category: CategoryFeature,
		Variant:  "UnaryExpr",
		Applies: func(_, target version.Version, _ version.Stage) bool {
			return !version.Available(version.BITWISE_OPERATORS, target)
		},
		CanTransform: func(node ast.Node) bool {
			return node.(*ast.UnaryExpr).Op == token.TILDE
		},
		Transform: func(node ast.Node, ctx *Context) (ast.Node, bool) {
			ctx.Errorf(source.UNSUPPORTED_FEATURE, node.Span(),
				"bitwise complement requires 1.30; target is %s", ctx.Target)

			return nil, false
		},
	})
}
