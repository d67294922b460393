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
package optimize

import (
	"strings"

	"github.com/gogpu/glslx/pkg/glsl/ast"
)

// swizzleFamilies are the three component-name alphabets; a swizzle string
// uses exactly one of them.
var swizzleFamilies = []string{"xyzw", "rgba", "stpq"}

// runSwizzleCollapse composes chained swizzles: `v.ab.cd` where the outer
// selects only positions the inner provides becomes a single swizzle over
// v.
func runSwizzleCollapse(ctx *Context) bool {
	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		outer, ok := e.(*ast.MemberExpr)
		if !ok || !outer.Swizzle {
			return e
		}

		inner, ok := outer.Object.(*ast.MemberExpr)
		if !ok || !inner.Swizzle {
			return e
		}

		composed, ok := composeSwizzles(inner.Member, outer.Member)
		if !ok {
			return e
		}

		changed = true
		inner.Member = composed

		return inner
	})

	return changed
}

// composeSwizzles maps each outer component to the inner component it
// selects, failing when the outer indexes beyond the inner's width.
func composeSwizzles(inner, outer string) (string, bool) {
	family := familyOf(outer)
	if family == "" || familyOf(inner) == "" {
		return "", false
	}

	var sb strings.Builder

	for i := 0; i < len(outer); i++ {
		idx := strings.IndexByte(family, outer[i])
		if idx < 0 || idx >= len(inner) {
			return "", false
		}

		sb.WriteByte(inner[idx])
	}

	return sb.String(), true
}

func familyOf(swizzle string) string {
	for _, family := range swizzleFamilies {
		all := true

		for i := 0; i < len(swizzle); i++ {
			if !strings.ContainsRune(family, rune(swizzle[i])) {
				all = false
				break
			}
		}

		if all {
			return family
		}
	}

	return ""
}

// vectorWidths maps a vector constructor name to its component count; only
// these splat, since a single-argument matrix constructor builds a diagonal
// matrix rather than a fill.
var vectorWidths = map[string]int{
	"vec2": 2, "vec3": 3, "vec4": 4,
	"bvec2": 2, "bvec3": 3, "bvec4": 4,
	"ivec2": 2, "ivec3": 3, "ivec4": 4,
	"uvec2": 2, "uvec3": 3, "uvec4": 4,
	"dvec2": 2, "dvec3": 3, "dvec4": 4,
}

// runConstructorSplat collapses a vector constructor given N copies of the
// same literal to a single-argument splat: vec4(0.0, 0.0, 0.0, 0.0) →
// vec4(0.0).
func runConstructorSplat(ctx *Context) bool {
	changed := false

	mapExprs(ctx.Root, func(e ast.Expr) ast.Expr {
		call, ok := e.(*ast.CallExpr)
		if !ok || !call.Constructor || len(call.Args) < 2 {
			return e
		}

		if vectorWidths[call.Name] != len(call.Args) {
			return e
		}

		first, ok := call.Args[0].(*ast.LiteralExpr)
		if !ok {
			return e
		}

		for _, a := range call.Args[1:] {
			lit, ok := a.(*ast.LiteralExpr)
			if !ok || lit.Kind != first.Kind || lit.Value != first.Value {
				return e
			}
		}

		changed = true
		call.Args = call.Args[:1]

		return call
	})

	return changed
}
