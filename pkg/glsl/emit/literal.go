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
package emit

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/glslx/pkg/glsl/ast"
)

// emitLiteral renders a literal from its parsed value: integers decimal,
// unsigned with a `u` suffix, floats always with a decimal point, doubles
// with `lf`. NaN and the infinities have no GLSL literal spelling and
// render as the portable division forms.
func (e *Emitter) emitLiteral(lit *ast.LiteralExpr) {
	switch lit.Kind {
	case ast.LitBool:
		if v, ok := lit.BoolValue(); ok {
			if v {
				e.str("true")
			} else {
				e.str("false")
			}

			return
		}
	case ast.LitInt:
		if v, ok := lit.IntValue(); ok {
			e.str(strconv.FormatInt(v, 10))
			return
		}
	case ast.LitUint:
		if v, ok := lit.Value.(uint64); ok {
			e.str(strconv.FormatUint(v, 10))
			e.str("u")

			return
		}

		if v, ok := lit.IntValue(); ok {
			e.str(strconv.FormatInt(v, 10))
			e.str("u")

			return
		}
	case ast.LitFloat, ast.LitDouble:
		if v, ok := lit.FloatValue(); ok {
			e.str(formatFloat(v))

			if lit.Kind == ast.LitDouble {
				e.str("lf")
			}

			return
		}
	}

	// No parsed value cached; fall back to the source spelling.
	e.str(lit.Text)
}

// formatFloat renders v with a guaranteed decimal point (or exponent), and
// the portable division forms for NaN and the infinities.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "(0.0/0.0)"
	case math.IsInf(v, 1):
		return "(1.0/0.0)"
	case math.IsInf(v, -1):
		return "(-1.0/0.0)"
	}

	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
