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

import "github.com/gogpu/glslx/pkg/glsl/ast"

// Context carries the per-iteration analysis results the value and
// dead-code passes consume: read/write counts per symbol, call counts per
// function name, and the known-constant map.
type Context struct {
	Root      *ast.Root
	Level     uint
	Iteration int

	reads  map[*ast.Symbol]int
	writes map[*ast.Symbol]int
	calls  map[string]int

	constants map[*ast.Symbol]*ast.LiteralExpr
}

func newContext(root *ast.Root, level uint) *Context {
	return &Context{
		Root:      root,
		Level:     level,
		reads:     make(map[*ast.Symbol]int),
		writes:    make(map[*ast.Symbol]int),
		calls:     make(map[string]int),
		constants: make(map[*ast.Symbol]*ast.LiteralExpr),
	}
}

// UseCount returns the total read+write count recorded for sym this
// iteration.
func (c *Context) UseCount(sym *ast.Symbol) int {
	if sym == nil {
		return 0
	}

	return c.reads[sym] + c.writes[sym]
}

// CallCount returns how many call sites named fn this iteration.
func (c *Context) CallCount(fn string) int {
	return c.calls[fn]
}
