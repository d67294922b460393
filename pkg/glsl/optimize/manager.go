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
	"sort"

	"github.com/gogpu/glslx/pkg/glsl/ast"
)

// maxIterations caps the fixed-point loop: passes must be monotone, so ten
// cycles is far beyond any real convergence.
const maxIterations = 10

// Pass is one optimization step. Run returns whether it changed the AST;
// analysis passes always return false. ShouldRun may veto a pass for one
// iteration (nil means "always run at a sufficient level").
type Pass struct {
	Name      string
	Priority  int
	MinLevel  uint
	ShouldRun func(*Context) bool
	Run       func(*Context) bool
}

// Manager iterates a priority-sorted pass list to a fixpoint.
type Manager struct {
	passes []*Pass
}

// NewManager builds a manager over the default pass set.
func NewManager() *Manager {
	m := &Manager{passes: defaultPasses()}

	sort.SliceStable(m.passes, func(i, j int) bool { return m.passes[i].Priority > m.passes[j].Priority })

	return m
}

// Run optimizes root in place at the given level (0 disables everything),
// returning the number of iterations performed.
func (m *Manager) Run(root *ast.Root, level uint) int {
	if level == 0 {
		return 0
	}

	ctx := newContext(root, level)

	for iter := 1; iter <= maxIterations; iter++ {
		ctx.Iteration = iter
		changed := false

		for _, p := range m.passes {
			if p.MinLevel > level {
				continue
			}

			if p.ShouldRun != nil && !p.ShouldRun(ctx) {
				continue
			}

			if p.Run(ctx) {
				changed = true
			}
		}

		if !changed {
			return iter
		}
	}

	return maxIterations
}

// defaultPasses lists every pass with its priority band; analysis first,
// then value-level rewrites, then control-flow and structural cleanup.
func defaultPasses() []*Pass {
	return []*Pass{
		{Name: "usage-analysis", Priority: 100, MinLevel: 1, Run: runUsageAnalysis},
		{Name: "constant-analysis", Priority: 95, MinLevel: 1, Run: runConstantAnalysis},
		{Name: "constant-folding", Priority: 90, MinLevel: 1, Run: runConstantFolding},
		{Name: "constant-propagation", Priority: 85, MinLevel: 2, Run: runConstantPropagation},
		{Name: "algebraic-simplification", Priority: 80, MinLevel: 1, Run: runAlgebraicSimplification},
		{Name: "strength-reduction", Priority: 75, MinLevel: 2, Run: runStrengthReduction},
		{Name: "dead-branch-elimination", Priority: 70, MinLevel: 1, Run: runDeadBranchElimination},
		{Name: "unreachable-code-elimination", Priority: 65, MinLevel: 1, Run: runUnreachableElimination},
		{Name: "dead-code-elimination", Priority: 60, MinLevel: 1, Run: runDeadCodeElimination},
		{Name: "variable-inlining", Priority: 55, MinLevel: 2, Run: runVariableInlining},
		{Name: "block-cleanup", Priority: 50, MinLevel: 1, Run: runBlockCleanup},
		{Name: "declaration-cleanup", Priority: 45, MinLevel: 1, Run: runDeclarationCleanup},
		{Name: "swizzle-collapse", Priority: 40, MinLevel: 2, Run: runSwizzleCollapse},
		{Name: "constructor-splat", Priority: 35, MinLevel: 2, Run: runConstructorSplat},
	}
}
