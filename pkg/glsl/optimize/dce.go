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
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

// interfaceStorage lists the storage classes a declaration keeps it alive
// regardless of use: these form the shader's external interface.
var interfaceStorage = map[types.Storage]bool{
	types.StorageUniform:   true,
	types.StorageIn:        true,
	types.StorageOut:       true,
	types.StorageAttribute: true,
	types.StorageVarying:   true,
	types.StorageBuffer:    true,
	types.StorageShared:    true,
}

// runDeadCodeElimination flags unused variables whose initializers are
// side-effect-free, and unused functions other than main, as DEAD for the
// declaration-cleanup pass to remove.
func runDeadCodeElimination(ctx *Context) bool {
	changed := false

	flag := func(d *ast.VariableDecl) {
		if d.Flags().Has(ast.FlagDead) || interfaceStorage[d.Qualifier.Storage] {
			return
		}

		if ctx.UseCount(d.Symbol) > 0 {
			return
		}

		if d.Init != nil && hasSideEffect(d.Init) {
			return
		}

		d.SetFlags(d.Flags().Set(ast.FlagDead))

		changed = true
	}

	for _, g := range ctx.Root.Globals {
		flag(g)
	}

	for _, f := range ctx.Root.Functions {
		if f.Body != nil {
			eachDeclStmt(f.Body, flag)
		}
	}

	for _, f := range ctx.Root.Functions {
		if f.Name == "main" || f.Flags().Has(ast.FlagDead) {
			continue
		}

		if ctx.CallCount(f.Name) == 0 {
			f.SetFlags(f.Flags().Set(ast.FlagDead))

			changed = true
		}
	}

	return changed
}
