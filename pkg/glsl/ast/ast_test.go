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
package ast

import (
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/types"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func TestScope_DeclareAndLookup(t *testing.T) {
	global := NewScope(nil)
	block := NewScope(global)

	assert.True(t, global.Declare(&Symbol{Name: "x", Kind: SymVariable, Type: types.Scalar(types.FLOAT)}))
	assert.False(t, global.Declare(&Symbol{Name: "x", Kind: SymVariable}))

	sym, ok := block.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "x", sym.Name)

	_, ok = block.LookupLocal("x")
	assert.False(t, ok)
}

func TestRoot_AddAndRemoveDecl(t *testing.T) {
	root := NewRoot(version.Fragment)

	v := &VariableDecl{Type: types.Scalar(types.FLOAT), Name: "a"}
	root.AddDecl(v)
	assert.Equal(t, 1, len(root.Globals))
	assert.Equal(t, root, v.Parent())

	root.RemoveDecl(v)
	assert.Equal(t, 0, len(root.Globals))
	assert.Equal(t, 0, len(root.Decls))
}

func TestFlagSet_SetClear(t *testing.T) {
	var f FlagSet
	f = f.Set(FlagConstant)
	assert.True(t, f.Has(FlagConstant))
	assert.False(t, f.Has(FlagPure))

	f = f.Clear(FlagConstant)
	assert.False(t, f.Has(FlagConstant))
}

func TestExprBase_LValueAndType(t *testing.T) {
	e := &IdentExpr{Name: "x"}
	e.SetResolvedType(types.Scalar(types.INT))
	e.SetLValue(true)

	assert.True(t, e.IsLValue())
	assert.Equal(t, types.INT, e.ResolvedType().Base)
}
