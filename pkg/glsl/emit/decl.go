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
	"strconv"

	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/types"
)

func (e *Emitter) emitDecl(d ast.Decl) {
	switch v := d.(type) {
	case *ast.VariableDecl:
		e.writeIndent()
		e.emitVariableDecl(v)
		e.str(";")
		e.nl()
	case *ast.StructDecl:
		e.emitStructDecl(v)
	case *ast.InterfaceBlockDecl:
		e.emitInterfaceBlock(v)
	case *ast.FunctionDecl:
		e.emitFunctionDecl(v)
	case *ast.ExtensionDecl:
		e.emitExtension(v.Name, v.Behavior)
	case *ast.PrecisionDecl:
		e.emitPrecision(v)
	}
}

func (e *Emitter) emitVariableDecl(v *ast.VariableDecl) {
	e.emitQualifier(v.Qualifier)

	if v.Type.Base == types.STRUCT || v.Type.Base == types.INTERFACE_BLOCK {
		e.str(v.Type.StructName)
	} else {
		e.str(v.Type.Base.String())
	}

	e.emitArrayDims(v.Type.ArrayDims)
	e.str(" ")
	e.str(v.Name)
	e.emitArrayDims(v.ExtraArrayDims)

	if v.Init != nil {
		e.str(" = ")
		e.emitExpr(v.Init, precAssign)
	}
}

func (e *Emitter) emitArrayDims(dims []int) {
	for _, d := range dims {
		if d == types.Unsized {
			e.str("[]")
		} else {
			e.str("[")
			e.str(strconv.Itoa(d))
			e.str("]")
		}
	}
}

// emitQualifier prints qualifiers in the canonical fixed order: invariant,
// precise, layout, auxiliary, interpolation, storage, precision, memory.
func (e *Emitter) emitQualifier(q types.Qualifier) {
	if q.Invariant {
		e.str("invariant ")
	}

	if q.Precise {
		e.str("precise ")
	}

	if !q.Layout.IsEmpty() {
		e.emitLayout(q.Layout)
		e.str(" ")
	}

	if q.Centroid {
		e.str("centroid ")
	}

	if q.Sample {
		e.str("sample ")
	}

	if q.Patch {
		e.str("patch ")
	}

	if q.Interpolation != types.InterpNone {
		e.str(q.Interpolation.String())
		e.str(" ")
	}

	if q.Storage != types.StorageNone {
		e.str(q.Storage.String())
		e.str(" ")
	}

	if q.Precision != types.PrecisionNone {
		e.str(q.Precision.String())
		e.str(" ")
	}

	if q.Coherent {
		e.str("coherent ")
	}

	if q.Volatile {
		e.str("volatile ")
	}

	if q.Restrict {
		e.str("restrict ")
	}

	if q.ReadOnly {
		e.str("readonly ")
	}

	if q.WriteOnly {
		e.str("writeonly ")
	}
}

func (e *Emitter) emitStructDecl(s *ast.StructDecl) {
	e.writeIndent()
	e.str("struct ")
	e.str(s.Name)
	e.str(" {")
	e.nl()
	e.indent++

	for _, m := range s.Members {
		e.writeIndent()
		e.emitVariableDecl(m)
		e.str(";")
		e.nl()
	}

	e.indent--
	e.writeIndent()
	e.str("}")

	if s.InstanceName != "" {
		e.str(" ")
		e.str(s.InstanceName)
		e.emitArrayDims(s.InstanceArrayDims)
	}

	e.str(";")
	e.nl()
}

func (e *Emitter) emitInterfaceBlock(b *ast.InterfaceBlockDecl) {
	e.writeIndent()
	e.emitQualifier(b.Qualifier)
	e.str(b.BlockName)
	e.str(" {")
	e.nl()
	e.indent++

	for _, m := range b.Members {
		e.writeIndent()
		e.emitVariableDecl(m)
		e.str(";")
		e.nl()
	}

	e.indent--
	e.writeIndent()
	e.str("}")

	if b.InstanceName != "" {
		e.str(" ")
		e.str(b.InstanceName)
		e.emitArrayDims(b.InstanceArrayDims)
	}

	e.str(";")
	e.nl()
}

func (e *Emitter) emitFunctionDecl(f *ast.FunctionDecl) {
	e.writeIndent()
	e.str(f.ReturnType.String())
	e.str(" ")
	e.str(f.Name)
	e.str("(")

	for i, p := range f.Params {
		if i > 0 {
			e.str(", ")
		}

		if p.Storage != types.StorageNone {
			e.str(p.Storage.String())
			e.str(" ")
		}

		e.str(p.Type.String())

		if p.Name != "" {
			e.str(" ")
			e.str(p.Name)
		}
	}

	e.str(")")

	if f.Body == nil {
		e.str(";")
		e.nl()

		return
	}

	e.str(" ")
	e.emitBlock(f.Body)
	e.nl()
}
