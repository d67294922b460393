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
	"sort"
	"strconv"

	"github.com/gogpu/glslx/pkg/glsl/types"
)

// emitLayout renders `layout(...)` with only the fields that are set, in a
// fixed key order with unrecognized extras last.
func (e *Emitter) emitLayout(l *types.Layout) {
	e.str("layout(")

	first := true
	field := func(s string) {
		if !first {
			e.str(", ")
		}

		first = false
		e.str(s)
	}

	intField := func(key string, value int, set bool) {
		if set {
			field(key + " = " + strconv.Itoa(value))
		}
	}

	intField("location", l.Location.Value, l.Location.Set)
	intField("binding", l.Binding.Value, l.Binding.Set)
	intField("offset", l.Offset.Value, l.Offset.Set)
	intField("component", l.Component.Value, l.Component.Set)
	intField("index", l.Index.Value, l.Index.Set)
	intField("set", l.Set.Value, l.Set.Set)
	intField("local_size_x", l.LocalSizeX.Value, l.LocalSizeX.Set)
	intField("local_size_y", l.LocalSizeY.Value, l.LocalSizeY.Set)
	intField("local_size_z", l.LocalSizeZ.Value, l.LocalSizeZ.Set)
	intField("max_vertices", l.MaxVertices.Value, l.MaxVertices.Set)
	intField("vertices", l.Vertices.Value, l.Vertices.Set)
	intField("invocations", l.Invocations.Value, l.Invocations.Set)

	if l.Packing != types.PackingNone {
		field(l.Packing.String())
	}

	if l.MatrixLayout != types.MatrixLayoutNone {
		field(l.MatrixLayout.String())
	}

	if l.OriginUpperLeft {
		field("origin_upper_left")
	}

	if l.PixelCenterInt {
		field("pixel_center_integer")
	}

	if l.DepthGreater {
		field("depth_greater")
	}

	if l.DepthLess {
		field("depth_less")
	}

	if l.DepthUnchanged {
		field("depth_unchanged")
	}

	if l.PrimitiveType != "" {
		field(l.PrimitiveType)
	}

	if l.ImageFormat != "" {
		field(l.ImageFormat)
	}

	if len(l.Extra) > 0 {
		keys := make([]string, 0, len(l.Extra))
		for k := range l.Extra {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			if v := l.Extra[k]; v != "" {
				field(k + " = " + v)
			} else {
				field(k)
			}
		}
	}

	e.str(")")
}
