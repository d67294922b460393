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
package arena

import (
	"testing"

	"github.com/gogpu/glslx/pkg/util/assert"
)

type widget struct {
	Value int
}

func TestArena_NodeRoundTrip(t *testing.T) {
	a := New()

	n := AcquireNode(a, "widget", func() *widget { return &widget{} })
	n.Value = 42
	ReleaseNode(a, "widget", n)

	m := AcquireNode(a, "widget", func() *widget { return &widget{} })
	assert.Equal(t, 0, m.Value, "released node must be zeroed on reacquire")
	assert.True(t, n == m, "freelist should reuse the same backing allocation")
}

func TestArena_BytesPooled(t *testing.T) {
	a := New()

	buf := a.AcquireBytes(16)
	buf = append(buf, 1, 2, 3)
	a.ReleaseBytes(buf)

	buf2 := a.AcquireBytes(8)
	assert.Equal(t, 0, len(buf2))
}

func TestArena_Reset(t *testing.T) {
	a := New()

	n := AcquireNode(a, "widget", func() *widget { return &widget{} })
	ReleaseNode(a, "widget", n)
	a.Reset()

	acquired, released := a.Stats()
	assert.Equal(t, 0, acquired)
	assert.Equal(t, 0, released)
}

func TestArena_FreelistCapBounded(t *testing.T) {
	a := New()

	nodes := make([]*widget, 0, maxFreelistEntries+8)
	for i := 0; i < maxFreelistEntries+8; i++ {
		nodes = append(nodes, AcquireNode(a, "widget", func() *widget { return &widget{} }))
	}

	for _, n := range nodes {
		ReleaseNode(a, "widget", n)
	}

	assert.Equal(t, maxFreelistEntries, len(a.nodeFree["widget"]))
}
