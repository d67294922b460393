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
package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

func key(source string) Fingerprint {
	return NewFingerprint(source, version.Fragment, nil, version.V330, 1, false)
}

func TestCache_PutGet(t *testing.T) {
	c := New[string](8)
	c.Put(key("a"), "translated-a")

	v, ok := c.Get(key("a"))
	assert.True(t, ok)
	assert.Equal(t, "translated-a", v)

	_, ok = c.Get(key("b"))
	assert.False(t, ok)
}

func TestCache_EvictionKeepsHotEntries(t *testing.T) {
	c := New[int](8)

	for i := 0; i < 8; i++ {
		c.Put(key(fmt.Sprintf("entry-%d", i)), i)
	}

	// Heat up one entry so the eviction score favors it.
	for i := 0; i < 50; i++ {
		c.Get(key("entry-7"))
	}

	c.Put(key("overflow"), 99)

	assert.True(t, c.Len() <= 8)

	_, ok := c.Get(key("entry-7"))
	assert.True(t, ok)

	_, ok = c.Get(key("overflow"))
	assert.True(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int](DefaultCapacity)

	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				k := key(fmt.Sprintf("g%d-i%d", g, i%10))
				c.Put(k, i)
				c.Get(k)
			}
		}(g)
	}

	wg.Wait()
	assert.True(t, c.Len() > 0)
}

func TestFingerprint_SensitiveToEveryField(t *testing.T) {
	base := NewFingerprint("src", version.Fragment, nil, version.V330, 1, false)

	v120 := version.V120
	cases := []Fingerprint{
		NewFingerprint("src2", version.Fragment, nil, version.V330, 1, false),
		NewFingerprint("src", version.Vertex, nil, version.V330, 1, false),
		NewFingerprint("src", version.Fragment, &v120, version.V330, 1, false),
		NewFingerprint("src", version.Fragment, nil, version.V450, 1, false),
		NewFingerprint("src", version.Fragment, nil, version.V330, 2, false),
		NewFingerprint("src", version.Fragment, nil, version.V330, 1, true),
	}

	for i, other := range cases {
		if base == other {
			t.Fatalf("case %d produced a colliding fingerprint", i)
		}
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := NewFingerprint("src", version.Fragment, nil, version.V330, 1, false)
	b := NewFingerprint("src", version.Fragment, nil, version.V330, 1, false)
	assert.Equal(t, a, b)
}
