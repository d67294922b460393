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
package diskcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

const fixtureSource = "#version 120\nvoid main() {}\n"

func TestDiskCache_RoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	assert.Equal(t, nil, err)

	entry := Entry{
		SourceVersion: version.V120,
		TargetVersion: version.V330,
		Stage:         version.Fragment,
		Text:          "#version 330 core\nvoid main() {}\n",
	}

	assert.Equal(t, nil, store.Put(fixtureSource, entry))

	got, ok := store.Get(fixtureSource, version.Fragment, version.V330)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestDiskCache_MissOnDifferentKey(t *testing.T) {
	store, _ := Open(t.TempDir())

	entry := Entry{SourceVersion: version.V120, TargetVersion: version.V330, Stage: version.Fragment, Text: "x"}
	store.Put(fixtureSource, entry)

	_, ok := store.Get(fixtureSource, version.Vertex, version.V330)
	assert.False(t, ok)

	_, ok = store.Get(fixtureSource, version.Fragment, version.V450)
	assert.False(t, ok)
}

func TestDiskCache_EntryNameIsStable(t *testing.T) {
	a := EntryName(fixtureSource, version.Fragment, version.V330)
	b := EntryName(fixtureSource, version.Fragment, version.V330)
	assert.Equal(t, a, b)
	assert.Equal(t, 16, len(a)) // 8 bytes of hex

	c := EntryName(fixtureSource, version.Vertex, version.V330)
	assert.True(t, a != c)
}

func TestDiskCache_CleanupRemovesStaleEntries(t *testing.T) {
	dir := t.TempDir()
	store, _ := Open(dir)

	entry := Entry{SourceVersion: version.V120, TargetVersion: version.V330, Stage: version.Fragment, Text: "x"}
	store.Put(fixtureSource, entry)

	name := EntryName(fixtureSource, version.Fragment, version.V330)
	stale := time.Now().Add(-2 * MaxEntryAge)
	assert.Equal(t, nil, os.Chtimes(filepath.Join(dir, name), stale, stale))

	removed, err := store.Cleanup()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, removed)

	_, ok := store.Get(fixtureSource, version.Fragment, version.V330)
	assert.False(t, ok)
}

func TestDiskCache_CleanupKeepsFreshEntries(t *testing.T) {
	store, _ := Open(t.TempDir())

	entry := Entry{SourceVersion: version.V120, TargetVersion: version.V330, Stage: version.Fragment, Text: "x"}
	store.Put(fixtureSource, entry)

	removed, err := store.Cleanup()
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, removed)
}
