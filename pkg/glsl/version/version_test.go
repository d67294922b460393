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
package version

import (
	"testing"

	"github.com/gogpu/glslx/pkg/util/assert"
)

func TestDetect_Explicit(t *testing.T) {
	assert.Equal(t, V330, Detect("#version 330 core\nvoid main(){}"))
	assert.Equal(t, V110, Detect("#version 110\nvoid main(){}"))
	assert.Equal(t, V460, Detect("  // leading comment\n#version 460\n"))
}

func TestDetect_Inferred(t *testing.T) {
	assert.Equal(t, V110, Detect("void main(){ gl_FragColor = texture2D(tex, uv); }"))
	assert.Equal(t, V330, Detect("void main(){ color = texture(tex, uv); }"))
}

func TestFeatureAvailable_Monotonic(t *testing.T) {
	assert.Equal(t, false, Available(SWITCH_STATEMENT, V120))
	assert.Equal(t, true, Available(SWITCH_STATEMENT, V130))
	assert.Equal(t, true, Available(SWITCH_STATEMENT, V460))
}

func TestFeatureAvailable_Deprecated(t *testing.T) {
	assert.Equal(t, true, Available(GL_FRAGCOLOR, V130))
	assert.Equal(t, false, Available(GL_FRAGCOLOR, V140))
	assert.Equal(t, false, Available(GL_FRAGCOLOR, V460))
}

func TestParseDriverString(t *testing.T) {
	v, ok := ParseDriverString("4.60 NVIDIA 550.54.14")
	assert.Equal(t, true, ok)
	assert.Equal(t, V460, v)

	v, ok = ParseDriverString("3.3 Mesa 23.0")
	assert.Equal(t, true, ok)
	assert.Equal(t, V330, v)
}

func TestPromotingExtension(t *testing.T) {
	ext, ok := PromotingExtension(LAYOUT_LOCATION_INPUT, V150)
	assert.Equal(t, true, ok)
	assert.Equal(t, "GL_ARB_explicit_attrib_location", ext.Name)
}
