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
	"math"
	"strings"
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/parser"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

// render parses src as a fragment shader and emits it straight back.
func render(t *testing.T, src string) string {
	t.Helper()

	file := source.NewFile("test.glsl", src)
	root, diags := parser.New(file, stream.New(lexer.Tokenize(src)), version.Fragment).Parse()

	for _, d := range diags {
		if d.IsError() {
			t.Fatalf("parse error in fixture: %s", d.Error())
		}
	}

	return New(arena.New()).Emit(root)
}

// normalize collapses all whitespace runs so comparisons ignore layout.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestEmit_VersionAndProfile(t *testing.T) {
	out := render(t, "#version 330 core\nvoid main() {}")
	assert.True(t, strings.HasPrefix(out, "#version 330 core\n"))

	out = render(t, "#version 120\nvoid main() {}")
	assert.True(t, strings.HasPrefix(out, "#version 120\n"))
}

func TestEmit_ExtensionsFollowVersion(t *testing.T) {
	src := "#version 330\n#extension GL_ARB_gpu_shader_fp64 : enable\nvoid main() {}"
	out := render(t, src)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "#version"))
	assert.Equal(t, "#extension GL_ARB_gpu_shader_fp64 : enable", lines[1])
}

func TestEmit_MinimalParentheses(t *testing.T) {
	out := render(t, "float f(float a, float b, float c) { return a * (b + c); }")
	assert.True(t, strings.Contains(out, "a * (b + c)"))

	out = render(t, "float f(float a, float b, float c) { return a * b + c; }")
	assert.True(t, strings.Contains(out, "a * b + c"))
	assert.False(t, strings.Contains(out, "("+"a * b"))
}

func TestEmit_AssociativityParentheses(t *testing.T) {
	// (a - b) - c reparses without parens; a - (b - c) must keep them.
	out := render(t, "float f(float a, float b, float c) { return a - (b - c); }")
	assert.True(t, strings.Contains(out, "a - (b - c)"))
}

func TestEmit_UnaryBindsTighterThanBinary(t *testing.T) {
	out := render(t, "float f(float a, float b) { return -(a + b); }")
	assert.True(t, strings.Contains(out, "-(a + b)"))

	out = render(t, "float f(float a, float b) { return -a + b; }")
	assert.True(t, strings.Contains(out, "-a + b"))
}

func TestEmit_TernaryChain(t *testing.T) {
	out := render(t, "float f(bool b, float x, float y) { return b ? x : y; }")
	assert.True(t, strings.Contains(out, "b ? x : y"))
}

func TestEmit_QualifierOrder(t *testing.T) {
	out := render(t, "#version 330\nlayout(location = 1) flat in vec3 n;\nvoid main() {}")
	assert.True(t, strings.Contains(out, "layout(location = 1) flat in vec3 n;"))
}

func TestEmit_InvariantFirst(t *testing.T) {
	out := render(t, "#version 330\ninvariant centroid in vec4 p;\nvoid main() {}")
	assert.True(t, strings.Contains(out, "invariant centroid in vec4 p;"))
}

func TestEmit_InterfaceBlock(t *testing.T) {
	src := "#version 330\nlayout(std140) uniform Block { mat4 mvp; } ubo;\nvoid main() {}"
	out := normalize(render(t, src))
	assert.True(t, strings.Contains(out, "layout(std140) uniform Block { mat4 mvp; } ubo;"))
}

func TestEmit_ControlFlowShape(t *testing.T) {
	src := `#version 330
uniform bool b;
out vec4 c;
void main() { if (b) { c = vec4(1.0); } else { c = vec4(0.0); } }`

	out := render(t, src)
	assert.True(t, strings.Contains(out, ") {\n"))
	assert.True(t, strings.Contains(out, "} else {"))
}

func TestEmit_EmptyBody(t *testing.T) {
	out := render(t, "void main() {}")
	assert.True(t, strings.Contains(out, "void main() {}"))
}

func TestEmit_FloatAlwaysHasDecimalPoint(t *testing.T) {
	assert.Equal(t, "1.0", formatFloat(1))
	assert.Equal(t, "0.5", formatFloat(0.5))
	assert.Equal(t, "(0.0/0.0)", formatFloat(math.NaN()))
	assert.Equal(t, "(1.0/0.0)", formatFloat(math.Inf(1)))
	assert.Equal(t, "(-1.0/0.0)", formatFloat(math.Inf(-1)))
}

func TestEmit_LiteralSuffixes(t *testing.T) {
	out := render(t, "#version 450\nvoid main() { uint u = 3u; double d = 1.5lf; }")
	assert.True(t, strings.Contains(out, "3u"))
	assert.True(t, strings.Contains(out, "1.5lf"))
}

func TestEmit_RoundTripStable(t *testing.T) {
	src := `#version 330
uniform sampler2D tex;
in vec2 uv;
out vec4 c;
void main() {
    vec4 s = texture(tex, uv);
    c = s * 2.0;
}`

	first := render(t, src)
	second := render(t, first)
	assert.Equal(t, first, second)
}
