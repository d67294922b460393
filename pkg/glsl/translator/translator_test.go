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
package translator

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/glslx/pkg/glsl/cache"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/version"
	"github.com/gogpu/glslx/pkg/util/assert"
)

// normalize collapses whitespace runs so comparisons ignore layout.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func fragmentConfig(target version.Version) Config {
	return Config{TargetVersion: target, Stage: version.Fragment, OptimizationLevel: 1}
}

func TestTranslate_SimplestUpgrade(t *testing.T) {
	src := "void main() { gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0); }"

	result, err := New(fragmentConfig(version.V330)).Translate(src)
	assert.Equal(t, nil, err)
	assert.Equal(t, version.V110, result.SourceVersion)
	assert.Equal(t, version.V330, result.TargetVersion)

	expected := "#version 330 core out vec4 fragColor; void main() { fragColor = vec4(1.0, 0.0, 0.0, 1.0); }"
	assert.Equal(t, expected, normalize(result.Source))
}

func TestTranslate_LegacyTextureUpgrade(t *testing.T) {
	src := `#version 120
uniform sampler2D tex;
varying vec2 uv;
void main() { gl_FragColor = texture2D(tex, uv); }`

	result, err := New(fragmentConfig(version.V330)).Translate(src)
	assert.Equal(t, nil, err)
	assert.Equal(t, version.V120, result.SourceVersion)

	out := normalize(result.Source)
	assert.True(t, strings.HasPrefix(out, "#version 330"))
	assert.True(t, strings.Contains(out, "in vec2 uv;"))
	assert.False(t, strings.Contains(out, "varying"))
	assert.True(t, strings.Contains(out, "texture(tex, uv)"))
	assert.False(t, strings.Contains(out, "texture2D"))
	assert.True(t, strings.Contains(out, "out vec4 fragColor;"))
	assert.True(t, strings.Contains(out, "fragColor = texture(tex, uv);"))
	assert.False(t, strings.Contains(out, "gl_FragColor"))
}

func TestTranslate_GenericTextureDowngrade(t *testing.T) {
	src := `#version 330
uniform sampler2D tex;
in vec2 uv;
out vec4 outColor;
void main() { outColor = texture(tex, uv); }`

	result, err := New(fragmentConfig(version.V120)).Translate(src)
	assert.Equal(t, nil, err)

	out := normalize(result.Source)
	assert.True(t, strings.HasPrefix(out, "#version 120"))
	assert.True(t, strings.Contains(out, "varying vec2 uv;"))
	assert.False(t, strings.Contains(out, "in vec2"))
	assert.False(t, strings.Contains(out, "out vec4 outColor"))
	assert.True(t, strings.Contains(out, "gl_FragColor = texture2D(tex, uv);"))
}

func TestTranslate_ConstantFolding(t *testing.T) {
	src := `#version 330
out vec4 c;
void main() { const int N = 2 + 3 * 4; c = vec4(float(N)); }`

	cfg := fragmentConfig(version.V330)

	result, err := New(cfg).Translate(src)
	assert.Equal(t, nil, err)
	assert.True(t, strings.Contains(normalize(result.Source), "14"))
	assert.False(t, strings.Contains(result.Source, "2 + 3"))
}

func TestTranslate_DeadBranchElimination(t *testing.T) {
	src := `#version 330
out vec4 c;
void main() { float x; if (false) { x = 1.0; } else { x = 2.0; } c = vec4(x); }`

	result, err := New(fragmentConfig(version.V330)).Translate(src)
	assert.Equal(t, nil, err)

	out := normalize(result.Source)
	assert.False(t, strings.Contains(out, "if"))
	assert.True(t, strings.Contains(out, "x = 2.0;"))
	assert.False(t, strings.Contains(out, "x = 1.0;"))
}

func TestTranslate_SideEffectPreservation(t *testing.T) {
	src := `#version 330
uniform float u;
out vec4 c;
float f(float x) { return x + u; }
void main() { float y = f(u) * 1.0 + 0.0; c = vec4(y); }`

	result, err := New(fragmentConfig(version.V330)).Translate(src)
	assert.Equal(t, nil, err)

	out := normalize(result.Source)
	assert.True(t, strings.Contains(out, "= f(u);"))
	assert.False(t, strings.Contains(out, "* 1.0"))
	assert.False(t, strings.Contains(out, "+ 0.0"))
}

func TestTranslate_TargetAboveHardwareMaxRejected(t *testing.T) {
	cfg := fragmentConfig(version.V450)
	cfg.HardwareMax = version.V330

	_, err := New(cfg).Translate("void main() {}")

	var terr *Error
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, source.VERSION_MISMATCH, terr.Diagnostics[0].Kind)
}

func TestTranslate_StrictModeEscalatesWarnings(t *testing.T) {
	// Target 1.30 sits below GL_ARB_gpu_shader_fp64's floor, so the double
	// uniform downgrades to float with a precision-loss warning.
	src := `#version 450
uniform double d;
out vec4 c;
void main() { c = vec4(0.0); }`

	cfg := fragmentConfig(version.V130)
	cfg.StrictMode = true

	_, err := New(cfg).Translate(src)
	assert.True(t, err != nil)

	cfg.StrictMode = false
	result, err := New(cfg).Translate(src)
	assert.Equal(t, nil, err)
	assert.True(t, len(result.Warnings) > 0)
}

func TestTranslate_SyntaxErrorReported(t *testing.T) {
	_, err := New(fragmentConfig(version.V330)).Translate("void main( { }")

	var terr *Error
	assert.True(t, errors.As(err, &terr))
	assert.True(t, len(terr.Diagnostics) > 0)
	assert.Equal(t, source.SYNTAX, terr.Diagnostics[0].Kind)
}

func TestTranslate_UnsupportedFeatureFails(t *testing.T) {
	src := `#version 330
out vec4 c;
void main() { int x = 1; switch (x) { default: break; } c = vec4(0.0); }`

	_, err := New(fragmentConfig(version.V120)).Translate(src)

	var terr *Error
	assert.True(t, errors.As(err, &terr))
	assert.Equal(t, source.UNSUPPORTED_FEATURE, terr.Diagnostics[0].Kind)
}

func TestTranslate_ResultCacheShortcut(t *testing.T) {
	shared := cache.New[*Result](16)
	src := "void main() { gl_FragColor = vec4(1.0); }"

	tr := New(fragmentConfig(version.V330), WithResultCache(shared))

	first, err := New(fragmentConfig(version.V330), WithResultCache(shared)).Translate(src)
	assert.Equal(t, nil, err)

	second, err := tr.Translate(src)
	assert.Equal(t, nil, err)

	// The cached record itself comes back on the second call.
	assert.True(t, first == second)

	hits, _ := shared.Stats()
	assert.True(t, hits >= 1)
}

func TestTranslate_FingerprintUsesEffectiveSourceVersion(t *testing.T) {
	shared := cache.New[*Result](16)

	// No #version directive: the source version is inferred (1.10).
	src := "void main() { gl_FragColor = vec4(1.0); }"

	inferred, err := New(fragmentConfig(version.V330), WithResultCache(shared)).Translate(src)
	assert.Equal(t, nil, err)
	assert.Equal(t, version.V110, inferred.SourceVersion)

	// An explicit override equal to the inferred version resolves to the
	// same effective version, so it must hit the same cache entry.
	v110 := version.V110
	cfgSame := fragmentConfig(version.V330)
	cfgSame.SourceVersion = &v110

	same, err := New(cfgSame, WithResultCache(shared)).Translate(src)
	assert.Equal(t, nil, err)
	assert.True(t, inferred == same)

	// A different override must miss and produce a fresh result.
	v120 := version.V120
	cfgOther := fragmentConfig(version.V330)
	cfgOther.SourceVersion = &v120

	other, err := New(cfgOther, WithResultCache(shared)).Translate(src)
	assert.Equal(t, nil, err)
	assert.True(t, inferred != other)
	assert.Equal(t, version.V120, other.SourceVersion)
}

func TestValidate_ReportsWithoutEmitting(t *testing.T) {
	src := `#version 330
out vec4 c;
void main() { switch (0) { default: break; } c = vec4(0.0); }`

	valid, errs, _ := New(fragmentConfig(version.V120)).Validate(src)
	assert.False(t, valid)
	assert.True(t, len(errs) > 0)

	valid, errs, _ = New(fragmentConfig(version.V330)).Validate(src)
	assert.True(t, valid)
	assert.Equal(t, 0, len(errs))
}

func TestTranslate_ExplicitSourceVersionWins(t *testing.T) {
	srcVer := version.V120
	cfg := fragmentConfig(version.V330)
	cfg.SourceVersion = &srcVer

	result, err := New(cfg).Translate("void main() { gl_FragColor = vec4(1.0); }")
	assert.Equal(t, nil, err)
	assert.Equal(t, version.V120, result.SourceVersion)
}

func TestTranslate_WarningsNameHostAction(t *testing.T) {
	src := `#version 330
layout(location = 3) in vec3 pos;
void main() { gl_Position = vec4(pos, 1.0); }`

	cfg := Config{TargetVersion: version.V120, Stage: version.Vertex, OptimizationLevel: 1}

	result, err := New(cfg).Translate(src)
	assert.Equal(t, nil, err)

	found := false

	for _, w := range result.Warnings {
		if strings.Contains(w.Message, "glBindAttribLocation") {
			found = true
		}
	}

	assert.True(t, found)
}
