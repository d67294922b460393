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

// Package translator orchestrates the full compile pipeline — lex, parse,
// rewrite against the target version, optimize, emit — behind the public
// request/response API. A Translator instance is single-threaded and reuses
// its arena across compiles; instances share no mutable state, so callers
// run one per worker.
package translator

import (
	"fmt"
	"sort"
	"time"

	"github.com/gogpu/glslx/pkg/glsl/arena"
	"github.com/gogpu/glslx/pkg/glsl/ast"
	"github.com/gogpu/glslx/pkg/glsl/cache"
	"github.com/gogpu/glslx/pkg/glsl/emit"
	"github.com/gogpu/glslx/pkg/glsl/lexer"
	"github.com/gogpu/glslx/pkg/glsl/optimize"
	"github.com/gogpu/glslx/pkg/glsl/parser"
	"github.com/gogpu/glslx/pkg/glsl/rewrite"
	"github.com/gogpu/glslx/pkg/glsl/source"
	"github.com/gogpu/glslx/pkg/glsl/stream"
	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Config selects a translation's target and behavior.
type Config struct {
	// TargetVersion is the version translated output is written against.
	TargetVersion version.Version

	// SourceVersion pins the input's version explicitly; nil means detect
	// from the #version directive or infer from vocabulary.
	SourceVersion *version.Version

	// Stage names the shader stage being compiled.
	Stage version.Stage

	// OptimizationLevel enables optimizer passes by their declared minimum
	// level, 0..3.
	OptimizationLevel uint

	// StrictMode escalates otherwise-silent warnings (e.g. precision loss)
	// to errors.
	StrictMode bool

	// HardwareMax caps TargetVersion at what the host driver reports; the
	// zero Version means unchecked.
	HardwareMax version.Version
}

// Result is a successful translation.
type Result struct {
	Source             string
	SourceVersion      version.Version
	TargetVersion      version.Version
	Stage              version.Stage
	RequiredExtensions []string
	Warnings           []source.Diagnostic
	Elapsed            time.Duration
}

// Error aggregates every diagnostic of a failed translation.
type Error struct {
	Diagnostics []source.Diagnostic
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return "translation failed"
	}

	return fmt.Sprintf("translation failed with %d errors; first: %s", len(e.Diagnostics), e.Diagnostics[0].Error())
}

// Translator is one single-threaded pipeline instance.
type Translator struct {
	cfg     Config
	arena   *arena.Arena
	rules   *rewrite.Registry
	results *cache.Cache[*Result]
}

// Option customizes a Translator at construction.
type Option func(*Translator)

// WithResultCache shares a translation-result cache across instances;
// lookups shortcut the entire pipeline on a fingerprint hit.
func WithResultCache(c *cache.Cache[*Result]) Option {
	return func(t *Translator) { t.results = c }
}

// WithRegistry substitutes a custom rewrite-rule registry.
func WithRegistry(reg *rewrite.Registry) Option {
	return func(t *Translator) { t.rules = reg }
}

// New constructs a translator for the given configuration.
func New(cfg Config, opts ...Option) *Translator {
	t := &Translator{
		cfg:   cfg,
		arena: arena.New(),
		rules: rewrite.DefaultRegistry(),
	}

	for _, o := range opts {
		o(t)
	}

	return t
}

// Translate runs the full pipeline over src. On failure it returns an
// *Error carrying every collected diagnostic, positioned against the
// original source.
func (t *Translator) Translate(src string) (*Result, error) {
	started := time.Now()
	defer t.arena.Reset()

	if !t.cfg.HardwareMax.IsZero() && t.cfg.HardwareMax.Less(t.cfg.TargetVersion) {
		return nil, &Error{Diagnostics: []source.Diagnostic{{
			Kind:     source.VERSION_MISMATCH,
			Severity: source.Error,
			Message: fmt.Sprintf("target version %s exceeds hardware maximum %s",
				t.cfg.TargetVersion, t.cfg.HardwareMax),
		}}}
	}

	// The effective source version is resolved before the fingerprint is
	// built: on the inference path the detected version must participate in
	// the digest, or two inputs inferring different versions could collide.
	sourceVersion := t.effectiveSourceVersion(src)

	var key cache.Fingerprint

	if t.results != nil {
		key = cache.NewFingerprint(src, t.cfg.Stage, &sourceVersion,
			t.cfg.TargetVersion, t.cfg.OptimizationLevel, t.cfg.StrictMode)

		if hit, ok := t.results.Get(key); ok {
			return hit, nil
		}
	}

	file := source.NewFile("shader", src)

	root, diags := t.parse(file, src)
	root.Version = sourceVersion

	ctx := rewrite.Run(root, t.rules, t.cfg.TargetVersion, t.arena)

	diags = append(diags, resolveLines(file, ctx.Errors)...)
	diags = append(diags, resolveLines(file, ctx.Warnings)...)

	if t.cfg.StrictMode {
		diags = escalate(diags)
	}

	if errs := errorsOnly(diags); len(errs) > 0 {
		return nil, &Error{Diagnostics: errs}
	}

	optimize.NewManager().Run(root, t.cfg.OptimizationLevel)

	text := emit.New(t.arena).Emit(root)

	result := &Result{
		Source:             text,
		SourceVersion:      sourceVersion,
		TargetVersion:      t.cfg.TargetVersion,
		Stage:              t.cfg.Stage,
		RequiredExtensions: extensionList(ctx),
		Warnings:           warningsOnly(diags),
		Elapsed:            time.Since(started),
	}

	if t.results != nil {
		t.results.Put(key, result)
	}

	return result, nil
}

// Validate runs lex, parse and the rewrite dry-run without emitting source.
func (t *Translator) Validate(src string) (valid bool, errors, warnings []source.Diagnostic) {
	defer t.arena.Reset()

	file := source.NewFile("shader", src)

	root, diags := t.parse(file, src)
	root.Version = t.effectiveSourceVersion(src)

	ctx := rewrite.Run(root, t.rules, t.cfg.TargetVersion, t.arena)

	diags = append(diags, resolveLines(file, ctx.Errors)...)
	diags = append(diags, resolveLines(file, ctx.Warnings)...)

	if t.cfg.StrictMode {
		diags = escalate(diags)
	}

	errors = errorsOnly(diags)
	warnings = warningsOnly(diags)

	return len(errors) == 0, errors, warnings
}

func (t *Translator) parse(file *source.File, src string) (*ast.Root, []source.Diagnostic) {
	toks := lexer.Tokenize(src)

	return parser.New(file, stream.New(toks), t.cfg.Stage).Parse()
}

// effectiveSourceVersion picks the version a compile translates from: the
// explicit config override when set, otherwise #version-directive detection
// falling back to vocabulary inference. Resolution is text-only so it can
// run ahead of the parse, letting the cache fingerprint include the result.
func (t *Translator) effectiveSourceVersion(src string) version.Version {
	if t.cfg.SourceVersion != nil {
		return *t.cfg.SourceVersion
	}

	return version.Detect(src)
}

func extensionList(ctx *rewrite.Context) []string {
	if len(ctx.RequiredExtensions) == 0 {
		return nil
	}

	out := make([]string, 0, len(ctx.RequiredExtensions))
	for name := range ctx.RequiredExtensions {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// resolveLines fills line/column for diagnostics produced after parse time
// from their spans.
func resolveLines(file *source.File, diags []source.Diagnostic) []source.Diagnostic {
	out := make([]source.Diagnostic, len(diags))

	for i, d := range diags {
		if d.Line == 0 && d.Span.Length() >= 0 {
			d.Line, d.Column = file.LineCol(d.Span.Start())
		}

		out[i] = d
	}

	return out
}

// escalate promotes every warning to an error, per strict mode.
func escalate(diags []source.Diagnostic) []source.Diagnostic {
	out := make([]source.Diagnostic, len(diags))

	for i, d := range diags {
		d.Severity = source.Error
		out[i] = d
	}

	return out
}

func errorsOnly(diags []source.Diagnostic) []source.Diagnostic {
	var out []source.Diagnostic

	for _, d := range diags {
		if d.IsError() {
			out = append(out, d)
		}
	}

	return out
}

func warningsOnly(diags []source.Diagnostic) []source.Diagnostic {
	var out []source.Diagnostic

	for _, d := range diags {
		if !d.IsError() {
			out = append(out, d)
		}
	}

	return out
}
