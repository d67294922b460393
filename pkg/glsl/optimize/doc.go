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

// Package optimize is the fixed-point pass manager over a parsed shader:
// usage/constant analysis, constant folding and propagation, algebraic
// simplification, strength reduction, dead-branch/unreachable/dead-code
// elimination, single-use variable inlining, block cleanup, swizzle
// collapse and constructor splat. Every pass preserves semantics; passes
// are sorted once by descending priority and iterated until none reports a
// change, capped at ten cycles.
//
// Common-subexpression elimination is deliberately absent from the pass
// set: the mandatory passes form a complete fixpoint without it, and a CSE
// over GLSL expression trees needs value-numbering infrastructure none of
// the other passes share.
package optimize
