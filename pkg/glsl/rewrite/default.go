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
package rewrite

// DefaultRegistry assembles the normative rule library: qualifier rewrites
// run before function rewrites before output rewrites before layout
// rewrites before legacy built-in rewrites before type checks before
// feature rejects, per each category's priority band.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	registerQualifierRules(reg)
	registerTextureRules(reg)
	registerOutputRules(reg)
	registerLayoutRules(reg)
	registerLegacyRules(reg)
	registerTypeRules(reg)
	registerFeatureRules(reg)

	return reg
}
