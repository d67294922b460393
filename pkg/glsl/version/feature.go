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

// Feature identifies a discrete language capability tied to a version
// range.
type Feature uint8

const (
	INOUT_KEYWORDS Feature = iota
	LAYOUT_QUALIFIERS
	LAYOUT_LOCATION_INPUT
	LAYOUT_BINDING
	SWITCH_STATEMENT
	BITWISE_OPERATORS
	GENERIC_TEXTURE_FUNCTIONS
	LEGACY_TEXTURE_FUNCTIONS
	USER_FRAGMENT_OUTPUT
	GL_FRAGCOLOR
	NONSQUARE_MATRICES
	DOUBLE_PRECISION
	COMPUTE_SHADERS
	GEOMETRY_SHADERS
	TESSELLATION_SHADERS
	ARRAY_OF_ARRAYS
	EXPLICIT_UNIFORM_LOCATION
)

// featureRange records the [introduced, deprecated) version window during
// which a feature is available. A zero Deprecated means "never deprecated".
type featureRange struct {
	Introduced Version
	Deprecated Version
}

var featureTable = map[Feature]featureRange{
	INOUT_KEYWORDS:             {Introduced: V130},
	LAYOUT_QUALIFIERS:          {Introduced: V140},
	LAYOUT_LOCATION_INPUT:      {Introduced: V330},
	LAYOUT_BINDING:             {Introduced: V420},
	SWITCH_STATEMENT:           {Introduced: V130},
	BITWISE_OPERATORS:          {Introduced: V130},
	GENERIC_TEXTURE_FUNCTIONS:  {Introduced: V130},
	LEGACY_TEXTURE_FUNCTIONS:   {Introduced: V110, Deprecated: V140},
	USER_FRAGMENT_OUTPUT:       {Introduced: V130},
	GL_FRAGCOLOR:               {Introduced: V110, Deprecated: V140},
	NONSQUARE_MATRICES:         {Introduced: V120},
	DOUBLE_PRECISION:           {Introduced: V400},
	COMPUTE_SHADERS:            {Introduced: V430},
	GEOMETRY_SHADERS:           {Introduced: V150},
	TESSELLATION_SHADERS:       {Introduced: V400},
	ARRAY_OF_ARRAYS:            {Introduced: V430},
	EXPLICIT_UNIFORM_LOCATION:  {Introduced: V430},
}

// Available reports whether feature f can be expressed natively at version
// v: monotonic starting at the introducing version, reverting to false at
// and above the deprecating version if one is set.
func Available(f Feature, v Version) bool {
	r, ok := featureTable[f]
	if !ok {
		return false
	}

	if v.Less(r.Introduced) {
		return false
	}

	if !r.Deprecated.IsZero() && v.AtLeast(r.Deprecated) {
		return false
	}

	return true
}

// MinimumVersionFor returns the oldest version at which every feature in
// the set is available, or the zero Version if the set is empty.
func MinimumVersionFor(features ...Feature) Version {
	best := Version{}

	for _, f := range features {
		r, ok := featureTable[f]
		if !ok {
			continue
		}

		if r.Introduced.AtLeast(best) {
			best = r.Introduced
		}
	}

	return best
}
