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

// Extension is a named ecosystem identifier that promotes a set of features
// into a target version that would not natively include them.
type Extension struct {
	Name     string
	Promotes []Feature
	// MinVersion is the oldest version the driver must support for this
	// extension string to be meaningful.
	MinVersion Version
}

var extensions = []Extension{
	{
		Name:       "GL_ARB_explicit_attrib_location",
		Promotes:   []Feature{LAYOUT_LOCATION_INPUT},
		MinVersion: V130,
	},
	{
		Name:       "GL_ARB_shading_language_420pack",
		Promotes:   []Feature{LAYOUT_BINDING},
		MinVersion: V130,
	},
	{
		Name:       "GL_ARB_explicit_uniform_location",
		Promotes:   []Feature{EXPLICIT_UNIFORM_LOCATION},
		MinVersion: V330,
	},
	{
		Name:       "GL_ARB_separate_shader_objects",
		Promotes:   []Feature{LAYOUT_LOCATION_INPUT, LAYOUT_BINDING},
		MinVersion: V140,
	},
	{
		Name:       "GL_ARB_gpu_shader_fp64",
		Promotes:   []Feature{DOUBLE_PRECISION},
		MinVersion: V150,
	},
	{
		Name:       "GL_ARB_compute_shader",
		Promotes:   []Feature{COMPUTE_SHADERS},
		MinVersion: V420,
	},
	{
		Name:       "GL_ARB_tessellation_shader",
		Promotes:   []Feature{TESSELLATION_SHADERS},
		MinVersion: V330,
	},
	{
		Name:       "GL_EXT_geometry_shader4",
		Promotes:   []Feature{GEOMETRY_SHADERS},
		MinVersion: V110,
	},
	{
		Name:       "GL_ARB_arrays_of_arrays",
		Promotes:   []Feature{ARRAY_OF_ARRAYS},
		MinVersion: V330,
	},
}

// PromotingExtension returns the cheapest extension (by ascending
// MinVersion) that promotes feature f into target, or false if none does.
func PromotingExtension(f Feature, target Version) (Extension, bool) {
	var (
		best  Extension
		found bool
	)

	for _, ext := range extensions {
		if !ext.MinVersion.AtLeast(Version{}) || target.Less(ext.MinVersion) {
			// Extension requires a newer driver baseline than the target;
			// still usable since extensions promote features *into* a
			// version, but never consider one requiring a version newer
			// than the target itself as that would be incoherent.
			if target.Less(ext.MinVersion) {
				continue
			}
		}

		for _, pf := range ext.Promotes {
			if pf != f {
				continue
			}

			if !found || ext.MinVersion.Less(best.MinVersion) {
				best, found = ext, true
			}
		}
	}

	return best, found
}

// ByName looks up a known extension by its GL_* string identifier.
func ByName(name string) (Extension, bool) {
	for _, ext := range extensions {
		if ext.Name == name {
			return ext, true
		}
	}

	return Extension{}, false
}
