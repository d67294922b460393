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

// Stage identifies one of the six programmable pipeline stages.
type Stage uint8

const (
	Vertex Stage = iota
	Fragment
	Geometry
	TessControl
	TessEval
	Compute
)

// String renders the stage's canonical name.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	case TessControl:
		return "tess-control"
	case TessEval:
		return "tess-eval"
	case Compute:
		return "compute"
	default:
		return "unknown"
	}
}

// minimumVersion gives the version which introduced each stage.
var minimumVersion = map[Stage]Version{
	Vertex:      V110,
	Fragment:    V110,
	Geometry:    V150,
	TessControl: V400,
	TessEval:    V400,
	Compute:     V430,
}

// MinimumVersion returns the version that introduced the given stage.
func (s Stage) MinimumVersion() Version {
	return minimumVersion[s]
}

// SupportedAt reports whether this stage exists at the given version.
func (s Stage) SupportedAt(v Version) bool {
	return v.AtLeast(s.MinimumVersion())
}
