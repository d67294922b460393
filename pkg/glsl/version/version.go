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

// Package version is the static, process-lifetime catalog of GLSL language
// versions, shader stages, features and extensions. It is pure: no
// function here performs I/O, and every table is initialised once at
// package load.
package version

import "fmt"

// Version is an immutable GLSL language version, identified by its
// three-digit numeric code (e.g. 330 for "#version 330"). Comparisons must
// always use Code, never the position of a Version within any slice.
type Version struct {
	code uint16
}

// New constructs a version from its numeric code (e.g. 330).
func New(code uint16) Version {
	return Version{code}
}

// Code returns the numeric version code.
func (v Version) Code() uint16 {
	return v.code
}

// String renders the version the way a #version directive would
// (e.g. "3.30", "1.10", "4.60").
func (v Version) String() string {
	major := v.code / 100
	minor := (v.code / 10) % 10

	return fmt.Sprintf("%d.%d0", major, minor)
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.code < other.code
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v.code >= other.code
}

// IsZero reports whether this is the zero Version (no version detected).
func (v Version) IsZero() bool {
	return v.code == 0
}

// Recognized GLSL versions, oldest to newest.
var (
	V110 = New(110)
	V120 = New(120)
	V130 = New(130)
	V140 = New(140)
	V150 = New(150)
	V330 = New(330)
	V400 = New(400)
	V410 = New(410)
	V420 = New(420)
	V430 = New(430)
	V440 = New(440)
	V450 = New(450)
	V460 = New(460)
)

// All lists every recognized version in ascending order.
var All = []Version{V110, V120, V130, V140, V150, V330, V400, V410, V420, V430, V440, V450, V460}

// Min and Max bound the supported range.
var (
	Min = V110
	Max = V460
)

// IsRecognized reports whether code names one of the versions in All.
func IsRecognized(code uint16) bool {
	for _, v := range All {
		if v.code == code {
			return true
		}
	}

	return false
}
