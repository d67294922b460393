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

// Package cache is the process-wide translation-result cache: a concurrent
// fingerprint-keyed map with LFU-with-aging eviction on a fixed entry cap.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/gogpu/glslx/pkg/glsl/version"
)

// Fingerprint is a cryptographic digest over every input that can change a
// translation's output.
type Fingerprint [sha256.Size]byte

// String renders the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// NewFingerprint digests (source, stage, source version or its absence,
// target version, optimization level, strict mode). Callers pass the
// EFFECTIVE source version — the explicit override or the detected/inferred
// one — so two translations resolving different versions for the same text
// can never collide; nil is reserved for callers with no version at all.
func NewFingerprint(source string, stage version.Stage, sourceVersion *version.Version,
	target version.Version, optLevel uint, strict bool) Fingerprint {
	h := sha256.New()
	h.Write([]byte(source))

	var fields [16]byte

	fields[0] = byte(stage)

	if sourceVersion != nil {
		fields[1] = 1
		binary.LittleEndian.PutUint16(fields[2:], sourceVersion.Code())
	}

	binary.LittleEndian.PutUint16(fields[4:], target.Code())
	binary.LittleEndian.PutUint32(fields[6:], uint32(optLevel))

	if strict {
		fields[10] = 1
	}

	h.Write(fields[:])

	var f Fingerprint
	copy(f[:], h.Sum(nil))

	return f
}
