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

// Package diskcache persists translation results as one file per entry,
// named by the 8-byte hex prefix of a SHA-256 over source, stage and target
// version. Entries older than a day are eligible for cleanup.
package diskcache

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gogpu/glslx/pkg/glsl/version"
)

// MaxEntryAge is how old an entry may grow before Cleanup removes it.
const MaxEntryAge = 24 * time.Hour

// Entry is one persisted translation: the version pair, the stage, and the
// translated source text.
type Entry struct {
	SourceVersion version.Version
	TargetVersion version.Version
	Stage         version.Stage
	Text          string
}

// Store is a directory of cache entries.
type Store struct {
	dir string
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk cache: %w", err)
	}

	return &Store{dir: dir}, nil
}

// EntryName derives the file name for (source, stage, target): the 8-byte
// hex prefix of SHA-256 over their concatenation.
func EntryName(source string, stage version.Stage, target version.Version) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte(stage.String()))
	h.Write([]byte(target.String()))

	return hex.EncodeToString(h.Sum(nil)[:8])
}

// Put writes one entry, keyed by the original source text.
func (s *Store) Put(source string, e Entry) error {
	path := filepath.Join(s.dir, EntryName(source, e.Stage, e.TargetVersion))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("disk cache: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", e.SourceVersion.Code())
	fmt.Fprintf(w, "%d\n", e.TargetVersion.Code())
	fmt.Fprintf(w, "%d\n", e.Stage)
	fmt.Fprintf(w, "%d\n", len(e.Text))
	w.WriteString(e.Text)

	return w.Flush()
}

// Get reads the entry for (source, stage, target), reporting false when no
// entry exists or it fails to decode.
func (s *Store) Get(source string, stage version.Stage, target version.Version) (Entry, bool) {
	path := filepath.Join(s.dir, EntryName(source, stage, target))

	f, err := os.Open(path)
	if err != nil {
		return Entry{}, false
	}
	defer f.Close()

	e, err := decode(f)
	if err != nil {
		log.Warnf("disk cache: discarding undecodable entry %s: %v", filepath.Base(path), err)
		return Entry{}, false
	}

	return e, true
}

func decode(r io.Reader) (Entry, error) {
	br := bufio.NewReader(r)

	header := make([]int, 4)

	for i := range header {
		line, err := br.ReadString('\n')
		if err != nil {
			return Entry{}, err
		}

		n, err := strconv.Atoi(line[:len(line)-1])
		if err != nil {
			return Entry{}, err
		}

		header[i] = n
	}

	text := make([]byte, header[3])
	if _, err := io.ReadFull(br, text); err != nil {
		return Entry{}, err
	}

	return Entry{
		SourceVersion: version.New(uint16(header[0])),
		TargetVersion: version.New(uint16(header[1])),
		Stage:         version.Stage(header[2]),
		Text:          string(text),
	}, nil
}

// Cleanup removes entries older than MaxEntryAge, returning how many were
// deleted.
func (s *Store) Cleanup() (int, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("disk cache: %w", err)
	}

	cutoff := time.Now().Add(-MaxEntryAge)
	removed := 0

	for _, f := range files {
		if f.IsDir() {
			continue
		}

		info, err := f.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, f.Name())); err == nil {
			removed++
		}
	}

	if removed > 0 {
		log.Debugf("disk cache: removed %d stale entries", removed)
	}

	return removed, nil
}
