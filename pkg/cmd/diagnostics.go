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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/glslx/pkg/glsl/source"
)

// fallbackWidth is used when stderr is not a terminal.
const fallbackWidth = 100

// printDiagnostics writes diagnostics to stderr, wrapping long messages to
// the terminal width when one is attached.
func printDiagnostics(label string, diags []source.Diagnostic) {
	width := fallbackWidth
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 20 {
		width = w
	}

	for _, d := range diags {
		head := fmt.Sprintf("%s:%d:%d: %s: ", label, d.Line, d.Column, d.Kind)

		for i, line := range wrapText(d.Message, width-len(head)) {
			if i == 0 {
				fmt.Fprintf(os.Stderr, "%s%s\n", head, line)
			} else {
				fmt.Fprintf(os.Stderr, "%s%s\n", strings.Repeat(" ", len(head)), line)
			}
		}
	}
}

// wrapText splits s into lines of at most width characters, breaking at
// spaces.
func wrapText(s string, width int) []string {
	if width < 20 {
		width = 20
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current strings.Builder
	)

	for _, w := range words {
		if current.Len() > 0 && current.Len()+1+len(w) > width {
			lines = append(lines, current.String())
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}

		current.WriteString(w)
	}

	lines = append(lines, current.String())

	return lines
}
