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
package source

import "fmt"

// Kind classifies a diagnostic, mirroring the closed enumeration of error
// kinds a translation can report.
type Kind uint8

const (
	// SYNTAX indicates the parser rejected the token stream.
	SYNTAX Kind = iota
	// UNSUPPORTED_FEATURE indicates the target version cannot express a
	// construct and no rewrite applies.
	UNSUPPORTED_FEATURE
	// TYPE indicates a type-rule rejection.
	TYPE
	// UNDEFINED_SYMBOL indicates a reference to an unknown identifier.
	UNDEFINED_SYMBOL
	// REDEFINITION indicates two declarations in the same scope share a
	// name.
	REDEFINITION
	// VERSION_MISMATCH indicates a configuration or #version conflict with
	// the host driver.
	VERSION_MISMATCH
)

// String renders the diagnostic kind's name.
func (k Kind) String() string {
	switch k {
	case SYNTAX:
		return "SYNTAX"
	case UNSUPPORTED_FEATURE:
		return "UNSUPPORTED_FEATURE"
	case TYPE:
		return "TYPE"
	case UNDEFINED_SYMBOL:
		return "UNDEFINED_SYMBOL"
	case REDEFINITION:
		return "REDEFINITION"
	case VERSION_MISMATCH:
		return "VERSION_MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// Severity distinguishes a hard error from an advisory warning.
type Severity uint8

const (
	// Warning is advisory; translation still succeeds.
	Warning Severity = iota
	// Error is fatal to the enclosing compile.
	Error
)

// Diagnostic is a single error or warning record positioned against the
// original (untranslated) source.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Span     Span
	Message  string
	Line     int
	Column   int
}

// NewDiagnostic constructs a diagnostic, resolving its line/column against
// the given source file.
func NewDiagnostic(file *File, span Span, kind Kind, severity Severity, msg string) Diagnostic {
	line, col := 0, 0
	if file != nil {
		line, col = file.LineCol(span.Start())
	}

	return Diagnostic{
		Kind:     kind,
		Severity: severity,
		Span:     span,
		Message:  msg,
		Line:     line,
		Column:   col,
	}
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Kind, d.Message)
}

// IsError returns true if this diagnostic is fatal.
func (d Diagnostic) IsError() bool {
	return d.Severity == Error
}
