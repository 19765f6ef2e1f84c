// Package diag carries diagnostics as return values.
//
// Engine operations never fail with an error or a panic for validation-level
// problems. They return a sentinel value together with a List explaining it.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Severity of a diagnostic
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Diagnostic is a single message produced by an operation
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Errorf creates an error diagnostic
func Errorf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// Warningf creates a warning diagnostic
func Warningf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// Notef creates a note diagnostic
func Notef(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Note, Message: fmt.Sprintf(format, args...)}
}

// List is an ordered collection of diagnostics
type List []Diagnostic

// HasErrors reports whether any diagnostic has error severity
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Filter returns the diagnostics with the given severity
func (l List) Filter(s Severity) List {
	var out List
	for _, d := range l {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// First returns the message of the first diagnostic, or "" for an empty list
func (l List) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Message
}

// Err joins the error diagnostics into an error, or returns nil if there are none.
func (l List) Err() error {
	var errs []error
	for _, d := range l {
		if d.Severity == Error {
			errs = append(errs, errors.New(d.Message))
		}
	}
	return errors.Join(errs...)
}

func (l List) String() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
