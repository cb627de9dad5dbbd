// Package validation provides a pluggable rule engine for free-form RFQ
// field data. Rules operate on plain string key/value maps produced by the
// upstream parser, so the engine stays independent of the swap object
// model.
package validation

import (
	"fmt"
	"strings"
)

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Result is a single finding from a validation rule. Findings are data,
// not failures: the engine collects and returns them, never aborts on one.
type Result struct {
	Severity   Severity
	Field      string
	Message    string
	Suggestion string // optional; empty means none
}

// IsError reports whether the finding has ERROR severity.
func (r Result) IsError() bool { return r.Severity == SeverityError }

// IsWarning reports whether the finding has WARNING severity.
func (r Result) IsWarning() bool { return r.Severity == SeverityWarning }

// String renders the finding as a single report line.
func (r Result) String() string {
	s := fmt.Sprintf("[%-7s] %s: %s", r.Severity, r.Field, r.Message)
	if r.Suggestion != "" {
		s += fmt.Sprintf(" (%s)", r.Suggestion)
	}
	return s
}

// Report summarizes a validation run.
type Report struct {
	Results []Result
}

// ErrorCount returns the number of ERROR findings.
func (r Report) ErrorCount() int {
	n := 0
	for _, res := range r.Results {
		if res.IsError() {
			n++
		}
	}
	return n
}

// WarningCount returns the number of WARNING findings.
func (r Report) WarningCount() int {
	n := 0
	for _, res := range r.Results {
		if res.IsWarning() {
			n++
		}
	}
	return n
}

// String renders the full report.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("Validation Report\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Total issues: %d\n", len(r.Results))
	fmt.Fprintf(&b, "Errors: %d\n", r.ErrorCount())
	fmt.Fprintf(&b, "Warnings: %d\n\n", r.WarningCount())
	for _, res := range r.Results {
		b.WriteString(res.String())
		b.WriteByte('\n')
	}
	return b.String()
}
