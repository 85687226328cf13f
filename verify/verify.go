// Package verify collects compile diagnostics and lints compiled nodes.
package verify

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/instr"
)

// IssueType categorizes diagnostics
type IssueType string

const (
	IssueSyntax  IssueType = "SYNTAX"  // Too many arguments or lines, bad directive
	IssueOperand IssueType = "OPERAND" // Unknown register, literal out of range
	IssueOpcode  IssueType = "OPCODE"  // Unknown mnemonic
	IssueLabel   IssueType = "LABEL"   // Jump to an undefined label
	IssueLint    IssueType = "LINT"    // Suspicious but valid code
)

// Severity tells whether an issue fails the compilation.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Issue represents a single diagnostic
type Issue struct {
	Type     IssueType
	Severity Severity
	Node     int                    // Node index (-1 if not applicable)
	Line     int                    // Source line (0 if not applicable)
	Message  string                 // Human-readable description
	Err      error                  // Underlying error, nil for lint issues
	Details  map[string]interface{} // Additional structured data
}

// Classify maps a compile error to its issue type.
func Classify(err error) IssueType {
	switch {
	case errors.Is(err, instr.ErrUnknownRegister), errors.Is(err, instr.ErrLiteralRange):
		return IssueOperand
	case errors.Is(err, instr.ErrUnknownOpcode):
		return IssueOpcode
	case errors.Is(err, core.ErrUndefinedLabel):
		return IssueLabel
	default:
		return IssueSyntax
	}
}

// IssueFromError converts a compile error to an error-severity issue.
func IssueFromError(err error) Issue {
	issue := Issue{
		Type:     Classify(err),
		Severity: SeverityError,
		Node:     -1,
		Message:  err.Error(),
		Err:      err,
	}

	var cerr *core.Error
	if errors.As(err, &cerr) {
		issue.Node = cerr.Node
		issue.Line = cerr.Line
		issue.Message = cerr.Err.Error()
	}

	return issue
}

// Log accumulates the issues of one compilation.
type Log struct {
	issues []Issue
}

// Add records an issue.
func (l *Log) Add(issues ...Issue) {
	l.issues = append(l.issues, issues...)
}

// AddError records a compile error.
func (l *Log) AddError(err error) {
	l.Add(IssueFromError(err))
}

// Issues returns every issue in the order recorded.
func (l *Log) Issues() []Issue {
	return l.issues
}

// Errors returns the error-severity issues.
func (l *Log) Errors() []Issue {
	return l.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (l *Log) Warnings() []Issue {
	return l.filter(SeverityWarning)
}

// Failed reports whether any error was recorded.
func (l *Log) Failed() bool {
	return len(l.Errors()) > 0
}

func (l *Log) filter(s Severity) []Issue {
	var out []Issue
	for _, issue := range l.issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}
