package verify

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
)

// String formats the issue the way it is reported to the user.
func (i Issue) String() string {
	prefix := ""
	if i.Severity == SeverityWarning {
		prefix = "warning: "
	}

	switch {
	case i.Node >= 0 && i.Line > 0:
		return fmt.Sprintf("%sNode %d, line %d: %s", prefix, i.Node, i.Line, i.Message)
	case i.Node >= 0:
		return fmt.Sprintf("%sNode %d: %s", prefix, i.Node, i.Message)
	default:
		return prefix + i.Message
	}
}

// WriteReport writes every issue, one per line and ordered by source line,
// followed by a failure notice if any error was recorded. Issues without a
// line come last.
func (l *Log) WriteReport(w io.Writer) {
	for _, issue := range l.bySourceLine() {
		fmt.Fprintln(w, issue)
	}

	if l.Failed() {
		fmt.Fprintf(w, "\nCompilation Failed (%d errors, %d warnings)\n",
			len(l.Errors()), len(l.Warnings()))
	}
}

func (l *Log) bySourceLine() []Issue {
	issues := slices.Clone(l.issues)
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Compare(reportLine(a), reportLine(b))
	})
	return issues
}

func reportLine(i Issue) int {
	if i.Line > 0 {
		return i.Line
	}
	return math.MaxInt
}
