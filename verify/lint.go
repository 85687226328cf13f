package verify

import (
	"fmt"

	"github.com/sarchlab/tiscc/core"
)

// RunLint checks compiled programs for code that is legal but most likely
// a mistake. All issues it returns are warnings.
func RunLint(programs []core.Program) []Issue {
	var issues []Issue

	// A node compiled twice replaces the earlier program on the device.
	firstLine := make(map[int]int)
	for _, prog := range programs {
		line := prog.Line
		if prev, ok := firstLine[prog.Node]; ok {
			issues = append(issues, Issue{
				Type:     IssueLint,
				Severity: SeverityWarning,
				Node:     prog.Node,
				Line:     line,
				Message:  fmt.Sprintf("node %d is defined more than once", prog.Node),
				Details:  map[string]interface{}{"first_line": prev},
			})
			continue
		}
		firstLine[prog.Node] = line
	}

	for _, prog := range programs {
		issues = append(issues, lintLabels(prog)...)
	}

	return issues
}

func lintLabels(prog core.Program) []Issue {
	var issues []Issue

	referenced := make(map[string]bool)
	for i, w := range prog.Words {
		if w.IsJump() && prog.JumpLabels[i] != "" {
			referenced[prog.JumpLabels[i]] = true
		}
	}

	seen := make(map[string]core.Binding)
	for _, b := range prog.Labels {
		if first, ok := seen[b.Name]; ok {
			shadowed := b
			if b.Slot < first.Slot {
				shadowed, seen[b.Name] = first, b
			}
			issues = append(issues, Issue{
				Type:     IssueLint,
				Severity: SeverityWarning,
				Node:     prog.Node,
				Line:     shadowed.Line,
				Message: fmt.Sprintf("label %q at slot %d is shadowed by slot %d",
					b.Name, shadowed.Slot, seen[b.Name].Slot),
				Details: map[string]interface{}{"label": b.Name},
			})
			continue
		}

		seen[b.Name] = b
		if !referenced[b.Name] {
			issues = append(issues, Issue{
				Type:     IssueLint,
				Severity: SeverityWarning,
				Node:     prog.Node,
				Line:     b.Line,
				Message:  fmt.Sprintf("label %q is never jumped to", b.Name),
				Details:  map[string]interface{}{"label": b.Name},
			})
		}
	}

	return issues
}
