package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/tiscc/instr"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// TraceEnabled reports whether the default logger records trace messages.
func TraceEnabled() bool {
	return slog.Default().Enabled(context.Background(), LevelTrace)
}

// PrintProgram writes a listing of p as a table.
func PrintProgram(w io.Writer, p Program) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Node %d (%02x)", p.Node, p.Node&0xFF))
	t.AppendHeader(table.Row{"Slot", "Word", "Disassembly", "Label", "Line", "Source"})

	for i, word := range p.Words {
		line := ""
		if p.Sources[i].Line > 0 {
			line = fmt.Sprint(p.Sources[i].Line)
		}

		t.AppendRow(table.Row{
			i,
			word.String(),
			instr.Disassemble(word),
			strings.Join(p.LabelsAt(i), " "),
			line,
			strings.TrimSpace(p.Sources[i].Text),
		})
	}

	t.Render()
	fmt.Fprintln(w)
}

func LogProgram(p Program) {
	words := make([]string, len(p.Words))
	for i, w := range p.Words {
		words[i] = w.String()
	}

	slog.Debug("NodeCompiled",
		"node", p.Node,
		"words", words,
		"labels", len(p.Labels),
	)
}
