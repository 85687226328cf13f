package encoding

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sarchlab/tiscc/core"
)

const wordsPerLine = 4

// HexEmitter writes each node as a two-digit hex header followed by its
// words, low byte first, four words to a line.
type HexEmitter struct {
	w *bufio.Writer
}

// NewHexEmitter creates a HexEmitter.
func NewHexEmitter(w io.Writer) *HexEmitter {
	return &HexEmitter{w: bufio.NewWriter(w)}
}

// EmitNode buffers p. The bufio.Writer keeps the first write error and
// Flush returns it.
func (e *HexEmitter) EmitNode(p core.Program) error {
	fmt.Fprintf(e.w, "\n%02x\n", p.Node&0xFF)

	for i, word := range p.Words {
		sep := byte(' ')
		if i%wordsPerLine == wordsPerLine-1 {
			sep = '\n'
		}
		fmt.Fprintf(e.w, "%02x%02x%c", byte(word), byte(word>>8), sep)
	}

	return nil
}

func (e *HexEmitter) Flush() error {
	return e.w.Flush()
}
