package encoding

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/core"
)

// CmdProgramNode is the command byte that starts programming one node.
const CmdProgramNode byte = 0x01

// ProgEmitter writes the byte stream a device loader expects: the command
// byte, the node index, then every word low byte first.
type ProgEmitter struct {
	w io.Writer
}

// NewProgEmitter creates a ProgEmitter.
func NewProgEmitter(w io.Writer) *ProgEmitter {
	return &ProgEmitter{w: w}
}

func (e *ProgEmitter) EmitNode(p core.Program) error {
	buf := make([]byte, 0, 2+2*core.NumSlots)
	buf = append(buf, CmdProgramNode, byte(p.Node))
	for _, word := range p.Words {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(word))
	}

	_, err := e.w.Write(buf)
	return errors.Wrapf(err, "write node %d", p.Node)
}

func (e *ProgEmitter) Flush() error {
	return nil
}
