package core

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/instr"
)

// NumSlots is the size of a node's instruction memory.
const NumSlots = 16

// Origin is the source line a slot was compiled from. Line is 0 for
// slots that hold the idle word.
type Origin struct {
	Line int
	Text string
}

// Slot is the content of one instruction slot before label resolution,
// either Resolved or PendingJump.
type Slot interface {
	Word() instr.Word
	Source() Origin
	isSlot()
}

// Resolved is a slot whose word is final.
type Resolved struct {
	Value instr.Word
	Src   Origin
}

func (s Resolved) Word() instr.Word { return s.Value }
func (s Resolved) Source() Origin   { return s.Src }
func (Resolved) isSlot()            {}

// PendingJump is a jump whose target bits wait for the label to resolve.
type PendingJump struct {
	Partial instr.Word
	Label   string
	Src     Origin
}

func (s PendingJump) Word() instr.Word { return s.Partial }
func (s PendingJump) Source() Origin   { return s.Src }
func (PendingJump) isSlot()            {}

// Binding ties a label name to a slot.
type Binding struct {
	Name string
	Slot int
	Line int
}

// Node accumulates the slots and labels of the node being compiled.
type Node struct {
	Index  int
	Line   int // Line of the directive that started the node
	Slots  [NumSlots]Slot
	Labels []Binding
}

// NewNode creates a node whose slots all hold the idle word.
func NewNode(index int) *Node {
	n := &Node{Index: index}
	for i := range n.Slots {
		n.Slots[i] = Resolved{Value: instr.IdleWord}
	}
	return n
}

// Bind records a label for slot. Empty names are ignored.
func (n *Node) Bind(name string, slot, line int) {
	if name == "" {
		return
	}
	n.Labels = append(n.Labels, Binding{Name: name, Slot: slot, Line: line})
}

// Lookup returns the lowest slot bound to name.
func (n *Node) Lookup(name string) (int, bool) {
	for slot := 0; slot < NumSlots; slot++ {
		for _, b := range n.Labels {
			if b.Slot == slot && b.Name == name {
				return slot, true
			}
		}
	}
	return 0, false
}

// Program is a node after label resolution.
type Program struct {
	Node       int
	Line       int // Line of the node directive
	Words      [NumSlots]instr.Word
	Labels     []Binding
	JumpLabels [NumSlots]string // Label text of jump slots, empty otherwise
	Sources    [NumSlots]Origin
}

// LabelsAt returns the names bound to slot in declaration order.
func (p Program) LabelsAt(slot int) []string {
	var names []string
	for _, b := range p.Labels {
		if b.Slot == slot {
			names = append(names, b.Name)
		}
	}
	return names
}

// Resolve patches every pending jump of n with the slot its label is
// bound to. Jumps to unknown labels keep target 0 and produce an *Error
// each; they never prevent the program from being built.
func Resolve(n *Node) (Program, []error) {
	p := Program{
		Node:   n.Index,
		Line:   n.Line,
		Labels: append([]Binding(nil), n.Labels...),
	}

	var errs []error
	for i, s := range n.Slots {
		p.Words[i] = s.Word()
		p.Sources[i] = s.Source()

		jump, ok := s.(PendingJump)
		if !ok {
			continue
		}

		p.JumpLabels[i] = jump.Label
		target, found := n.Lookup(jump.Label)
		if !found {
			errs = append(errs, &Error{
				Node: n.Index,
				Line: jump.Src.Line,
				Err:  errors.Wrapf(ErrUndefinedLabel, "label %q", jump.Label),
			})
			continue
		}

		p.Words[i] = jump.Partial.WithTarget(target)
	}

	return p, errs
}
