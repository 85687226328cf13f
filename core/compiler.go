package core

import (
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/instr"
)

// OverflowPolicy decides what happens to code lines past the last slot.
type OverflowPolicy string

const (
	// OverflowWrap wraps the slot counter to 0 so the next line overwrites
	// slot 0.
	OverflowWrap OverflowPolicy = "wrap"
	// OverflowDiscard drops every code line past the last slot.
	OverflowDiscard OverflowPolicy = "discard"
)

// ParseOverflowPolicy validates a policy name.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(s); p {
	case OverflowWrap, OverflowDiscard:
		return p, nil
	default:
		return "", errors.Errorf("unknown overflow policy %q", s)
	}
}

// Compiler turns source lines into programs, one node at a time. It is
// fed line by line and reports each finished node and every error through
// the handlers set on the Builder.
type Compiler struct {
	isa          *instr.ISA
	overflow     OverflowPolicy
	nodeHandler  func(Program)
	errorHandler func(error)

	line       int
	node       *Node
	inNode     bool
	slot       int
	discarding bool
}

// Feed compiles one physical source line.
func (c *Compiler) Feed(text string) {
	c.line++

	index, isDirective, err := ParseDirective(text)
	if isDirective {
		if err != nil {
			c.report(index, err)
		}
		c.startNode(index)
		return
	}

	inst, err := Tokenize(text)
	if err != nil {
		c.report(c.node.Index, err)
	}

	Trace("Tokenized",
		"node", c.node.Index, "line", c.line,
		"label", inst.Label, "opcode", inst.Opcode, "operands", inst.Operands)

	if inst.Label != "" && c.slot < NumSlots {
		c.node.Bind(inst.Label, c.slot, c.line)
	}

	if inst.IsCode() {
		c.place(inst)
	}
}

// Finish completes the node being compiled, if any.
func (c *Compiler) Finish() {
	c.finishNode()
	c.inNode = false
}

func (c *Compiler) startNode(index int) {
	c.finishNode()

	c.node = NewNode(index)
	c.node.Line = c.line
	c.inNode = true
	c.slot = 0
	c.discarding = false

	slog.Debug("NodeStart", "node", index, "line", c.line, "isa", c.isa.Name())
}

func (c *Compiler) finishNode() {
	if !c.inNode {
		return
	}

	if TraceEnabled() {
		Trace("NodeState", "dump", spew.Sdump(c.node))
	}

	program, errs := Resolve(c.node)
	for _, err := range errs {
		c.errorHandler(err)
	}

	LogProgram(program)
	c.nodeHandler(program)
}

func (c *Compiler) place(inst Instruction) {
	if c.slot >= NumSlots {
		if c.overflow == OverflowDiscard {
			if !c.discarding {
				c.report(c.node.Index, errors.Wrapf(ErrTooManyLines,
					"%d slots, dropping code from here on", NumSlots))
				c.discarding = true
			}
			return
		}

		c.report(c.node.Index, errors.Wrapf(ErrTooManyLines,
			"%d slots, overwriting slot 0", NumSlots))
		c.slot = 0
	}

	word, err := c.isa.Encode(inst.Opcode, inst.Operand(0), inst.Operand(1))
	for _, e := range splitErrors(err) {
		c.report(c.node.Index, e)
	}

	src := Origin{Line: c.line, Text: inst.Raw}
	if word.IsJump() {
		c.node.Slots[c.slot] = PendingJump{Partial: word, Label: inst.Operand(0), Src: src}
	} else {
		c.node.Slots[c.slot] = Resolved{Value: word, Src: src}
	}

	Trace("Encoded", "node", c.node.Index, "slot", c.slot, "word", fmt.Sprint(word))
	c.slot++
}

func (c *Compiler) report(node int, err error) {
	c.errorHandler(&Error{Node: node, Line: c.line, Err: err})
}
