package core

import "github.com/sarchlab/tiscc/instr"

// Builder can create new compilers.
type Builder struct {
	isa          *instr.ISA
	overflow     OverflowPolicy
	nodeHandler  func(Program)
	errorHandler func(error)
}

// NewBuilder returns a builder for the default ISA that wraps on overflow.
func NewBuilder() Builder {
	return Builder{
		isa:      instr.DefaultISA,
		overflow: OverflowWrap,
	}
}

// WithISA sets the instruction set.
func (b Builder) WithISA(isa *instr.ISA) Builder {
	b.isa = isa
	return b
}

// WithOverflow sets what happens to code past the last slot of a node.
func (b Builder) WithOverflow(policy OverflowPolicy) Builder {
	b.overflow = policy
	return b
}

// WithNodeHandler sets the function that receives each finished node.
func (b Builder) WithNodeHandler(h func(Program)) Builder {
	b.nodeHandler = h
	return b
}

// WithErrorHandler sets the function that receives each compile error.
// Errors are *Error values.
func (b Builder) WithErrorHandler(h func(error)) Builder {
	b.errorHandler = h
	return b
}

// Build creates a compiler.
func (b Builder) Build() *Compiler {
	c := &Compiler{
		isa:          b.isa,
		overflow:     b.overflow,
		nodeHandler:  b.nodeHandler,
		errorHandler: b.errorHandler,
	}

	if c.isa == nil {
		c.isa = instr.DefaultISA
	}
	if c.overflow == "" {
		c.overflow = OverflowWrap
	}
	if c.nodeHandler == nil {
		c.nodeHandler = func(Program) {}
	}
	if c.errorHandler == nil {
		c.errorHandler = func(error) {}
	}

	// Code before the first directive is checked but never emitted.
	c.node = NewNode(0)

	return c
}
