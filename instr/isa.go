package instr

// Class selects how an opcode consumes its operand tokens.
type Class int

const (
	// ClassNullary opcodes take no operands.
	ClassNullary Class = iota
	// ClassMove opcodes take a source B-field and a destination A-field.
	ClassMove
	// ClassUnary opcodes take a single source B-field.
	ClassUnary
	// ClassJump opcodes take a label resolved after the node is complete.
	ClassJump
)

func (c Class) String() string {
	switch c {
	case ClassNullary:
		return "nullary"
	case ClassMove:
		return "move"
	case ClassUnary:
		return "unary"
	case ClassJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Opcode describes one mnemonic of an ISA.
type Opcode struct {
	Mnemonic string
	Class    Class
	Base     Word
}

// ISA is a named set of opcodes.
type ISA struct {
	// name of the ISA.
	name string
	// map from mnemonic to its opcode.
	opcodes map[string]Opcode
	// mnemonics in registration order.
	order []string
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		name:    name,
		opcodes: make(map[string]Opcode),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.name
}

// Register adds an opcode to the ISA, replacing any opcode with the same
// mnemonic.
func (isa *ISA) Register(op Opcode) {
	if _, ok := isa.opcodes[op.Mnemonic]; !ok {
		isa.order = append(isa.order, op.Mnemonic)
	}
	isa.opcodes[op.Mnemonic] = op
}

// Opcodes returns every opcode in registration order.
func (isa *ISA) Opcodes() []Opcode {
	ops := make([]Opcode, 0, len(isa.order))
	for _, m := range isa.order {
		ops = append(ops, isa.opcodes[m])
	}
	return ops
}

// Lookup finds an opcode by its exact mnemonic.
func (isa *ISA) Lookup(mnemonic string) (Opcode, bool) {
	op, ok := isa.opcodes[mnemonic]
	return op, ok
}

// DefaultISA is the node instruction set.
var DefaultISA = newDefaultISA()

func newDefaultISA() *ISA {
	isa := NewISA("TIS node ISA")

	isa.Register(Opcode{"NOP", ClassNullary, 0x0000})
	isa.Register(Opcode{"MOV", ClassMove, 0x0000})

	isa.Register(Opcode{"ADD", ClassUnary, 0x8000})
	isa.Register(Opcode{"SUB", ClassUnary, 0x8001})
	isa.Register(Opcode{"JRO", ClassUnary, 0x8002})

	isa.Register(Opcode{"JMP", ClassJump, 0xC000})
	isa.Register(Opcode{"JEZ", ClassJump, 0xC400})
	isa.Register(Opcode{"JNZ", ClassJump, 0xC800})
	isa.Register(Opcode{"JGZ", ClassJump, 0xCC00})
	isa.Register(Opcode{"JLZ", ClassJump, 0xD000})

	isa.Register(Opcode{"NEG", ClassNullary, 0xE000})
	isa.Register(Opcode{"SAV", ClassNullary, 0xE200})
	isa.Register(Opcode{"SWP", ClassNullary, 0xE400})

	return isa
}
