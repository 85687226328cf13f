package instr

import (
	"fmt"
	"strconv"
)

const (
	sourceMask    Word = 0x0FFF
	sourceRegMask Word = 0x0F00
	sourceLitMask Word = 0x07FF
	destMask      Word = 0x7000
)

// Disassemble renders w with the default ISA.
func Disassemble(w Word) string {
	return DefaultISA.Disassemble(w)
}

// Disassemble renders w as assembly text. Jumps show their target slot.
// Words that no opcode of the ISA produces are shown as ".word xxxx".
//
// ADD, SUB and JRO share their low bits with the B-field. A literal
// operand hides the sub-operation, so such words always read as ADD.
func (isa *ISA) Disassemble(w Word) string {
	ops := isa.Opcodes()

	// Nullary words are exact, and NOP must win over MOV 0, NIL.
	for _, op := range ops {
		if op.Class == ClassNullary && w == op.Base {
			return op.Mnemonic
		}
	}

	for _, op := range ops {
		if text, ok := disassembleAs(op, w); ok {
			return text
		}
	}

	return ".word " + w.String()
}

func disassembleAs(op Opcode, w Word) (string, bool) {
	switch op.Class {
	case ClassMove:
		if w&^(destMask|sourceMask) != op.Base {
			return "", false
		}
		src := DecodeSource(uint16(w & sourceMask))
		dst := Register(w & destMask >> destShift)
		return fmt.Sprintf("%s %s, %s", op.Mnemonic, src, dst), true

	case ClassUnary:
		if w&registerFlag != 0 {
			if w&^sourceRegMask != op.Base {
				return "", false
			}
		} else if w&^sourceLitMask != op.Base {
			return "", false
		}
		return op.Mnemonic + " " + DecodeSource(uint16(w&sourceMask)).String(), true

	case ClassJump:
		if w&^targetMask != op.Base {
			return "", false
		}
		return op.Mnemonic + " " + strconv.Itoa(w.Target()), true
	}

	return "", false
}
