// Package instr encodes node instructions into 16-bit words.
//
// Word layout by opcode class:
//
//	0aaabbbbbbbbbbbb  MOV b, a (all zeros is NOP)
//	100Xbbbbbbbbbbbb  ADD, SUB, JRO
//	110NNNccccxxxxxx  JMP, JEZ, JNZ, JGZ, JLZ to slot c
//	1110ooo.........  NEG, SAV, SWP
//
// a is a register code, b a B-field (see EncodeSource) and c the 4-bit
// target slot filled in by label resolution.
package instr

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Word is one encoded instruction.
type Word uint16

const (
	// IdleWord fills every slot without code: an unconditional jump to
	// slot 0.
	IdleWord Word = 0xC000

	classMask   Word = 0xE000
	jumpClass   Word = 0xC000
	targetShift      = 6
	targetMask  Word = 0xF << targetShift
	destShift        = 12
)

// IsJump reports whether w belongs to the jump class.
func (w Word) IsJump() bool {
	return w&classMask == jumpClass
}

// Target returns the slot index held by a jump word.
func (w Word) Target() int {
	return int(w & targetMask >> targetShift)
}

// WithTarget returns w with its jump target bits set to slot.
func (w Word) WithTarget(slot int) Word {
	return w&^targetMask | Word(slot)<<targetShift&targetMask
}

func (w Word) String() string {
	return fmt.Sprintf("%04x", uint16(w))
}

// Encode encodes one instruction with the default ISA.
func Encode(mnemonic, op0, op1 string) (Word, error) {
	return DefaultISA.Encode(mnemonic, op0, op1)
}

// Encode turns a mnemonic and up to two operand tokens into a word. An
// empty mnemonic encodes as NOP. On error the returned word is the
// recovery encoding and the error may join several operand errors.
//
// Jump words are returned without a target. The label named by op0 has to
// be resolved by the caller.
func (isa *ISA) Encode(mnemonic, op0, op1 string) (Word, error) {
	if mnemonic == "" {
		return 0, nil
	}

	op, ok := isa.Lookup(mnemonic)
	if !ok {
		return 0, pkgerrors.Wrapf(ErrUnknownOpcode, "opcode %q", mnemonic)
	}

	switch op.Class {
	case ClassMove:
		src, srcErr := EncodeSource(op0)
		dst, dstErr := EncodeRegister(op1)
		return op.Base | Word(dst)<<destShift | Word(src), errors.Join(srcErr, dstErr)
	case ClassUnary:
		src, err := EncodeSource(op0)
		return op.Base | Word(src), err
	default:
		return op.Base, nil
	}
}
