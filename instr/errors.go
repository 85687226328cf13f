package instr

import "github.com/pkg/errors"

var (
	// ErrUnknownRegister is returned for operand text that names no register.
	ErrUnknownRegister = errors.New("not a valid register name")

	// ErrLiteralRange is returned for literals outside [MinLiteral, MaxLiteral].
	ErrLiteralRange = errors.New("outside valid range of -1024 to 1023")

	// ErrUnknownOpcode is returned for mnemonics the ISA does not define.
	ErrUnknownOpcode = errors.New("not a valid opcode")
)
