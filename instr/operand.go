package instr

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Register is the 3-bit code of a node register or port.
type Register uint8

const (
	NIL Register = iota
	ACC
	ANY
	LAST
	LEFT
	RIGHT
	UP
	DOWN
)

var registerNames = [...]string{"NIL", "ACC", "ANY", "LAST", "LEFT", "RIGHT", "UP", "DOWN"}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// Immediate literal bounds, inclusive.
const (
	MinLiteral = -1024
	MaxLiteral = 1023
)

const (
	registerFlag  = 0x800
	registerShift = 8
	registerMask  = 0x700
	literalMask   = 0x7FF
	literalSign   = 0x400
)

// EncodeRegister returns the code of the named register. Unknown names
// return NIL together with an error wrapping ErrUnknownRegister.
func EncodeRegister(name string) (Register, error) {
	for code, n := range registerNames {
		if n == name {
			return Register(code), nil
		}
	}

	return NIL, errors.Wrapf(ErrUnknownRegister, "register %q", name)
}

// IsNumeric reports whether token is a decimal literal with an optional
// leading minus sign.
func IsNumeric(token string) bool {
	digits := 0
	for i, c := range token {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '-' && i == 0:
		default:
			return false
		}
	}

	return digits > 0
}

// EncodeSource encodes token as a 12-bit B-field. Literals occupy bits
// [10:0] in two's complement; registers set bit 11 and put their code in
// bits [10:8]. The returned field is always usable, even with an error.
func EncodeSource(token string) (uint16, error) {
	if !IsNumeric(token) {
		reg, err := EncodeRegister(token)
		return uint16(reg)<<registerShift&registerMask | registerFlag, err
	}

	value, parseErr := strconv.ParseInt(token, 10, 64)
	field := uint16(value) & literalMask
	if parseErr != nil || value < MinLiteral || value > MaxLiteral {
		return field, errors.Wrapf(ErrLiteralRange, "literal %s", token)
	}

	return field, nil
}

// Operand is a decoded B-field.
type Operand struct {
	IsRegister bool
	Register   Register
	Value      int
}

func (o Operand) String() string {
	if o.IsRegister {
		return o.Register.String()
	}
	return strconv.Itoa(o.Value)
}

// DecodeSource is the inverse of EncodeSource for in-range operands.
func DecodeSource(field uint16) Operand {
	if field&registerFlag != 0 {
		return Operand{
			IsRegister: true,
			Register:   Register(field & registerMask >> registerShift),
		}
	}

	value := int(field & literalMask)
	if value&literalSign != 0 {
		value -= literalMask + 1
	}

	return Operand{Value: value}
}
