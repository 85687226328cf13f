package core

// Instruction is one tokenized source line.
type Instruction struct {
	Label    string   // Text before the first colon, empty if none
	Opcode   string   // Mnemonic, empty for blank, label-only and comment lines
	Operands []string // At most two operand tokens
	Raw      string   // Source text without the line terminator
}

// IsCode reports whether the line occupies an instruction slot.
func (i Instruction) IsCode() bool {
	return i.Opcode != ""
}

// Operand returns the n-th operand token, or an empty string.
func (i Instruction) Operand(n int) string {
	if n < len(i.Operands) {
		return i.Operands[n]
	}
	return ""
}
