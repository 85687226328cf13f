package core

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	directiveMarker = '@'
	commentMarker   = '#'
	labelMarker     = ':'

	// A mnemonic followed by two operands.
	maxWords = 3

	numNodes = 256
)

// ParseDirective recognizes a node directive. isDirective is false for any
// line that does not start with '@'. The index is read like C atoi and
// reduced mod 256; a directive without digits selects node 0 and returns
// an error wrapping ErrBadNodeIndex.
func ParseDirective(line string) (node int, isDirective bool, err error) {
	if len(line) == 0 || line[0] != directiveMarker {
		return 0, false, nil
	}

	rest := strings.TrimLeft(line[1:], " \t\n\v\f\r")

	negative := false
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}

	digits := 0
	for ; digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9'; digits++ {
		node = (node*10 + int(rest[digits]-'0')) % numNodes
	}

	if digits == 0 {
		return 0, true, errors.Wrapf(ErrBadNodeIndex, "directive %q", strings.TrimRight(line, "\r\n"))
	}

	if negative {
		node = (numNodes - node) % numNodes
	}

	return node, true, nil
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', ',', '\r', '\n':
		return true
	}
	return false
}

// Tokenize splits a code line into an optional label, a mnemonic and up to
// two operands. Words past the second operand are dropped and reported
// with ErrTooManyArguments; the returned instruction is usable either way.
func Tokenize(line string) (Instruction, error) {
	inst := Instruction{Raw: strings.TrimRight(line, "\r\n")}

	var (
		word     strings.Builder
		words    []string
		extra    []string
		labelled bool
	)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		if len(words) < maxWords {
			words = append(words, word.String())
		} else {
			extra = append(extra, word.String())
		}
		word.Reset()
	}

	// Bytes, not runes: names must match byte for byte.
scan:
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == commentMarker:
			break scan
		case c == labelMarker && !labelled:
			inst.Label = word.String()
			labelled = true
			word.Reset()
		case isDelimiter(c):
			flush()
		default:
			word.WriteByte(c)
		}
	}
	flush()

	if len(words) > 0 {
		inst.Opcode = words[0]
		inst.Operands = words[1:]
	}

	if len(extra) > 0 {
		return inst, errors.Wrapf(ErrTooManyArguments, "unexpected %s", strings.Join(extra, " "))
	}

	return inst, nil
}
