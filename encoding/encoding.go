// Package encoding writes compiled nodes in the supported output formats.
package encoding

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/core"
)

// Emitter writes compiled nodes to an output.
type Emitter interface {
	// EmitNode writes one node. Nodes are emitted in source order.
	EmitNode(p core.Program) error

	// Flush writes anything still buffered. No node may be emitted after.
	Flush() error
}

// Format names an output format.
type Format string

const (
	FormatHex  Format = "hex"
	FormatYAML Format = "yaml"
	FormatProg Format = "prog"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatHex, FormatYAML, FormatProg:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q", s)
	}
}

// NewEmitter creates an emitter for format f writing to w.
func NewEmitter(f Format, w io.Writer) (Emitter, error) {
	switch f {
	case FormatHex:
		return NewHexEmitter(w), nil
	case FormatYAML:
		return NewYAMLEmitter(w), nil
	case FormatProg:
		return NewProgEmitter(w), nil
	default:
		return nil, errors.Errorf("unknown output format %q", f)
	}
}
