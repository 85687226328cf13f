package api

import (
	"io"
	"os"

	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/encoding"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	emitter  encoding.Emitter
	overflow core.OverflowPolicy
	lint     bool
	listing  io.Writer
}

// WithEmitter sets where compiled nodes go.
func (b DriverBuilder) WithEmitter(emitter encoding.Emitter) DriverBuilder {
	b.emitter = emitter
	return b
}

// WithOverflow sets the policy for nodes with more code than slots.
func (b DriverBuilder) WithOverflow(policy core.OverflowPolicy) DriverBuilder {
	b.overflow = policy
	return b
}

// WithLint enables lint warnings.
func (b DriverBuilder) WithLint(lint bool) DriverBuilder {
	b.lint = lint
	return b
}

// WithListing writes a listing table of every node to w.
func (b DriverBuilder) WithListing(w io.Writer) DriverBuilder {
	b.listing = w
	return b
}

// Build creates a driver. Without an emitter, nodes are written to
// standard output in hex.
func (b DriverBuilder) Build() Driver {
	d := &driverImpl{
		emitter:  b.emitter,
		overflow: b.overflow,
		lint:     b.lint,
		listing:  b.listing,
	}

	if d.emitter == nil {
		d.emitter = encoding.NewHexEmitter(os.Stdout)
	}

	return d
}
