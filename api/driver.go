// Package api defines the driver API that compiles node programs.
package api

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/encoding"
	"github.com/sarchlab/tiscc/verify"
)

// Driver compiles assembly sources.
type Driver interface {
	// Compile reads the source line by line, emits every node as soon as it
	// is complete and returns all compiled programs with their
	// diagnostics. Compile errors never make it return an error; a
	// non-nil error means the source could not be read or the output
	// could not be written.
	Compile(ctx context.Context, source io.Reader) (*Result, error)
}

// Result is the outcome of one compilation.
type Result struct {
	Programs []core.Program
	Log      *verify.Log
}

// Failed reports whether any compile error was recorded.
func (r *Result) Failed() bool {
	return r.Log.Failed()
}

type driverImpl struct {
	emitter  encoding.Emitter
	overflow core.OverflowPolicy
	lint     bool
	listing  io.Writer
}

func (d *driverImpl) Compile(ctx context.Context, source io.Reader) (*Result, error) {
	result := &Result{Log: &verify.Log{}}

	var emitErr error
	compiler := core.NewBuilder().
		WithOverflow(d.overflow).
		WithErrorHandler(result.Log.AddError).
		WithNodeHandler(func(p core.Program) {
			result.Programs = append(result.Programs, p)
			d.emit(p, &emitErr)
		}).
		Build()

	reader := bufio.NewReader(source)
	for {
		if err := ctx.Err(); err != nil {
			return result, d.abort(err)
		}

		text, err := reader.ReadString('\n')
		if text != "" {
			compiler.Feed(text)
		}

		if emitErr != nil {
			return result, d.abort(emitErr)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, d.abort(errors.Wrap(err, "read source"))
		}
	}

	compiler.Finish()
	if emitErr != nil {
		return result, d.abort(emitErr)
	}

	if d.lint {
		result.Log.Add(verify.RunLint(result.Programs)...)
	}

	slog.Debug("CompileDone",
		"nodes", len(result.Programs),
		"errors", len(result.Log.Errors()),
		"warnings", len(result.Log.Warnings()),
	)

	return result, errors.Wrap(d.emitter.Flush(), "flush output")
}

// abort writes out the nodes emitted so far and returns err.
func (d *driverImpl) abort(err error) error {
	if flushErr := d.emitter.Flush(); flushErr != nil {
		slog.Warn("FlushFailed", "error", flushErr)
	}
	return err
}

func (d *driverImpl) emit(p core.Program, emitErr *error) {
	if d.listing != nil {
		core.PrintProgram(d.listing, p)
	}

	if *emitErr != nil {
		return
	}

	if err := d.emitter.EmitNode(p); err != nil {
		*emitErr = errors.Wrapf(err, "emit node %d", p.Node)
	}
}
