// Package noop provides a core.Interpreter that does nothing, which
// is sometimes exactly what you want (tools, tests, dry runs).
package noop

import (
	"context"
	"log"

	"github.com/stageworks/screenplay/core"
)

// Interpreter is a core.Interpreter that just returns its resolved
// arguments without doing anything.
type Interpreter struct {
	// Silent, if true, will suppress warning log messages.
	Silent bool
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

func (i *Interpreter) Compile(ctx context.Context, code interface{}) (interface{}, error) {
	if !i.Silent {
		log.Printf("warning: using noop.Interpreter for compilation")
	}
	return nil, nil
}

func (i *Interpreter) Exec(ctx context.Context, args core.Args, code interface{}, compiled interface{}) (interface{}, error) {
	if !i.Silent {
		log.Printf("warning: using noop.Interpreter for execution")
	}
	return map[string]interface{}(args.Copy()), nil
}
