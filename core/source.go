package core

import (
	"context"
	"errors"
)

var (
	// InterpreterNotFound occurs when you try to Compile a Source
	// and the required interpreter isn't in the given map of
	// interpreters.
	InterpreterNotFound = errors.New("interpreter not found")

	// DefaultInterpreters will be used by Source.Compile if given
	// nil interpreters.
	DefaultInterpreters = NewInterpretersMap()
)

// Interpreter can optionally compile and then execute code that
// serves as a Callable's body.
type Interpreter interface {
	// Compile can make something that helps when Exec()ing the
	// code later.
	Compile(ctx context.Context, code interface{}) (interface{}, error)

	// Exec executes the code with the given resolved arguments.
	// The result of a previous Compile() might be provided.
	Exec(ctx context.Context, args Args, code interface{}, compiled interface{}) (interface{}, error)
}

// InterpretersMap maps interpreter names to Interpreters.
type InterpretersMap map[string]Interpreter

func NewInterpretersMap() InterpretersMap {
	return make(InterpretersMap, 4)
}

// Source is a Callable body given as interpretable code instead of a
// Go function.  Compile turns it into an Invoke.
type Source struct {
	Interpreter string      `json:"interpreter,omitempty" yaml:",omitempty"`
	Source      interface{} `json:"source" yaml:"source"`
}

// Copy makes a shallow copy.
func (s *Source) Copy() *Source {
	if s == nil {
		return nil
	}
	return &Source{
		Interpreter: s.Interpreter,
		Source:      s.Source,
	}
}

// Compile resolves the named interpreter (defaulting to
// DefaultInterpreters), compiles the code, and wraps both in an
// Invoke.
func (s *Source) Compile(ctx context.Context, interpreters InterpretersMap) (Invoke, error) {
	if interpreters == nil {
		interpreters = DefaultInterpreters
	}

	interpreter, have := interpreters[s.Interpreter]
	if !have {
		return nil, InterpreterNotFound
	}

	compiled, err := interpreter.Compile(ctx, s.Source)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, args Args) (interface{}, error) {
		return interpreter.Exec(ctx, args, s.Source, compiled)
	}, nil
}
