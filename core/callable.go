package core

import "context"

// Kind classifies a Callable.
//
// Task- and question-flavored behaviors are interactions; a tag
// provider should map them to Interaction when it makes the Callable.
type Kind string

const (
	Ability     Kind = "ability"
	Condition   Kind = "condition"
	Interaction Kind = "interaction"
	Saying      Kind = "saying"
)

// Known reports whether k is one of the four kinds this package
// routes.
func (k Kind) Known() bool {
	switch k {
	case Ability, Condition, Interaction, Saying:
		return true
	}
	return false
}

// Param declares one parameter of a Callable.
//
// Go can't inspect a function's parameter names at runtime, so a
// Callable carries this declared schema instead.  A tag provider
// builds the schema when it tags the function.
type Param struct {
	// Name is the parameter name used during resolution.
	Name string `json:"name" yaml:"name"`

	// Optional means the parameter has a default and need not be
	// resolved from call arguments or traits.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

	// Default is the value used when Optional and nothing else
	// provides one.
	Default interface{} `json:"default,omitempty" yaml:"default,omitempty"`
}

// Args is a set of named call-time arguments (and, after resolution,
// the final arguments handed to a Callable's body).
type Args map[string]interface{}

// Copy makes a shallow copy.
func (as Args) Copy() Args {
	acc := make(Args, len(as))
	for p, v := range as {
		acc[p] = v
	}
	return acc
}

// Extend adds (or overwrites) the binding for p in place and returns
// the receiver for chaining.
func (as Args) Extend(p string, v interface{}) Args {
	as[p] = v
	return as
}

// Invoke is the body of a Callable.  It receives fully resolved Args.
type Invoke func(ctx context.Context, args Args) (interface{}, error)

// Bound is a callable produced by a saying: phase two of saying
// dispatch invokes it directly with the caller's own arguments.  No
// parameter resolution applies.
type Bound func(ctx context.Context, args ...interface{}) (interface{}, error)

// Callable is a tagged behavior: a named function of a discrete kind
// with a declared parameter schema.
//
// A Callable is immutable once tagged.  Actors reference Callables;
// they never copy them, so one Callable can safely be learned by many
// actors.
type Callable struct {
	// Name keys the Callable in an actor's bucket for its kind.
	Name string `json:"name" yaml:"name"`

	Kind Kind `json:"kind" yaml:"kind"`

	// Doc is optional documentation (Markdown) for tools.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Params is the ordered declared parameter schema.
	Params []Param `json:"params,omitempty" yaml:",omitempty"`

	F Invoke `json:"-" yaml:"-"`
}

// Param returns the declared parameter with the given name.
func (c *Callable) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (c *Callable) String() string {
	if c == nil {
		return "nil"
	}
	return string(c.Kind) + " " + c.Name
}
