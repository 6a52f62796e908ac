// Package pattern is the tag provider for Screenplay behaviors.
//
// A behavior starts life as a plain Go function.  Tagging it gives it
// a stable name, a kind, and a declared parameter schema, producing a
// core.Callable that an actor can learn.  Go has no way to read a
// function's parameter names at runtime, so the schema is declared
// here, at tag time.
package pattern

import (
	"context"

	"github.com/stageworks/screenplay/core"
)

// P declares a required parameter.
func P(name string) core.Param {
	return core.Param{Name: name}
}

// Opt declares a parameter with a default value.
func Opt(name string, def interface{}) core.Param {
	return core.Param{Name: name, Optional: true, Default: def}
}

func tag(name string, kind core.Kind, f core.Invoke, params []core.Param) *core.Callable {
	return &core.Callable{
		Name:   name,
		Kind:   kind,
		Params: params,
		F:      f,
	}
}

// Ability tags a behavior that produces new facts when applied.  Its
// body should return core.Facts (or a map of new facts).
func Ability(name string, f core.Invoke, params ...core.Param) *core.Callable {
	return tag(name, core.Ability, f, params)
}

// Condition tags a behavior whose result is used for truth-testing.
func Condition(name string, f core.Invoke, params ...core.Param) *core.Callable {
	return tag(name, core.Condition, f, params)
}

// Interaction tags a behavior that performs an action and returns a
// result.
func Interaction(name string, f core.Invoke, params ...core.Param) *core.Callable {
	return tag(name, core.Interaction, f, params)
}

// Task tags a task, which is just an interaction by a friendlier
// name.  Tasks share the interactions bucket.
func Task(name string, f core.Invoke, params ...core.Param) *core.Callable {
	return tag(name, core.Interaction, f, params)
}

// Question tags a question, which is also an interaction.
func Question(name string, f core.Invoke, params ...core.Param) *core.Callable {
	return tag(name, core.Interaction, f, params)
}

// SayingFunc is the shape of a saying body: given the actor and an
// accessed member name, it either declines (nil) or returns a Bound
// that satisfies the access.
type SayingFunc func(ctx context.Context, actor *core.Actor, name string) core.Bound

// Saying tags a saying.  The two fixed inputs (actor and name) are
// delivered by the dispatcher; the produced Bound takes the caller's
// own arguments directly.
func Saying(name string, f SayingFunc) *core.Callable {
	return &core.Callable{
		Name: name,
		Kind: core.Saying,
		Params: []core.Param{
			{Name: core.ActorParam},
			{Name: core.NameParam},
		},
		F: func(ctx context.Context, args core.Args) (interface{}, error) {
			actor, _ := args[core.ActorParam].(*core.Actor)
			accessed, _ := args[core.NameParam].(string)
			bound := f(ctx, actor, accessed)
			if bound == nil {
				return nil, nil
			}
			return bound, nil
		},
	}
}
