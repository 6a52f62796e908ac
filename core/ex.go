package core

import (
	"context"
	"fmt"
	"strings"
)

// GreeterCallables makes an example knowledge set that's useful to
// have around: one of each kind, wired up the way a tag provider
// would do it.
func GreeterCallables() []*Callable {
	takeTheStage := &Callable{
		Name: "take_the_stage",
		Kind: Ability,
		Doc:  "Gives the actor stage presence.",
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return Facts{
				{"on_stage", true},
				{"volume", 11},
			}, nil
		},
	}

	greet := &Callable{
		Name: "greet",
		Kind: Interaction,
		Doc:  "Greets somebody by name.",
		Params: []Param{
			{Name: "name"},
			{Name: "greeting", Optional: true, Default: "Hello"},
		},
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return fmt.Sprintf("%v, %v!", args["greeting"], args["name"]), nil
		},
	}

	be := &Callable{
		Name: "be",
		Kind: Condition,
		Doc:  "Checks that two values are equal.",
		Params: []Param{
			{Name: "actual"},
			{Name: "value"},
		},
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return args["actual"] == args["value"], nil
		},
	}

	shout := &Callable{
		Name: "shout",
		Kind: Saying,
		Doc:  `Handles the member name "shout" by upper-casing its argument.`,
		Params: []Param{
			{Name: ActorParam},
			{Name: NameParam},
		},
		F: func(ctx context.Context, args Args) (interface{}, error) {
			if args[NameParam] != "shout" {
				return nil, nil
			}
			return Bound(func(ctx context.Context, words ...interface{}) (interface{}, error) {
				if len(words) != 1 {
					return nil, fmt.Errorf("shout wants one argument, not %d", len(words))
				}
				s, is := words[0].(string)
				if !is {
					return nil, fmt.Errorf("can't shout a %T", words[0])
				}
				return strings.ToUpper(s), nil
			}), nil
		},
	}

	return []*Callable{takeTheStage, greet, be, shout}
}
