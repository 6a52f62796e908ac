package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// Test knowledge, one small troupe of behaviors shared by the tests
// in this package.

var beCool = &Callable{
	Name: "be_cool",
	Kind: Ability,
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return Facts{{"cool", true}}, nil
	},
}

var goSuperSaiyan = &Callable{
	Name:   "go_super_saiyan",
	Kind:   Ability,
	Params: []Param{{Name: "extra"}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return Facts{
			{"hair", "blonde"},
			{"power", 9001},
			{"extra", args["extra"]},
		}, nil
	},
}

var be = &Callable{
	Name:   "be",
	Kind:   Condition,
	Params: []Param{{Name: "actual"}, {Name: "value"}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return args["actual"] == args["value"], nil
	},
}

var contain = &Callable{
	Name:   "contain",
	Kind:   Condition,
	Params: []Param{{Name: "actual"}, {Name: "value"}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		actual, _ := args["actual"].(string)
		value, _ := args["value"].(string)
		return strings.Contains(actual, value), nil
	},
}

var assumeBool = &Callable{
	Name: "assume_bool",
	Kind: Condition,
	Params: []Param{
		{Name: "a", Optional: true, Default: 1},
		{Name: "b", Optional: true, Default: 1},
	},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return args["a"] == args["b"], nil
	},
}

var doIt = &Callable{
	Name:   "do_it",
	Kind:   Interaction,
	Params: []Param{{Name: "task"}, {Name: "speed"}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return fmt.Sprintf("%v at %v speed", args["task"], args["speed"]), nil
	},
}

var whipItGood = &Callable{
	Name: "whip_it_good",
	Kind: Interaction,
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return true, nil
	},
}

var assumeThings = &Callable{
	Name: "assume_things",
	Kind: Interaction,
	Params: []Param{
		{Name: "a", Optional: true, Default: 1},
		{Name: "b", Optional: true, Default: 2},
	},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		return args["a"].(int) + args["b"].(int), nil
	},
}

// tryThings handles any name longer than one character.
var tryThings = &Callable{
	Name:   "try_things",
	Kind:   Saying,
	Params: []Param{{Name: ActorParam}, {Name: NameParam}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		name, _ := args[NameParam].(string)
		if len(name) <= 1 {
			return nil, nil
		}
		return Bound(func(ctx context.Context, words ...interface{}) (interface{}, error) {
			return "tried " + name, nil
		}), nil
	},
}

// shout handles exactly the name "shout".
var shout = &Callable{
	Name:   "shout",
	Kind:   Saying,
	Params: []Param{{Name: ActorParam}, {Name: NameParam}},
	F: func(ctx context.Context, args Args) (interface{}, error) {
		name, _ := args[NameParam].(string)
		if name != "shout" {
			return nil, nil
		}
		return Bound(func(ctx context.Context, words ...interface{}) (interface{}, error) {
			s, _ := words[0].(string)
			return strings.ToUpper(s), nil
		}), nil
	},
}

func allKnowledge() []*Callable {
	return []*Callable{
		beCool, goSuperSaiyan,
		be, contain, assumeBool,
		doIt, whipItGood, assumeThings,
		tryThings, shout,
	}
}

func learnAll(t *testing.T, a *Actor) {
	t.Helper()
	for _, c := range allKnowledge() {
		if err := a.Learn(c); err != nil {
			t.Fatal(err)
		}
	}
}

func assertBucket(t *testing.T, b *Bucket, want ...*Callable) {
	t.Helper()
	if b.Len() != len(want) {
		t.Fatalf("bucket has %d entries, want %d", b.Len(), len(want))
	}
	for _, c := range want {
		got, have := b.Get(c.Name)
		if !have {
			t.Fatalf("bucket is missing %q", c.Name)
		}
		if got != c {
			t.Fatalf("bucket has wrong value at %q", c.Name)
		}
	}
}

func assertAllKnowledge(t *testing.T, a *Actor) {
	t.Helper()
	assertBucket(t, a.Abilities, beCool, goSuperSaiyan)
	assertBucket(t, a.Conditions, be, contain, assumeBool)
	assertBucket(t, a.Interactions, doIt, whipItGood, assumeThings)
	assertBucket(t, a.Sayings, tryThings, shout)
}

func sameNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, name := range want {
		if got[i] != name {
			return false
		}
	}
	return true
}
