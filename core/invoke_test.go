package core

import (
	"context"
	"errors"
	"testing"
)

func TestCanWithoutArgs(t *testing.T) {
	a := NewActor()
	if err := a.Can(context.Background(), beCool, nil); err != nil {
		t.Fatal(err)
	}
	if a.Traits.Len() != 1 {
		t.Fatalf("traits has %d entries", a.Traits.Len())
	}
	if v, _ := a.Traits.Get("cool"); v != true {
		t.Fatalf("cool == %v", v)
	}
}

func TestCanWithArgs(t *testing.T) {
	a := NewActor()
	if err := a.Can(context.Background(), goSuperSaiyan, Args{"extra": "yes"}); err != nil {
		t.Fatal(err)
	}
	if a.Traits.Len() != 3 {
		t.Fatalf("traits has %d entries", a.Traits.Len())
	}
	for name, want := range map[string]interface{}{
		"hair":  "blonde",
		"power": 9001,
		"extra": "yes",
	} {
		if v, _ := a.Traits.Get(name); v != want {
			t.Fatalf("%s == %v", name, v)
		}
	}
}

func TestCanMergesOverInPlace(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"power", 1}, Fact{"name", "Goku"}); err != nil {
		t.Fatal(err)
	}
	if err := a.Can(context.Background(), goSuperSaiyan, Args{"extra": "yes"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Traits.Get("power"); v != 9001 {
		t.Fatalf("power == %v", v)
	}
	// "power" keeps its original slot.
	if !sameNames(a.Traits.Names(), []string{"power", "name", "hair", "extra"}) {
		t.Fatalf("wrong order: %v", a.Traits.Names())
	}
}

func TestCanNonAbility(t *testing.T) {
	a := NewActor()
	err := a.Can(context.Background(), doIt, nil)
	if err == nil {
		t.Fatal("applied an interaction")
	}
	if _, is := err.(*NotAbility); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCanBadResult(t *testing.T) {
	a := NewActor()
	liar := &Callable{
		Name: "liar",
		Kind: Ability,
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return "not facts", nil
		},
	}
	err := a.Can(context.Background(), liar, nil)
	if err == nil {
		t.Fatal("accepted a non-mapping result")
	}
	if _, is := err.(*BadAbilityResult); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCanMapResult(t *testing.T) {
	a := NewActor()
	mapper := &Callable{
		Name: "mapper",
		Kind: Ability,
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return map[string]interface{}{"b": 2, "a": 1}, nil
		},
	}
	if err := a.Can(context.Background(), mapper, nil); err != nil {
		t.Fatal(err)
	}
	// Plain maps have no order, so new keys land sorted.
	if !sameNames(a.Traits.Names(), []string{"a", "b"}) {
		t.Fatalf("wrong order: %v", a.Traits.Names())
	}
}

func TestCallWithoutParameters(t *testing.T) {
	a := NewActor()
	got, err := a.Call(context.Background(), whipItGood, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Fatalf("got %v", got)
	}
}

func TestCallArgsOnly(t *testing.T) {
	a := NewActor()
	got, err := a.Call(context.Background(), doIt,
		Args{"task": "program", "speed": "lightning"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "program at lightning speed" {
		t.Fatalf("got %v", got)
	}
}

func TestCallArgsAndTraits(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"task", "program"}); err != nil {
		t.Fatal(err)
	}
	got, err := a.Call(context.Background(), doIt, Args{"speed": "lightning"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "program at lightning speed" {
		t.Fatalf("got %v", got)
	}
}

func TestCallArgsOverrideTraits(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"task", "program"}, Fact{"speed", "lightning"}); err != nil {
		t.Fatal(err)
	}
	got, err := a.Call(context.Background(), doIt, Args{"task": "drive"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "drive at lightning speed" {
		t.Fatalf("got %v", got)
	}
}

func TestCallIgnoresUnnecessary(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"garbage", true}); err != nil {
		t.Fatal(err)
	}
	got, err := a.Call(context.Background(), doIt,
		Args{"task": "program", "speed": "lightning", "more": "junk"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "program at lightning speed" {
		t.Fatalf("got %v", got)
	}
}

func TestCallDefaults(t *testing.T) {
	a := NewActor()
	got, err := a.Call(context.Background(), assumeThings, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Fatalf("got %v", got)
	}

	if got, err = a.Call(context.Background(), assumeThings, Args{"b": 9}); err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Fatalf("got %v", got)
	}
}

func TestCallMissingParameter(t *testing.T) {
	a := NewActor()
	_, err := a.Call(context.Background(), doIt, nil)
	if err == nil {
		t.Fatal("called with missing parameters")
	}
	if _, is := err.(*MissingParameter); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCallActorParameter(t *testing.T) {
	a := NewActor()
	getActor := &Callable{
		Name:   "get_actor",
		Kind:   Interaction,
		Params: []Param{{Name: ActorParam}},
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return args[ActorParam], nil
		},
	}
	got, err := a.Call(context.Background(), getActor, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Fatal("didn't get the actor back")
	}
}

func TestCallNonInteraction(t *testing.T) {
	a := NewActor()
	_, err := a.Call(context.Background(), beCool, nil)
	if err == nil {
		t.Fatal("called an ability")
	}
	if _, is := err.(*NotInteraction); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCallBodyError(t *testing.T) {
	a := NewActor()
	boom := errors.New("something terrible happened")
	fails := &Callable{
		Name: "fails",
		Kind: Interaction,
		F: func(ctx context.Context, args Args) (interface{}, error) {
			return nil, boom
		},
	}
	if _, err := a.Call(context.Background(), fails, nil); err != boom {
		t.Fatalf("got %v", err)
	}
}

func TestCheckTrueAndFalse(t *testing.T) {
	a := NewActor()

	got, err := a.Check(context.Background(), be, Args{"actual": 4, "value": 4})
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Fatalf("got %v", got)
	}

	if got, err = a.Check(context.Background(), be, Args{"actual": 4, "value": 5}); err != nil {
		t.Fatal(err)
	}
	if got != false {
		t.Fatalf("got %v", got)
	}
}

func TestCheckWithTraits(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"actual", "hi"}, Fact{"value", "hi"}); err != nil {
		t.Fatal(err)
	}
	got, err := a.Check(context.Background(), be, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Fatalf("got %v", got)
	}
}

func TestCheckArgsOverrideTraits(t *testing.T) {
	a := NewActor()
	if err := a.Learn(Fact{"actual", 99}, Fact{"value", 99}); err != nil {
		t.Fatal(err)
	}
	got, err := a.Check(context.Background(), be, Args{"value": 2})
	if err != nil {
		t.Fatal(err)
	}
	if got != false {
		t.Fatalf("got %v", got)
	}
}

func TestCheckDefaults(t *testing.T) {
	a := NewActor()
	got, err := a.Check(context.Background(), assumeBool, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Fatalf("got %v", got)
	}

	if got, err = a.Check(context.Background(), assumeBool, Args{"b": 2}); err != nil {
		t.Fatal(err)
	}
	if got != false {
		t.Fatalf("got %v", got)
	}
}

func TestCheckMissingParameter(t *testing.T) {
	a := NewActor()
	_, err := a.Check(context.Background(), be, nil)
	if err == nil {
		t.Fatal("checked with missing parameters")
	}
	if _, is := err.(*MissingParameter); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCheckNonCondition(t *testing.T) {
	a := NewActor()
	_, err := a.Check(context.Background(), whipItGood, nil)
	if err == nil {
		t.Fatal("checked an interaction")
	}
	if _, is := err.(*NotCondition); !is {
		t.Fatalf("got %T (%v)", err, err)
	}
}

func TestCheckRawResult(t *testing.T) {
	a := NewActor()
	counts := &Callable{
		Name: "counts",
		Kind: Condition,
		F: func(ctx context.Context, args Args) (interface{}, error) {
			// Not a bool on purpose: the caller interprets
			// truthiness.
			return 42, nil
		},
	}
	got, err := a.Check(context.Background(), counts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("got %v", got)
	}
}
