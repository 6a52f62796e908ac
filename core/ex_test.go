package core

import (
	"context"
	"testing"
)

func TestGreeterCallables(t *testing.T) {
	ctx := context.Background()

	a := NewActor()
	for _, c := range GreeterCallables() {
		if err := a.Learn(c); err != nil {
			t.Fatal(err)
		}
	}

	if err := a.Can(ctx, mustGet(t, a.Abilities, "take_the_stage"), nil); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Traits.Get("volume"); v != 11 {
		t.Fatalf("volume == %v", v)
	}

	got, err := a.Call(ctx, mustGet(t, a.Interactions, "greet"), Args{"name": "World"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello, World!" {
		t.Fatalf("got %v", got)
	}

	ok, err := a.Check(ctx, mustGet(t, a.Conditions, "be"),
		Args{"actual": got, "value": "Hello, World!"})
	if err != nil {
		t.Fatal(err)
	}
	if ok != true {
		t.Fatalf("got %v", ok)
	}

	if got, err = a.Say(ctx, "shout", "bravo"); err != nil {
		t.Fatal(err)
	}
	if got != "BRAVO" {
		t.Fatalf("got %v", got)
	}
}

func mustGet(t *testing.T, b *Bucket, name string) *Callable {
	t.Helper()
	c, have := b.Get(name)
	if !have {
		t.Fatalf("no %q", name)
	}
	return c
}
