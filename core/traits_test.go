package core

import (
	"encoding/json"
	"testing"
)

func TestTraitsEmpty(t *testing.T) {
	ts := NewTraits()
	if ts.Len() != 0 {
		t.Fatalf("new traits have %d entries", ts.Len())
	}
	if ts.Has("anything") {
		t.Fatal("new traits know something")
	}
}

func TestTraitsArbitraryValues(t *testing.T) {
	ts := NewTraits()
	values := []interface{}{
		3.14,
		"Hello, World!",
		false,
		[]int{1, 2, 3},
		map[string]int{"a": 1, "b": 2},
		struct{ X int }{42},
		nil,
	}
	for i, v := range values {
		ts.Set(Gensym(8), v)
		if ts.Len() != i+1 {
			t.Fatalf("traits have %d entries, want %d", ts.Len(), i+1)
		}
	}
}

func TestTraitsOrder(t *testing.T) {
	ts := NewTraits()
	for _, name := range []string{"e", "d", "c", "b", "a"} {
		ts.Set(name, name)
	}
	if !sameNames(ts.Names(), []string{"e", "d", "c", "b", "a"}) {
		t.Fatalf("wrong order: %v", ts.Names())
	}
}

func TestTraitsOverrideKeepsPosition(t *testing.T) {
	ts := NewTraits()
	ts.Set("a", 1)
	ts.Set("b", 2)
	ts.Set("c", 3)
	ts.Set("b", 99)

	if ts.Len() != 3 {
		t.Fatalf("traits have %d entries", ts.Len())
	}
	if v, _ := ts.Get("b"); v != 99 {
		t.Fatalf("b == %v", v)
	}
	if !sameNames(ts.Names(), []string{"a", "b", "c"}) {
		t.Fatalf("override moved a key: %v", ts.Names())
	}
}

func TestTraitsCopy(t *testing.T) {
	ts := NewTraits()
	ts.Set("a", 1)
	ts.Set("b", 2)

	other := ts.Copy()
	other.Set("c", 3)
	other.Set("a", 99)

	if ts.Len() != 2 {
		t.Fatal("copy mutated the original")
	}
	if v, _ := ts.Get("a"); v != 1 {
		t.Fatalf("a == %v", v)
	}
}

func TestTraitsMarshalOrdered(t *testing.T) {
	ts := NewTraits()
	ts.Set("z", 1)
	ts.Set("a", 2)
	ts.Set("m", 3)

	js, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(js) != `{"z":1,"a":2,"m":3}` {
		t.Fatalf("got %s", js)
	}
}

func TestBucketOverrideKeepsPosition(t *testing.T) {
	b := NewBucket()
	b.Add(doIt)
	b.Add(whipItGood)

	again := &Callable{Name: "do_it", Kind: Interaction}
	b.Add(again)

	if b.Len() != 2 {
		t.Fatalf("bucket has %d entries", b.Len())
	}
	if !sameNames(b.Names(), []string{"do_it", "whip_it_good"}) {
		t.Fatalf("override moved a key: %v", b.Names())
	}
	if got, _ := b.Get("do_it"); got != again {
		t.Fatal("override kept the old value")
	}
}
