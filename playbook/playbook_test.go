package playbook

import (
	"context"
	"testing"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/interpreters"
)

var demo = []byte(`
name: dragonball
doc: |
  Behaviors for going about one's **training**.
callables:
  - name: go_super_saiyan
    kind: ability
    params:
      - name: extra
    source: |
      ({hair: "blonde", power: 9001, extra: extra})
  - name: do_it
    kind: interaction
    params:
      - name: task
      - name: speed
        default: lightning
    source: |
      task + " at " + speed + " speed"
  - name: be
    kind: condition
    params:
      - name: actual
      - name: value
    source: |
      actual == value
  - name: train
    kind: task
    source: |
      "trained"
`)

func TestLoad(t *testing.T) {
	p, err := Load(demo)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "dragonball" {
		t.Fatalf("name == %q", p.Name)
	}
	if len(p.Callables) != 4 {
		t.Fatalf("got %d callables", len(p.Callables))
	}
	if p.Callables[1].Params[1].Default != "lightning" {
		t.Fatalf("got %#v", p.Callables[1].Params[1])
	}
}

func TestLoadBadKind(t *testing.T) {
	_, err := Load([]byte(`
callables:
  - name: mystery
    kind: enchantment
    source: "1"
`))
	if err == nil {
		t.Fatal("loaded an unknown kind")
	}
}

func TestCompileAndLearn(t *testing.T) {
	ctx := context.Background()

	p, err := Load(demo)
	if err != nil {
		t.Fatal(err)
	}

	ns, err := p.Compile(ctx, interpreters.Standard())
	if err != nil {
		t.Fatal(err)
	}

	a := core.NewActor()
	if err := a.Learn(ns); err != nil {
		t.Fatal(err)
	}

	if a.Abilities.Len() != 1 || a.Conditions.Len() != 1 || a.Interactions.Len() != 2 {
		t.Fatalf("bad routing: %v %v %v",
			a.Abilities.Names(), a.Conditions.Names(), a.Interactions.Names())
	}

	doIt, _ := a.Interactions.Get("do_it")
	got, err := a.Call(ctx, doIt, core.Args{"task": "drive"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "drive at lightning speed" {
		t.Fatalf("got %v", got)
	}

	saiyan, _ := a.Abilities.Get("go_super_saiyan")
	if err = a.Can(ctx, saiyan, core.Args{"extra": "yes"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Traits.Get("power"); v != int64(9001) {
		// Goja exports whole numbers as int64.
		t.Fatalf("power == %v (%T)", v, v)
	}

	be, _ := a.Conditions.Get("be")
	ok, err := a.Check(ctx, be, core.Args{"actual": "x", "value": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if ok != true {
		t.Fatalf("got %v", ok)
	}
}

func TestCompileRejectsSayings(t *testing.T) {
	ctx := context.Background()

	p, err := Load([]byte(`
callables:
  - name: sly
    kind: saying
    source: "null"
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = p.Compile(ctx, interpreters.Standard()); err == nil {
		t.Fatal("compiled a scripted saying")
	}
}

func TestCompileBadSource(t *testing.T) {
	ctx := context.Background()

	p, err := Load([]byte(`
callables:
  - name: broken
    kind: interaction
    source: "this is not javascript"
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = p.Compile(ctx, interpreters.Standard()); err == nil {
		t.Fatal("compiled garbage")
	}
}
