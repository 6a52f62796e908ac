package tools

import (
	"testing"

	"github.com/stageworks/screenplay/playbook"
)

func TestAnalyzeHappy(t *testing.T) {
	p, err := playbook.Load([]byte(`
name: clean
callables:
  - name: jump
    kind: interaction
    params:
      - name: height
        default: high
    source: "1"
  - name: fly
    kind: ability
    source: "({airborne: true})"
`))
	if err != nil {
		t.Fatal(err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Happy() {
		t.Fatalf("unhappy: %#v", a)
	}
	if a.Callables != 2 || a.Abilities != 1 || a.Interactions != 1 {
		t.Fatalf("bad counts: %#v", a)
	}
	if len(a.Interpreters) != 1 || a.Interpreters[0] != "goja" {
		t.Fatalf("interpreters: %v", a.Interpreters)
	}
}

func TestAnalyzeNeedyAbility(t *testing.T) {
	p, err := playbook.Load([]byte(`
name: demanding
callables:
  - name: drive
    kind: ability
    params:
      - name: car
    source: "({driving: car})"
`))
	if err != nil {
		t.Fatal(err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.NeedyAbilities) != 1 || a.NeedyAbilities[0] != "drive" {
		t.Fatalf("needy: %v", a.NeedyAbilities)
	}
	// Informational only.
	if !a.Happy() {
		t.Fatalf("unhappy: %#v", a)
	}
}

func TestAnalyzeComplaints(t *testing.T) {
	p, err := playbook.Load([]byte(`
name: messy
callables:
  - name: jump
    kind: interaction
    source: "1"
  - name: jump
    kind: interaction
    source: "2"
  - name: selfish
    kind: interaction
    params:
      - name: actor
        default: nobody
      - name: x
      - name: x
    source: "3"
  - name: hollow
    kind: condition
    source: ""
`))
	if err != nil {
		t.Fatal(err)
	}

	a, err := Analyze(p)
	if err != nil {
		t.Fatal(err)
	}
	if a.Happy() {
		t.Fatal("analysis missed everything")
	}
	if len(a.DuplicateNames) != 1 || a.DuplicateNames[0] != "jump" {
		t.Fatalf("duplicates: %v", a.DuplicateNames)
	}
	if len(a.ShadowedActorSlots) != 1 || a.ShadowedActorSlots[0] != "selfish" {
		t.Fatalf("shadowed: %v", a.ShadowedActorSlots)
	}
	if len(a.DuplicateParams) != 1 || a.DuplicateParams[0] != "selfish.x" {
		t.Fatalf("params: %v", a.DuplicateParams)
	}
	if len(a.EmptySources) != 1 || a.EmptySources[0] != "hollow" {
		t.Fatalf("empties: %v", a.EmptySources)
	}
}
