package troupe

import (
	"context"
	"errors"
	"testing"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/interpreters"
	"github.com/stageworks/screenplay/playbook"
)

var demo = `
name: stunts
callables:
  - name: jump
    kind: interaction
    params:
      - name: height
        default: high
    source: |
      "jumped " + height
`

func TestCastFromYAMLSource(t *testing.T) {
	ctx := context.Background()

	tr := NewTroupe("second-unit")
	m, err := tr.Cast(ctx, "stuntperson",
		&KnowledgeSource{Source: demo},
		nil,
		interpreters.Standard())
	if err != nil {
		t.Fatal(err)
	}

	if got, have := tr.Member("stuntperson"); !have || got != m {
		t.Fatal("lost the new member")
	}

	jump, have := m.Actor.Interactions.Get("jump")
	if !have {
		t.Fatal("member didn't learn the playbook")
	}
	got, err := m.Actor.Call(ctx, jump, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "jumped high" {
		t.Fatalf("got %v", got)
	}
}

type mapProvider map[string]*playbook.Playbook

func (mp mapProvider) FindPlaybook(ctx context.Context, s *KnowledgeSource) (*playbook.Playbook, error) {
	p, have := mp[s.Name]
	if !have {
		return nil, errors.New("no playbook named " + s.Name)
	}
	return p, nil
}

func TestCastFromProvider(t *testing.T) {
	ctx := context.Background()

	p, err := playbook.Load([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}

	tr := NewTroupe("second-unit")
	m, err := tr.Cast(ctx, "lead",
		&KnowledgeSource{Name: "stunts"},
		mapProvider{"stunts": p},
		interpreters.Standard())
	if err != nil {
		t.Fatal(err)
	}
	if m.Actor.Interactions.Len() != 1 {
		t.Fatal("member didn't learn the playbook")
	}

	if _, err = tr.Cast(ctx, "nobody",
		&KnowledgeSource{Name: "imaginary"},
		mapProvider{},
		interpreters.Standard()); err == nil {
		t.Fatal("cast from an unknown playbook")
	}
}

func TestMembership(t *testing.T) {
	tr := NewTroupe("ensemble")
	tr.Add(&Member{Id: "a", Actor: core.NewActor()})
	tr.Add(&Member{Id: "b", Actor: core.NewActor()})

	if len(tr.Ids()) != 2 {
		t.Fatalf("got %v", tr.Ids())
	}

	tr.Remove("a")
	if _, have := tr.Member("a"); have {
		t.Fatal("member not removed")
	}
}
