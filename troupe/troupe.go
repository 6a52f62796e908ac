// Package troupe manages named collections of actors.
//
// A troupe is the unit an operator service works on: each member is
// an actor plus the provenance of its knowledge.  The troupe's lock
// protects the member table only; an individual actor still isn't
// safe for concurrent mutation, so callers serialize work per member.
package troupe

import (
	"context"
	"sync"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/playbook"
)

// Troupe is a mutable set of members indexed by id.
type Troupe struct {
	sync.RWMutex

	Id      string             `json:"id"`
	Members map[string]*Member `json:"members"`
}

// NewTroupe makes an empty troupe.
func NewTroupe(id string) *Troupe {
	return &Troupe{
		Id:      id,
		Members: make(map[string]*Member, 8),
	}
}

// Member is a pair: id and actor, along with the source of what the
// actor was taught (if known).
type Member struct {
	Id    string      `json:"id,omitempty"`
	Actor *core.Actor `json:"-" yaml:"-"`

	// Knowledge is here to facilitate serialization and reloading.
	// This field is not used anywhere in this package.
	Knowledge *KnowledgeSource `json:"knowledge,omitempty"`
}

// Add gets a write lock and adds (or replaces) the member.
func (t *Troupe) Add(m *Member) {
	t.Lock()
	t.Members[m.Id] = m
	t.Unlock()
}

// Member gets a read lock and returns the member with the given id.
func (t *Troupe) Member(id string) (*Member, bool) {
	t.RLock()
	m, have := t.Members[id]
	t.RUnlock()
	return m, have
}

// Remove gets a write lock and forgets the member.
func (t *Troupe) Remove(id string) {
	t.Lock()
	delete(t.Members, id)
	t.Unlock()
}

// Ids gets a read lock and returns the member ids (in no particular
// order).
func (t *Troupe) Ids() []string {
	t.RLock()
	acc := make([]string, 0, len(t.Members))
	for id := range t.Members {
		acc = append(acc, id)
	}
	t.RUnlock()
	return acc
}

// KnowledgeSource aspires to hold the origin of an actor's knowledge.
//
// A source can be a name for some provider to resolve, a URL, a YAML
// string, or an actual playbook right here.  Just how a
// KnowledgeSource is used is up to the application.
type KnowledgeSource struct {
	// Name is an optional string that a KnowledgeProvider could
	// use to obtain a playbook.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// URL is an optional pointer to a playbook.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source is an optional YAML playbook as a string.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Inline is an optional actual playbook right here.
	Inline *playbook.Playbook `json:"inline,omitempty" yaml:",omitempty"`
}

// Copy makes a shallow copy.
func (s *KnowledgeSource) Copy() *KnowledgeSource {
	if s == nil {
		return nil
	}
	return &KnowledgeSource{
		Name:   s.Name,
		URL:    s.URL,
		Source: s.Source,
		Inline: s.Inline,
	}
}

// KnowledgeProvider can FindPlaybook given a KnowledgeSource.
type KnowledgeProvider interface {
	FindPlaybook(ctx context.Context, s *KnowledgeSource) (*playbook.Playbook, error)
}

// Cast creates a member: a fresh actor taught from the given source.
//
// The source is resolved via the provider unless it's already inline
// (or a literal YAML string).  The compiled playbook is learned by
// the new actor, and the member remembers the source.
func (t *Troupe) Cast(ctx context.Context, id string, s *KnowledgeSource, provider KnowledgeProvider, interpreters core.InterpretersMap) (*Member, error) {
	p, err := ResolveKnowledge(ctx, s, provider)
	if err != nil {
		return nil, err
	}

	actor := core.NewActor()
	if p != nil {
		ns, err := p.Compile(ctx, interpreters)
		if err != nil {
			return nil, err
		}
		if err = actor.Learn(ns); err != nil {
			return nil, err
		}
	}

	m := &Member{
		Id:        id,
		Actor:     actor,
		Knowledge: s.Copy(),
	}
	t.Add(m)

	return m, nil
}

// ResolveKnowledge turns a KnowledgeSource into a playbook, consulting
// the provider when the source isn't self-contained.  A nil source
// resolves to no playbook at all.
func ResolveKnowledge(ctx context.Context, s *KnowledgeSource, provider KnowledgeProvider) (*playbook.Playbook, error) {
	if s == nil {
		return nil, nil
	}
	if s.Inline != nil {
		return s.Inline, nil
	}
	if s.Source != "" {
		return playbook.Load([]byte(s.Source))
	}
	if provider == nil {
		return nil, nil
	}
	return provider.FindPlaybook(ctx, s)
}
