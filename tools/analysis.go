// Package tools provides utilities for working with playbooks:
// static analysis and documentation rendering.
package tools

import (
	"sort"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/playbook"
)

// PlaybookAnalysis reports on the structure of a playbook before
// anything is compiled or learned.
type PlaybookAnalysis struct {
	playbook *playbook.Playbook

	Errors []string

	Callables    int
	Abilities    int
	Conditions   int
	Interactions int

	// DuplicateNames lists behavior names declared more than once
	// for the same kind's bucket.  The later declaration would
	// overwrite the earlier one when learned.
	DuplicateNames []string

	// ShadowedActorSlots lists behaviors that declare the actor
	// parameter with a default.  The actor slot always binds the
	// actor itself, so the default can never be used.
	ShadowedActorSlots []string

	// DuplicateParams lists behaviors declaring a parameter name
	// twice.
	DuplicateParams []string

	// EmptySources lists behaviors with no source at all.
	EmptySources []string

	// NeedyAbilities lists abilities with a required parameter.
	// Such an ability can't be exercised by a fresh actor without
	// call-time arguments or previously gained traits.  That can be
	// intentional, so this list is informational and doesn't spoil
	// Happy.
	NeedyAbilities []string

	// Interpreters is the set of interpreter names the playbook
	// uses.
	Interpreters []string
}

// Analyze scrutinizes the given playbook.
func Analyze(p *playbook.Playbook) (*PlaybookAnalysis, error) {
	a := PlaybookAnalysis{
		playbook:  p,
		Callables: len(p.Callables),
		Errors:    make([]string, 0, 8),
	}

	seen := make(map[string]bool, len(p.Callables))
	interpreters := make(map[string]bool, 2)

	for _, d := range p.Callables {
		kind, have := playbook.KindOf(d.Kind)
		if !have {
			a.Errors = append(a.Errors, `unknown kind "`+d.Kind+`" for "`+d.Name+`"`)
			continue
		}
		switch kind {
		case core.Ability:
			a.Abilities++
		case core.Condition:
			a.Conditions++
		case core.Interaction:
			a.Interactions++
		case core.Saying:
			a.Errors = append(a.Errors, `scripted saying "`+d.Name+`"`)
		}

		key := string(kind) + "/" + d.Name
		if seen[key] {
			a.DuplicateNames = append(a.DuplicateNames, d.Name)
		}
		seen[key] = true

		interpreter := d.Interpreter
		if interpreter == "" {
			interpreter = playbook.DefaultInterpreter
		}
		interpreters[interpreter] = true

		if d.Source == "" {
			a.EmptySources = append(a.EmptySources, d.Name)
		}

		params := make(map[string]bool, len(d.Params))
		needy := false
		for _, pd := range d.Params {
			if params[pd.Name] {
				a.DuplicateParams = append(a.DuplicateParams, d.Name+"."+pd.Name)
			}
			params[pd.Name] = true

			if pd.Name == core.ActorParam {
				if pd.Optional || pd.Default != nil {
					a.ShadowedActorSlots = append(a.ShadowedActorSlots, d.Name)
				}
				continue
			}
			if !pd.Optional && pd.Default == nil {
				needy = true
			}
		}
		if needy && kind == core.Ability {
			a.NeedyAbilities = append(a.NeedyAbilities, d.Name)
		}
	}

	a.Interpreters = make([]string, 0, len(interpreters))
	for name := range interpreters {
		a.Interpreters = append(a.Interpreters, name)
	}
	sort.Strings(a.Interpreters)

	return &a, nil
}

// Happy reports whether the analysis found nothing to complain about.
func (a *PlaybookAnalysis) Happy() bool {
	return 0 == len(a.Errors) &&
		0 == len(a.DuplicateNames) &&
		0 == len(a.ShadowedActorSlots) &&
		0 == len(a.DuplicateParams) &&
		0 == len(a.EmptySources)
}
