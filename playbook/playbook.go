// Package playbook loads sets of script-backed behaviors from YAML.
//
// A playbook declares named behaviors -- kind, documented parameters,
// and source code for some interpreter -- and compiles into a
// pattern.Namespace that an actor can learn in one go:
//
//	name: dragonball
//	callables:
//	  - name: go_super_saiyan
//	    kind: ability
//	    params:
//	      - name: extra
//	    source: |
//	      ({hair: "blonde", power: 9001, extra: extra})
package playbook

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/pattern"

	"gopkg.in/yaml.v2"
)

// DefaultInterpreter is used for a Def that doesn't name one.
var DefaultInterpreter = "goja"

// ParamDef declares one parameter of a behavior.
//
// A parameter with a default (or marked optional) need not be
// resolvable at call time.
type ParamDef struct {
	Name     string      `json:"name" yaml:"name"`
	Doc      string      `json:"doc,omitempty" yaml:",omitempty"`
	Optional bool        `json:"optional,omitempty" yaml:",omitempty"`
	Default  interface{} `json:"default,omitempty" yaml:",omitempty"`
}

// Def declares one behavior.
type Def struct {
	Name string `json:"name" yaml:"name"`

	// Kind is "ability", "condition", "interaction", "task", or
	// "question".  Task and question land in the interactions
	// bucket.  Sayings can't be declared here: a saying has to
	// return a callable, which a script can't do, so sayings are
	// tagged in Go.
	Kind string `json:"kind" yaml:"kind"`

	// Doc describes the behavior in Markdown.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	Params []ParamDef `json:"params,omitempty" yaml:",omitempty"`

	// Interpreter names the interpreter for Source, defaulting to
	// DefaultInterpreter.
	Interpreter string `json:"interpreter,omitempty" yaml:",omitempty"`

	Source string `json:"source" yaml:"source"`
}

// Playbook is a named, documented set of behavior declarations.
type Playbook struct {
	Name string `json:"name,omitempty" yaml:",omitempty"`

	// Doc is general documentation about the playbook (Markdown).
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	Callables []*Def `json:"callables" yaml:"callables"`
}

// Load parses a YAML playbook.
func Load(bs []byte) (*Playbook, error) {
	var p Playbook
	if err := yaml.Unmarshal(bs, &p); err != nil {
		return nil, err
	}
	for i, d := range p.Callables {
		if d == nil || d.Name == "" {
			return nil, fmt.Errorf("callable %d has no name", i)
		}
		if _, have := KindOf(d.Kind); !have {
			return nil, fmt.Errorf("callable %q has unknown kind %q", d.Name, d.Kind)
		}
	}
	return &p, nil
}

// LoadFile reads and parses a YAML playbook file.
func LoadFile(filename string) (*Playbook, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Load(bs)
}

// KindOf maps a declared kind string to a core.Kind.  Task and
// question map to Interaction.
func KindOf(s string) (core.Kind, bool) {
	switch s {
	case "ability":
		return core.Ability, true
	case "condition":
		return core.Condition, true
	case "interaction", "task", "question":
		return core.Interaction, true
	case "saying":
		return core.Saying, true
	}
	return "", false
}

// Compile compiles every declared behavior (with the given
// interpreters, defaulting to core.DefaultInterpreters) into a
// namespace ready for Actor.Learn.
func (p *Playbook) Compile(ctx context.Context, interpreters core.InterpretersMap) (*pattern.Namespace, error) {
	ns := pattern.NewNamespace(p.Name)
	for _, d := range p.Callables {
		c, err := d.Compile(ctx, interpreters)
		if err != nil {
			return nil, err
		}
		ns.Add(c)
	}
	return ns, nil
}

// Compile compiles one declaration into a Callable.
func (d *Def) Compile(ctx context.Context, interpreters core.InterpretersMap) (*core.Callable, error) {
	kind, have := KindOf(d.Kind)
	if !have {
		return nil, fmt.Errorf("callable %q has unknown kind %q", d.Name, d.Kind)
	}
	if kind == core.Saying {
		return nil, errors.New(`sayings can't be declared in a playbook (behavior "` + d.Name + `")`)
	}

	interpreter := d.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	src := &core.Source{
		Interpreter: interpreter,
		Source:      d.Source,
	}
	f, err := src.Compile(ctx, interpreters)
	if err != nil {
		return nil, fmt.Errorf("behavior %q: %w", d.Name, err)
	}

	params := make([]core.Param, len(d.Params))
	for i, pd := range d.Params {
		params[i] = core.Param{
			Name:     pd.Name,
			Optional: pd.Optional || pd.Default != nil,
			Default:  pd.Default,
		}
	}

	return &core.Callable{
		Name:   d.Name,
		Kind:   kind,
		Doc:    d.Doc,
		Params: params,
		F:      f,
	}, nil
}
