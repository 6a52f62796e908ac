package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/interpreters"
	"github.com/stageworks/screenplay/playbook"
	"github.com/stageworks/screenplay/tools"

	"github.com/jsccast/yaml"
)

var Mods = map[string]Mod{
	"analyze": &Analyzer{},
	"doc":     &DocRenderer{},
	"call":    &Caller{},
}

// Mod is a subcommand that operates on a playbook read from stdin.
type Mod interface {
	F(*playbook.Playbook) error
	Doc() string
	Flags() *flag.FlagSet
}

type Analyzer struct {
}

func (m *Analyzer) F(p *playbook.Playbook) error {
	a, err := tools.Analyze(p)
	if err != nil {
		return err
	}
	bs, err := yaml.Marshal(&a)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", bs)

	if !a.Happy() {
		os.Exit(1)
	}

	return nil
}

func (m *Analyzer) Doc() string {
	return `
Reports playbook trouble: duplicate behavior names, duplicate params,
shadowed actor slots, empty sources.  Exits nonzero when unhappy.
`
}

func (m *Analyzer) Flags() *flag.FlagSet {
	return flag.NewFlagSet("analyze", flag.PanicOnError)
}

type DocRenderer struct {
	OutputFilename string
	CSS            string
}

func (m *DocRenderer) F(p *playbook.Playbook) error {
	var out io.Writer = os.Stdout
	if m.OutputFilename != "" {
		f, err := os.Create(m.OutputFilename)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var cssFiles []string
	if m.CSS != "" {
		cssFiles = strings.Split(m.CSS, ",")
	}

	return tools.RenderPlaybookPage(p, out, cssFiles)
}

func (m *DocRenderer) Doc() string {
	return `
Renders the playbook as an HTML page (doc strings are Markdown).
`
}

func (m *DocRenderer) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("doc", flag.PanicOnError)
	fs.StringVar(&m.OutputFilename, "o", "", "output filename (default stdout)")
	fs.StringVar(&m.CSS, "c", "", "comma-separated CSS files to link")
	return fs
}

// Caller compiles the playbook, has a fresh actor learn it, and then
// invokes one behavior with JSON-given arguments.
type Caller struct {
	Name   string
	Mode   string
	ArgsJS string
}

func (m *Caller) F(p *playbook.Playbook) error {
	ctx := context.Background()

	ns, err := p.Compile(ctx, interpreters.Standard())
	if err != nil {
		return err
	}

	actor := core.NewActor()
	if err = actor.Learn(ns); err != nil {
		return err
	}

	var kwargs core.Args
	if m.ArgsJS != "" {
		if err = json.Unmarshal([]byte(m.ArgsJS), &kwargs); err != nil {
			return err
		}
	}

	var bucket *core.Bucket
	switch m.Mode {
	case "call":
		bucket = actor.Interactions
	case "check":
		bucket = actor.Conditions
	case "can":
		bucket = actor.Abilities
	default:
		return fmt.Errorf(`unknown mode "%s" (want call, check, or can)`, m.Mode)
	}

	c, have := bucket.Get(m.Name)
	if !have {
		return fmt.Errorf(`the actor doesn't know "%s" (mode %s)`, m.Name, m.Mode)
	}

	switch m.Mode {
	case "can":
		if err = actor.Can(ctx, c, kwargs); err != nil {
			return err
		}
		bs, err := json.MarshalIndent(actor.Traits, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", bs)
	case "check":
		got, err := actor.Check(ctx, c, kwargs)
		if err != nil {
			return err
		}
		bs, err := json.Marshal(&got)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", bs)
	default:
		got, err := actor.Call(ctx, c, kwargs)
		if err != nil {
			return err
		}
		bs, err := json.Marshal(&got)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", bs)
	}

	return nil
}

func (m *Caller) Doc() string {
	return `
Compiles the playbook, teaches it to a fresh actor, and invokes the
named behavior.  Mode "can" exercises an ability and prints the
resulting traits; "check" and "call" print the raw result.
`
}

func (m *Caller) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet("call", flag.PanicOnError)
	fs.StringVar(&m.Name, "n", "", "behavior name")
	fs.StringVar(&m.Mode, "m", "call", "call, check, or can")
	fs.StringVar(&m.ArgsJS, "a", "{}", "arguments as JSON")
	return fs
}
