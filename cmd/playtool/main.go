package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/stageworks/screenplay/playbook"

	"github.com/jsccast/yaml"
)

func main() {

	if len(os.Args) < 2 {
		Usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "yamltojson":
		pretty := false

		switch len(os.Args) {
		case 2:
		case 3:
			switch os.Args[2] {
			case "-p":
				pretty = true
			default:
				panic(fmt.Sprintf("unsupported args: %v", os.Args[1:]))
			}
		default:
			panic(fmt.Sprintf("unsupported args: %v", os.Args[1:]))
		}

		bs, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if len(bs) == 0 {
			bs = []byte(DefaultPlaybookYAML)
		}

		var p *playbook.Playbook

		if err = yaml.Unmarshal(bs, &p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if pretty {
			bs, err = json.MarshalIndent(&p, "  ", "  ")
		} else {
			bs, err = json.Marshal(&p)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if _, err = os.Stdout.Write(bs); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "jsontoyaml":

		bs, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		var p *playbook.Playbook

		if err = json.Unmarshal(bs, &p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if bs, err = yaml.Marshal(&p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if _, err = os.Stdout.Write(bs); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	default:

		mod, have := Mods[os.Args[1]]
		if !have {
			fmt.Printf("Unknown subcommand \"%s\"\n", os.Args[1])
			Usage()
			os.Exit(1)
		}

		if err := mod.Flags().Parse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		bs, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if len(bs) == 0 {
			bs = []byte(DefaultPlaybookYAML)
		}

		p, err := playbook.Load(bs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if err := mod.F(p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func Usage() {
	fmt.Printf("Subcommands:\n\n")
	for _, mod := range Mods {
		mod.Flags().Usage()
		fmt.Println("  " + mod.Doc())
		fmt.Println()
	}
	fmt.Println("Usage of yamltojson:")
	fmt.Printf("  -p    pretty-print\n\n")
	fmt.Printf("Usage of jsontoyaml: (no arguments)\n\n")
}

var DefaultPlaybookYAML = `callables:
`
