// Package goja provides a core.Interpreter backed by Goja, a Go
// implementation of ECMAScript 5.1+.
//
// See https://github.com/dop251/goja.
//
// Behaviors written as ECMAScript see their resolved arguments as
// globals, so a playbook interaction with params "task" and "speed"
// can just say
//
//	task + " at " + speed + " speed"
//
// The value of the script's final expression becomes the behavior's
// result.  An ability script should produce an object, which exports
// to the map of new facts.  Note that an object literal at the start
// of a statement parses as a block, so write ({...}).
package goja

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/stageworks/screenplay/core"

	"github.com/dop251/goja"
	"github.com/gorhill/cronexpr"
)

var (
	// InterruptedMessage is the string value of Interrupted.
	InterruptedMessage = "RuntimeError: timeout"

	// Interrupted is returned by Exec if the execution is
	// interrupted (say by context cancellation).
	Interrupted = errors.New(InterruptedMessage)
)

// init adds an Interpreter as one of the core.DefaultInterpreters.
func init() {
	core.DefaultInterpreters["goja"] = NewInterpreter()
}

// Interpreter implements core.Interpreter using Goja.
type Interpreter struct {
	// Testing exposes a sleep() utility to scripts.  For tests
	// only.
	Testing bool
}

// NewInterpreter makes a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// AsSource extracts the code from the given source, which should be
// a string or a map with a "code" property.
func AsSource(src interface{}) (string, error) {
	switch vv := src.(type) {
	case string:
		return vv, nil
	case map[string]interface{}:
		if code, is := vv["code"].(string); is {
			return code, nil
		}
		return "", errors.New("bad Goja source code")
	case map[interface{}]interface{}:
		// The YAML parser gopkg.in/yaml.v2 likes to make maps
		// with interface{} keys.
		if code, is := vv["code"].(string); is {
			return code, nil
		}
		return "", errors.New("bad Goja source code")
	default:
		return "", fmt.Errorf("bad Goja source (%T)", src)
	}
}

// Compile calls goja.Compile on the source.
func (i *Interpreter) Compile(ctx context.Context, src interface{}) (interface{}, error) {
	code, err := AsSource(src)
	if err != nil {
		return nil, err
	}

	obj, err := goja.Compile("", code, true)
	if err != nil {
		return nil, errors.New(err.Error() + ": " + code)
	}

	return obj, nil
}

func protest(o *goja.Runtime, x interface{}) {
	panic(o.ToValue(x))
}

// Exec implements the core.Interpreter method of the same name.
//
// Each resolved argument is bound as a global of the same name.  The
// following utilities are available from the runtime at _:
//
//	args: the map of resolved arguments.
//	gensym(): generate a random string.
//	esc(s): URL query-escape the given string.
//	cronNext(expr): the next time matching the given cron
//	  expression, as an RFC3339Nano string.
//	now(): the current time as an RFC3339Nano string.
//	log(x): log the given value as JSON.
//
// The Testing flag must be set to see sleep().
func (i *Interpreter) Exec(ctx context.Context, args core.Args, src interface{}, compiled interface{}) (interface{}, error) {
	var p *goja.Program
	if compiled == nil {
		var err error
		if compiled, err = i.Compile(ctx, src); err != nil {
			return nil, err
		}
	}
	var is bool
	if p, is = compiled.(*goja.Program); !is {
		return nil, fmt.Errorf("Goja bad compilation: %T %#v", compiled, compiled)
	}

	if args == nil {
		args = make(core.Args)
	}

	env := map[string]interface{}{
		"args": map[string]interface{}(args.Copy()),
	}

	o := goja.New()

	o.Set("_", env)

	for name, value := range args {
		o.Set(name, value)
	}

	if i.Testing {
		o.Set("sleep", func(ms int) {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		})
	}

	env["gensym"] = func() interface{} {
		return core.Gensym(32)
	}

	env["cronNext"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		cronExpr, is := x.(string)
		if !is {
			protest(o, "not a string")
		}

		c, err := cronexpr.Parse(cronExpr)
		if err != nil {
			protest(o, err.Error())
		}
		return c.Next(time.Now()).UTC().Format(time.RFC3339Nano)
	}

	env["esc"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		s, is := x.(string)
		if !is {
			protest(o, "not a string")
		}
		return url.QueryEscape(s)
	}

	env["now"] = func() interface{} {
		return core.Timestamp()
	}

	env["log"] = func(x interface{}) interface{} {
		switch vv := x.(type) {
		case goja.Value:
			x = vv.Export()
		}
		js, err := json.Marshal(&x)
		if err != nil {
			log.Println("goja.log (can't marshal: " + err.Error() + ")")
		} else {
			log.Println(string(js))
		}

		return x
	}

	// We want to make sure that the following goroutine is
	// terminated as soon as possible.
	ictx, cancel := context.WithCancel(ctx)
	go func() {
		<-ictx.Done()
		// If this Exec method calls cancel() after RunProgram
		// returns, then we'll never see this
		// InterruptedMessage, which is actually the behavior
		// we want.  In that case, we weren't actually
		// interrupted.
		o.Interrupt(InterruptedMessage)
	}()

	v, err := o.RunProgram(p)
	cancel()

	if err != nil {
		if _, is := err.(*goja.InterruptedError); is {
			return nil, Interrupted
		}
		return nil, err
	}

	return v.Export(), nil
}
