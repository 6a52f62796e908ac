// Package interpreters gathers the standard interpreters for
// script-backed behaviors.
package interpreters

import (
	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/interpreters/goja"
	"github.com/stageworks/screenplay/interpreters/noop"
)

// Standard returns the standard map of interpreters.
func Standard() core.InterpretersMap {
	is := core.NewInterpretersMap()

	es := goja.NewInterpreter()
	is["goja"] = es
	is["ecmascript"] = es
	is["ecmascript-5.1"] = es

	is["noop"] = noop.NewInterpreter()

	return is
}
