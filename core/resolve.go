package core

const (
	// ActorParam is the reserved self-injection parameter name.  A
	// declared parameter with this name always binds the actor
	// itself, no matter what traits say.
	ActorParam = "actor"

	// NameParam is the parameter name under which saying dispatch
	// passes the accessed member name.
	NameParam = "name"
)

// Resolve computes the final arguments for c.
//
// Each declared parameter, in declaration order, is bound by this
// precedence:
//
//	1. ActorParam binds the actor reference itself
//	2. kwargs (call arguments always win over remembered traits)
//	3. traits
//	4. the parameter's declared default
//
// Otherwise resolution fails with a MissingParameter.  Extra kwargs
// and traits that match no declared parameter are ignored, and traits
// is never mutated.
func Resolve(c *Callable, kwargs Args, traits *Traits, actor *Actor) (Args, error) {
	acc := make(Args, len(c.Params))
	for _, p := range c.Params {
		if p.Name == ActorParam {
			// An explicit actor kwarg is operationally
			// identical, so there's nothing to check.
			acc[p.Name] = actor
			continue
		}
		if v, have := kwargs[p.Name]; have {
			acc[p.Name] = v
			continue
		}
		if v, have := traits.Get(p.Name); have {
			acc[p.Name] = v
			continue
		}
		if p.Optional {
			acc[p.Name] = p.Default
			continue
		}
		return nil, &MissingParameter{c, p.Name}
	}
	return acc, nil
}
