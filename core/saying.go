package core

import "context"

// ResolveSaying is phase one of dynamic member dispatch: it offers
// the accessed name to each learned saying, in insertion order, and
// returns the first Bound produced.
//
// A saying receives exactly two inputs -- the actor and the name --
// and performs its own match test.  Returning nothing (or anything
// that isn't callable) means "I don't handle this name", and the next
// saying gets a chance.  First match wins; later sayings are never
// evaluated.
//
// If nothing matches, ResolveSaying fails with an UnknownSaying.
func (a *Actor) ResolveSaying(ctx context.Context, name string) (Bound, error) {
	args := Args{
		ActorParam: a,
		NameParam:  name,
	}
	var (
		bound Bound
		err   error
	)
	stop := a.Sayings.Do(func(s *Callable) error {
		var x interface{}
		if x, err = s.F(ctx, args); err != nil {
			return err
		}
		switch vv := x.(type) {
		case nil:
		case Bound:
			bound = vv
			return errDone
		case func(context.Context, ...interface{}) (interface{}, error):
			bound = Bound(vv)
			return errDone
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if stop == errDone {
		return bound, nil
	}
	return nil, &UnknownSaying{name}
}

// Say resolves a saying for the name and immediately invokes the
// result with the given arguments.  Phase two is an ordinary call:
// the arguments go to the Bound as-is, with no parameter resolution.
func (a *Actor) Say(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	bound, err := a.ResolveSaying(ctx, name)
	if err != nil {
		return nil, err
	}
	return bound(ctx, args...)
}
