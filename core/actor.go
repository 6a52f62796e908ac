package core

// Fact is a single named value for an actor to remember.  A sequence
// of Facts in one Learn call applies in order, so a later Fact with
// the same name wins (without moving the name's position).
type Fact struct {
	Name  string      `json:"name" yaml:"name"`
	Value interface{} `json:"value" yaml:"value"`
}

// Facts is a convenience for learning several facts as one argument.
type Facts []Fact

// Namespace is the contract for a module-like collection of members
// that may include Callables.
//
// Learn enumerates Members in natural order and learns every
// *Callable it finds.  Other members are silently skipped; only
// top-level Learn arguments must be classifiable.
type Namespace interface {
	Members() []interface{}
}

// Actor owns one fact table and four behavior buckets.
//
// An actor is created empty and mutated only via Learn and (as a side
// effect) Can.  An actor is not safe for concurrent mutation; callers
// must serialize access externally if shared.
type Actor struct {
	Traits *Traits

	Abilities    *Bucket
	Conditions   *Bucket
	Interactions *Bucket
	Sayings      *Bucket
}

// NewActor creates an actor with no knowledge.
func NewActor() *Actor {
	return &Actor{
		Traits:       NewTraits(),
		Abilities:    NewBucket(),
		Conditions:   NewBucket(),
		Interactions: NewBucket(),
		Sayings:      NewBucket(),
	}
}

// Learn classifies each item independently and routes it into the
// actor's knowledge:
//
//	Fact, Facts:  written into Traits (override-in-place)
//	*Callable:    added to the bucket for its kind
//	*Actor:       the donor's four buckets merged in (not its Traits)
//	Namespace:    every *Callable member learned, others skipped
//
// Anything else stops the call with an UnknowableArgument.  Items
// already applied before the offending one stay applied.
func (a *Actor) Learn(items ...interface{}) error {
	for _, item := range items {
		if err := a.learn(item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Actor) learn(item interface{}) error {
	switch vv := item.(type) {
	case Fact:
		a.Traits.Set(vv.Name, vv.Value)
	case Facts:
		for _, f := range vv {
			a.Traits.Set(f.Name, f.Value)
		}
	case *Callable:
		if vv == nil {
			return &UnknowableArgument{item}
		}
		return a.learnCallable(vv)
	case *Actor:
		if vv == nil {
			return &UnknowableArgument{item}
		}
		// Knowledge of what to do transfers; accumulated facts
		// do not.
		a.Abilities.AddAll(vv.Abilities)
		a.Conditions.AddAll(vv.Conditions)
		a.Interactions.AddAll(vv.Interactions)
		a.Sayings.AddAll(vv.Sayings)
	case Namespace:
		for _, m := range vv.Members() {
			if c, is := m.(*Callable); is && c != nil {
				if err := a.learnCallable(c); err != nil {
					return err
				}
			}
		}
	default:
		return &UnknowableArgument{item}
	}
	return nil
}

func (a *Actor) learnCallable(c *Callable) error {
	b := a.bucket(c.Kind)
	if b == nil {
		return &UnknowableArgument{c}
	}
	b.Add(c)
	return nil
}

// bucket returns the bucket for the given kind (nil if the kind is
// unknown).
func (a *Actor) bucket(k Kind) *Bucket {
	switch k {
	case Ability:
		return a.Abilities
	case Condition:
		return a.Conditions
	case Interaction:
		return a.Interactions
	case Saying:
		return a.Sayings
	}
	return nil
}
