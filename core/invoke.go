package core

import "context"

// Can applies an ability: it resolves the ability's parameters,
// invokes it, and merges the returned facts into the actor's Traits
// with the usual override-in-place rule.  The merged facts are the
// whole point; Can returns no other result.
func (a *Actor) Can(ctx context.Context, ability *Callable, kwargs Args) error {
	if ability == nil || ability.Kind != Ability {
		return &NotAbility{ability}
	}
	args, err := Resolve(ability, kwargs, a.Traits, a)
	if err != nil {
		return err
	}
	x, err := ability.F(ctx, args)
	if err != nil {
		return err
	}
	return a.gain(ability, x)
}

// gain merges an ability's result into Traits.
//
// Facts and *Traits merge in their own order.  A plain map has no
// order, so its new keys merge in sorted order to keep trait
// enumeration deterministic.
func (a *Actor) gain(ability *Callable, x interface{}) error {
	switch vv := x.(type) {
	case Facts:
		for _, f := range vv {
			a.Traits.Set(f.Name, f.Value)
		}
	case *Traits:
		return vv.Do(func(name string, value interface{}) error {
			a.Traits.Set(name, value)
			return nil
		})
	case Args:
		return a.gain(ability, map[string]interface{}(vv))
	case map[string]interface{}:
		for _, name := range sortedKeys(vv) {
			a.Traits.Set(name, vv[name])
		}
	default:
		return &BadAbilityResult{ability, x}
	}
	return nil
}

// Call invokes an interaction and returns its raw result.  Tasks and
// questions are interactions, so Call covers them too.
func (a *Actor) Call(ctx context.Context, interaction *Callable, kwargs Args) (interface{}, error) {
	if interaction == nil || interaction.Kind != Interaction {
		return nil, &NotInteraction{interaction}
	}
	args, err := Resolve(interaction, kwargs, a.Traits, a)
	if err != nil {
		return nil, err
	}
	return interaction.F(ctx, args)
}

// Check evaluates a condition and returns its raw result.  The caller
// interprets truthiness; no coercion happens here.
func (a *Actor) Check(ctx context.Context, condition *Callable, kwargs Args) (interface{}, error) {
	if condition == nil || condition.Kind != Condition {
		return nil, &NotCondition{condition}
	}
	args, err := Resolve(condition, kwargs, a.Traits, a)
	if err != nil {
		return nil, err
	}
	return condition.F(ctx, args)
}
