package core

// These errors are user errors, not internal errors: each one is a
// contract violation surfaced synchronously at the call site.  This
// package never retries or recovers from them.
//
// Every error names the offending item to keep failures debuggable.

import "fmt"

// UnknowableArgument occurs when Learn receives something that isn't
// a fact, a Callable, a namespace of Callables, or another Actor.
type UnknowableArgument struct {
	Arg interface{}
}

func (e *UnknowableArgument) Error() string {
	return fmt.Sprintf("cannot learn %#v (%T)", e.Arg, e.Arg)
}

// NotAbility occurs when Can is given a Callable whose kind isn't
// "ability".
type NotAbility struct {
	Callable *Callable
}

func (e *NotAbility) Error() string {
	return `"` + e.Callable.String() + `" is not an ability`
}

// NotInteraction occurs when Call is given a Callable whose kind
// isn't "interaction".
type NotInteraction struct {
	Callable *Callable
}

func (e *NotInteraction) Error() string {
	return `"` + e.Callable.String() + `" is not an interaction`
}

// NotCondition occurs when Check is given a Callable whose kind isn't
// "condition".
type NotCondition struct {
	Callable *Callable
}

func (e *NotCondition) Error() string {
	return `"` + e.Callable.String() + `" is not a condition`
}

// MissingParameter occurs when a declared parameter can't be resolved
// from call arguments, traits, or a default.
type MissingParameter struct {
	Callable *Callable
	Param    string
}

func (e *MissingParameter) Error() string {
	return `parameter "` + e.Param + `" for "` + e.Callable.Name + `" is unresolved`
}

// UnknownSaying occurs when no learned saying handles a dispatched
// name (including when no sayings have been learned at all).
type UnknownSaying struct {
	Name string
}

func (e *UnknownSaying) Error() string {
	return `no saying for "` + e.Name + `"`
}

// BadAbilityResult occurs when an ability's body returns something
// that isn't a mapping of new facts.
type BadAbilityResult struct {
	Callable *Callable
	Result   interface{}
}

func (e *BadAbilityResult) Error() string {
	return fmt.Sprintf("ability %q returned %#v (%T), not facts",
		e.Callable.Name, e.Result, e.Result)
}
