// Package core implements the knowledge registry and dispatch engine
// for a Screenplay-pattern actor.
//
// An Actor accumulates knowledge of two sorts: facts (Traits) and
// behaviors (Callables).  Behaviors come in four kinds: abilities,
// conditions, interactions, and sayings.  Knowledge arrives via
// Actor.Learn, which classifies each argument and routes it into the
// right place.
//
// Behaviors are exercised through three call modes -- Can (apply an
// ability to produce new facts), Call (invoke an interaction), and
// Check (evaluate a condition) -- plus dynamic dispatch over sayings
// via ResolveSaying/Say.  All call modes resolve a behavior's declared
// parameters from call arguments, remembered traits, and declared
// defaults, in that order.
package core
