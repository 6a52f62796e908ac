// Package screenplay provides knowledge-driven actor machinery for
// Screenplay-pattern test automation.
//
// The core code is in package 'core', and some command-line tools are in `cmd`.
//
// An actor learns facts ("traits") and tagged behaviors (abilities,
// conditions, interactions, and sayings) and then exercises that
// knowledge via Can, Call, Check, and dynamic Say dispatch.
package screenplay
