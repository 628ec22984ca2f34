/*
Package runtime implements the environment for evaluating character set
expressions: named character sets (tags), symbol tables holding them, and
scopes organized in a tree.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

Scopes are pushed onto and popped from a ScopeTree, which thus acts like a
stack. Resolving a name searches the current scope first, then its parents.
The outermost scope usually is a scope of built-in character sets, see
Builtins.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer, if one is set.
func T() tracing.Trace {
	if gtrace.SyntaxTracer != nil {
		return gtrace.SyntaxTracer
	}
	return tracing.Select("runeclass.setexpr")
}

// Runtime is a type implementing a runtime environment for an interpreter
// of character set expressions.
type Runtime struct {
	ScopeTree *ScopeTree // collect scopes
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with a scope of built-in character sets and a global scope on top of it.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = NewScopeTree(Builtins()) // built-ins are the outermost scope
	rt.ScopeTree.PushNewScope("globals")    // user definitions go here
	return rt
}
