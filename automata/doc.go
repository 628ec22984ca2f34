/*
Package automata provides node graphs for finite automata over Unicode input,
with edges labelled by character sets.

Edges are never created per code point. Adding a transition for a label
divides the label into its maximal continuous runs and creates one edge per
run. The size of an automaton is thus independent of the size of the alphabet.

This package does bookkeeping only: creating nodes, connecting them, marking
final nodes, and running input through a given graph. It does not construct
automata from regular expressions, nor does it convert NFAs to DFAs.

    dfa := automata.NewDFA()
    digits := charset.Range('0', '9'+1)
    err := dfa.AddTransition(dfa.Initial, digits, dfa.Final)
    err = dfa.AddTransition(dfa.Final, digits, dfa.Final)
    ok := dfa.Accepts("4711")  // true

For table-driven scanners, DFA.TransitionTable creates a transition matrix
indexed by state and alphabet class (see package partition).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.automata'.
func tracer() tracing.Trace {
	return tracing.Select("runeclass.automata")
}
