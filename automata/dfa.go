package automata

import (
	"errors"
	"fmt"

	"github.com/npillmayer/runeclass/automata/sparse"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/partition"
)

// ErrNondeterministic is returned when a transition would make a DFA
// non-deterministic.
var ErrNondeterministic = errors.New("transition is non-deterministic")

// DFA is a deterministic finite automaton. For every node, the labels of
// outgoing edges to different targets are disjoint.
//
// A new DFA consists of an initial node and a final node. More final nodes may
// be created with NewNode(true).
type DFA struct {
	graph
	Initial *Node
	Final   *Node
}

// NewDFA creates a DFA with an initial and a final node.
func NewDFA() *DFA {
	dfa := &DFA{graph: newGraph()}
	dfa.Initial = dfa.newNode(false)
	dfa.Final = dfa.newNode(true)
	return dfa
}

// NewNode creates a new node within the automaton.
func (dfa *DFA) NewNode(final bool) *Node {
	return dfa.newNode(final)
}

// AddTransition connects two nodes with edges for the code points in label.
// If a code point of label already leads from node from to a node other than
// to, no edge is added and an error wrapping ErrNondeterministic is returned.
// Code points already leading to node to are skipped.
func (dfa *DFA) AddTransition(from *Node, label charset.CharSet, to *Node) error {
	for _, e := range from.out {
		if e.To == to {
			label = label.Subtract(e.Label)
			continue
		}
		if x := charset.Intersection(e.Label, label); !x.IsEmpty() {
			tracer().Errorf("DFA node %d: label %v overlaps edge %v", from.ID, label, e)
			return fmt.Errorf("%w: node %d, code points %v lead to nodes %d and %d",
				ErrNondeterministic, from.ID, x, e.To.ID, to.ID)
		}
	}
	dfa.connect(from, label, to)
	return nil
}

// Step returns the node reached from node from by reading code point cp,
// or nil if there is no such transition.
func (dfa *DFA) Step(from *Node, cp rune) *Node {
	for _, e := range from.out {
		if e.Label.Includes(cp) {
			return e.To
		}
	}
	return nil
}

// Accepts runs input through the automaton and reports whether it ends in a
// final node.
func (dfa *DFA) Accepts(input string) bool {
	n := dfa.Initial
	for _, r := range input {
		if n = dfa.Step(n, r); n == nil {
			tracer().Debugf("DFA stuck at %#U", r)
			return false
		}
	}
	return n.Final
}

// --- Transition tables -----------------------------------------------------

// NoTransition marks the absence of a transition in a Table.
const NoTransition = -1

// Table is a transition table for a DFA. Rows are node IDs, columns are the
// classes of an alphabet computed from all edge labels of the DFA.
type Table struct {
	Alphabet *partition.Alphabet
	Initial  int
	matrix   *sparse.IntMatrix
	accept   []bool
}

// TransitionTable creates a transition table for the DFA's current state.
// Later changes to the DFA are not reflected in the table.
func (dfa *DFA) TransitionTable() *Table {
	// Edges carry continuous pieces of labels. Re-unite the pieces per pair
	// of nodes, otherwise the alphabet would be finer than necessary.
	type arc struct{ from, to uint }
	var arcs []arc
	labels := make(map[arc]charset.CharSet)
	for _, e := range dfa.Edges() {
		a := arc{e.From.ID, e.To.ID}
		if _, ok := labels[a]; !ok {
			arcs = append(arcs, a)
		}
		labels[a] = labels[a].Union(e.Label)
	}
	all := make([]charset.CharSet, len(arcs))
	for i, a := range arcs {
		all[i] = labels[a]
	}
	alpha := partition.NewAlphabet(all...)
	tracer().Infof("transition table of size %d x %d", dfa.ids, alpha.Size())
	t := &Table{
		Alphabet: alpha,
		Initial:  int(dfa.Initial.ID),
		matrix:   sparse.NewIntMatrix(int(dfa.ids), alpha.Size(), NoTransition),
		accept:   make([]bool, dfa.ids),
	}
	for _, n := range dfa.Nodes() {
		t.accept[n.ID] = n.Final
	}
	for _, a := range arcs {
		for _, class := range alpha.ClassesOf(labels[a]) {
			t.matrix.Set(int(a.from), class, int32(a.to))
		}
	}
	return t
}

// States returns the number of rows of the table.
func (t *Table) States() int {
	return t.matrix.M()
}

// Entries returns the number of transitions stored in the table.
func (t *Table) Entries() int {
	return t.matrix.ValueCount()
}

// Next returns the state reached from state by reading cp, or NoTransition.
func (t *Table) Next(state int, cp rune) int {
	class := t.Alphabet.ClassOf(cp)
	if class < 0 || state < 0 || state >= t.matrix.M() {
		return NoTransition
	}
	return int(t.matrix.Value(state, class))
}

// IsAccepting is true if state corresponds to a final node.
func (t *Table) IsAccepting(state int) bool {
	return state >= 0 && state < len(t.accept) && t.accept[state]
}

// Accepts runs input through the table, starting with the initial state.
func (t *Table) Accepts(input string) bool {
	state := t.Initial
	for _, r := range input {
		if state = t.Next(state, r); state == NoTransition {
			return false
		}
	}
	return t.IsAccepting(state)
}
